package romfs

import (
	"testing"
	"testing/fstest"
)

func TestLoadUnpaged(t *testing.T) {
	fsys := fstest.MapFS{
		"Roms/48k/48k.rom": &fstest.MapFile{Data: []byte{0xF3, 0xAF}},
	}
	data, err := Load(fsys, "48k", -1)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(data) != 2 || data[0] != 0xF3 {
		t.Errorf("got %v, want [0xF3 0xAF]", data)
	}
}

func TestLoadPaged(t *testing.T) {
	fsys := fstest.MapFS{
		"Roms/128k/128k-0.rom": &fstest.MapFile{Data: []byte{0x01}},
		"Roms/128k/128k-1.rom": &fstest.MapFile{Data: []byte{0x02}},
	}
	data, err := Load(fsys, "128k", 1)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(data) != 1 || data[0] != 0x02 {
		t.Errorf("got %v, want [0x02]", data)
	}
}

func TestLoadMissing(t *testing.T) {
	fsys := fstest.MapFS{}
	if _, err := Load(fsys, "missing", -1); err == nil {
		t.Fatal("expected error for missing ROM")
	}
}

func TestPagesConcatenatesInOrder(t *testing.T) {
	fsys := fstest.MapFS{
		"Roms/128k/128k-0.rom": &fstest.MapFile{Data: []byte{0x01, 0x02}},
		"Roms/128k/128k-1.rom": &fstest.MapFile{Data: []byte{0x03, 0x04}},
	}
	data, err := Pages(fsys, "128k", 2)
	if err != nil {
		t.Fatalf("Pages: %v", err)
	}
	want := []byte{0x01, 0x02, 0x03, 0x04}
	if len(data) != len(want) {
		t.Fatalf("got %v, want %v", data, want)
	}
	for i := range want {
		if data[i] != want[i] {
			t.Fatalf("got %v, want %v", data, want)
		}
	}
}
