package conformance

import "testing"

func TestAluCasesAllPass(t *testing.T) {
	pool := NewWorkerPool(4)
	pool.Run(AluCases())
	if failures := pool.Results.Failures(); len(failures) > 0 {
		t.Fatalf("%d/%d ALU cases failed, first: %s: %s",
			len(failures), pool.Results.Total(), failures[0].Name, failures[0].Detail)
	}
}

func TestIncDecCasesAllPass(t *testing.T) {
	pool := NewWorkerPool(4)
	pool.Run(IncDecCases())
	if failures := pool.Results.Failures(); len(failures) > 0 {
		t.Fatalf("%d/%d INC/DEC cases failed, first: %s: %s",
			len(failures), pool.Results.Total(), failures[0].Name, failures[0].Detail)
	}
}

func TestCbCasesAllPass(t *testing.T) {
	pool := NewWorkerPool(4)
	pool.Run(CbCases())
	if failures := pool.Results.Failures(); len(failures) > 0 {
		t.Fatalf("%d/%d CB cases failed, first: %s: %s",
			len(failures), pool.Results.Total(), failures[0].Name, failures[0].Detail)
	}
}

func TestEdCasesAllPass(t *testing.T) {
	pool := NewWorkerPool(4)
	pool.Run(EdCases())
	if failures := pool.Results.Failures(); len(failures) > 0 {
		t.Fatalf("%d/%d ED cases failed, first: %s: %s",
			len(failures), pool.Results.Total(), failures[0].Name, failures[0].Detail)
	}
}

func TestIndexedTimingCasesAllPass(t *testing.T) {
	pool := NewWorkerPool(4)
	pool.Run(IndexedTimingCases())
	if failures := pool.Results.Failures(); len(failures) > 0 {
		t.Fatalf("%d/%d indexed timing cases failed, first: %s: %s",
			len(failures), pool.Results.Total(), failures[0].Name, failures[0].Detail)
	}
}

func TestDaaCasesAllPass(t *testing.T) {
	pool := NewWorkerPool(4)
	pool.Run(DaaCases())
	if failures := pool.Results.Failures(); len(failures) > 0 {
		t.Fatalf("%d/%d DAA cases failed, first: %s: %s",
			len(failures), pool.Results.Total(), failures[0].Name, failures[0].Detail)
	}
}

func TestScfCcfCasesAllPass(t *testing.T) {
	pool := NewWorkerPool(4)
	pool.Run(ScfCcfCases())
	if failures := pool.Results.Failures(); len(failures) > 0 {
		t.Fatalf("%d/%d SCF/CCF cases failed, first: %s: %s",
			len(failures), pool.Results.Total(), failures[0].Name, failures[0].Detail)
	}
}

func TestReportRoundTrip(t *testing.T) {
	table := NewTable()
	table.Record("case-a", true, "")
	table.Record("case-b", false, "mismatch")

	path := t.TempDir() + "/report.json"
	report := NewReport(table)
	if err := WriteJSON(path, report); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	got, err := ReadJSON(path)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if got.Total != 2 || got.Passed != 1 || len(got.Failures) != 1 {
		t.Fatalf("got %+v", got)
	}
}

func TestCheckpointRoundTrip(t *testing.T) {
	table := NewTable()
	table.Record("case-a", true, "")
	ckpt := table.Checkpoint("case-a")

	path := t.TempDir() + "/checkpoint.gob"
	if err := Save(path, ckpt); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := LoadCheckpoint(path)
	if err != nil {
		t.Fatalf("LoadCheckpoint: %v", err)
	}
	if loaded.Passed != 1 || loaded.CompletedName != "case-a" {
		t.Fatalf("got %+v", loaded)
	}
}
