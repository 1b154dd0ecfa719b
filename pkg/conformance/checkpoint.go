package conformance

import (
	"encoding/gob"
	"os"
)

// Checkpoint holds a copy of a Table's tallies: the pass count, every
// failure recorded so far, and the name of the last case completed. It
// does not list which passing cases ran. Adapted from this codebase's
// pkg/result.Checkpoint.
type Checkpoint struct {
	Passed        int
	Failures      []Failure
	CompletedName string // last case name completed, for informational resume logging
}

// Save writes ckpt to path.
func Save(path string, ckpt *Checkpoint) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gob.NewEncoder(f).Encode(ckpt)
}

// LoadCheckpoint reads a Checkpoint from path.
func LoadCheckpoint(path string) (*Checkpoint, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var ckpt Checkpoint
	if err := gob.NewDecoder(f).Decode(&ckpt); err != nil {
		return nil, err
	}
	return &ckpt, nil
}

// Checkpoint captures the table's current state for later resume.
func (t *Table) Checkpoint(lastName string) *Checkpoint {
	t.mu.Lock()
	defer t.mu.Unlock()
	failures := make([]Failure, len(t.failures))
	copy(failures, t.failures)
	return &Checkpoint{Passed: t.passed, Failures: failures, CompletedName: lastName}
}
