package conformance

import "sync"

// Failure records one case that disagreed with the oracle.
type Failure struct {
	Name   string
	Detail string
}

// Table accumulates conformance results, safe for concurrent writes
// from a WorkerPool. Adapted from this codebase's pkg/result.Table.
type Table struct {
	mu       sync.Mutex
	passed   int
	failures []Failure
}

// NewTable creates an empty table.
func NewTable() *Table { return &Table{} }

// Record adds one case's outcome.
func (t *Table) Record(name string, ok bool, detail string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if ok {
		t.passed++
		return
	}
	t.failures = append(t.failures, Failure{Name: name, Detail: detail})
}

// Passed returns the number of cases that matched the oracle.
func (t *Table) Passed() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.passed
}

// Failures returns a copy of every recorded failure.
func (t *Table) Failures() []Failure {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Failure, len(t.failures))
	copy(out, t.failures)
	return out
}

// Total returns the number of cases recorded so far.
func (t *Table) Total() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.passed + len(t.failures)
}
