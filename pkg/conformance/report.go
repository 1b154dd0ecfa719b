package conformance

import (
	"encoding/json"
	"os"
)

// Report is the JSON-serializable summary of a sweep, for cmd/z80run's
// "conformance" subcommand. The teacher's export subcommand referenced
// a rules.json format but never implemented one; this fills that role
// for opcode conformance instead of optimizer rules.
type Report struct {
	Total    int       `json:"total"`
	Passed   int       `json:"passed"`
	Failures []Failure `json:"failures,omitempty"`
}

// NewReport summarizes a Table.
func NewReport(t *Table) Report {
	return Report{Total: t.Total(), Passed: t.Passed(), Failures: t.Failures()}
}

// WriteJSON writes the report to path as indented JSON.
func WriteJSON(path string, r Report) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// ReadJSON reads a report previously written by WriteJSON.
func ReadJSON(path string) (Report, error) {
	f, err := os.Open(path)
	if err != nil {
		return Report{}, err
	}
	defer f.Close()
	var r Report
	err = json.NewDecoder(f).Decode(&r)
	return r, err
}
