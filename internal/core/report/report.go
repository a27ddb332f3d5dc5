// Package report holds the flat diagnostic report model: rows of
// (Group, Parameter, Value) appended in query order and written as CSV.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
)

// Row is a single collected parameter. The same parameter name may appear
// under different groups; no uniqueness constraint holds.
type Row struct {
	Group     string
	Parameter string
	Value     string
}

// Report accumulates rows for one collection run.
type Report struct {
	ID          string
	Hostname    string
	CollectedAt time.Time

	rows []Row
}

// New creates an empty report stamped with a fresh ID, the local hostname,
// and the current time.
func New() *Report {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "unknown"
	}
	return &Report{
		ID:          uuid.NewString(),
		Hostname:    hostname,
		CollectedAt: time.Now(),
	}
}

// Add appends a single row.
func (r *Report) Add(group, parameter, value string) {
	r.rows = append(r.rows, Row{Group: group, Parameter: parameter, Value: value})
}

// Append appends rows in order.
func (r *Report) Append(rows ...Row) {
	r.rows = append(r.rows, rows...)
}

// Rows returns the accumulated rows in append order.
func (r *Report) Rows() []Row {
	return r.rows
}

// Len returns the number of collected rows.
func (r *Report) Len() int {
	return len(r.rows)
}

// WriteCSV writes a header row followed by every collected row.
func (r *Report) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"Group", "Parameter", "Value"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range r.rows {
		if err := cw.Write([]string{row.Group, row.Parameter, row.Value}); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFile writes the CSV report to path. This is the collector's only
// fatal failure mode.
func (r *Report) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	if err := r.WriteCSV(f); err != nil {
		return err
	}
	return f.Close()
}

// DefaultFilename builds the fallback report name used when the caller does
// not supply one.
func DefaultFilename(hostname string, t time.Time) string {
	return fmt.Sprintf("sheetops_diag_%s_%s.csv", hostname, t.Format("20060102_150405"))
}
