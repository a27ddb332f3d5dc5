package collector

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"

	"github.com/vquang/sheetops/internal/core/report"
	"github.com/vquang/sheetops/internal/probe"
)

func okProbe(name, group string, n int) probe.Probe {
	return probe.Probe{
		Name:  name,
		Group: group,
		Run: func(_ context.Context) ([]report.Row, error) {
			rows := make([]report.Row, 0, n)
			for i := 0; i < n; i++ {
				rows = append(rows, report.Row{Group: group, Parameter: name, Value: "v"})
			}
			return rows, nil
		},
	}
}

func failingProbe(name, group string) probe.Probe {
	return probe.Probe{
		Name:  name,
		Group: group,
		Run: func(_ context.Context) ([]report.Row, error) {
			return nil, errors.New("query refused")
		},
	}
}

func TestRun_FailureIsolation(t *testing.T) {
	c := New("test",
		okProbe("first", "a", 2),
		failingProbe("broken", "b"),
		okProbe("last", "c", 1),
	)

	rep := c.Run(context.Background())

	// 4 general rows + 2 + 1 sentinel + 1.
	if rep.Len() != 8 {
		t.Fatalf("expected 8 rows, got %d", rep.Len())
	}

	rows := rep.Rows()
	sentinel := rows[6]
	if sentinel.Group != "b" || sentinel.Parameter != "broken_error" || sentinel.Value != "query refused" {
		t.Errorf("unexpected sentinel row: %+v", sentinel)
	}
	if rows[7].Group != "c" {
		t.Errorf("probe after the failing one did not run: %+v", rows[7])
	}
}

func TestRun_GeneralRowsFirst(t *testing.T) {
	rep := New("1.2.3").Run(context.Background())

	rows := rep.Rows()
	if len(rows) != 4 {
		t.Fatalf("expected 4 general rows, got %d", len(rows))
	}
	for _, r := range rows {
		if r.Group != "general" {
			t.Errorf("expected general group, got %q", r.Group)
		}
	}
	if rows[3].Parameter != "tool_version" || rows[3].Value != "1.2.3" {
		t.Errorf("unexpected version row: %+v", rows[3])
	}
}

func TestRun_CSVAlwaysThreeColumns(t *testing.T) {
	c := New("test", okProbe("ok", "a", 3), failingProbe("nope", "b"))
	rep := c.Run(context.Background())

	var buf bytes.Buffer
	if err := rep.WriteCSV(&buf); err != nil {
		t.Fatalf("WriteCSV failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("failed to reparse CSV: %v", err)
	}
	// Header + 4 general + 3 + 1 sentinel.
	if len(records) != 9 {
		t.Fatalf("expected 9 records, got %d", len(records))
	}
	for i, rec := range records {
		if len(rec) != 3 {
			t.Errorf("record %d has %d columns", i, len(rec))
		}
	}
}
