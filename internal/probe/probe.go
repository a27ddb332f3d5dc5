// Package probe defines the read-only environment queries behind the
// diagnostic report, one ordered set per collection run.
package probe

import (
	"context"

	"github.com/vquang/sheetops/internal/core/report"
)

// NotAvailable is the sentinel recorded when a value cannot be obtained.
const NotAvailable = "not available"

// Probe is a single independent environment query. Run returns the rows it
// could collect; a non-nil error means the whole probe failed and the
// collector records a sentinel row in its place.
type Probe struct {
	Name  string
	Group string
	Run   func(ctx context.Context) ([]report.Row, error)
}

// Defaults returns the full probe sequence in collection order.
func Defaults() []Probe {
	return []Probe{
		OS(),
		Runtime(),
		Modules(),
		Hardware(),
		Environment(),
		Office(),
		COM(),
		DotNet(),
	}
}

// value guards a single field: a failed lookup yields its error text instead
// of aborting the sibling fields.
func value(fn func() (string, error)) string {
	v, err := fn()
	if err != nil {
		return "error: " + err.Error()
	}
	return v
}
