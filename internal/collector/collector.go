// Package collector runs the diagnostic probes in order and assembles the
// report. A failing probe is recorded as a sentinel row and never stops the
// remaining probes.
package collector

import (
	"context"
	"log/slog"
	"time"

	"github.com/vquang/sheetops/internal/core/report"
	"github.com/vquang/sheetops/internal/probe"
)

// Collector executes a fixed probe sequence for one report.
type Collector struct {
	version string
	probes  []probe.Probe
}

// New creates a collector over the given probes, run in the given order.
func New(version string, probes ...probe.Probe) *Collector {
	return &Collector{version: version, probes: probes}
}

// Run executes every probe and returns the assembled report. Run never
// fails; individual probe failures surface as sentinel rows.
func (c *Collector) Run(ctx context.Context) *report.Report {
	rep := report.New()

	rep.Add("general", "collected_at", rep.CollectedAt.Format(time.RFC3339))
	rep.Add("general", "hostname", rep.Hostname)
	rep.Add("general", "report_id", rep.ID)
	rep.Add("general", "tool_version", c.version)

	for _, p := range c.probes {
		start := time.Now()
		slog.Debug("running probe", "probe", p.Name)

		rows, err := p.Run(ctx)
		if err != nil {
			slog.Warn("probe failed", "probe", p.Name, "error", err)
			rep.Add(p.Group, p.Name+"_error", err.Error())
			continue
		}

		rep.Append(rows...)
		slog.Debug("probe finished", "probe", p.Name, "rows", len(rows), "elapsed", time.Since(start))
	}

	return rep
}
