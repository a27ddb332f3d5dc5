package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/vquang/sheetops/internal/collector"
	"github.com/vquang/sheetops/internal/core/report"
	"github.com/vquang/sheetops/internal/probe"
)

var collectTimeout time.Duration

var collectCmd = &cobra.Command{
	Use:   "collect [output.csv]",
	Short: "Collect environment diagnostics and write a CSV report",
	Args:  cobra.MaximumNArgs(1),
	Run:   runCollect,
}

func init() {
	collectCmd.Flags().DurationVar(&collectTimeout, "timeout", 0, "overall collection timeout (overrides config)")
	rootCmd.AddCommand(collectCmd)
}

func runCollect(cmd *cobra.Command, args []string) {
	cfg := setup()

	var probes []probe.Probe
	for _, p := range probe.Defaults() {
		if cfg.Probes.IsDisabled(p.Name) {
			slog.Debug("probe disabled by config", "probe", p.Name)
			continue
		}
		probes = append(probes, p)
	}

	timeout := cfg.Collect.Timeout.Std()
	if collectTimeout > 0 {
		timeout = collectTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	slog.Info("Starting diagnostics collection", "probes", len(probes))
	rep := collector.New(version, probes...).Run(ctx)

	out := ""
	if len(args) > 0 {
		out = args[0]
	} else {
		out = filepath.Join(cfg.Output.Dir, report.DefaultFilename(rep.Hostname, rep.CollectedAt))
	}

	if err := rep.WriteFile(out); err != nil {
		slog.Error("Failed to write report", "path", out, "error", err)
		os.Exit(1)
	}

	fmt.Printf("Report written to %s (%d parameters)\n", out, rep.Len())
}
