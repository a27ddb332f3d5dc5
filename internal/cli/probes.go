package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vquang/sheetops/internal/probe"
)

var probesCmd = &cobra.Command{
	Use:   "probes",
	Short: "List the diagnostic probes in collection order",
	Run:   runProbes,
}

func init() {
	rootCmd.AddCommand(probesCmd)
}

func runProbes(cmd *cobra.Command, args []string) {
	cfg := setup()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', tabwriter.Debug)
	_, _ = fmt.Fprintln(w, "PROBE\tGROUP\tENABLED")

	for _, p := range probe.Defaults() {
		enabled := "yes"
		if cfg.Probes.IsDisabled(p.Name) {
			enabled = "no"
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", p.Name, p.Group, enabled)
	}
	_ = w.Flush()
}
