package probe

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/vquang/sheetops/internal/core/report"
)

// Runtime reports the Go toolchain and process identity of the running
// binary, the analogue of the original interpreter enumeration.
func Runtime() Probe {
	return Probe{Name: "runtime", Group: "runtime", Run: runRuntime}
}

func runRuntime(_ context.Context) ([]report.Row, error) {
	rows := []report.Row{
		{Group: "runtime", Parameter: "go_version", Value: runtime.Version()},
		{Group: "runtime", Parameter: "compiler", Value: runtime.Compiler},
		{Group: "runtime", Parameter: "goos", Value: runtime.GOOS},
		{Group: "runtime", Parameter: "goarch", Value: runtime.GOARCH},
		{Group: "runtime", Parameter: "num_cpu", Value: fmt.Sprintf("%d", runtime.NumCPU())},
		{Group: "runtime", Parameter: "gomaxprocs", Value: fmt.Sprintf("%d", runtime.GOMAXPROCS(0))},
	}

	rows = append(rows, report.Row{Group: "runtime", Parameter: "executable", Value: value(os.Executable)})
	rows = append(rows, report.Row{Group: "runtime", Parameter: "working_dir", Value: value(os.Getwd)})

	return rows, nil
}

// Modules reports the dependency versions baked into the binary, including
// VCS metadata when the build carries it.
func Modules() Probe {
	return Probe{Name: "modules", Group: "modules", Run: runModules}
}

func runModules(_ context.Context) ([]report.Row, error) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return nil, fmt.Errorf("build info not embedded in binary")
	}

	rows := []report.Row{
		{Group: "modules", Parameter: "main_module", Value: bi.Main.Path},
		{Group: "modules", Parameter: "main_version", Value: orSentinel(bi.Main.Version)},
	}

	for _, dep := range bi.Deps {
		rows = append(rows, report.Row{Group: "modules", Parameter: dep.Path, Value: dep.Version})
	}

	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision", "vcs.time", "vcs.modified":
			rows = append(rows, report.Row{Group: "modules", Parameter: s.Key, Value: s.Value})
		}
	}

	return rows, nil
}

func orSentinel(v string) string {
	if v == "" {
		return NotAvailable
	}
	return v
}
