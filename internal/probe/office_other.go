//go:build !windows

package probe

import (
	"context"
	"os/exec"
	"strings"
	"time"

	"github.com/vquang/sheetops/internal/core/report"
)

// versionTimeout bounds each `--version` subprocess.
const versionTimeout = 5 * time.Second

// spreadsheetBinaries are the applications looked up on non-Windows hosts.
var spreadsheetBinaries = []string{"soffice", "libreoffice", "localc", "gnumeric"}

func runOffice(ctx context.Context) ([]report.Row, error) {
	var rows []report.Row

	for _, bin := range spreadsheetBinaries {
		path, err := exec.LookPath(bin)
		if err != nil {
			rows = append(rows, report.Row{Group: "office", Parameter: bin + "_path", Value: "Not found"})
			continue
		}
		rows = append(rows, report.Row{Group: "office", Parameter: bin + "_path", Value: path})
		rows = append(rows, report.Row{Group: "office", Parameter: bin + "_version", Value: value(func() (string, error) {
			return binaryVersion(ctx, path)
		})})
	}

	return rows, nil
}

func binaryVersion(ctx context.Context, path string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, versionTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, path, "--version").Output()
	if err != nil {
		return "", err
	}
	// First line only; LibreOffice prints a trailing blurb.
	line, _, _ := strings.Cut(strings.TrimSpace(string(out)), "\n")
	return line, nil
}

func runCOM(_ context.Context) ([]report.Row, error) {
	return []report.Row{
		{Group: "com", Parameter: "ole_configuration", Value: NotAvailable + " on this platform"},
	}, nil
}

func runDotNet(_ context.Context) ([]report.Row, error) {
	return []report.Row{
		{Group: "dotnet", Parameter: "framework", Value: NotAvailable + " on this platform"},
	}, nil
}
