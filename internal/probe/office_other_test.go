//go:build !windows

package probe

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// fakeBinary drops an executable script named soffice into a temp dir and
// points PATH at it.
func fakeBinary(t *testing.T, script string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "soffice")
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("Failed to write fake binary: %v", err)
	}
	t.Setenv("PATH", dir)
	return path
}

func TestOffice_FindsBinaryOnPath(t *testing.T) {
	path := fakeBinary(t, "#!/bin/sh\necho 'LibreOffice 7.6.4.1 40(Build:1)'\n")

	rows, err := Office().Run(context.Background())
	if err != nil {
		t.Fatalf("Office probe failed: %v", err)
	}

	values := map[string]string{}
	for _, r := range rows {
		if r.Group != "office" {
			t.Errorf("unexpected group %q", r.Group)
		}
		values[r.Parameter] = r.Value
	}

	if values["soffice_path"] != path {
		t.Errorf("soffice_path = %q, want %q", values["soffice_path"], path)
	}
	if values["soffice_version"] != "LibreOffice 7.6.4.1 40(Build:1)" {
		t.Errorf("soffice_version = %q", values["soffice_version"])
	}
	// The remaining binaries are absent from the temp PATH and still get a
	// sentinel row each.
	for _, p := range []string{"libreoffice_path", "localc_path", "gnumeric_path"} {
		if values[p] != "Not found" {
			t.Errorf("%s = %q, want Not found", p, values[p])
		}
	}
	if len(rows) != 5 {
		t.Errorf("expected 5 rows, got %d", len(rows))
	}
}

func TestOffice_VersionFailureIsGuarded(t *testing.T) {
	fakeBinary(t, "#!/bin/sh\nexit 1\n")

	rows, err := Office().Run(context.Background())
	if err != nil {
		t.Fatalf("Office probe failed: %v", err)
	}

	values := map[string]string{}
	for _, r := range rows {
		values[r.Parameter] = r.Value
	}
	if !strings.HasPrefix(values["soffice_version"], "error: ") {
		t.Errorf("soffice_version = %q, want error sentinel", values["soffice_version"])
	}
}
