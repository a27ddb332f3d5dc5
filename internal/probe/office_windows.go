//go:build windows

package probe

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/windows/registry"

	"github.com/vquang/sheetops/internal/core/report"
)

// App Paths default value resolves the registered excel.exe location.
var excelAppPathKey = `SOFTWARE\Microsoft\Windows\CurrentVersion\App Paths\excel.exe`

var clickToRunValues = []string{
	"ClientCulture",
	"Platform",
	"ProductReleaseIds",
	"UpdateChannel",
	"UpdatesEnabled",
	"VersionToReport",
}

var officeInstallRoots = []string{
	`C:\Program Files\Microsoft Office\root\Office16`,
	`C:\Program Files (x86)\Microsoft Office\root\Office16`,
	`C:\Program Files\Microsoft Office\Office16`,
	`C:\Program Files (x86)\Microsoft Office\Office16`,
}

// Office generations checked for patch-level ProductVersion values.
var officeProductVersions = []string{"16.0", "15.0", "14.0"}

func runOffice(_ context.Context) ([]report.Row, error) {
	var rows []report.Row

	rows = append(rows, report.Row{Group: "office", Parameter: "excel_app_path", Value: value(func() (string, error) {
		return readRegistryString(registry.LOCAL_MACHINE, excelAppPathKey, "")
	})})

	for _, name := range clickToRunValues {
		v, err := readRegistryString(registry.LOCAL_MACHINE,
			`SOFTWARE\Microsoft\Office\ClickToRun\Configuration`, name)
		if err != nil {
			v = NotAvailable
		}
		rows = append(rows, report.Row{Group: "office", Parameter: "c2r_" + strings.ToLower(name), Value: v})
	}

	var found []string
	for _, root := range officeInstallRoots {
		if _, err := os.Stat(root); err == nil {
			found = append(found, root)
		}
	}
	rows = append(rows, report.Row{Group: "office", Parameter: "install_roots", Value: joinOrSentinel(found)})

	// Patch level per installed Office generation; absent generations are
	// expected and skipped.
	for _, ver := range officeProductVersions {
		vals, err := enumerateRegistryValues(registry.LOCAL_MACHINE,
			`SOFTWARE\Microsoft\Office\`+ver+`\Common\ProductVersion`)
		if err != nil {
			continue
		}
		for _, v := range vals {
			rows = append(rows, report.Row{Group: "office", Parameter: "patch_" + ver + "_" + v.name, Value: v.value})
		}
	}

	rows = append(rows, addinRows()...)

	return rows, nil
}

// addinRows lists add-in files from the user's XLSTART and AddIns folders.
func addinRows() []report.Row {
	appdata := os.Getenv("APPDATA")
	if appdata == "" {
		return []report.Row{{Group: "office", Parameter: "addins", Value: NotAvailable}}
	}

	dirs := []string{
		filepath.Join(appdata, "Microsoft", "Excel", "XLSTART"),
		filepath.Join(appdata, "Microsoft", "AddIns"),
	}

	var addins []string
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, e := range entries {
			switch strings.ToLower(filepath.Ext(e.Name())) {
			case ".xla", ".xlam", ".xll", ".xlb":
				addins = append(addins, filepath.Join(dir, e.Name()))
			}
		}
	}

	return []report.Row{{Group: "office", Parameter: "addins", Value: joinOrSentinel(addins)}}
}

// COM configuration lives under three sibling keys; each is enumerated
// independently so a missing one does not hide the others.
var comRegistryKeys = []struct {
	prefix string
	path   string
}{
	{"ole", `SOFTWARE\Microsoft\Ole`},
	{"com3", `SOFTWARE\Microsoft\COM3`},
	{"dcom", `SOFTWARE\Microsoft\DCOM`},
}

func runCOM(_ context.Context) ([]report.Row, error) {
	var rows []report.Row

	for _, k := range comRegistryKeys {
		vals, err := enumerateRegistryValues(registry.LOCAL_MACHINE, k.path)
		if err != nil {
			rows = append(rows, report.Row{Group: "com", Parameter: k.prefix + "_configuration", Value: "error: " + err.Error()})
			continue
		}
		if len(vals) == 0 {
			rows = append(rows, report.Row{Group: "com", Parameter: k.prefix + "_configuration", Value: NotAvailable})
			continue
		}
		for _, v := range vals {
			rows = append(rows, report.Row{Group: "com", Parameter: k.prefix + "_" + v.name, Value: v.value})
		}
	}

	return rows, nil
}

func runDotNet(_ context.Context) ([]report.Row, error) {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE,
		`SOFTWARE\Microsoft\NET Framework Setup\NDP`, registry.READ)
	if err != nil {
		return nil, fmt.Errorf("failed to open NDP registry key: %w", err)
	}
	defer func() {
		_ = key.Close()
	}()

	subkeys, err := key.ReadSubKeyNames(0)
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate NDP subkeys: %w", err)
	}

	var rows []report.Row
	for _, name := range subkeys {
		if !strings.HasPrefix(name, "v") {
			continue
		}
		rows = append(rows, report.Row{Group: "dotnet", Parameter: name, Value: "Installed"})

		if !strings.HasPrefix(name, "v4") {
			continue
		}
		full, err := registry.OpenKey(key, name+`\Full`, registry.QUERY_VALUE)
		if err != nil {
			continue
		}
		release, _, err := full.GetIntegerValue("Release")
		_ = full.Close()
		if err != nil {
			continue
		}
		rows = append(rows, report.Row{Group: "dotnet", Parameter: "v4_version", Value: dotnetVersionFromRelease(release)})
	}

	if len(rows) == 0 {
		rows = append(rows, report.Row{Group: "dotnet", Parameter: "framework", Value: NotAvailable})
	}
	return rows, nil
}

func readRegistryString(root registry.Key, path, name string) (string, error) {
	key, err := registry.OpenKey(root, path, registry.QUERY_VALUE)
	if err != nil {
		return "", err
	}
	defer func() {
		_ = key.Close()
	}()

	v, _, err := key.GetStringValue(name)
	if err != nil {
		return "", err
	}
	return v, nil
}

type registryValue struct {
	name  string
	value string
}

// enumerateRegistryValues reads every value under a key, rendering each
// regardless of its type.
func enumerateRegistryValues(root registry.Key, path string) ([]registryValue, error) {
	key, err := registry.OpenKey(root, path, registry.READ)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = key.Close()
	}()

	names, err := key.ReadValueNames(0)
	if err != nil {
		return nil, err
	}

	vals := make([]registryValue, 0, len(names))
	for _, name := range names {
		vals = append(vals, registryValue{name: name, value: registryValueString(key, name)})
	}
	return vals, nil
}

// registryValueString renders a registry value regardless of its type.
func registryValueString(key registry.Key, name string) string {
	if s, _, err := key.GetStringValue(name); err == nil {
		return s
	}
	if n, _, err := key.GetIntegerValue(name); err == nil {
		return fmt.Sprintf("%d", n)
	}
	if b, _, err := key.GetBinaryValue(name); err == nil {
		return fmt.Sprintf("%x", b)
	}
	return NotAvailable
}

func joinOrSentinel(items []string) string {
	if len(items) == 0 {
		return "Not found"
	}
	return strings.Join(items, "; ")
}
