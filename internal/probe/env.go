package probe

import (
	"context"
	"os"

	"github.com/vquang/sheetops/internal/core/report"
)

// relevantVars is the fixed list of environment variables inspected for
// automation troubleshooting, in report order. Unset variables are still
// reported so cross-machine diffs line up.
var relevantVars = []string{
	"PATH",
	"PATHEXT",
	"COMSPEC",
	"TEMP",
	"TMP",
	"APPDATA",
	"LOCALAPPDATA",
	"PROGRAMDATA",
	"PROCESSOR_ARCHITECTURE",
	"NUMBER_OF_PROCESSORS",
	"PROCESSOR_IDENTIFIER",
	"COMPUTERNAME",
	"USERNAME",
	"USERPROFILE",
	"SYSTEMROOT",
	"SYSTEMDRIVE",
	"WINDIR",
	"HOME",
	"SHELL",
	"LANG",
	"XLSTART",
	"XLSTARTUP",
}

// Environment reports the fixed set of automation-relevant environment
// variables.
func Environment() Probe {
	return Probe{Name: "env", Group: "env", Run: runEnvironment}
}

func runEnvironment(_ context.Context) ([]report.Row, error) {
	rows := make([]report.Row, 0, len(relevantVars))
	for _, name := range relevantVars {
		v, ok := os.LookupEnv(name)
		if !ok {
			v = "Not set"
		}
		rows = append(rows, report.Row{Group: "env", Parameter: name, Value: v})
	}
	return rows, nil
}
