package probe

import "fmt"

// DotNet reports installed .NET Framework versions, a dependency of the
// automation layer on Windows. Other platforms emit a sentinel row.
func DotNet() Probe {
	return Probe{Name: "dotnet", Group: "dotnet", Run: runDotNet}
}

// dotnetVersionFromRelease maps the NDP v4 "Release" registry value to the
// marketing version it denotes.
func dotnetVersionFromRelease(release uint64) string {
	switch {
	case release >= 528040:
		return "4.8 or later"
	case release >= 461808:
		return "4.7.2"
	case release >= 461308:
		return "4.7.1"
	case release >= 460798:
		return "4.7"
	case release >= 394802:
		return "4.6.2"
	case release >= 394254:
		return "4.6.1"
	case release >= 393295:
		return "4.6"
	case release >= 379893:
		return "4.5.2"
	case release >= 378675:
		return "4.5.1"
	case release >= 378389:
		return "4.5"
	default:
		return fmt.Sprintf("4.0 or earlier (release %d)", release)
	}
}
