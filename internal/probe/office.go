package probe

// Office and COM inspect the installed spreadsheet application and the
// automation layer's configuration. Both are read-only; the application is
// never driven. Platform-specific implementations live in
// office_windows.go and office_other.go.

// Office reports spreadsheet application discovery: install paths, versions,
// and add-in locations.
func Office() Probe {
	return Probe{Name: "office", Group: "office", Run: runOffice}
}

// COM reports automation-layer (OLE/COM) configuration where the platform
// has one, and explicit sentinel rows elsewhere.
func COM() Probe {
	return Probe{Name: "com", Group: "com", Run: runCOM}
}
