package probe

import (
	"context"
	"fmt"
	"os"
	"os/user"
	"time"

	"github.com/shirou/gopsutil/v4/host"

	"github.com/vquang/sheetops/internal/core/report"
)

// OS reports operating system identity: platform, kernel, architecture,
// uptime, and the current user.
func OS() Probe {
	return Probe{Name: "os", Group: "os", Run: runOS}
}

func runOS(ctx context.Context) ([]report.Row, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read host info: %w", err)
	}

	rows := []report.Row{
		{Group: "os", Parameter: "name", Value: info.OS},
		{Group: "os", Parameter: "platform", Value: info.Platform},
		{Group: "os", Parameter: "platform_family", Value: info.PlatformFamily},
		{Group: "os", Parameter: "platform_version", Value: info.PlatformVersion},
		{Group: "os", Parameter: "kernel_version", Value: info.KernelVersion},
		{Group: "os", Parameter: "kernel_arch", Value: info.KernelArch},
		{Group: "os", Parameter: "hostname", Value: info.Hostname},
		{Group: "os", Parameter: "uptime", Value: (time.Duration(info.Uptime) * time.Second).String()},
		{Group: "os", Parameter: "boot_time", Value: time.Unix(int64(info.BootTime), 0).Format(time.RFC3339)},
	}

	rows = append(rows, report.Row{Group: "os", Parameter: "username", Value: value(func() (string, error) {
		u, err := user.Current()
		if err != nil {
			return "", err
		}
		return u.Username, nil
	})})

	domain := os.Getenv("USERDOMAIN")
	if domain == "" {
		domain = NotAvailable
	}
	rows = append(rows, report.Row{Group: "os", Parameter: "domain", Value: domain})

	return rows, nil
}
