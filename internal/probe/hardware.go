package probe

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/vquang/sheetops/internal/core/report"
)

// cpuSampleInterval bounds how long the CPU utilization sample blocks.
const cpuSampleInterval = 500 * time.Millisecond

// Hardware reports memory, CPU, and disk capacity. Each sub-query is
// guarded independently so a single unreadable source does not blank the
// whole group.
func Hardware() Probe {
	return Probe{Name: "hardware", Group: "hardware", Run: runHardware}
}

func runHardware(ctx context.Context) ([]report.Row, error) {
	var rows []report.Row

	if vm, err := mem.VirtualMemoryWithContext(ctx); err != nil {
		rows = append(rows, report.Row{Group: "hardware", Parameter: "memory", Value: "error: " + err.Error()})
	} else {
		rows = append(rows,
			report.Row{Group: "hardware", Parameter: "total_memory_gb", Value: gigabytes(vm.Total)},
			report.Row{Group: "hardware", Parameter: "available_memory_gb", Value: gigabytes(vm.Available)},
			report.Row{Group: "hardware", Parameter: "memory_percent_used", Value: fmt.Sprintf("%.1f", vm.UsedPercent)},
		)
	}

	rows = append(rows, report.Row{Group: "hardware", Parameter: "cpu_count_physical", Value: value(func() (string, error) {
		n, err := cpu.CountsWithContext(ctx, false)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d", n), nil
	})})
	rows = append(rows, report.Row{Group: "hardware", Parameter: "cpu_count_logical", Value: value(func() (string, error) {
		n, err := cpu.CountsWithContext(ctx, true)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d", n), nil
	})})
	rows = append(rows, report.Row{Group: "hardware", Parameter: "cpu_percent", Value: value(func() (string, error) {
		pcts, err := cpu.PercentWithContext(ctx, cpuSampleInterval, false)
		if err != nil {
			return "", err
		}
		if len(pcts) == 0 {
			return "", fmt.Errorf("no cpu sample")
		}
		return fmt.Sprintf("%.1f", pcts[0]), nil
	})})

	if usage, err := disk.UsageWithContext(ctx, rootPath()); err != nil {
		rows = append(rows, report.Row{Group: "hardware", Parameter: "disk", Value: "error: " + err.Error()})
	} else {
		rows = append(rows,
			report.Row{Group: "hardware", Parameter: "disk_total_gb", Value: gigabytes(usage.Total)},
			report.Row{Group: "hardware", Parameter: "disk_free_gb", Value: gigabytes(usage.Free)},
			report.Row{Group: "hardware", Parameter: "disk_percent_used", Value: fmt.Sprintf("%.1f", usage.UsedPercent)},
		)
	}

	return rows, nil
}

func gigabytes(b uint64) string {
	return fmt.Sprintf("%.2f", float64(b)/(1<<30))
}

// rootPath returns the volume to report disk usage for.
func rootPath() string {
	if runtime.GOOS == "windows" {
		if drive := os.Getenv("SystemDrive"); drive != "" {
			return drive + `\`
		}
		return `C:\`
	}
	return "/"
}
