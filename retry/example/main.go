// Demonstrates wrapping a flaky automation call with retry.Do and a custom
// retry hook.
package main

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"github.com/vquang/sheetops/retry"
)

// readRange simulates a spreadsheet read that fails half the time with a
// transient automation error.
func readRange() (string, error) {
	if rand.Float64() < 0.5 {
		return "", errors.New("RPC_E_CALL_REJECTED: the application is busy")
	}
	return "Hello World", nil
}

func main() {
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelDebug,
		TimeFormat: time.RFC3339,
	})))

	cfg := retry.Config{
		Tries:   5,
		Delay:   500 * time.Millisecond,
		Backoff: 2.0,
		Jitter:  0.1,
		OnRetry: func(attempt int, wait time.Duration, err error) {
			slog.Warn("read failed, retrying",
				"attempt", attempt,
				"wait", wait.Round(time.Millisecond),
				"error", err)
		},
	}

	value, err := retry.DoValue(context.Background(), cfg, readRange)
	if err != nil {
		slog.Error("read failed after all attempts", "error", err)
		os.Exit(1)
	}

	slog.Info("read succeeded", "value", value)
}
