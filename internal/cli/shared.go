package cli

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
	cyan   = color.New(color.FgCyan).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
)

// newLogger builds the slog.Logger handed to the library. The --verbose
// flag wins over the configured level.
func newLogger(level string) *slog.Logger {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
	})

	l.SetLevel(log.WarnLevel)
	if parsed, err := log.ParseLevel(level); err == nil {
		l.SetLevel(parsed)
	}
	if verbose {
		l.SetLevel(log.DebugLevel)
	}

	return slog.New(l)
}

// withSpinner animates desc on stderr until the returned stop func is
// called, so concurrent extractions never garble stdout output.
func withSpinner(ctx context.Context, desc string) (stop func()) {
	spinner := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(desc),
		progressbar.OptionSpinnerType(11),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionThrottle(65*time.Millisecond),
	)

	done := make(chan struct{})
	go func() {
		tick := time.NewTicker(120 * time.Millisecond)
		defer tick.Stop()
		for {
			select {
			case <-done:
				return
			case <-ctx.Done():
				spinner.Finish()
				return
			case <-tick.C:
				spinner.Add(1)
			}
		}
	}()

	return func() {
		close(done)
		spinner.Finish()
	}
}
