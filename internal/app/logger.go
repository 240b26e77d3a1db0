package app

import (
	"context"
	"os"

	"pkt.systems/pslog"

	"github.com/kk-code-lab/scroll/internal/ui/pager"
)

// withLogFile returns ctx carrying a debug-level logger that writes to
// logFile. Without a log file ctx keeps the logger it already has; the pager
// owns the terminal, so debug output there would tear the screen.
func withLogFile(ctx context.Context, logFile string) (context.Context, func(), error) {
	if logFile == "" {
		return ctx, func() {}, nil
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return ctx, nil, &pager.IOError{Message: "Cannot open file:", Entity: logFile, Err: err}
	}
	logger := pslog.NewWithOptions(f, pslog.Options{
		Mode:     pslog.ModeStructured,
		NoColor:  true,
		MinLevel: pslog.DebugLevel,
	})
	return pslog.ContextWithLogger(ctx, logger), func() { _ = f.Close() }, nil
}
