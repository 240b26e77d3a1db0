// Package app turns a command line into a pager session: it validates the
// arguments, loads settings and input, and reports failures the way the
// command line user sees them.
package app

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
	"pkt.systems/pslog"

	"github.com/kk-code-lab/scroll/internal/config"
	fsutil "github.com/kk-code-lab/scroll/internal/fs"
	"github.com/kk-code-lab/scroll/internal/ui/pager"
)

// Seams for tests.
var (
	runPager   = pager.Run
	loadConfig = config.Load
	lookupTerm = func() string { return os.Getenv("TERM") }
)

// Application represents one invocation.
type Application struct {
	stdin  io.Reader
	stdout *os.File
	stderr io.Writer
	cfg    config.Config
	path   string
}

// Main runs the command line args (without the program name) and returns
// the process exit code.
func Main(ctx context.Context, args []string, stdin io.Reader, stdout *os.File, stderr io.Writer) int {
	app := &Application{stdin: stdin, stdout: stdout, stderr: stderr}
	root := newRootCmd(app)
	// cobra falls back to os.Args when given nil.
	root.SetArgs(append([]string{}, args...))
	root.SetErr(stderr)

	if err := root.ExecuteContext(ctx); err != nil {
		printDiagnostic(stderr, err)
		return 1
	}
	return 0
}

func newRootCmd(app *Application) *cobra.Command {
	return &cobra.Command{
		Use:                "scroll [file]",
		Short:              "Page a file on the terminal, one line at a time",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceErrors:      true,
		SilenceUsage:       true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.run(cmd.Context(), args)
		},
	}
}

func (app *Application) run(ctx context.Context, args []string) error {
	path, err := parseArgs(args)
	if err != nil {
		return err
	}
	app.path = path

	cfg, err := loadConfig()
	if err != nil {
		var settingErr *config.SettingError
		if errors.As(err, &settingErr) {
			return &pager.UsageError{Message: "Invalid setting:", Entity: settingErr.Key + "=" + settingErr.Value}
		}
		return err
	}
	app.cfg = cfg

	ctx, closeLog, err := withLogFile(ctx, cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	err = app.page(ctx)
	if err != nil {
		pslog.Ctx(ctx).With("err", err).Debug("scroll failed")
	}
	return err
}

func (app *Application) page(ctx context.Context) error {
	log := pslog.Ctx(ctx)
	buf, err := fsutil.ReadInput(app.path, app.stdin, fsutil.Options{DecodeUTF16: app.cfg.DecodeUTF16})
	if err != nil {
		return inputError(app.path, err)
	}
	log.Debug("input loaded", "path", app.path, "bytes", len(buf))

	return runPager(ctx, buf, pager.Options{
		TTYPath:  app.cfg.TTYPath,
		Interval: app.cfg.Interval,
		Term:     lookupTerm(),
		Output:   app.stdout,
	})
}

// inputError maps a failed load onto the diagnostic the user sees.
func inputError(path string, err error) error {
	switch {
	case errors.Is(err, fsutil.ErrOpen):
		return &pager.IOError{Message: "Cannot open file:", Entity: path, Err: err}
	case errors.Is(err, fsutil.ErrClose):
		return &pager.IOError{Message: "Cannot close file:", Entity: path, Err: err}
	default:
		return &pager.IOError{Message: "Cannot read file.", Entity: path, Err: err}
	}
}
