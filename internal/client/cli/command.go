package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/gophdiary/internal/buildinfo"
	"github.com/dmitrijs2005/gophdiary/internal/client/config"
	"github.com/dmitrijs2005/gophdiary/internal/logging"
	"github.com/spf13/cobra"
)

// Execute runs the command tree on the process streams and returns the
// exit code.
func Execute() int {
	cmd := NewRootCmd(os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return 1
	}
	return 0
}

// NewRootCmd builds the gophdiary command tree. Without a subcommand it
// starts the interactive session.
func NewRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "gophdiary",
		Short:         "A personal diary in your terminal",
		Long:          "gophdiary keeps private diary entries for registered users in a local SQLite file.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, in, out, errOut, func(ctx context.Context, app *App) error {
				buildinfo.PrintBuildData(out)
				app.Run(ctx)
				return nil
			})
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Create the diary storage and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, in, out, errOut, func(_ context.Context, app *App) error {
				fmt.Fprintf(out, "Diary storage initialized (%s)\n", app.config.DatabaseDriver)
				return nil
			})
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			buildinfo.PrintBuildData(out)
		},
	})

	return root
}

// withApp loads configuration, opens the log sink and the App, runs fn and
// releases everything afterwards.
func withApp(cmd *cobra.Command, in io.Reader, out, errOut io.Writer, fn func(context.Context, *App) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.LoadConfig(cmd.Flags())
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(cfg, errOut)
	if err != nil {
		return err
	}
	defer closeLog()

	app, err := NewApp(ctx, cfg, logger, in, out)
	if err != nil {
		logger.Error(ctx, "startup failed", "error", err)
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Warn(ctx, "failed to close storage", "error", err)
		}
	}()

	return fn(ctx, app)
}

// openLogger writes to cfg.LogFile when set, otherwise to errOut.
func openLogger(cfg *config.Config, errOut io.Writer) (logging.Logger, func(), error) {
	w := errOut
	closeFn := func() {}

	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}

	logger, err := logging.New(cfg.LogLevel, w)
	if err != nil {
		closeFn()
		return nil, nil, err
	}
	return logger, closeFn, nil
}
