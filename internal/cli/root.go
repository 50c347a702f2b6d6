package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/chromix/internal/buildinfo"
	"github.com/aalvaropc/chromix/internal/infra/fsworkspace"
	"github.com/aalvaropc/chromix/internal/infra/logger"
	"github.com/aalvaropc/chromix/internal/infra/workspacefinder"
	"github.com/aalvaropc/chromix/internal/ui/tui"
)

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logs := &logSession{}
	err := buildRootCmd(logs).ExecuteContext(ctx)
	_ = logs.Close()
	if err != nil {
		stop()
		os.Exit(1)
	}
}

// logSession holds the log file opened by the root command's pre-run hook.
// cobra skips post-run hooks after a failed RunE, so the caller closes it.
type logSession struct {
	cleanup func() error
}

func (l *logSession) open(debug, fallbackToWD bool) {
	_ = l.Close()
	l.cleanup = setupLogging(debug, fallbackToWD)
}

func (l *logSession) Close() error {
	if l.cleanup == nil {
		return nil
	}
	err := l.cleanup()
	l.cleanup = nil
	return err
}

func newRootCmd() *cobra.Command {
	return buildRootCmd(&logSession{})
}

func buildRootCmd(logs *logSession) *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "chromix",
		Short:        "chromix: convert, mix and check colors from the terminal",
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(c *cobra.Command, _ []string) error {
			// The bare command opens the TUI, which always logs; subcommands
			// only log inside a workspace.
			logs.open(debug, c.Parent() == nil)
			if debug && logger.Path() != "" && c.Parent() != nil {
				fmt.Fprintf(c.ErrOrStderr(), "debug log: %s\n", logger.Path())
			}
			logger.L().Debug("command.start", "command", c.CommandPath())
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			deps := tui.Deps{
				WorkspaceLocator:     workspacefinder.NewFinder(),
				WorkspaceInitializer: fsworkspace.NewInitializer(),
				Logger:               logger.L(),
				Debug:                debug,
			}

			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .chromix/logs/chromix.log")

	cmd.AddCommand(
		convertCmd(),
		nameCmd(),
		contrastCmd(),
		mixCmd(),
		shadesCmd(),
		palettesCmd(),
		importCmd(),
		exportsCmd(),
		initCmd(),
		versionCmd(),
	)
	return cmd
}

// setupLogging points the process logger at the enclosing workspace. With
// fallbackToWD it logs under the working directory when no workspace exists.
func setupLogging(debug bool, fallbackToWD bool) func() error {
	wd, err := os.Getwd()
	if err != nil {
		wd = "."
	}
	wd, _ = filepath.Abs(wd)

	logRoot := ""
	if root, ferr := workspacefinder.NewFinder().FindRoot(wd); ferr == nil && root != "" {
		logRoot = root
	} else if fallbackToWD {
		logRoot = wd
	}
	if logRoot == "" {
		return nil
	}

	cleanup, err := logger.Setup(logger.Config{
		Root:  logRoot,
		Debug: debug,
	})
	if err != nil {
		return nil
	}
	return cleanup
}
