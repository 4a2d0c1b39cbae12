package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/logsift/internal/app"
	"github.com/five82/logsift/internal/severity"
	"github.com/five82/logsift/internal/ui"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "logsift: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		opts    app.Options
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "logsift --file <path> [--level <level>] [--search <text>]",
		Short: "A lightweight, efficient command-line log analyzer",
		Long: `logsift reads a log file line by line, classifies each line by severity,
optionally echoes lines matching a level and/or keyword, and prints a summary
of level counts.`,
		Version:       version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			opts.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
			opts.Stdout = stdout
			return app.Run(cmd.Context(), opts)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVarP(&opts.File, "file", "f", "", "path to the log file to analyze (required)")
	flags.StringVarP(&opts.Level, "level", "l", "", "only echo lines at this level ("+strings.Join(severity.Names(), ", ")+")")
	flags.StringVarP(&opts.Search, "search", "s", "", "only echo lines containing this text (case-insensitive)")
	flags.StringVar(&opts.ConfigPath, "config", "", "settings file (default ~/.config/logsift/config.toml)")
	flags.StringVar(&opts.Theme, "theme", "", "color theme ("+strings.Join(ui.ThemeNames(), ", ")+")")
	flags.StringVar(&opts.Color, "color", "", "when to use colors: auto, always, never")
	flags.StringVar(&opts.Format, "format", "", "summary format: text, json")
	flags.BoolVarP(&opts.Pager, "pager", "p", false, "browse matched lines and the summary interactively")
	flags.BoolVarP(&verbose, "verbose", "v", false, "log debug details to stderr")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
