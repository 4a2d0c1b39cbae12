package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/five82/logsift/internal/analyzer"
	"github.com/five82/logsift/internal/config"
	"github.com/five82/logsift/internal/logfile"
	"github.com/five82/logsift/internal/prefs"
	"github.com/five82/logsift/internal/report"
	"github.com/five82/logsift/internal/ui"
)

// Options configure one logsift run. String fields hold raw flag values;
// empty means "not given".
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses ~/.config/logsift/prefs.toml

	File   string
	Level  string
	Search string

	Theme  string
	Color  string
	Format string
	Pager  bool

	Stdout io.Writer    // nil uses os.Stdout
	Logger *slog.Logger // nil discards debug logs
}

// Run analyzes the configured log file and prints the summary. Errors opening
// or reading the file are returned unprinted; no summary is written then.
func Run(ctx context.Context, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := applyOverrides(&cfg, opts); err != nil {
		return err
	}
	runOpts, err := config.NewOptions(opts.File, opts.Level, opts.Search)
	if err != nil {
		return err
	}

	themeName := resolveTheme(opts.Theme, cfg.Theme, opts.PrefsPath)
	logger.Debug("settings resolved",
		"theme", themeName,
		"color", cfg.Color,
		"format", cfg.Format,
		"pager", opts.Pager,
		"filters", runOpts.Filters().FiltersActive(),
	)

	src, err := logfile.Open(runOpts.FilePath, logfile.Options{MaxLineBytes: cfg.MaxLineBytes})
	if err != nil {
		return err
	}
	defer src.Close()
	logger.Debug("log opened", "path", src.Path(), "compression", src.Compression())

	theme := ui.GetTheme(themeName)

	if opts.Pager {
		lines := &ui.Collector{}
		summary, err := analyzer.Run(src, runOpts.Filters(), lines)
		if err != nil {
			return err
		}
		logScan(logger, summary)
		return ui.RunPager(ui.PagerOptions{
			Context:   ctx,
			Title:     runOpts.FilePath,
			Lines:     lines,
			Summary:   summary,
			ThemeName: theme.Name,
			PrefsPath: opts.PrefsPath,
		})
	}

	printer := ui.NewPrinter(stdout, theme, cfg.Color)
	if cfg.Format == config.FormatText {
		if err := printer.Banner(); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}

	summary, err := analyzer.Run(src, runOpts.Filters(), printer)
	if err != nil {
		return err
	}
	logScan(logger, summary)

	if cfg.Format == config.FormatJSON {
		return report.WriteJSON(stdout, runOpts.FilePath, summary)
	}
	if err := printer.Summary(summary); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func applyOverrides(cfg *config.Config, opts Options) error {
	var err error
	if strings.TrimSpace(opts.Color) != "" {
		if cfg.Color, err = config.ParseColorMode(opts.Color); err != nil {
			return fmt.Errorf("--color: %w", err)
		}
	}
	if strings.TrimSpace(opts.Format) != "" {
		if cfg.Format, err = config.ParseFormat(opts.Format); err != nil {
			return fmt.Errorf("--format: %w", err)
		}
	}
	if name := strings.TrimSpace(opts.Theme); name != "" && !ui.HasTheme(name) {
		return fmt.Errorf("--theme: unknown theme %q (available: %s)", name, strings.Join(ui.ThemeNames(), ", "))
	}
	return nil
}

// resolveTheme picks the first known theme from the flag, the config file and
// saved preferences.
func resolveTheme(flagTheme, configTheme, prefsPath string) string {
	candidates := []string{strings.TrimSpace(flagTheme), configTheme, prefs.Load(prefsPath).Theme}
	for _, name := range candidates {
		if ui.HasTheme(name) {
			return name
		}
	}
	return ui.DefaultThemeName
}

func logScan(logger *slog.Logger, s analyzer.Summary) {
	logger.Debug("scan complete",
		"total_lines", s.TotalLines,
		"matched_lines", s.MatchedLines,
		"classified_lines", s.Tally.Total(),
	)
}
