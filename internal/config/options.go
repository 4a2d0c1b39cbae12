package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/five82/logsift/internal/analyzer"
	"github.com/five82/logsift/internal/severity"
)

// Options is the analysis configuration taken from the command line. It is
// built once at startup and not modified afterwards.
type Options struct {
	FilePath string
	Level    *severity.Level
	Search   string
}

// NewOptions validates the raw --file, --level and --search values. Empty
// level and search values leave the corresponding filter off.
func NewOptions(file, level, search string) (Options, error) {
	if strings.TrimSpace(file) == "" {
		return Options{}, errors.New("--file is required")
	}
	path, err := ExpandPath(file)
	if err != nil {
		return Options{}, fmt.Errorf("resolve --file: %w", err)
	}

	opts := Options{FilePath: path, Search: search}
	if strings.TrimSpace(level) != "" {
		l, err := severity.Parse(level)
		if err != nil {
			return Options{}, fmt.Errorf("--level: %w", err)
		}
		opts.Level = &l
	}
	return opts, nil
}

// Filters returns the filter settings for the analysis loop.
func (o Options) Filters() analyzer.Options {
	return analyzer.Options{Level: o.Level, Search: o.Search}
}
