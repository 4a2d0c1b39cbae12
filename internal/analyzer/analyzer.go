// Package analyzer runs the single-pass scan over a log: it classifies each
// line, tallies levels, applies the level and keyword filters, and hands
// surviving lines to a sink.
package analyzer

import (
	"sort"
	"strings"

	"github.com/five82/logsift/internal/severity"
)

// LineSource yields lines until exhausted. Err reports why Next stopped, or
// nil at a clean end of input.
type LineSource interface {
	Next() (string, bool)
	Err() error
}

// Sink receives lines that survive the active filters. ok is false when the
// line has no recognizable level.
type Sink interface {
	Line(text string, level severity.Level, ok bool) error
}

// Options select which lines are echoed. The zero value disables both filters.
type Options struct {
	Level  *severity.Level
	Search string
}

// FiltersActive reports whether any filter is configured.
func (o Options) FiltersActive() bool {
	return o.Level != nil || o.Search != ""
}

// Tally counts lines per level.
type Tally map[severity.Level]int

// Total returns the number of classified lines.
func (t Tally) Total() int {
	sum := 0
	for _, n := range t {
		sum += n
	}
	return sum
}

// LevelCount is one row of the summary table.
type LevelCount struct {
	Level severity.Level
	Count int
}

// Summary holds the statistics of one completed run.
type Summary struct {
	TotalLines    int
	MatchedLines  int
	FiltersActive bool
	Tally         Tally
}

// Counts returns the tally sorted by descending count. Equal counts keep
// severity priority order (ERROR, WARN, INFO, DEBUG, TRACE).
func (s Summary) Counts() []LevelCount {
	counts := make([]LevelCount, 0, len(s.Tally))
	for _, level := range severity.Levels() {
		if n, ok := s.Tally[level]; ok {
			counts = append(counts, LevelCount{Level: level, Count: n})
		}
	}
	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})
	return counts
}

// Run scans src to exhaustion. On a read or sink failure it returns the error
// and a zero Summary; partial statistics are not reported.
func Run(src LineSource, opts Options, sink Sink) (Summary, error) {
	summary := Summary{
		FiltersActive: opts.FiltersActive(),
		Tally:         make(Tally),
	}
	search := strings.ToLower(opts.Search)

	for {
		line, more := src.Next()
		if !more {
			break
		}
		summary.TotalLines++

		level, classified := severity.Classify(line)
		if classified {
			summary.Tally[level]++
		}

		if opts.Level != nil && (!classified || level != *opts.Level) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(line), search) {
			continue
		}

		summary.MatchedLines++

		if summary.FiltersActive && sink != nil {
			if err := sink.Line(line, level, classified); err != nil {
				return Summary{}, err
			}
		}
	}
	if err := src.Err(); err != nil {
		return Summary{}, err
	}
	return summary, nil
}
