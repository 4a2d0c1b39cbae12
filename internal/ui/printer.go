package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/five82/logsift/internal/analyzer"
	"github.com/five82/logsift/internal/config"
	"github.com/five82/logsift/internal/severity"
)

const (
	bannerText       = "Starting log analysis..."
	summaryTitle     = "--- Log Analysis Summary ---"
	countsTitle      = "Log Level Counts:"
	noLevelsNotice   = "No recognizable log levels found."
	levelColumnWidth = 8
)

// NewRenderer returns a lipgloss renderer for w honouring the color mode.
// Auto leaves profile detection to lipgloss, so pipes and files get plain text.
func NewRenderer(w io.Writer, mode config.ColorMode) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	switch mode {
	case config.ColorNever:
		r.SetColorProfile(termenv.Ascii)
	case config.ColorAlways:
		r.SetColorProfile(termenv.TrueColor)
	}
	return r
}

// Printer writes the banner, echoed lines and the text summary to a stream.
// It satisfies analyzer.Sink.
type Printer struct {
	w      io.Writer
	styles Styles
}

// NewPrinter returns a Printer drawing with theme on w.
func NewPrinter(w io.Writer, theme Theme, mode config.ColorMode) *Printer {
	return &Printer{w: w, styles: theme.Styles(NewRenderer(w, mode))}
}

// Banner announces the start of a run.
func (p *Printer) Banner() error {
	_, err := fmt.Fprintln(p.w, p.styles.Banner.Render(bannerText))
	return err
}

// Line echoes one matched log line, styled by its level when it has one.
func (p *Printer) Line(text string, level severity.Level, ok bool) error {
	_, err := fmt.Fprintln(p.w, renderLine(p.styles, text, level, ok))
	return err
}

// Summary prints totals and the level table.
func (p *Printer) Summary(s analyzer.Summary) error {
	_, err := io.WriteString(p.w, renderSummary(p.styles, s))
	return err
}

func renderLine(styles Styles, text string, level severity.Level, ok bool) string {
	if !ok {
		return text
	}
	return styles.Level(level).Render(text)
}

func renderSummary(styles Styles, s analyzer.Summary) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(styles.Heading.Render(summaryTitle))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Total lines processed: %d\n", s.TotalLines)
	if s.FiltersActive {
		fmt.Fprintf(&b, "Lines matching filters: %d\n", s.MatchedLines)
	}

	b.WriteString("\n")
	b.WriteString(styles.Bold.Render(countsTitle))
	b.WriteString("\n")

	counts := s.Counts()
	if len(counts) == 0 {
		b.WriteString("  " + noLevelsNotice + "\n")
		return b.String()
	}
	for _, c := range counts {
		name := fmt.Sprintf("%-*s", levelColumnWidth, c.Level.String())
		fmt.Fprintf(&b, "  %s: %d\n", styles.Level(c.Level).Render(name), c.Count)
	}
	return b.String()
}
