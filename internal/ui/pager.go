package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/logsift/internal/analyzer"
	"github.com/five82/logsift/internal/prefs"
	"github.com/five82/logsift/internal/severity"
)

type entry struct {
	text  string
	level severity.Level
	ok    bool
}

// Collector buffers matched lines for the pager. It satisfies analyzer.Sink.
type Collector struct {
	entries []entry
}

// Line records one matched line.
func (c *Collector) Line(text string, level severity.Level, ok bool) error {
	c.entries = append(c.entries, entry{text: text, level: level, ok: ok})
	return nil
}

// Len returns the number of buffered lines.
func (c *Collector) Len() int {
	return len(c.entries)
}

// PagerOptions configures the pager.
type PagerOptions struct {
	Context   context.Context
	Title     string
	Lines     *Collector
	Summary   analyzer.Summary
	ThemeName string
	PrefsPath string // empty uses prefs.DefaultPath
}

// Model is the Bubble Tea model for the pager.
type Model struct {
	title     string
	entries   []entry
	summary   analyzer.Summary
	prefsPath string

	theme  Theme
	styles Styles
	keys   keyMap

	width  int
	height int
	ready  bool

	viewport viewport.Model
	showHelp bool

	searchInput  textinput.Model
	searchActive bool
	searchQuery  string
	matches      []int // indexes into entries
	matchIdx     int
}

// NewPager creates the pager model.
func NewPager(opts PagerOptions) Model {
	var entries []entry
	if opts.Lines != nil {
		entries = opts.Lines.entries
	}

	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "Search lines..."
	ti.CharLimit = 100

	theme := GetTheme(opts.ThemeName)
	return Model{
		title:       opts.Title,
		entries:     entries,
		summary:     opts.Summary,
		prefsPath:   opts.PrefsPath,
		theme:       theme,
		styles:      theme.Styles(nil),
		keys:        DefaultKeyMap(),
		searchInput: ti,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, max(msg.Height-1, 1))
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = max(msg.Height-1, 1)
		}
		m.refreshContent()
		return m, nil
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	return m.viewport.View() + "\n" + m.renderFooter()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}
	if m.searchActive {
		return m.handleSearchInput(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.styles = m.theme.Styles(nil)
		_ = prefs.Save(m.prefsPath, prefs.Prefs{Theme: m.theme.Name})
		m.refreshContent()

	case key.Matches(msg, m.keys.Escape):
		if m.searchQuery != "" {
			m.clearSearch()
			m.refreshContent()
		}

	case key.Matches(msg, m.keys.Search):
		m.searchActive = true
		m.searchInput.SetValue("")
		cmd := m.searchInput.Focus()
		return m, cmd

	case key.Matches(msg, m.keys.NextMatch):
		m.stepMatch(1)

	case key.Matches(msg, m.keys.PrevMatch):
		m.stepMatch(-1)

	case key.Matches(msg, m.keys.Up):
		m.viewport.ScrollUp(1)
	case key.Matches(msg, m.keys.Down):
		m.viewport.ScrollDown(1)
	case key.Matches(msg, m.keys.Top):
		m.viewport.GotoTop()
	case key.Matches(msg, m.keys.Bottom):
		m.viewport.GotoBottom()
	case key.Matches(msg, m.keys.PageUp):
		m.viewport.PageUp()
	case key.Matches(msg, m.keys.PageDown):
		m.viewport.PageDown()
	case key.Matches(msg, m.keys.HalfPageUp):
		m.viewport.HalfPageUp()
	case key.Matches(msg, m.keys.HalfPageDown):
		m.viewport.HalfPageDown()
	}
	return m, nil
}

func (m Model) handleSearchInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Confirm):
		query := strings.TrimSpace(m.searchInput.Value())
		m.searchActive = false
		m.searchInput.Blur()
		m.clearSearch()
		if query != "" {
			m.searchQuery = query
			m.findMatches()
		}
		m.refreshContent()
		if len(m.matches) > 0 {
			m.viewport.SetYOffset(m.matches[0])
		}
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.searchActive = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	return m, cmd
}

// findMatches uses the same case-insensitive containment as --search.
func (m *Model) findMatches() {
	needle := strings.ToLower(m.searchQuery)
	for i, e := range m.entries {
		if strings.Contains(strings.ToLower(e.text), needle) {
			m.matches = append(m.matches, i)
		}
	}
}

func (m *Model) stepMatch(delta int) {
	if len(m.matches) == 0 {
		return
	}
	m.matchIdx = (m.matchIdx + delta + len(m.matches)) % len(m.matches)
	m.refreshContent()
	m.viewport.SetYOffset(m.matches[m.matchIdx])
}

func (m *Model) clearSearch() {
	m.searchQuery = ""
	m.matches = nil
	m.matchIdx = 0
}

func (m *Model) refreshContent() {
	if !m.ready {
		return
	}
	offset := m.viewport.YOffset
	m.viewport.SetContent(m.renderContent())
	m.viewport.SetYOffset(offset)
}

func (m Model) renderContent() string {
	current := -1
	if len(m.matches) > 0 {
		current = m.matches[m.matchIdx]
	}

	var b strings.Builder
	for i, e := range m.entries {
		if i == current {
			b.WriteString(m.styles.Match.Render(e.text))
		} else {
			b.WriteString(renderLine(m.styles, e.text, e.level, e.ok))
		}
		b.WriteString("\n")
	}
	b.WriteString(renderSummary(m.styles, m.summary))
	return b.String()
}

func (m Model) renderFooter() string {
	if m.searchActive {
		return m.searchInput.View()
	}

	parts := []string{m.title, fmt.Sprintf("%d lines", len(m.entries))}
	if m.searchQuery != "" {
		if len(m.matches) == 0 {
			parts = append(parts, fmt.Sprintf("no match for %q", m.searchQuery))
		} else {
			parts = append(parts, fmt.Sprintf("match %d/%d", m.matchIdx+1, len(m.matches)))
		}
	}
	parts = append(parts, fmt.Sprintf("%3.f%%", m.viewport.ScrollPercent()*100))

	hints := make([]string, 0, len(m.keys.ShortHelp()))
	for _, b := range m.keys.ShortHelp() {
		h := b.Help()
		hints = append(hints, h.Key+" "+strings.ToLower(h.Desc))
	}
	parts = append(parts, strings.Join(hints, "  "))

	return m.styles.Footer.Width(m.width).Render(strings.Join(parts, " · "))
}

// RunPager shows the matched lines and summary until the user quits.
func RunPager(opts PagerOptions) error {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	p := tea.NewProgram(NewPager(opts), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	return err
}
