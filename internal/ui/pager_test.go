package ui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/logsift/internal/analyzer"
	"github.com/five82/logsift/internal/prefs"
	"github.com/five82/logsift/internal/severity"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestPager(t *testing.T) Model {
	t.Helper()
	lines := &Collector{}
	_ = lines.Line("2024 ERROR disk full", severity.Error, true)
	_ = lines.Line("2024 error retry", severity.Error, true)
	_ = lines.Line("plain retry line", 0, false)

	m := NewPager(PagerOptions{
		Title:     "app.log",
		Lines:     lines,
		Summary:   analyzer.Summary{TotalLines: 5, MatchedLines: 3, FiltersActive: true, Tally: analyzer.Tally{severity.Error: 2}},
		ThemeName: "Nightfox",
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
	})
	return update(t, m, tea.WindowSizeMsg{Width: 80, Height: 20})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model
}

func TestPager_LoadingBeforeSize(t *testing.T) {
	m := NewPager(PagerOptions{})
	if got := m.View(); got != "Loading..." {
		t.Fatalf("View() = %q, want Loading...", got)
	}
}

func TestPager_ViewShowsLinesAndSummary(t *testing.T) {
	m := newTestPager(t)
	view := m.View()
	for _, want := range []string{"2024 ERROR disk full", "Total lines processed: 5", "Lines matching filters: 3", "app.log"} {
		if !strings.Contains(view, want) {
			t.Fatalf("View() missing %q:\n%s", want, view)
		}
	}
}

func TestPager_Quit(t *testing.T) {
	m := newTestPager(t)
	_, cmd := m.Update(runes("q"))
	if cmd == nil {
		t.Fatalf("q returned nil cmd, want tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("q cmd produced %T, want tea.QuitMsg", cmd())
	}
}

func TestPager_Search(t *testing.T) {
	m := newTestPager(t)

	m = update(t, m, runes("/"))
	if !m.searchActive {
		t.Fatalf("searchActive = false after /")
	}
	m = update(t, m, runes("RETRY"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.searchActive {
		t.Fatalf("searchActive = true after enter")
	}
	if len(m.matches) != 2 || m.matches[0] != 1 || m.matches[1] != 2 {
		t.Fatalf("matches = %v, want [1 2]", m.matches)
	}
	if !strings.Contains(m.View(), "match 1/2") {
		t.Fatalf("footer missing match position:\n%s", m.View())
	}

	m = update(t, m, runes("n"))
	if m.matchIdx != 1 {
		t.Fatalf("matchIdx after n = %d, want 1", m.matchIdx)
	}
	m = update(t, m, runes("n"))
	if m.matchIdx != 0 {
		t.Fatalf("matchIdx after wrap = %d, want 0", m.matchIdx)
	}
	m = update(t, m, runes("N"))
	if m.matchIdx != 1 {
		t.Fatalf("matchIdx after N = %d, want 1", m.matchIdx)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEscape})
	if m.searchQuery != "" || m.matches != nil {
		t.Fatalf("search not cleared by esc: query=%q matches=%v", m.searchQuery, m.matches)
	}
}

func TestPager_SearchNoMatch(t *testing.T) {
	m := newTestPager(t)
	m = update(t, m, runes("/"))
	m = update(t, m, runes("zzz"))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if len(m.matches) != 0 {
		t.Fatalf("matches = %v, want none", m.matches)
	}
	if !strings.Contains(m.View(), `no match for "zzz"`) {
		t.Fatalf("footer missing no-match notice:\n%s", m.View())
	}
}

func TestPager_CycleThemeSavesPrefs(t *testing.T) {
	m := newTestPager(t)
	m = update(t, m, runes("T"))

	if m.theme.Name != "Kanagawa" {
		t.Fatalf("theme = %q, want Kanagawa", m.theme.Name)
	}
	if got := prefs.Load(m.prefsPath).Theme; got != "Kanagawa" {
		t.Fatalf("saved theme = %q, want Kanagawa", got)
	}
}

func TestPager_HelpOverlay(t *testing.T) {
	m := newTestPager(t)
	m = update(t, m, runes("?"))
	if !m.showHelp || !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Fatalf("help overlay not shown")
	}
	m = update(t, m, runes("x"))
	if m.showHelp {
		t.Fatalf("any key should close help")
	}
}
