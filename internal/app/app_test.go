package app

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/valyala/fastjson"

	"github.com/five82/logsift/internal/logfile"
)

const scenarioInput = "2024 ERROR disk full\n2024 INFO ok\n2024 error retry\n"

func setup(t *testing.T, content string) string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "app.log")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func run(t *testing.T, opts Options) (string, error) {
	t.Helper()
	var out bytes.Buffer
	opts.Stdout = &out
	if opts.Color == "" {
		opts.Color = "never"
	}
	err := Run(t.Context(), opts)
	return out.String(), err
}

func TestRun_ScenarioA_NoFilters(t *testing.T) {
	path := setup(t, scenarioInput)

	out, err := run(t, Options{File: path})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	want := "Starting log analysis...\n" +
		"\n--- Log Analysis Summary ---\n" +
		"Total lines processed: 3\n" +
		"\nLog Level Counts:\n" +
		"  ERROR   : 2\n" +
		"  INFO    : 1\n"
	if out != want {
		t.Fatalf("output = %q, want %q", out, want)
	}
}

func TestRun_ScenarioB_LevelFilter(t *testing.T) {
	path := setup(t, scenarioInput)

	out, err := run(t, Options{File: path, Level: "Info"})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !strings.Contains(out, "Starting log analysis...\n2024 INFO ok\n\n--- Log Analysis Summary ---") {
		t.Fatalf("output = %q, want only the INFO line echoed", out)
	}
	if strings.Contains(out, "disk full") || strings.Contains(out, "retry") {
		t.Fatalf("output = %q, echoed a non-INFO line", out)
	}
	if !strings.Contains(out, "Lines matching filters: 1\n") {
		t.Fatalf("output = %q, want matched count 1", out)
	}
	if !strings.Contains(out, "  ERROR   : 2\n  INFO    : 1\n") {
		t.Fatalf("output = %q, want full tally", out)
	}
}

func TestRun_ScenarioC_SearchFilter(t *testing.T) {
	path := setup(t, scenarioInput)

	out, err := run(t, Options{File: path, Search: "retry"})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !strings.Contains(out, "Starting log analysis...\n2024 error retry\n\n") {
		t.Fatalf("output = %q, want only the retry line echoed", out)
	}
	if !strings.Contains(out, "Lines matching filters: 1\n") {
		t.Fatalf("output = %q, want matched count 1", out)
	}
}

func TestRun_ScenarioD_NoLevels(t *testing.T) {
	path := setup(t, "hello world\n")

	out, err := run(t, Options{File: path})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !strings.Contains(out, "Total lines processed: 1\n") {
		t.Fatalf("output = %q, want total 1", out)
	}
	if !strings.HasSuffix(out, "  No recognizable log levels found.\n") {
		t.Fatalf("output = %q, want empty-table notice", out)
	}
}

func TestRun_ScenarioE_MissingFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := filepath.Join(t.TempDir(), "missing.log")

	out, err := run(t, Options{File: path})
	var openErr *logfile.OpenError
	if !errors.As(err, &openErr) {
		t.Fatalf("Run error = %v, want *logfile.OpenError", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("Run error = %q, want it to name %q", err.Error(), path)
	}
	if out != "" {
		t.Fatalf("output = %q, want nothing", out)
	}
}

func TestRun_ReadErrorPrintsNoSummary(t *testing.T) {
	path := setup(t, "2024 ERROR a\nbad \xff line\n")

	out, err := run(t, Options{File: path})
	var readErr *logfile.ReadError
	if !errors.As(err, &readErr) {
		t.Fatalf("Run error = %v, want *logfile.ReadError", err)
	}
	if strings.Contains(out, "Summary") {
		t.Fatalf("output = %q, want no summary after read failure", out)
	}
}

func TestRun_JSONFormat(t *testing.T) {
	path := setup(t, scenarioInput)

	out, err := run(t, Options{File: path, Format: "json"})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	v, err := fastjson.Parse(out)
	if err != nil {
		t.Fatalf("output %q is not JSON: %v", out, err)
	}
	if v.GetInt("total_lines") != 3 {
		t.Fatalf("total_lines = %d, want 3", v.GetInt("total_lines"))
	}
}

func TestRun_ConfigFileSetsFormat(t *testing.T) {
	path := setup(t, scenarioInput)
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(cfgPath, []byte("format = \"json\"\ncolor = \"never\"\n"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	out, err := run(t, Options{File: path, ConfigPath: cfgPath})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !strings.HasPrefix(out, "{") {
		t.Fatalf("output = %q, want JSON from config format", out)
	}

	out, err = run(t, Options{File: path, ConfigPath: cfgPath, Format: "text"})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !strings.HasPrefix(out, "Starting log analysis...") {
		t.Fatalf("output = %q, want --format to override config", out)
	}
}

func TestRun_InvalidFlags(t *testing.T) {
	path := setup(t, scenarioInput)

	tests := []struct {
		name string
		opts Options
		want string
	}{
		{"missing file", Options{}, "--file"},
		{"bad level", Options{File: path, Level: "fatal"}, "--level"},
		{"bad color", Options{File: path, Color: "rainbow"}, "--color"},
		{"bad format", Options{File: path, Format: "xml"}, "--format"},
		{"bad theme", Options{File: path, Theme: "Dracula"}, "--theme"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.opts)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Run error = %v, want it to mention %s", err, tt.want)
			}
		})
	}
}

func TestResolveTheme(t *testing.T) {
	prefsPath := filepath.Join(t.TempDir(), "prefs.toml")
	if err := os.WriteFile(prefsPath, []byte("theme = \"Slate\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if got := resolveTheme("Kanagawa", "Slate", prefsPath); got != "Kanagawa" {
		t.Fatalf("flag theme = %q, want Kanagawa", got)
	}
	if got := resolveTheme("", "Kanagawa", prefsPath); got != "Kanagawa" {
		t.Fatalf("config theme = %q, want Kanagawa", got)
	}
	if got := resolveTheme("", "Bogus", prefsPath); got != "Slate" {
		t.Fatalf("prefs theme = %q, want Slate", got)
	}
	if got := resolveTheme("", "", filepath.Join(t.TempDir(), "none.toml")); got != "Nightfox" {
		t.Fatalf("default theme = %q, want Nightfox", got)
	}
}
