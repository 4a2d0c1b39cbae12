// Package ui renders logsift output for the terminal.
//
// # Overview
//
// Everything a user sees on stdout goes through this package:
//
//   - theme.go: color palettes and the level → style lookup
//   - printer.go: Printer, the line sink and text summary for normal runs
//   - pager.go: a Bubble Tea pager over the matched lines and summary
//   - keys.go, help.go: pager key bindings and the help overlay
//
// # Level Styles
//
// Severity levels are a closed set, so their styling is a table keyed by
// severity.Level rather than a method on the level type:
//
//   - ERROR: Danger, bold
//   - WARN: Warning, bold
//   - INFO: Success
//   - DEBUG: Accent
//   - TRACE: Magenta
//
// Lines with no recognizable level are written unchanged. Tabs in log lines
// are preserved (lipgloss.NoTabConversion).
//
// # Color Modes
//
// NewRenderer binds styles to an output stream:
//
//   - auto: lipgloss detects the terminal; pipes and files get plain text
//   - always: true color escapes even when not writing to a terminal
//   - never: plain text
//
// # Pager
//
// The pager is opened with --pager after the scan completes. It buffers
// matched lines in a Collector, then shows them above the summary:
//
//	j/k, g/G, pgup/pgdown, ctrl+u/ctrl+d  scroll
//	/  search (case-insensitive), n/N next/previous match, esc clear
//	T  cycle theme (saved to prefs.toml)
//	?  help, q quit
package ui
