// Package app wires configuration, the log reader, the analysis loop and the
// output together for one logsift run.
//
// # Overview
//
// Run is the composition root. It walks through three phases in order and
// never returns to an earlier one:
//
//  1. Initializing: load config.toml, apply flag overrides, validate the
//     --file/--level/--search options, pick the theme, open the log file
//  2. Scanning: analyzer.Run reads every line, tallies levels and echoes
//     lines that survive the active filters
//  3. Summarizing: print the text or JSON summary, or open the pager
//
// A failure while opening the file ends the run before scanning starts. A
// failure while reading a line ends the scan; the partial statistics are
// dropped and no summary is printed.
//
// # Data Flow
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()       Read config.toml
//	       ├─────> config.NewOptions() Validate flags
//	       ├─────> logfile.Open()      Open (and decompress) the log
//	       ├─────> analyzer.Run()      Single pass over the lines
//	       └─────> ui.Printer / report.WriteJSON / ui.RunPager
//
// # Theme Resolution
//
// The first known theme wins: --theme, then theme in config.toml, then the
// theme saved in prefs.toml by the pager, then Nightfox. An unknown --theme is
// an error; unknown names from files are skipped.
//
// # Logging
//
// Options.Logger receives debug records (settings resolved, log opened, scan
// complete). The CLI passes a stderr text handler when --verbose is set.
package app
