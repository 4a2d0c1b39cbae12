// Package config loads logsift settings and validates command-line options.
//
// # Overview
//
// Two kinds of configuration feed a run:
//
//   - Config: display settings read from a TOML file
//   - Options: the file to analyze plus the optional level and keyword filters
//
// # Configuration Discovery
//
// Load follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/logsift/config.toml
//  3. If the file doesn't exist, use defaults
//  4. If the file exists but fields are empty, use defaults for those fields
//
// # TOML Format
//
//	theme = "Nightfox"       # Nightfox, Kanagawa or Slate
//	color = "auto"           # auto, always or never
//	format = "text"          # text or json
//	max_line_bytes = 1048576 # longest line accepted before a read error
//
// All fields are optional. Command-line flags override file values.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors ("parse config")
//   - Unknown color or format values, negative max_line_bytes ("invalid config")
//
// NewOptions rejects a missing --file and unknown --level values. An empty
// --search leaves the keyword filter off.
package config
