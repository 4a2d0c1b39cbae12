// Package severity classifies raw log lines into one of five severity levels.
package severity

import (
	"fmt"
	"strings"
)

// Level is a log severity. The set of levels is closed.
type Level int

const (
	Error Level = iota
	Warn
	Info
	Debug
	Trace
)

// tokens are checked in priority order; the first match wins.
var tokens = [...]struct {
	level Level
	token string
}{
	{Error, "ERROR"},
	{Warn, "WARN"},
	{Info, "INFO"},
	{Debug, "DEBUG"},
	{Trace, "TRACE"},
}

// Levels returns every level in classification priority order.
func Levels() []Level {
	levels := make([]Level, len(tokens))
	for i, t := range tokens {
		levels[i] = t.level
	}
	return levels
}

// String returns the upper-case token for the level.
func (l Level) String() string {
	if l < Error || l > Trace {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return tokens[l].token
}

// Classify reports the level a line signals by case-insensitive substring
// search. Lines such as "infotainment" match INFO; no word boundaries apply.
func Classify(line string) (Level, bool) {
	upper := strings.ToUpper(line)
	for _, t := range tokens {
		if strings.Contains(upper, t.token) {
			return t.level, true
		}
	}
	return 0, false
}

// Parse converts a user-supplied level name, in any case, to a Level.
func Parse(name string) (Level, error) {
	trimmed := strings.ToUpper(strings.TrimSpace(name))
	for _, t := range tokens {
		if trimmed == t.token {
			return t.level, nil
		}
	}
	return 0, fmt.Errorf("invalid level %q (valid: %s)", name, strings.Join(Names(), ", "))
}

// Names returns the lower-case level names accepted by Parse.
func Names() []string {
	names := make([]string, len(tokens))
	for i, t := range tokens {
		names[i] = strings.ToLower(t.token)
	}
	return names
}
