package logger

import (
	"fmt"
	"strings"
)

// Level is a message severity. Levels are ordered; a logger emits a message
// when its level is at or above the configured threshold. All and None are
// threshold sentinels, not message levels.
type Level int

const (
	All Level = iota // threshold sentinel: everything passes
	Trace
	Debug
	Info
	Warning
	Error
	Fatal
	None // threshold sentinel: nothing passes
)

var levelNames = map[Level]string{
	All:     "ALL",
	Trace:   "TRACE",
	Debug:   "DEBUG",
	Info:    "INFO",
	Warning: "WARNING",
	Error:   "ERROR",
	Fatal:   "FATAL",
	None:    "NONE",
}

func (l Level) String() string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return fmt.Sprintf("LEVEL(%d)", int(l))
}

// ParseLevel converts a case-insensitive level name ("info", "WARNING", ...)
// back to its Level.
func ParseLevel(s string) (Level, error) {
	want := strings.ToUpper(strings.TrimSpace(s))
	for l, name := range levelNames {
		if name == want {
			return l, nil
		}
	}
	return None, fmt.Errorf("logger: unknown level %q", s)
}
