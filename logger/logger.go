// Package logger is a small leveled line logger with a configurable sink,
// severity threshold and independent prefix/color switches. It is a
// collaborator of the array container, not a dependency of it: the core
// packages never log, callers wire a Logger where they want one.
//
// A Logger is an explicit configured value; there is no package-level mutable
// configuration. Create one with New and pass it to whoever needs it.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/fatih/color"
)

const timestampLayout = "2006-01-02 15:04:05"

// Options configures a Logger. The zero value logs everything to os.Stderr
// as bare formatted lines with a trailing newline.
type Options struct {
	Out       io.Writer // sink; nil means os.Stderr
	Level     Level     // minimum severity emitted; All passes everything
	Color     bool      // colorize the level tag with ANSI escapes
	Timestamp bool      // prefix each line with a datetime
	LevelTag  bool      // prefix each line with [LEVEL]
	NoNewline bool      // suppress the automatic trailing newline
}

// Logger writes single formatted lines for messages at or above its
// threshold. Writes are mutex-guarded so interleaved lines stay whole; the
// configuration itself is fixed at construction except through the setters,
// which take the same lock.
type Logger struct {
	mu   sync.Mutex
	out  io.Writer
	min  Level
	opts Options
	tags map[Level]string
}

// New creates a Logger from opts.
func New(opts Options) *Logger {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}
	return &Logger{
		out:  out,
		min:  opts.Level,
		opts: opts,
		tags: levelTags(opts.Color),
	}
}

// Discard drops every message. Useful as a default collaborator.
var Discard = New(Options{Out: io.Discard, Level: None})

// levelTags renders the [LEVEL] prefix per message level, colorized when
// requested. Colors are forced on or off per logger, independent of whether
// the sink is a terminal.
func levelTags(colorize bool) map[Level]string {
	styles := map[Level]*color.Color{
		Trace:   color.New(color.FgHiBlack),
		Debug:   color.New(color.FgCyan),
		Info:    color.New(color.FgGreen),
		Warning: color.New(color.FgYellow),
		Error:   color.New(color.FgRed),
		Fatal:   color.New(color.FgHiRed, color.Bold),
	}
	tags := make(map[Level]string, len(styles))
	for l, c := range styles {
		if colorize {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		tags[l] = c.Sprintf("[%s]", l)
	}
	return tags
}

// Logf writes one formatted line when level passes the threshold. Only the
// message levels Trace through Fatal are emitted; the sentinels are ignored.
// Unlike the classic fatal logger, Fatal only logs - it never terminates the
// host process.
func (l *Logger) Logf(level Level, format string, args ...any) {
	if level < Trace || level > Fatal {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if level < l.min {
		return
	}

	var prefix string
	if l.opts.Timestamp {
		prefix = time.Now().Format(timestampLayout) + " "
	}
	if l.opts.LevelTag {
		prefix += l.tags[level] + " "
	}

	line := prefix + fmt.Sprintf(format, args...)
	if !l.opts.NoNewline {
		line += "\n"
	}
	io.WriteString(l.out, line)
}

func (l *Logger) Tracef(format string, args ...any)   { l.Logf(Trace, format, args...) }
func (l *Logger) Debugf(format string, args ...any)   { l.Logf(Debug, format, args...) }
func (l *Logger) Infof(format string, args ...any)    { l.Logf(Info, format, args...) }
func (l *Logger) Warningf(format string, args ...any) { l.Logf(Warning, format, args...) }
func (l *Logger) Errorf(format string, args ...any)   { l.Logf(Error, format, args...) }
func (l *Logger) Fatalf(format string, args ...any)   { l.Logf(Fatal, format, args...) }

// SetOutput redirects subsequent messages to out.
func (l *Logger) SetOutput(out io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if out == nil {
		out = os.Stderr
	}
	l.out = out
}

// SetLevel changes the minimum severity emitted.
func (l *Logger) SetLevel(min Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.min = min
}

// SetColor toggles colorized level tags.
func (l *Logger) SetColor(on bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.opts.Color = on
	l.tags = levelTags(on)
}

// SetTimestamp toggles the datetime prefix.
func (l *Logger) SetTimestamp(on bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.opts.Timestamp = on
}

// SetLevelTag toggles the [LEVEL] prefix.
func (l *Logger) SetLevelTag(on bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.opts.LevelTag = on
}

// SetNewline toggles the automatic trailing newline.
func (l *Logger) SetNewline(on bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.opts.NoNewline = !on
}
