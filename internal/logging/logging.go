// Package logging adapts charmbracelet/log to the narrow core.Logger
// seam, and is the one place in the repo that decides log level,
// output file, and formatting.
package logging

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Logger wraps a charmbracelet/log.Logger so it satisfies core.Logger
// without core importing charmbracelet/log itself.
type Logger struct {
	l *log.Logger
}

// Options configures the adapter. Level is one of "debug", "info",
// "warn", "error"; an unrecognized value is treated as "info".
type Options struct {
	Level  string
	File   string
	Prefix string
}

// New builds a Logger writing to stderr, or to Options.File when set.
func New(o Options) (*Logger, error) {
	var w io.Writer = os.Stderr
	if o.File != "" {
		f, err := os.OpenFile(o.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, err
		}
		w = f
	}

	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          o.Prefix,
	})
	l.SetLevel(parseLevel(o.Level))

	return &Logger{l: l}, nil
}

func parseLevel(s string) log.Level {
	switch s {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

func (lg *Logger) Infof(format string, args ...any)  { lg.l.Infof(format, args...) }
func (lg *Logger) Warnf(format string, args ...any)  { lg.l.Warnf(format, args...) }
func (lg *Logger) Debugf(format string, args ...any) { lg.l.Debugf(format, args...) }
func (lg *Logger) Errorf(format string, args ...any) { lg.l.Errorf(format, args...) }

// With returns a child logger carrying the given key/value pairs on
// every subsequent line, e.g. With("component", "audio").
func (lg *Logger) With(keyvals ...any) *Logger {
	return &Logger{l: lg.l.With(keyvals...)}
}
