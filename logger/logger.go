package logger

import (
	"io"
	"log/slog"
	"os"
)

// Logger is the leveled, structured logger every package takes in its
// Options. args are slog key/value pairs.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

type Options struct {
	Buffer io.Writer // Destination; nil discards
	Level  Level     // Records below this level are dropped
	Type   Type      // Text or JSON
}

// The editor owns stdout while the terminal is in raw mode, so the default
// logger writes to stderr.
var DefaultLogger = New(Options{os.Stderr, DefaultLevel, TypeText})

// Nop drops every record. It is what a nil Logger in any Options becomes.
var Nop = New(Options{io.Discard, ErrorLevel, TypeText})

type logger struct {
	*slog.Logger
}

// New builds a slog-backed Logger from opts.
func New(opts Options) Logger {
	if opts.Buffer == nil {
		opts.Buffer = io.Discard
	}
	var handler slog.Handler
	switch opts.Type {
	case TypeJSON:
		handler = slog.NewJSONHandler(opts.Buffer, &slog.HandlerOptions{
			Level: levels[opts.Level],
		})
	case TypeText:
		fallthrough
	default:
		handler = slog.NewTextHandler(opts.Buffer, &slog.HandlerOptions{
			Level: levels[opts.Level],
		})
	}
	return &logger{
		Logger: slog.New(handler),
	}
}

// OrNop returns l, or Nop when l is nil.
func OrNop(l Logger) Logger {
	if l == nil {
		return Nop
	}
	return l
}
