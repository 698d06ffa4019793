package logger

import "log/slog"

// Level is the minimum severity a logger emits.
type Level int

const (
	InfoLevel Level = iota
	DebugLevel
	WarnLevel
	ErrorLevel
	DefaultLevel Level = InfoLevel
)

var levels = map[Level]slog.Level{
	DebugLevel: slog.LevelDebug,
	InfoLevel:  slog.LevelInfo,
	WarnLevel:  slog.LevelWarn,
	ErrorLevel: slog.LevelError,
}

// Type selects how records are formatted.
type Type int

const (
	// key=value lines, slog.TextHandler
	TypeText Type = iota
	// one JSON object per line, slog.JSONHandler
	TypeJSON
)
