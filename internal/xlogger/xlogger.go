// Package xlogger builds the slog loggers of the command line tools. Logs
// go to stderr, keeping stdout clean for shares and secrets.
package xlogger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

type Config struct {
	Level      string
	LogType    string
	AddSource  bool
	SourcePath string
}

func New(conf Config) *slog.Logger {
	return NewWithWriter(os.Stderr, conf)
}

func NewWithWriter(w io.Writer, conf Config) *slog.Logger {
	opts := &slog.HandlerOptions{
		AddSource:   conf.AddSource,
		Level:       parseLevel(conf.Level),
		ReplaceAttr: trimSourcePath(conf.SourcePath),
	}

	return slog.New(newHandler(w, conf.LogType, opts))
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newHandler(w io.Writer, logType string, opts *slog.HandlerOptions) slog.Handler {
	switch strings.ToLower(logType) {
	case "json":
		return slog.NewJSONHandler(w, opts)

	default:
		return slog.NewTextHandler(w, opts)
	}
}

// trimSourcePath shortens source attributes to the path after prefix, so
// log lines do not carry the build host's directory layout.
func trimSourcePath(prefix string) func(groups []string, attr slog.Attr) slog.Attr {
	return func(_ []string, attr slog.Attr) slog.Attr {
		if attr.Key != slog.SourceKey {
			return attr
		}

		source, ok := attr.Value.Any().(*slog.Source)
		if !ok || source == nil {
			return attr
		}

		file := source.File
		if prefix != "" {
			if index := strings.Index(file, prefix); index >= 0 {
				file = file[index+len(prefix):]
			}
		}

		return slog.String(slog.SourceKey, fmt.Sprintf("%s:%d", file, source.Line))
	}
}
