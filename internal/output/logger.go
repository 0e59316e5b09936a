// Package output provides git-nest's console logging and styling.
//
// Normal command output (help text, command listings) goes to stdout;
// diagnostics and debug traces go to stderr so that piped output stays
// clean. An optional rolling log file captures everything at debug level.
package output

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures a Logger.
type Options struct {
	// Debug enables debug-level console lines.
	Debug bool

	// LogFile, when set, adds a rolling file sink that records every
	// level with timestamps.
	LogFile        string
	LogMaxSizeMB   int
	LogMaxBackups  int
	LogMaxAgeDays  int

	// Stdout and Stderr default to the process's own streams.
	Stdout io.Writer
	Stderr io.Writer
}

// consoleHandler is a slog handler that writes bare messages: no
// timestamps, no level prefixes. Info goes to stdout, everything else to
// stderr, and debug lines are dimmed and gated on debug mode.
type consoleHandler struct {
	stdout    io.Writer
	stderr    io.Writer
	debugMode bool
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	if level == slog.LevelDebug {
		return h.debugMode
	}
	return true
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	w := h.stderr
	msg := record.Message

	switch record.Level {
	case slog.LevelInfo:
		w = h.stdout
	case slog.LevelDebug:
		msg = Dim(msg)
	}

	_, err := fmt.Fprintln(w, msg)
	return err
}

func (h *consoleHandler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *consoleHandler) WithGroup(_ string) slog.Handler {
	return h
}

// multiHandler fans out log records to multiple handlers
type multiHandler struct {
	handlers []slog.Handler
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, record slog.Record) error {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, record.Level) {
			if err := handler.Handle(ctx, record); err != nil {
				return err
			}
		}
	}
	return nil
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithAttrs(attrs)
	}
	return &multiHandler{handlers: handlers}
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	handlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		handlers[i] = handler.WithGroup(name)
	}
	return &multiHandler{handlers: handlers}
}

// Logger is the debug/die logging convention for git-nest commands.
type Logger struct {
	logger    *slog.Logger
	stdout    io.Writer
	logWriter io.WriteCloser
}

// New creates a console-only Logger.
func New(debug bool) *Logger {
	logger, _ := NewWithOptions(Options{Debug: debug})
	return logger
}

// NewWithOptions creates a Logger, attaching the rolling file sink when
// Options.LogFile is set.
func NewWithOptions(opts Options) (*Logger, error) {
	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	logger := &Logger{stdout: stdout}

	handlers := []slog.Handler{&consoleHandler{
		stdout:    stdout,
		stderr:    stderr,
		debugMode: opts.Debug,
	}}

	if opts.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(opts.LogFile), 0750); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}

		fileSink := newRollingSink(opts)
		logger.logWriter = fileSink

		// The file always records debug level, with timestamps.
		handlers = append(handlers, slog.NewTextHandler(fileSink, &slog.HandlerOptions{
			Level: slog.LevelDebug,
			ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
				if a.Key == slog.TimeKey {
					return slog.Attr{Key: a.Key, Value: slog.StringValue(a.Value.Time().Format("2006-01-02 15:04:05.000"))}
				}
				return a
			},
		}))
	}

	logger.logger = slog.New(&multiHandler{handlers: handlers})
	return logger, nil
}

// newRollingSink creates the lumberjack writer for the file sink.
// Rotation defaults come from config.FromEnv; zero values fall back to
// lumberjack's own defaults.
func newRollingSink(opts Options) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   opts.LogFile,
		MaxSize:    opts.LogMaxSizeMB,
		MaxBackups: opts.LogMaxBackups,
		MaxAge:     opts.LogMaxAgeDays,
		Compress:   false,
	}
}

func (l *Logger) logMessage(level slog.Level, format string, args []interface{}) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	l.logger.Log(context.Background(), level, msg)
}

// Info writes a line of normal command output to stdout.
func (l *Logger) Info(format string, args ...interface{}) {
	l.logMessage(slog.LevelInfo, format, args)
}

// Warn writes a warning line to stderr.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.logMessage(slog.LevelWarn, format, args)
}

// Error writes an error line to stderr.
func (l *Logger) Error(format string, args ...interface{}) {
	l.logMessage(slog.LevelError, format, args)
}

// Debug writes a dimmed trace line to stderr when debug mode is on. The
// file sink records it regardless.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.logMessage(slog.LevelDebug, format, args)
}

// Page writes preformatted output straight to stdout.
func (l *Logger) Page(content string) {
	_, _ = fmt.Fprint(l.stdout, content)
}

// Newline writes a blank line to stdout.
func (l *Logger) Newline() {
	_, _ = fmt.Fprintln(l.stdout)
}

// Close closes the log file if one was opened
func (l *Logger) Close() error {
	if l.logWriter != nil {
		return l.logWriter.Close()
	}
	return nil
}
