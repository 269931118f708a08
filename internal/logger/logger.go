// Package logger provides structured logging for artmuseum using zap.
//
// Command output goes to stdout, so log lines default to stderr. Every catalog
// log line can carry the loading source, the operation and the artwork it is
// about:
//
//	{"level":"debug","msg":"duplicate artwork skipped","source":"catalog.yaml",
//	 "op":"load","name":"Egg, DaVinci","year":1930,"cost":1000}
package logger

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/dbsmedya/artmuseum/internal/config"
)

// Field keys shared by every catalog log line.
const (
	KeySource = "source"
	KeyOp     = "op"
	KeyName   = "name"
	KeyYear   = "year"
	KeyCost   = "cost"
)

// Logger wraps zap.SugaredLogger with catalog context methods.
type Logger struct {
	*zap.SugaredLogger
	base *zap.Logger
}

// New creates a Logger from configuration. It fails if a log file output
// cannot be opened.
func New(cfg *config.LoggingConfig) (*Logger, error) {
	ws, err := openOutput(cfg.Output)
	if err != nil {
		return nil, err
	}
	return build(cfg, ws), nil
}

// NewWithWriter creates a Logger that writes to w, ignoring cfg.Output.
func NewWithWriter(cfg *config.LoggingConfig, w io.Writer) *Logger {
	return build(cfg, zapcore.AddSync(w))
}

// NewDefault creates a Logger at info level writing text to stderr.
func NewDefault() *Logger {
	return build(&config.LoggingConfig{Level: "info", Format: "text"}, zapcore.Lock(os.Stderr))
}

// NewNop creates a Logger that discards everything.
func NewNop() *Logger {
	base := zap.NewNop()
	return &Logger{SugaredLogger: base.Sugar(), base: base}
}

func build(cfg *config.LoggingConfig, ws zapcore.WriteSyncer) *Logger {
	core := zapcore.NewCore(encoder(cfg.Format), ws, level(cfg.Level))
	base := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	return &Logger{SugaredLogger: base.Sugar(), base: base}
}

// level maps the configured level name. Validation has already rejected
// unknown names, so anything unparsable falls back to info.
func level(name string) zapcore.Level {
	lvl, err := zapcore.ParseLevel(name)
	if err != nil || name == "" {
		return zapcore.InfoLevel
	}
	return lvl
}

func encoder(format string) zapcore.Encoder {
	ec := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	if format == "json" {
		return zapcore.NewJSONEncoder(ec)
	}
	ec.EncodeLevel = zapcore.CapitalColorLevelEncoder
	return zapcore.NewConsoleEncoder(ec)
}

// openOutput resolves the output setting. A file path logs to the file and
// to stderr.
func openOutput(output string) (zapcore.WriteSyncer, error) {
	switch output {
	case "stderr", "":
		return zapcore.Lock(os.Stderr), nil
	case "stdout":
		return zapcore.Lock(os.Stdout), nil
	}
	file, err := os.OpenFile(output, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", output, err)
	}
	return zapcore.NewMultiWriteSyncer(zapcore.AddSync(file), zapcore.Lock(os.Stderr)), nil
}

func (l *Logger) with(args ...interface{}) *Logger {
	return &Logger{SugaredLogger: l.SugaredLogger.With(args...), base: l.base}
}

// WithSource tags log lines with the catalog source being loaded.
func (l *Logger) WithSource(source string) *Logger {
	return l.with(KeySource, source)
}

// WithOperation tags log lines with the catalog operation.
func (l *Logger) WithOperation(op string) *Logger {
	return l.with(KeyOp, op)
}

// WithRecord tags log lines with the identifying fields of an artwork.
func (l *Logger) WithRecord(name string, year int, cost float64) *Logger {
	return l.with(KeyName, name, KeyYear, year, KeyCost, cost)
}

// WithFields returns a Logger with additional fields.
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	args := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		args = append(args, k, v)
	}
	return l.with(args...)
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	return l.base.Sync()
}
