// Package logging builds the process zap logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Formats accepted by Options.Format.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Options configures New.
type Options struct {
	Level  string
	Format string
	// FilePath enables an additional rotated log file when set.
	FilePath       string
	MaxSizeMB      int
	RetentionDays  int
	MaxBackupFiles int
	// Output replaces stdout for the console core. Tests use it.
	Output io.Writer
}

// New returns a logger writing to stdout and, optionally, a rotated file.
func New(opts Options) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(strings.TrimSpace(opts.Level))
	if err != nil {
		if strings.TrimSpace(opts.Level) != "" {
			return nil, fmt.Errorf("parse log level %q: %w", opts.Level, err)
		}
		level = zapcore.InfoLevel
	}

	encoder, err := newEncoder(opts.Format)
	if err != nil {
		return nil, err
	}

	var output io.Writer = os.Stdout
	if opts.Output != nil {
		output = opts.Output
	}
	cores := []zapcore.Core{zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(output)), level)}

	if path := strings.TrimSpace(opts.FilePath); path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create log directory: %w", err)
		}
		if opts.MaxSizeMB <= 0 {
			opts.MaxSizeMB = 10
		}
		if opts.RetentionDays <= 0 {
			opts.RetentionDays = 7
		}
		if opts.MaxBackupFiles <= 0 {
			opts.MaxBackupFiles = 20
		}
		roller := &lumberjack.Logger{
			Filename:   path,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackupFiles,
			MaxAge:     opts.RetentionDays,
		}
		cores = append(cores, zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig()), zapcore.AddSync(roller), level))
	}

	return zap.New(zapcore.NewTee(cores...), zap.AddCaller()), nil
}

func newEncoder(format string) (zapcore.Encoder, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatConsole:
		cfg := encoderConfig()
		cfg.ConsoleSeparator = " | "
		return zapcore.NewConsoleEncoder(cfg), nil
	case FormatJSON:
		return zapcore.NewJSONEncoder(encoderConfig()), nil
	default:
		return nil, fmt.Errorf("unsupported log format %q", format)
	}
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}
