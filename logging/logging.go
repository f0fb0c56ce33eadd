// SPDX-License-Identifier: MIT
// Package logging builds the zap loggers used by the meshsim CLI. Library
// packages never construct loggers themselves; they accept one through
// their options and fall back to zap.NewNop().
package logging

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Output formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// ErrUnknownFormat is returned for a Format other than console or json.
var ErrUnknownFormat = errors.New("logging: unknown format")

// Config describes the console sink and the optional rotating file sink.
// The file sink always writes JSON.
type Config struct {
	Level       string `mapstructure:"level" yaml:"level" validate:"omitempty,oneof=debug info warn error dpanic panic fatal"`
	Format      string `mapstructure:"format" yaml:"format" validate:"omitempty,oneof=console json"`
	AddCaller   bool   `mapstructure:"add_caller" yaml:"add_caller"`
	ServiceName string `mapstructure:"service_name" yaml:"service_name"`
	File        string `mapstructure:"file" yaml:"file"`
	MaxSizeMB   int    `mapstructure:"max_size_mb" yaml:"max_size_mb" validate:"gte=0"`
	MaxBackups  int    `mapstructure:"max_backups" yaml:"max_backups" validate:"gte=0"`
	MaxAgeDays  int    `mapstructure:"max_age_days" yaml:"max_age_days" validate:"gte=0"`
	Compress    bool   `mapstructure:"compress" yaml:"compress"`
}

// DefaultConfig logs info and above to the console as "meshsim".
func DefaultConfig() Config {
	return Config{
		Level:       "info",
		Format:      FormatConsole,
		ServiceName: "meshsim",
		MaxSizeMB:   100,
		MaxBackups:  3,
		MaxAgeDays:  28,
	}
}

// New builds a logger writing to stderr plus the file sink, if configured.
func New(cfg Config) (*zap.Logger, error) {
	return NewWithWriter(cfg, zapcore.Lock(os.Stderr))
}

// NewWithWriter is New with an explicit console writer.
func NewWithWriter(cfg Config, console zapcore.WriteSyncer) (*zap.Logger, error) {
	level := zap.NewAtomicLevel()
	if cfg.Level != "" {
		if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
			return nil, fmt.Errorf("logging: level %q: %w", cfg.Level, err)
		}
	}
	enc, err := encoder(cfg.Format)
	if err != nil {
		return nil, err
	}

	cores := []zapcore.Core{zapcore.NewCore(enc, console, level)}
	if cfg.File != "" {
		fileEnc, _ := encoder(FormatJSON)
		sink := zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays,
			Compress:   cfg.Compress,
		})
		cores = append(cores, zapcore.NewCore(fileEnc, sink, level))
	}

	opts := []zap.Option{zap.AddStacktrace(zap.ErrorLevel)}
	if cfg.AddCaller {
		opts = append(opts, zap.AddCaller())
	}
	logger := zap.New(zapcore.NewTee(cores...), opts...)
	if cfg.ServiceName != "" {
		logger = logger.Named(cfg.ServiceName)
	}
	return logger, nil
}

func encoder(format string) (zapcore.Encoder, error) {
	ec := zap.NewProductionEncoderConfig()
	ec.EncodeTime = zapcore.ISO8601TimeEncoder
	ec.EncodeLevel = zapcore.CapitalLevelEncoder

	switch format {
	case FormatConsole, "":
		return zapcore.NewConsoleEncoder(ec), nil
	case FormatJSON:
		return zapcore.NewJSONEncoder(ec), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
