// Package logging builds the zap logger used by the waveform CLI.
package logging

import (
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type config struct {
	level zapcore.Level
	json  bool
}

// Option configures New.
type Option func(*config) error

// WithLevel sets the minimum level by name ("debug", "info", "warn",
// "error").
func WithLevel(name string) Option {
	return func(c *config) error {
		lvl, err := zapcore.ParseLevel(name)
		if err != nil {
			return fmt.Errorf("logging: %w", err)
		}
		c.level = lvl
		return nil
	}
}

// WithJSON switches from the console encoder to JSON lines.
func WithJSON(json bool) Option {
	return func(c *config) error {
		c.json = json
		return nil
	}
}

// New returns a logger writing to w. The default is console output at
// warn level, so analysis results on stdout stay unpolluted.
func New(w io.Writer, opts ...Option) (*zap.Logger, error) {
	cfg := config{level: zapcore.WarnLevel}
	for _, opt := range opts {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	enc := encoderConfig()
	var encoder zapcore.Encoder
	if cfg.json {
		encoder = zapcore.NewJSONEncoder(enc)
	} else {
		enc.EncodeLevel = zapcore.CapitalLevelEncoder
		enc.EncodeTime = zapcore.TimeEncoderOfLayout(time.TimeOnly)
		encoder = zapcore.NewConsoleEncoder(enc)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(w), zap.NewAtomicLevelAt(cfg.level))
	return zap.New(core), nil
}

func encoderConfig() zapcore.EncoderConfig {
	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "ts"
	enc.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(t.UTC().Format(time.RFC3339Nano))
	}
	enc.EncodeDuration = zapcore.StringDurationEncoder
	return enc
}
