// Package logging builds the application logger. The terminal belongs to
// the UI, so output goes to a rotated file.
package logging

import (
	"io"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the logger
type Options struct {
	Level      string
	File       string // empty disables logging
	MaxSizeMB  int
	MaxBackups int
}

// New creates a zap logger writing JSON lines to opts.File. The returned
// closer flushes and releases the file.
func New(opts Options) (*zap.Logger, io.Closer, error) {
	if opts.File == "" {
		return zap.NewNop(), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
		return nil, nil, err
	}

	rotator := &lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    opts.MaxSizeMB, // MB
		MaxBackups: opts.MaxBackups,
	}

	logger := newWithSink(opts.Level, zapcore.AddSync(rotator))
	return logger, closerFunc(func() error {
		_ = logger.Sync()
		return rotator.Close()
	}), nil
}

func newWithSink(level string, sink zapcore.WriteSyncer) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "ts"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), sink, lvl)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

type closerFunc func() error

func (f closerFunc) Close() error { return f() }
