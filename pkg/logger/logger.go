// Package logger builds the zap logger used by notepad.
package logger

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options selects where and how verbosely to log.
type Options struct {
	// Path is the log file. Empty disables logging, since the terminal UI
	// owns stdout.
	Path  string
	Debug bool
}

// New returns a logger and a func that flushes and closes its sink.
func New(o Options) (*zap.Logger, func(), error) {
	if o.Path == "" {
		return zap.NewNop(), func() {}, nil
	}
	f, err := os.OpenFile(o.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	log := NewWithWriter(f, o.Debug)
	return log, func() {
		_ = log.Sync()
		_ = f.Close()
	}, nil
}

// NewWithWriter writes JSON lines to w.
func NewWithWriter(w io.Writer, debug bool) *zap.Logger {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	level := zapcore.InfoLevel
	if debug {
		level = zapcore.DebugLevel
	}
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), zapcore.AddSync(w), level)
	return zap.New(core, zap.AddCaller())
}
