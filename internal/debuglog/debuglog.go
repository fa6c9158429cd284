// Package debuglog provides an optional file-backed debug logger.
//
// A TUI owns the terminal, so diagnostic output goes to a rotating log
// file instead of stdout. Logging is off unless GLINVIEW_DEBUG=1 is set;
// when off every call is a no-op.
package debuglog

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	envVar         = "GLINVIEW_DEBUG"
	defaultLogPath = "~/.local/share/glinview/glinview.log"
	maxSizeMB      = 5
	maxBackups     = 2
	maxAgeDays     = 14
)

var logger = zap.NewNop().Sugar()

// Init wires the package logger to a rotating file when GLINVIEW_DEBUG=1.
// Failures fall back to the no-op logger so the UI is never disturbed.
func Init() {
	if os.Getenv(envVar) != "1" {
		return
	}

	path, err := expandPath(defaultLogPath)
	if err != nil {
		return
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return
	}

	rotator := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewConsoleEncoder(encoderConfig)

	core := zapcore.NewCore(encoder, zapcore.AddSync(rotator), zapcore.DebugLevel)
	logger = zap.New(core).Sugar()
	logger.Infof("debug logging enabled (path: %s)", path)
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = logger.Sync()
}

// Debugf logs a formatted debug message.
func Debugf(format string, args ...any) {
	logger.Debugf(format, args...)
}

// Warnf logs a formatted warning.
func Warnf(format string, args ...any) {
	logger.Warnf(format, args...)
}

func expandPath(path string) (string, error) {
	if len(path) > 0 && path[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, path[1:]), nil
	}
	return filepath.Abs(path)
}
