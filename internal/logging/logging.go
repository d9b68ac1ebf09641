package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const serviceName = "pong"

// Log file rotation limits
const (
	maxSizeMB  = 5
	maxBackups = 2
	maxAgeDays = 7
)

// New builds a console logger writing to w. Unknown levels fall back to info.
func New(level string, w zapcore.WriteSyncer) *zap.Logger {
	atomicLevel := zap.NewAtomicLevel()
	if err := atomicLevel.UnmarshalText([]byte(level)); err != nil {
		atomicLevel.SetLevel(zap.InfoLevel)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02T15:04:05.000Z07:00")
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encoderConfig), w, atomicLevel)
	return zap.New(core, zap.AddStacktrace(zap.ErrorLevel)).Named(serviceName)
}

// NewStderr logs to standard error, used when no terminal UI owns the screen
func NewStderr(level string) *zap.Logger {
	return New(level, zapcore.Lock(os.Stderr))
}

// NewFile logs to a rotated file. The terminal UI owns stdout and stderr
// while a match is on screen, so interactive runs log here instead.
func NewFile(level, path string) *zap.Logger {
	if path == "" {
		return zap.NewNop()
	}
	return New(level, zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxSizeMB,
		MaxBackups: maxBackups,
		MaxAge:     maxAgeDays,
	}))
}
