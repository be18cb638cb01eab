package utils

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger - leveled logger on top of zap
type Logger struct {
	z *zap.Logger
}

// Global instance; cmd/* call Init once config is loaded
var Log = NewLogger(os.Getenv("APP_ENV"))

// NewLogger - production encoder for "production", development otherwise
func NewLogger(env string) *Logger {
	var (
		z   *zap.Logger
		err error
	)
	if env == "production" {
		z, err = zap.NewProduction()
	} else {
		z, err = zap.NewDevelopment()
	}
	if err != nil {
		z = zap.NewNop()
	}
	return &Logger{z: z.WithOptions(zap.AddCallerSkip(1))}
}

// Init replaces the global logger
func Init(env string) {
	Log = NewLogger(env)
}

func (l *Logger) Info(msg string, fields ...zapcore.Field) {
	l.z.Info(msg, fields...)
}

func (l *Logger) Warn(msg string, fields ...zapcore.Field) {
	l.z.Warn(msg, fields...)
}

func (l *Logger) Error(msg string, fields ...zapcore.Field) {
	l.z.Error(msg, fields...)
}

func (l *Logger) Debug(msg string, fields ...zapcore.Field) {
	l.z.Debug(msg, fields...)
}

// Sync flushes buffered entries
func (l *Logger) Sync() {
	_ = l.z.Sync()
}
