package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var zapLog *zap.Logger

// InitLogger sets up the process-wide logger at the given level. Everything
// goes to stderr so stdout stays clean for report rows.
func InitLogger(level zapcore.Level) error {

	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(level)
	config.DisableCaller = true
	config.DisableStacktrace = true

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
	config.EncoderConfig = encoderConfig

	var err error
	zapLog, err = config.Build()
	if err != nil {
		return err
	}
	return nil
}

// get returns the configured logger, building a default one on first use so
// packages can log before InitLogger runs (tests mostly).
func get() *zap.Logger {
	if zapLog == nil {
		_ = InitLogger(zapcore.InfoLevel)
	}
	return zapLog
}

func Info(message string, fields ...zap.Field) {
	get().Info(message, fields...)
}

func Warn(message string, fields ...zap.Field) {
	get().Warn(message, fields...)
}

func Debug(message string, fields ...zap.Field) {
	get().Debug(message, fields...)
}

func Error(message string, fields ...zap.Field) {
	get().Error(message, fields...)
}

func Fatal(message string, fields ...zap.Field) {
	get().Fatal(message, fields...)
}

// Sync flushes any buffered log entries
func Sync() error {
	return get().Sync()
}
