package utils

import (
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	lumberjack "gopkg.in/natefinch/lumberjack.v2"
)

// InitializeLogger builds a zap.Logger whose level and destination are
// controlled by the WSH_LOG_LEVEL and WSH_ENV environment variables.
// In "prod" mode logs are JSON-encoded and written only to the rotated
// log file; otherwise they're also echoed to stdout in a human-readable
// console encoding.
func InitializeLogger() (*zap.Logger, error) {
	level := levelFromEnv(os.Getenv("WSH_LOG_LEVEL"))

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	env := strings.ToLower(os.Getenv("WSH_ENV"))

	var encoder zapcore.Encoder
	if env == "prod" {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	rotated := &lumberjack.Logger{
		Filename:   logFilePath(),
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
		Compress:   true,
	}

	var writer zapcore.WriteSyncer
	if env == "prod" {
		writer = zapcore.AddSync(rotated)
	} else {
		writer = zapcore.NewMultiWriteSyncer(zapcore.AddSync(os.Stdout), zapcore.AddSync(rotated))
	}

	core := zapcore.NewCore(encoder, writer, level)
	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)), nil
}

func logFilePath() string {
	if p := os.Getenv("WSH_LOG_FILE"); p != "" {
		return p
	}
	return "wsh.log"
}

func levelFromEnv(raw string) zapcore.Level {
	switch strings.ToLower(raw) {
	case "debug":
		return zap.DebugLevel
	case "info":
		return zap.InfoLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	case "dpanic":
		return zap.DPanicLevel
	case "panic":
		return zap.PanicLevel
	case "fatal":
		return zap.FatalLevel
	default:
		return zap.WarnLevel
	}
}
