package main

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// newLogger builds the diagnostic logger. Logging is off unless --verbose or
// --log-level is given; output always goes to stderr so stdout stays usable
// for CSS and JSON.
func newLogger() *zap.Logger {
	verbose := getBoolWithFallback("verbose", "verbose", false)
	level := getStringWithFallback("log-level", "log-level", "")
	return buildLogger(verbose, level)
}

// buildLogger is the testable core of newLogger.
func buildLogger(verbose bool, logLevel string) *zap.Logger {
	if !verbose && logLevel == "" {
		return zap.NewNop()
	}

	lvl := parseLogLevel(logLevel)
	if verbose && logLevel == "" {
		lvl = zap.DebugLevel
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.AddSync(os.Stderr),
		lvl,
	)

	return zap.New(core)
}

// parseLogLevel converts a string log level to a zapcore.Level.
func parseLogLevel(logLevel string) zapcore.Level {
	switch logLevel {
	case "debug":
		return zap.DebugLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	default:
		return zap.InfoLevel
	}
}
