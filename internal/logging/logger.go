package logging

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger *zap.Logger

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "CODEVERIFIER_LOG_LEVEL"

// LogFileEnvVar names a file that receives log output instead of stderr.
// The interactive widget owns the terminal, so a file is the usual choice.
const LogFileEnvVar = "CODEVERIFIER_LOG_FILE"

// Initialize creates a new logger with the specified level writing to path.
// If level is empty, it checks CODEVERIFIER_LOG_LEVEL; if path is empty, it
// checks CODEVERIFIER_LOG_FILE and then falls back to stderr.
// If no level is set anywhere, logging is disabled (silent mode).
func Initialize(level, path string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}
	if path == "" {
		path = os.Getenv(LogFileEnvVar)
	}

	// If still no level, use silent mode (nop logger)
	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(parseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}
	if path != "" {
		config.OutputPaths = []string{path}
		config.ErrorOutputPaths = []string{path}
	}

	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	// Colors only make sense on a terminal
	if path == "" {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	var err error
	logger, err = config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	return nil
}

// InitializeFromEnv initializes the logger from the environment only.
func InitializeFromEnv() error {
	return Initialize("", "")
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		// Unknown level - use info as default when explicitly set to something
		return zapcore.InfoLevel
	}
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	if logger == nil {
		// Fallback to silent logger if not initialized
		logger = zap.NewNop()
	}
	return logger
}

// SetLogger replaces the global logger. Tests use it with zaptest/observer.
func SetLogger(l *zap.Logger) {
	logger = l
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogSession logs the creation of a code field.
// Only the slot count is recorded, never the code itself.
func LogSession(slots int, secure bool) {
	Info("Code field created",
		zap.Int("slots", slots),
		zap.Bool("secure", secure),
	)
}

// LogEdit logs one edit event. The typed text is never logged.
func LogEdit(length, filled, slots int) {
	Debug("Input edited",
		zap.Int("length", length),
		zap.Int("filled", filled),
		zap.Int("slots", slots),
		zap.Bool("overflow", length > slots),
	)
}

// LogCorrectness logs a correctness transition
func LogCorrectness(correct bool) {
	Info("Code correctness changed",
		zap.Bool("correct", correct),
	)
}

// LogFocus logs a focus toggle of the hidden input
func LogFocus(focused bool) {
	Debug("Input focus toggled",
		zap.Bool("focused", focused),
	)
}

// Sync flushes any buffered log entries
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
