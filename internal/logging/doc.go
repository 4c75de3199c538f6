// Package logging provides structured logging for codeverifier.
//
// This package wraps a global zap logger with convenience functions. Logging
// is silent by default so curated terminal output stays clean; set
// CODEVERIFIER_LOG_LEVEL to "debug", "info", "warn" or "error" to enable it.
//
// # Output
//
// The interactive code field owns the terminal, so logs are normally sent to
// a file:
//
//	CODEVERIFIER_LOG_LEVEL=debug CODEVERIFIER_LOG_FILE=/tmp/cv.log codeverifier --code 123456
//
// Without a file, output goes to stderr in console format.
//
// # Domain Helpers
//
//	logging.LogSession(6, false)
//	logging.LogEdit(len(text), filled, slots)
//	logging.LogCorrectness(true)
//	logging.LogFocus(false)
//
// Typed input and expected codes are never written to the log.
package logging
