// Package logging provides structured logging for the dropsel demo.
//
// This package wraps zap logger with convenience functions for the logging
// patterns used throughout the application. Output goes to stderr so it never
// corrupts the alternate-screen TUI.
//
// # Log Levels
//
// The package supports standard log levels:
//   - Debug: Detailed interaction info (toggles, config resolution)
//   - Info: Normal operations (selections, persistence)
//   - Warn: Non-fatal issues (unwritable config, bad values)
//   - Error: Fatal issues (startup failures)
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Info("Option selected",
//	    zap.String("key", "B"),
//	    zap.String("label", "B"),
//	)
//
// # Configuration
//
// Logging is controlled via the DROPSEL_LOG_LEVEL environment variable. When
// unset or empty, zap logging is silent so the curated TUI output is
// displayed cleanly. Set DROPSEL_LOG_LEVEL to "debug", "info", "warn", or
// "error" to enable logging output.
//
// Initialize at startup:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    return err
//	}
//	defer logging.Sync()
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap
// logger handles synchronization automatically.
package logging
