// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) and a console encoding suitable for CLI output.
//
// # Launch Correlation
//
// The WithLaunchID helper tags a logger with a unique launch ID, ensuring that
// all log lines produced by one launcher invocation can be correlated when the
// json encoding is shipped somewhere.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Encoding: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log = logger.WithLaunchID(log)
//	log.Info("Server started")
package logger
