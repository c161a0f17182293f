// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance for the sync command and for the
// registry API served by Fiber.
//
// # Context Awareness
//
// Reconciliation runs attach a run_id field to every entry. HTTP handlers use
// WithRayID, which extracts the RayID from a Fiber context so that all logs of
// one request can be correlated.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json or console
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log.Info("Starting reconciliation")
//
//	// In a request handler:
//	l := logger.WithRayID(log, c)
//	l.Error("Handler failed", zap.Error(err))
package logger
