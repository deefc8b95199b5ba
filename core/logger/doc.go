// Package logger provides a structured logging facility based on Zap.
//
// All diagnostics (skipped files, decoder failures, summaries) go through the logger
// to stderr, keeping stdout free for rendered tables.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json or console
//
// # Context Awareness
//
// When serving tables over HTTP, WithRayID attaches the request's RayID
// (set by the rayid middleware) to log entries.
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info", Format: "console"})
//	log.Warn("Skipping weapon file", zap.String("file", path))
package logger
