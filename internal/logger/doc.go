// Package logger wraps zap to provide:
//   - a global sugared logger writing console-encoded entries to stderr,
//   - context helpers (ToContext/FromContext/WithName/WithKV),
//   - level parsing and configuration.
//
// Logs go to stderr because stdout carries the notifier console output,
// which has to stay byte-exact.
package logger
