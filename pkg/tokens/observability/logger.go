// Package observability provides structured logging, metrics, and tracing
// for the token store and replacer.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds store context to a logger.
// Returns a new logger with session_id and delimiter fields.
//
// Example:
//
//	enriched := EnrichLogger(logger, "7f9c...", ":")
//	enriched.Info("tokens ready") // includes session_id, delimiter
func EnrichLogger(logger *slog.Logger, sessionID, delimiter string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("session_id", sessionID),
		slog.String("delimiter", delimiter),
	)
}

// LogStoreInit logs the first initialization of a store.
func LogStoreInit(logger *slog.Logger, keyCount int) {
	if logger == nil {
		return
	}
	logger.Info("token store initialized",
		slog.Int("keys", keyCount),
	)
}

// LogStoreReset logs a reset to defaults.
func LogStoreReset(logger *slog.Logger, reason string) {
	if logger == nil {
		return
	}
	logger.Debug("token store reset",
		slog.String("reason", reason),
	)
}

// LogTokenSet logs a token write.
func LogTokenSet(logger *slog.Logger, path string, kind string) {
	if logger == nil {
		return
	}
	logger.Debug("token set",
		slog.String("path", path),
		slog.String("kind", kind),
	)
}

// LogTokenCleared logs a token being cleared.
func LogTokenCleared(logger *slog.Logger, path string) {
	if logger == nil {
		return
	}
	logger.Debug("token cleared",
		slog.String("path", path),
	)
}

// LogPathError logs a rejected path (non-fatal for the store).
func LogPathError(logger *slog.Logger, op string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("token path rejected",
		slog.String("operation", op),
		slog.String("error", err.Error()),
	)
}

// LogReplace logs a completed replace call.
func LogReplace(logger *slog.Logger, placeholders int, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("tokens replaced",
		slog.Int("placeholders", placeholders),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogSnapshotSaved logs a persisted snapshot.
func LogSnapshotSaved(logger *slog.Logger, name string, sizeBytes int) {
	if logger == nil {
		return
	}
	logger.Debug("token snapshot saved",
		slog.String("snapshot", name),
		slog.Int("size_bytes", sizeBytes),
	)
}

// LogSnapshotRestored logs a snapshot loaded back into a store.
func LogSnapshotRestored(logger *slog.Logger, name string) {
	if logger == nil {
		return
	}
	logger.Info("token snapshot restored",
		slog.String("snapshot", name),
	)
}

// LogSnapshotError logs a snapshot failure.
func LogSnapshotError(logger *slog.Logger, name string, op string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("token snapshot failed",
		slog.String("snapshot", name),
		slog.String("operation", op),
		slog.String("error", err.Error()),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Microseconds()) / 1000
	}
}
