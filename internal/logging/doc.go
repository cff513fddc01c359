// Package logging provides structured logging for formwork.
//
// The package wraps a zap logger behind package-level helpers. Because
// formwork is a full-screen terminal application, logging is silent by
// default: without configuration every call is a no-op so log lines
// never tear the TUI. Set FORMWORK_LOG_LEVEL to "debug", "info", "warn"
// or "error" (and usually redirect stderr) to enable output while
// debugging option resolution or persistence.
//
// All log functions use structured fields:
//
//	logging.Debug("resolving script options",
//	    zap.String("command", cmd),
//	)
//
// Initialize once at startup:
//
//	if err := logging.InitFromEnv(); err != nil {
//	    return err
//	}
//	defer logging.Sync()
package logging
