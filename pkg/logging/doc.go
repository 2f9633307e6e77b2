// Package logging builds the log/slog loggers used by the ews client, the
// fake endpoint and ewsctl.
//
// # Usage
//
//	logger := logging.New(logging.Config{
//	    Level:  logging.ParseLevel(cfg.Log.Level),
//	    Format: logging.FormatText,
//	})
//	svc := ews.NewService(transport, ews.WithLogger(logger))
//
// Library components accept a *slog.Logger through an option and fall back to
// logging.Nop(). Operation calls are logged at Debug; per-item warnings
// returned by the server are logged at Warn.
package logging
