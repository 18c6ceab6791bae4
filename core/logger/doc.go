// Package logger provides slog attribute helpers shared by the authstate
// packages. The helpers follow the empty-Attr pattern for nil safety, so
// calls like log.Warn("persist failed", logger.Error(err)) need no explicit
// nil checks.
//
//	log.Error("registry load failed",
//		logger.Component("authstate"),
//		logger.Key("record", accountsKey),
//		logger.Error(err),
//	)
package logger
