// Package logger builds the service's *slog.Logger.
//
// New applies functional options (format, level, output, static attributes)
// and wraps the handler with LogHandlerDecorator, which injects attributes
// pulled from the context of every *Context logging call. The request ID
// middleware registers such an extractor, so every log line written while
// serving a request carries its request_id.
//
//	log, err := logger.NewFromConfig(cfg.Log,
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//
// Attribute helpers (Error, PrincipalID, Role, Component, ...) keep key names
// consistent across packages.
package logger
