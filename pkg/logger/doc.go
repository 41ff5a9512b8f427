// Package logger builds *slog.Logger instances for the storefront packages and
// keeps attribute naming consistent across them.
//
// New accepts functional options selecting the output format (json or text),
// the minimum level, static attributes and ContextExtractor callbacks that pull
// values out of a context.Context on every Handle call.
//
// Attribute helpers (Error, UserID, ProductID, Component, Key, ...) live in
// attr.go. Helpers that receive a nil value return an empty slog.Attr, which
// slog drops from the record.
//
// # Usage
//
//	log := logger.New(
//		logger.WithDevelopment("storefront"),
//		logger.WithContextValue("request_id", requestIDKey{}),
//	)
//	log.LogAttrs(ctx, slog.LevelWarn, "checkout rejected",
//		logger.Component("checkout"),
//		logger.UserID(user.ID),
//	)
package logger
