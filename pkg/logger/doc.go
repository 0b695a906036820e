// Package logger builds *slog.Logger instances for the tagline service with
// functional options, attribute helpers and injection of request-scoped
// values from context.Context.
//
// New selects a text or JSON handler and applies static attributes. When
// context extractors are registered the handler is wrapped so that each
// enabled record also carries the values they pull from the context:
//
//	log := logger.New(
//		logger.WithEnvironment(cfg.Env, cfg.Name),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//
//	log.InfoContext(ctx, "variation rendered",
//		logger.Component("render"),
//		logger.TaglineCount(len(list)),
//	)
//
// Attribute helpers (Error, Component, RequestID, Block, ...) keep key names
// consistent across packages. Helpers that receive a nil value return an empty
// slog.Attr, which slog drops.
package logger
