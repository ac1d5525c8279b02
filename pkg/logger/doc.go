// Package logger builds slog loggers from functional options and provides
// attribute helpers with consistent keys.
//
// New picks a JSON or text handler, applies static attributes and, when
// WithContextValue is used, wraps the handler so that values stored in the
// context are added to every record logged with it.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithDevelopment("paycode"),
//	    logger.WithContextValue("batch", batchKey{}),
//	)
//
//	log.InfoContext(ctx, "symbol rendered",
//	    logger.Document(doc.Identifier),
//	    logger.Symbology("pdf417"),
//	    logger.PayloadSize(len(payload)),
//	)
//
// Error returns an empty attribute for a nil error, so it can be passed
// unconditionally. Discard returns a logger that writes nothing.
package logger
