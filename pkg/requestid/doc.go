// Package requestid carries a correlation id for outgoing API calls.
//
// Ensure attaches an id to a context unless one is present; the API client
// sends it in the X-Request-ID header and LoggerExtractor adds it to log
// records, so a shopper action can be traced across retries and the
// backend's logs.
//
//	ctx, id := requestid.Ensure(ctx)
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
package requestid
