// Package requestid tags each HTTP request with a correlation identifier.
//
// The middleware reuses a well-formed X-Request-ID supplied by the client,
// otherwise it generates a UUID. The chosen ID is echoed in the response header
// and stored in the request context, where LoggerExtractor picks it up so every
// log record written during the request carries request_id.
package requestid
