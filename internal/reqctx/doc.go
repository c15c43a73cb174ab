// Package reqctx holds the per-request record threaded through the HTTP
// pipeline: the request identifier, the time the request was received and
// the authentication outcome resolved from the identity cookie.
//
// A [Context] is created once by the request stamper, stored in the request's
// [context.Context] and owned by the goroutine serving that request. The auth
// outcome moves from [Unresolved] to exactly one terminal state and is never
// overwritten afterwards.
package reqctx
