// Package http implements the HTTP transport layer of the application.
//
// Every request passes the same pipeline: it is stamped with a request id,
// given a cookie jar, escorted through identity resolution and, on protected
// routes, through the authorization gate. Handlers return errors instead of
// writing failure responses; the response normalizer is the only place that
// renders them.
package http
