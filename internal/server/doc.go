// Package server runs the HTTP transport.
//
// It owns the lifecycle of the listener: startup, signal handling and
// graceful shutdown bounded by the configured request timeout.
package server
