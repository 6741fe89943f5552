// Package server runs the relay's HTTP server.
//
// It owns the listener lifecycle: startup, signal handling and graceful
// shutdown bounded by the configured shutdown timeout.
package server
