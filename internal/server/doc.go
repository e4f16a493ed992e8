// Package server runs the HTTP server of the stats API.
//
// It owns the server lifecycle: startup, signal handling and graceful
// shutdown.
package server
