package server

// Server owns the stats-api HTTP listener.
//
// RunServer blocks until SIGINT, SIGTERM or SIGQUIT arrives or the listener
// fails. Shutdown drains in-flight ranking requests and may be called more
// than once.
type Server interface {
	RunServer()
	Shutdown()
}
