package server

// Server runs the object API until a termination signal arrives.
type Server interface {
	// RunServer blocks until SIGTERM, SIGINT or SIGQUIT, or until the
	// listener fails, and then shuts down.
	RunServer()

	// Shutdown stops accepting requests, waits for in-flight ones and runs
	// the shutdown hooks.
	Shutdown()
}
