// Package server runs the reference object API over HTTP, including signal
// handling and graceful shutdown.
package server
