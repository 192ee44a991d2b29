package server

import "context"

// Server defines the common lifecycle contract for transport servers managed
// by this package.
//
// Implementations are expected to block in [RunServer] until shutdown is
// requested and to release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}

// ResourceCloser releases resources shared by the transports, such as the
// storage connections, once every transport has stopped.
type ResourceCloser interface {
	Close(ctx context.Context) error
}
