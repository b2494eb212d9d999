package server

// Server is the lifecycle contract for a transport server. RunServer blocks
// until the server stops; Shutdown releases its resources.
type Server interface {
	RunServer()
	Shutdown()
}
