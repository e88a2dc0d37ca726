package server

// Server runs the admin API until a stop signal arrives.
type Server interface {
	RunServer()
	Shutdown()
}
