package server

import "context"

// Server defines the lifecycle contract of the planner authority process.
type Server interface {
	// RunServer serves until SIGTERM, SIGINT or SIGQUIT, then shuts down
	// gracefully.
	RunServer() error

	// Run serves until ctx is cancelled or a transport or worker fails,
	// then shuts every transport down.
	Run(ctx context.Context) error
}
