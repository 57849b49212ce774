// Package server wires and runs the planner authority process.
//
// It owns the lifecycle of the HTTP server, the gRPC health server and the
// background workers: they start together, the first failure or a stop
// signal stops all of them, and the transports are shut down gracefully.
package server
