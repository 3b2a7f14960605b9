// Package server wires and runs the application's HTTP transport.
//
// It provides server lifecycle orchestration: startup, OS signal handling,
// and graceful shutdown.
package server
