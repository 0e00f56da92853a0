// Package daemon ties the long-running pieces together: it enforces
// single-instance execution with a file lock, runs the follow-up sweeper,
// and serves the HTTP API the CLI talks to.
package daemon
