// Command leadstage is the operator CLI. It talks to the local lead
// database directly for board and lead management, and to the running
// daemon's HTTP API for runtime status.
package main
