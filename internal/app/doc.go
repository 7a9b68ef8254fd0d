// Package app wires application dependencies for the CLI and the server.
//
// It builds the concrete file stores and high-level services from Config,
// exposing them via the Wire struct for commands and HTTP handlers to use.
package app
