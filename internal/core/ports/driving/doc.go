// Package driving declares the interfaces through which the outside
// world (CLI commands, the review TUI, the MCP server, the directory
// watcher) drives the application core.
//
// The concrete implementations live in internal/core/services.
package driving
