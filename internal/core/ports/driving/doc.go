// Package driving defines interfaces that external actors use
// to interact with core services. The CLI, MCP server and TUI all call in
// through these. They are the "driving" ports in hexagonal
// architecture terminology - they drive the application.
//
// Implementations of these interfaces live in internal/core/services.
package driving
