// Package driving defines the interfaces the CLI, TUI and MCP adapters
// call into. They are the driving ports of the hexagon: callers depend on
// these interfaces, and internal/core/services implements them.
//
// Driving ports import the domain package only.
package driving
