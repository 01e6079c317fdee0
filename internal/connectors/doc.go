// Package connectors provides implementations of the InputSource interface.
// Each connector knows how to read the byte stream of one kind of input:
//
//   - filesystem: a local file, with change notifications
//   - stdin: the process standard input, read once
//
// Factory maps a URI to the right connector.
package connectors
