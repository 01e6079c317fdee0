// Package mcp provides an MCP (Model Context Protocol) server adapter for joltage.
// It lets AI assistants compute bank totals over stdio.
package mcp

import "errors"

// ErrMissingJoltageService is returned when the joltage service is not provided.
var ErrMissingJoltageService = errors.New("mcp: joltage service is required")

// ErrNoInput is returned when a tool call names neither inline input nor a path.
var ErrNoInput = errors.New("mcp: one of input or path is required")

// ErrAmbiguousInput is returned when a tool call names both inline input and a path.
var ErrAmbiguousInput = errors.New("mcp: input and path are mutually exclusive")

// ErrStdinPath is returned for path "-": stdin carries the protocol itself.
var ErrStdinPath = errors.New("mcp: path \"-\" is not available over stdio")

// ErrSettingsUnavailable is returned when the settings resource is read without a settings service.
var ErrSettingsUnavailable = errors.New("mcp: settings not available")
