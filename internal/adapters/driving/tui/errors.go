package tui

import "errors"

// ErrMissingJoltageService is returned when the joltage service is not provided.
var ErrMissingJoltageService = errors.New("tui: joltage service is required")

// ErrMissingInput is returned when no input path is given.
var ErrMissingInput = errors.New("tui: an input path is required")

// ErrStdinInput is returned for "-": the terminal UI owns standard input.
var ErrStdinInput = errors.New("tui: cannot read input from stdin")
