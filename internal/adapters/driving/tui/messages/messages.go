// Package messages defines Bubbletea message types for the TUI.
package messages

import (
	"github.com/custodia-labs/joltage-cli/internal/core/domain"
)

// ReportComputed carries the outcome of one computation.
// FromWatch is set when it came from a watch subscription, in which case
// the app keeps listening for the next one.
type ReportComputed struct {
	Report    *domain.Report
	Err       error
	FromWatch bool
}

// WatchStarted carries the update channel of a new watch subscription.
type WatchStarted struct {
	Updates <-chan domain.ReportUpdate
}

// WatchFailed is sent when the input cannot be watched.
// The app falls back to a single computation.
type WatchFailed struct {
	Err error
}

// WatchEnded is sent when the watch subscription closes.
type WatchEnded struct{}
