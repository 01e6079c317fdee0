package domain

import "time"

// Report is the result of running the pipeline over one input.
type Report struct {
	// InputID identifies the RawInput the report was computed from.
	InputID string `json:"input_id,omitempty"`

	// Source is the URI of the input.
	Source string `json:"source"`

	// Total is the sum of every bank value.
	Total uint64 `json:"total"`

	// BankCount is the number of banks folded into Total.
	BankCount int `json:"bank_count"`

	// Banks holds the per-bank breakdown. Only set when requested.
	Banks []BankResult `json:"banks,omitempty"`

	// ComputedAt is when the computation finished.
	ComputedAt time.Time `json:"computed_at"`
}

// ReportUpdate carries one recomputation from a watched input.
type ReportUpdate struct {
	// Report is nil when Err is set.
	Report *Report

	// Err is the pipeline or source error of this computation.
	Err error
}

// ComputeOptions controls what a computation returns.
type ComputeOptions struct {
	// IncludeBanks requests the per-bank breakdown in Report.Banks.
	IncludeBanks bool
}
