// Package domain holds the joltage entities shared by every layer: banks
// and their windows, per-bank results, reports, raw inputs and settings,
// along with the sentinel errors and BankError.
//
// Domain sits at the centre of the hexagon and imports only the standard
// library.
package domain
