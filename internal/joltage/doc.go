// Package joltage implements the bank scanning pipeline.
//
// A byte stream is split into banks by the Tokenizer. Each bank is fed,
// digit by digit, into a fresh Selector which keeps the best
// domain.WindowSize digits it can under an online promotion rule. The
// finished window is folded into a running total by the Accumulator.
//
// The pipeline is a pure function of its input: it holds no state between
// calls and performs no I/O, so independent streams may be scanned
// concurrently without synchronisation.
package joltage
