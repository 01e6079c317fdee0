package joltage

import (
	"github.com/custodia-labs/joltage-cli/internal/core/domain"
)

const (
	carriageReturn = 0x0D
	lineFeed       = 0x0A
)

// NextBank reads the bank starting at cursor and returns it with the cursor
// of the following bank. Carriage returns are dropped wherever they appear;
// a line feed or the end of the stream terminates the bank.
// Returns domain.ErrEndOfStream when cursor is at or past the end of stream.
//
// The returned bank aliases stream unless a carriage return had to be removed.
func NextBank(stream []byte, cursor int) ([]byte, int, error) {
	if cursor >= len(stream) {
		return nil, cursor, domain.ErrEndOfStream
	}

	end := cursor
	clean := true
	for end < len(stream) && stream[end] != lineFeed {
		if stream[end] == carriageReturn {
			clean = false
		}
		end++
	}

	next := end
	if next < len(stream) {
		next++ // consume the terminator
	}

	if clean {
		return stream[cursor:end], next, nil
	}

	bank := make([]byte, 0, end-cursor)
	for _, c := range stream[cursor:end] {
		if c != carriageReturn {
			bank = append(bank, c)
		}
	}
	return bank, next, nil
}

// Tokenizer iterates over the banks of a byte stream.
type Tokenizer struct {
	stream []byte
	cursor int
	index  int
}

// NewTokenizer creates a tokenizer positioned at the start of stream.
func NewTokenizer(stream []byte) *Tokenizer {
	return &Tokenizer{stream: stream}
}

// Next returns the next bank.
// Returns domain.ErrEndOfStream once every bank has been read.
func (t *Tokenizer) Next() (domain.Bank, error) {
	offset := t.cursor
	digits, next, err := NextBank(t.stream, t.cursor)
	if err != nil {
		return domain.Bank{}, err
	}

	t.cursor = next
	t.index++

	return domain.Bank{
		Index:  t.index,
		Offset: offset,
		Digits: digits,
	}, nil
}

// Cursor returns the byte offset of the next unread bank.
func (t *Tokenizer) Cursor() int {
	return t.cursor
}
