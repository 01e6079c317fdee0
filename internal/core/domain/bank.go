package domain

// Bank is one record of the input stream: the bytes between two line feeds
// with carriage returns removed.
type Bank struct {
	// Index is the 1-based position of the bank in the stream.
	Index int

	// Offset is the byte offset in the stream where the bank starts.
	Offset int

	// Digits holds the bank bytes. Expected to be ASCII '0'-'9' only.
	Digits []byte
}

// Len returns the number of bytes in the bank.
func (b Bank) Len() int {
	return len(b.Digits)
}

// BankResult is the outcome of selecting and folding one bank.
type BankResult struct {
	// Index is the 1-based position of the bank in the stream.
	Index int `json:"index"`

	// Offset is the byte offset in the stream where the bank starts.
	Offset int `json:"offset"`

	// Length is the number of digits in the bank.
	Length int `json:"length"`

	// Window is the final digit selection.
	Window Window `json:"window"`

	// Value is the window interpreted as a base-10 integer.
	Value uint64 `json:"value"`
}
