package domain

// WindowSize is the number of digits kept per bank.
const WindowSize = 12

// Window is the ordered digit selection of one bank.
// Every element is a digit value in [0,9], not an ASCII byte.
type Window [WindowSize]uint8

// Value interprets the window as a base-10 integer, most significant digit first.
func (w Window) Value() uint64 {
	var v uint64
	for _, d := range w {
		v = v*10 + uint64(d)
	}
	return v
}

// String renders the window as ASCII digits.
func (w Window) String() string {
	var b [WindowSize]byte
	for i, d := range w {
		b[i] = '0' + d
	}
	return string(b[:])
}

// MarshalText renders the window as ASCII digits.
func (w Window) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}
