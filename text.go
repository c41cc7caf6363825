package wslcd1602rgb

import "strconv"

// Text is a value that can be printed on the display: either a string or an
// integer. Integers are rendered in decimal.
type Text struct {
	s       string
	n       int64
	numeric bool
}

// String returns a Text holding s.
func String(s string) Text {
	return Text{s: s}
}

// Int returns a Text holding the integer n.
func Int(n int64) Text {
	return Text{n: n, numeric: true}
}

// String returns the characters that will be sent to the display.
func (t Text) String() string {
	if t.numeric {
		return strconv.FormatInt(t.n, 10)
	}
	return t.s
}

// IsNumeric reports whether t was built from an integer.
func (t Text) IsNumeric() bool {
	return t.numeric
}
