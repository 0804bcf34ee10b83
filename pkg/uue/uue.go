// Package uue implements the classic uuencode binary-to-text transfer
// encoding. It produces the historical begin/end document format and
// decodes documents written in either null-sextet dialect (space or
// backtick), including ones whose trailing spaces were stripped in
// transit.
package uue

import "fmt"

// Dialect selects which character represents an encoded null (zero)
// sextet in the output. Historical encoders split between the two;
// Decode accepts both, mixed freely within one document.
type Dialect int

const (
	// UseBackticks emits '`' for null sextets. Backticks survive
	// whitespace-trimming transports, so this is the safer default.
	UseBackticks Dialect = iota
	// UseSpaces emits ' ' for null sextets, matching the oldest
	// encoders.
	UseSpaces
)

const (
	// uuOffset biases a sextet into printable ASCII starting at space.
	uuOffset = 32
	// sextetMask keeps the low 6 bits of a value.
	sextetMask = 0x3F
	// maxLineBytes is the historical per-line maximum of original
	// bytes, 60 encoded characters per line.
	maxLineBytes = 45
)

// UUData is one uuencoded unit: the embedded file name and its raw
// bytes. It is a transient value, built by the caller for Encode or
// returned by Decode.
type UUData struct {
	FileName string
	Contents []byte
}

func (d Dialect) padChar() byte {
	if d == UseSpaces {
		return ' '
	}
	return '`'
}

// ParseDialect maps the names used by config files and the API onto a
// Dialect.
func ParseDialect(s string) (Dialect, error) {
	switch s {
	case "space", "spaces":
		return UseSpaces, nil
	case "backtick", "backticks":
		return UseBackticks, nil
	}

	return UseBackticks, fmt.Errorf("uue: unknown dialect %q", s)
}
