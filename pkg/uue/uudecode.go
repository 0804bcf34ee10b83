package uue

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidHeader reports a begin line with no parsable file name. It
// is the only fatal decode condition; everything else is handled
// leniently.
var ErrInvalidHeader = errors.New("uue: invalid begin header")

// beginRegex captures everything after the mode number, so file names
// keep their spaces.
var beginRegex = regexp.MustCompile(`^begin\s+\d+\s+(.+)$`)

// Decode reconstructs the file name and raw bytes from a uu document.
//
// Input may use "\n", "\r\n" or bare "\r" line endings; it is
// normalized internally. Both null-sextet dialects are accepted, mixed
// per line, and data lines whose trailing spaces were stripped in
// transit are repaired from the length byte. A document without a begin
// line decodes with an empty file name.
func Decode(text string) (UUData, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSpace(text)

	var data UUData
	var buf bytes.Buffer
	buf.Grow(len(text) * 3 / 4)

	for _, line := range strings.Split(text, "\n") {
		switch {
		case strings.TrimSpace(line) == "" || line == "`":
			continue
		case strings.HasPrefix(line, "end"):
			continue
		case strings.HasPrefix(line, "begin"):
			m := beginRegex.FindStringSubmatch(line)
			if m == nil {
				return UUData{}, fmt.Errorf("%w: %q", ErrInvalidHeader, line)
			}
			data.FileName = m[1]
		default:
			decodeLine(&buf, line)
		}
	}

	data.Contents = buf.Bytes()
	return data, nil
}

// decodeLine appends one data line's bytes to out. The expected encoded
// length comes from the biased length byte via the historical
// truncating decodedLen*4/3 formula, kept as-is for bit compatibility
// with existing uu corpora.
func decodeLine(out *bytes.Buffer, line string) {
	decodedLen := int(line[0]-uuOffset) & sextetMask
	expected := decodedLen * 4 / 3

	// Repair trailing spaces stripped in transit.
	if pad := 1 + expected - len(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	}

	// Fold the backtick dialect onto the space one so a single unpack
	// path handles both.
	enc := strings.ReplaceAll(line[1:], "`", " ")

	// The truncating formula under-pads lines whose byte count is not
	// a multiple of 3, so positions past the repaired end still read
	// as null sextets.
	sextet := func(i int) byte {
		if i >= len(enc) {
			return 0
		}
		return (enc[i] - uuOffset) & sextetMask
	}

	for i, written := 0, 0; written < decodedLen; i += 4 {
		s0, s1, s2, s3 := sextet(i), sextet(i+1), sextet(i+2), sextet(i+3)

		out.WriteByte(s0<<2 | s1>>4)
		if written++; written == decodedLen {
			break
		}
		out.WriteByte(s1<<4 | s2>>2)
		if written++; written == decodedLen {
			break
		}
		out.WriteByte(s2<<6 | s3)
		written++
	}
}
