package uue

import (
	"fmt"
	"strings"
)

// headerMode is the permission field other uu decoders expect on the
// begin line. It carries no meaning here.
const headerMode = 740

// Encode renders data as a complete uu document: a begin header, one
// data line per chunk of up to 45 input bytes, a zero-length sentinel
// line and the end marker. Lines are '\n' terminated.
func Encode(data UUData, dialect Dialect) string {
	pad := dialect.padChar()

	var b strings.Builder
	b.Grow(len(data.Contents)*4/3 + len(data.FileName) + 32)

	fmt.Fprintf(&b, "begin %d %s\n", headerMode, data.FileName)

	for rest := data.Contents; len(rest) > 0; {
		n := len(rest)
		if n > maxLineBytes {
			n = maxLineBytes
		}
		encodeLine(&b, rest[:n], pad)
		rest = rest[n:]
	}

	b.WriteByte(pad)
	b.WriteString("\nend\n")

	return b.String()
}

// encodeLine writes the biased length byte and the 4-character groups
// for one chunk. Sextet positions past the end of a partial trailing
// group get the dialect's null character, so a decoder can regenerate
// them if a transport strips trailing spaces.
func encodeLine(b *strings.Builder, chunk []byte, pad byte) {
	b.WriteByte(byte(len(chunk)) + uuOffset)

	for i := 0; i < len(chunk); i += 3 {
		var b1, b2 byte
		b0 := chunk[i]
		rem := len(chunk) - i
		if rem > 1 {
			b1 = chunk[i+1]
		}
		if rem > 2 {
			b2 = chunk[i+2]
		}

		b.WriteByte(encChar(b0>>2, pad))
		b.WriteByte(encChar(b0<<4|b1>>4, pad))
		if rem > 1 {
			b.WriteByte(encChar(b1<<2|b2>>6, pad))
		} else {
			b.WriteByte(pad)
		}
		if rem > 2 {
			b.WriteByte(encChar(b2, pad))
		} else {
			b.WriteByte(pad)
		}
	}

	b.WriteByte('\n')
}

// encChar offsets a sextet into the printable range, substituting the
// dialect character for zero.
func encChar(v, pad byte) byte {
	v &= sextetMask
	if v == 0 {
		return pad
	}
	return v + uuOffset
}
