// Package bytesx holds the primitives the bytes object delegates to: the
// printable representation, lexicographic comparison, hashing and text
// encoding of raw byte sequences.
//
// Sequences are passed as Go strings so callers can share them without
// copying and without any risk of mutation.
package bytesx

import (
	"encoding/hex"
	"strings"

	"github.com/zeebo/xxh3"
)

const hexDigits = "0123456789abcdef"

// Repr returns the quoted, escaped form of data, e.g. b'hi\x00'.
//
// The single quote is used as the delimiter unless data contains a single
// quote and no double quote. Backslash, the delimiter, tab, newline and
// carriage return get two-character escapes; other bytes outside the
// printable ASCII range are written as \xNN.
func Repr(data string) string {
	quote := byte('\'')
	if strings.IndexByte(data, '\'') >= 0 && strings.IndexByte(data, '"') < 0 {
		quote = '"'
	}
	var sb strings.Builder
	sb.Grow(len(data) + 3)
	sb.WriteByte('b')
	sb.WriteByte(quote)
	for i := 0; i < len(data); i++ {
		c := data[i]
		switch {
		case c == quote || c == '\\':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		case c == '\t':
			sb.WriteString(`\t`)
		case c == '\n':
			sb.WriteString(`\n`)
		case c == '\r':
			sb.WriteString(`\r`)
		case c < 0x20 || c >= 0x7f:
			sb.WriteString(`\x`)
			sb.WriteByte(hexDigits[c>>4])
			sb.WriteByte(hexDigits[c&0x0f])
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteByte(quote)
	return sb.String()
}

// Compare returns -1, 0 or 1 comparing a and b byte by byte as unsigned
// values. A proper prefix sorts first.
func Compare(a, b string) int {
	return strings.Compare(a, b)
}

// Hash returns a hash of data. Equal sequences always hash equally.
func Hash(data string) int64 {
	return int64(xxh3.HashString(data))
}

// Hex returns the lowercase hexadecimal encoding of data.
func Hex(data string) string {
	return hex.EncodeToString([]byte(data))
}
