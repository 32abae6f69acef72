package bytesx

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// ErrUnknownEncoding is returned for encoding names that resolve to nothing.
var ErrUnknownEncoding = errors.New("unknown encoding")

// EncodeError describes text that cannot be represented in an encoding.
type EncodeError struct {
	Encoding string
	Offset   int
	Err      error
}

func (e *EncodeError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("'%s' codec can't encode character at position %d: %v",
			e.Encoding, e.Offset, e.Err)
	}
	return fmt.Sprintf("'%s' codec can't encode text: %v", e.Encoding, e.Err)
}

func (e *EncodeError) Unwrap() error {
	return e.Err
}

var errOutOfRange = errors.New("ordinal not in range")

// Aliases resolved before consulting the IANA and WHATWG indexes. WHATWG
// maps ascii and latin-1 to windows-1252, which is not what callers mean.
var builtinEncodings = map[string]string{
	"utf-8":      "utf-8",
	"utf8":       "utf-8",
	"u8":         "utf-8",
	"ascii":      "ascii",
	"us-ascii":   "ascii",
	"latin-1":    "latin-1",
	"latin1":     "latin-1",
	"iso-8859-1": "latin-1",
	"iso8859-1":  "latin-1",
	"l1":         "latin-1",
	"utf-16":     "utf-16",
	"utf16":      "utf-16",
	"utf-16-le":  "utf-16-le",
	"utf-16le":   "utf-16-le",
	"utf-16-be":  "utf-16-be",
	"utf-16be":   "utf-16-be",
}

// NormalizeEncoding lowercases name and maps underscores and spaces to
// hyphens, so "UTF_8" and "utf 8" both become "utf-8".
func NormalizeEncoding(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer("_", "-", " ", "-").Replace(name)
}

// LookupEncoding resolves an encoding name. The returned canonical name is
// used in error messages.
func LookupEncoding(name string) (encoding.Encoding, string, error) {
	norm := NormalizeEncoding(name)
	if canonical, ok := builtinEncodings[norm]; ok {
		switch canonical {
		case "utf-8":
			return unicode.UTF8, canonical, nil
		case "ascii":
			// Encoded without a codec; see Encode.
			return nil, canonical, nil
		case "latin-1":
			return charmap.ISO8859_1, canonical, nil
		case "utf-16":
			return unicode.UTF16(unicode.LittleEndian, unicode.UseBOM), canonical, nil
		case "utf-16-le":
			return unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM), canonical, nil
		case "utf-16-be":
			return unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM), canonical, nil
		}
	}
	if enc, err := ianaindex.IANA.Encoding(norm); err == nil && enc != nil {
		return enc, norm, nil
	}
	if enc, err := htmlindex.Get(norm); err == nil && enc != nil {
		return enc, norm, nil
	}
	return nil, norm, fmt.Errorf("%w: %s", ErrUnknownEncoding, name)
}

// Encode converts text to bytes using the named encoding. The text must be
// valid UTF-8.
func Encode(text, encodingName string) (string, error) {
	enc, canonical, err := LookupEncoding(encodingName)
	if err != nil {
		return "", err
	}
	if !utf8.ValidString(text) {
		return "", &EncodeError{Encoding: canonical, Offset: invalidOffset(text),
			Err: errors.New("invalid utf-8")}
	}
	if canonical == "ascii" {
		for i, r := range text {
			if r >= utf8.RuneSelf {
				return "", &EncodeError{Encoding: canonical, Offset: i, Err: errOutOfRange}
			}
		}
		return text, nil
	}
	out, err := enc.NewEncoder().String(text)
	if err != nil {
		return "", &EncodeError{Encoding: canonical, Offset: -1, Err: err}
	}
	return out, nil
}

func invalidOffset(text string) int {
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}
