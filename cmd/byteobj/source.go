package main

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/deepnoodle-ai/byteobj/object"
)

// sourceFlags describes where a bytes object comes from. At most one of
// ints, text, size and hex may be given; none means empty bytes.
type sourceFlags struct {
	prefix   string
	ints     string
	text     string
	encoding string
	size     int64
	hex      string
}

func (s *sourceFlags) register(fs *pflag.FlagSet, prefix, what string) {
	s.prefix = prefix
	fs.StringVar(&s.ints, prefix+"ints", "", "Comma separated integers in range(0, 256) for "+what)
	fs.StringVar(&s.text, prefix+"text", "", "Text to encode for "+what)
	fs.StringVar(&s.encoding, prefix+"encoding", "", "Encoding of the text for "+what)
	fs.Int64Var(&s.size, prefix+"size", -1, "Number of zero bytes for "+what)
	fs.StringVar(&s.hex, prefix+"hex", "", "Hexadecimal data for "+what)
}

// objects converts the flags into the constructor's source and encoding
// arguments. Either may be nil.
func (s *sourceFlags) objects(fs *pflag.FlagSet) (object.Object, object.Object, error) {
	var given []string
	for _, name := range []string{"ints", "text", "size", "hex"} {
		if fs.Changed(s.prefix + name) {
			given = append(given, "--"+s.prefix+name)
		}
	}
	if len(given) > 1 {
		return nil, nil, fmt.Errorf("only one source may be given (got %s)", strings.Join(given, ", "))
	}

	var encoding object.Object
	if fs.Changed(s.prefix + "encoding") {
		encoding = object.NewString(s.encoding)
	}
	if len(given) == 0 {
		return nil, encoding, nil
	}

	switch given[0] {
	case "--" + s.prefix + "ints":
		list, err := parseInts(s.ints)
		if err != nil {
			return nil, nil, err
		}
		return list, encoding, nil
	case "--" + s.prefix + "text":
		return object.NewString(s.text), encoding, nil
	case "--" + s.prefix + "size":
		return object.NewInt(s.size), encoding, nil
	default:
		data, err := hex.DecodeString(strings.TrimPrefix(s.hex, "0x"))
		if err != nil {
			return nil, nil, fmt.Errorf("invalid --%shex: %w", s.prefix, err)
		}
		return object.NewBytes(data), encoding, nil
	}
}

// parseInts parses "1, 2,3" into a list of Ints. Range checking is left to
// the bytes constructor.
func parseInts(s string) (*object.List, error) {
	var values []int64
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		n, err := strconv.ParseInt(field, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q", field)
		}
		values = append(values, n)
	}
	return object.NewIntList(values), nil
}
