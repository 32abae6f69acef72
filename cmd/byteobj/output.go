package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/fxamacker/cbor/v2"
	"github.com/hokaccha/go-prettyjson"
	"github.com/mattn/go-isatty"

	"github.com/deepnoodle-ai/byteobj/config"
)

// useColor reports whether text written to out should be colored.
func (a *app) useColor() bool {
	if !a.cfg.Color || color.NoColor {
		return false
	}
	f, ok := a.out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// emit writes a result. Text output is the given line; structured output
// encodes the fields.
func (a *app) emit(text string, fields map[string]any) error {
	switch a.cfg.Output {
	case config.OutputJSON:
		var data []byte
		var err error
		if a.useColor() {
			data, err = prettyjson.Marshal(fields)
		} else {
			data, err = json.MarshalIndent(fields, "", "  ")
		}
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(a.out, string(data))
		return err
	case config.OutputCBOR:
		data, err := cbor.Marshal(fields)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(a.out, hex.EncodeToString(data))
		return err
	default:
		if a.useColor() {
			text = color.New(color.FgCyan).Sprint(text)
		}
		_, err := fmt.Fprintln(a.out, text)
		return err
	}
}
