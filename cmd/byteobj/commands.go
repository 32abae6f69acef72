package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deepnoodle-ai/byteobj/object"
	"github.com/deepnoodle-ai/byteobj/op"
)

// bytesCommand builds a subcommand that constructs one bytes object from
// the source flags and hands it to run.
func (a *app) bytesCommand(use, short string, run func(cmd *cobra.Command, b *object.Bytes) error) *cobra.Command {
	var src sourceFlags
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := a.construct(cmd, &src)
			if err != nil {
				return err
			}
			return run(cmd, b)
		},
	}
	src.register(cmd.Flags(), "", "the bytes")
	return cmd
}

func (a *app) construct(cmd *cobra.Command, src *sourceFlags) (*object.Bytes, error) {
	source, encoding, err := src.objects(cmd.Flags())
	if err != nil {
		return nil, err
	}
	return a.rt.Construct(a.context(cmd), source, encoding)
}

func (a *app) reprCommand() *cobra.Command {
	return a.bytesCommand("repr", "Print the representation of bytes", func(cmd *cobra.Command, b *object.Bytes) error {
		repr, err := a.rt.Repr(a.context(cmd), b)
		if err != nil {
			return err
		}
		return a.emit(repr, map[string]any{"bytes": b, "repr": repr})
	})
}

func (a *app) lenCommand() *cobra.Command {
	return a.bytesCommand("len", "Print the length of bytes", func(cmd *cobra.Command, b *object.Bytes) error {
		n, err := a.rt.Len(a.context(cmd), b)
		if err != nil {
			return err
		}
		return a.emit(strconv.FormatInt(n, 10), map[string]any{"bytes": b, "len": n})
	})
}

func (a *app) hashCommand() *cobra.Command {
	return a.bytesCommand("hash", "Print the hash of bytes", func(cmd *cobra.Command, b *object.Bytes) error {
		h, err := a.rt.Hash(a.context(cmd), b)
		if err != nil {
			return err
		}
		return a.emit(strconv.FormatInt(h, 10), map[string]any{"bytes": b, "hash": h})
	})
}

func (a *app) iterCommand() *cobra.Command {
	return a.bytesCommand("iter", "Print each element of bytes", func(cmd *cobra.Command, b *object.Bytes) error {
		items, err := a.rt.Collect(a.context(cmd), b)
		if err != nil {
			return err
		}
		values := make([]int64, len(items))
		lines := make([]string, len(items))
		for i, item := range items {
			n, err := object.AsInt(item)
			if err != nil {
				return err
			}
			values[i] = n
			lines[i] = strconv.FormatInt(n, 10)
		}
		return a.emit(strings.Join(lines, "\n"), map[string]any{"bytes": b, "items": values})
	})
}

func (a *app) hexCommand() *cobra.Command {
	return a.bytesCommand("hex", "Print bytes as hexadecimal", func(cmd *cobra.Command, b *object.Bytes) error {
		result, err := a.rt.Call(a.context(cmd), b, "hex")
		if err != nil {
			return err
		}
		s, err := object.AsString(result)
		if err != nil {
			return err
		}
		return a.emit(s, map[string]any{"bytes": b, "hex": s})
	})
}

func parseCompareOp(name string) (op.CompareOpType, error) {
	for _, cop := range op.CompareOps {
		if name == cop.Operation() || name == cop.String() {
			return cop, nil
		}
	}
	return 0, fmt.Errorf("unknown comparison %q (want one of lt, le, eq, ne, gt, ge)", name)
}

func (a *app) compareCommand() *cobra.Command {
	var left, right sourceFlags
	cmd := &cobra.Command{
		Use:   "compare OP",
		Short: "Compare two bytes objects with lt, le, eq, ne, gt or ge",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cop, err := parseCompareOp(args[0])
			if err != nil {
				return err
			}
			a1, err := a.construct(cmd, &left)
			if err != nil {
				return err
			}
			b1, err := a.construct(cmd, &right)
			if err != nil {
				return err
			}
			result, err := a.rt.Compare(a.context(cmd), cop, a1, b1)
			if err != nil {
				return err
			}
			return a.emit(strconv.FormatBool(result), map[string]any{
				"left":   a1,
				"right":  b1,
				"op":     cop.Operation(),
				"result": result,
			})
		},
	}
	left.register(cmd.Flags(), "", "the left operand")
	right.register(cmd.Flags(), "with-", "the right operand")
	return cmd
}

func (a *app) classesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "classes",
		Short: "List the registered classes and their operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var lines []string
			fields := map[string]any{}
			for _, c := range a.rt.Classes().All() {
				names := object.AttrNames(c.Specs())
				lines = append(lines, fmt.Sprintf("%s: %s", c.Name(), strings.Join(names, ", ")))
				fields[c.String()] = names
			}
			return a.emit(strings.Join(lines, "\n"), fields)
		},
	}
}
