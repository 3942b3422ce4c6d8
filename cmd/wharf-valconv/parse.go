package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/iver-wharf/wharf-valconv/pkg/enumconv"
	"github.com/iver-wharf/wharf-valconv/pkg/numfmt"
	"github.com/iver-wharf/wharf-valconv/pkg/valconv"
	"github.com/spf13/cobra"
)

type scalarType int

const (
	scalarInt scalarType = iota
	scalarInt32
	scalarInt64
	scalarUint
	scalarUint32
	scalarUint64
	scalarFloat32
	scalarFloat64
	scalarString
)

var scalarTypeLabels = enumconv.Labels[scalarType]{
	"int", "int32", "int64",
	"uint", "uint32", "uint64",
	"float32", "float64",
	"string",
}

var parseCmd = &cobra.Command{
	Use:   "parse <type> [text]",
	Short: "Parse text as a typed value and print its canonical form",
	Long: `Parses the text as the given type and prints the value formatted back
as text. Fails if the text is not a valid value of that type. Whitespace is
not trimmed, except for a single trailing line break when the text is read
from stdin, which happens if no text argument is given.

Types: ` + strings.Join(scalarTypeLabels, ", "),
	Args: cobra.RangeArgs(1, 2),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		return scalarTypeLabels, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		typ, ok := scalarTypeLabels.LookupFold(args[0])
		if !ok {
			return fmt.Errorf("unknown type %q, expected one of: %s",
				args[0], strings.Join(scalarTypeLabels, ", "))
		}
		text, err := textArg(cmd.InOrStdin(), args, 1)
		if err != nil {
			return err
		}
		canonical, err := reparseAs(typ, text, formatOptions(cmd.Flags()))
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), canonical)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
	addFormatFlags(parseCmd.Flags())
}

// textArg returns the argument at the index, or all of stdin with one
// trailing line break removed if there is no such argument.
func textArg(stdin io.Reader, args []string, index int) (string, error) {
	if index < len(args) {
		return args[index], nil
	}
	b, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	text := strings.TrimSuffix(string(b), "\n")
	return strings.TrimSuffix(text, "\r"), nil
}

func reparseAs(typ scalarType, text string, opts numfmt.Options) (string, error) {
	switch typ {
	case scalarInt:
		return reparse[int](text, opts)
	case scalarInt32:
		return reparse[int32](text, opts)
	case scalarInt64:
		return reparse[int64](text, opts)
	case scalarUint:
		return reparse[uint](text, opts)
	case scalarUint32:
		return reparse[uint32](text, opts)
	case scalarUint64:
		return reparse[uint64](text, opts)
	case scalarFloat32:
		return reparse[float32](text, opts)
	case scalarFloat64:
		return reparse[float64](text, opts)
	default:
		return reparse[string](text, opts)
	}
}

func reparse[T valconv.Scalar](text string, opts numfmt.Options) (string, error) {
	value, err := valconv.Parse[T](text)
	if err != nil {
		return "", err
	}
	return valconv.Render(value, opts)
}
