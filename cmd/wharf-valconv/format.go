package main

import (
	"fmt"

	"github.com/iver-wharf/wharf-valconv/pkg/numfmt"
	"github.com/iver-wharf/wharf-valconv/pkg/valconv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var formatFlags = struct {
	precision  int
	lowerBound float64
	upperBound float64
}{}

var formatCmd = &cobra.Command{
	Use:   "format <number>...",
	Short: "Format numbers as trimmed fixed or scientific notation text",
	Long: `Formats each number on its own line. Numbers with a magnitude below
--lower or above --upper are written in scientific notation, all other
numbers in fixed notation. Trailing zeros are removed, and so is the decimal
point if no fraction remains.

Use "--" before negative numbers so they are not read as flags:

  wharf-valconv format -- -0.5`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := formatOptions(cmd.Flags())
		for _, arg := range args {
			value, err := valconv.Parse[float64](arg)
			if err != nil {
				return err
			}
			text, err := numfmt.Format(value, opts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(formatCmd)
	addFormatFlags(formatCmd.Flags())
}

func addFormatFlags(flags *pflag.FlagSet) {
	flags.IntVarP(&formatFlags.precision, "precision", "p", DefaultConfig.Format.Precision,
		"Digits after the decimal point, before trimming (default from config)")
	flags.Float64Var(&formatFlags.lowerBound, "lower", DefaultConfig.Format.LowerBound,
		"Magnitude below which scientific notation is used (default from config)")
	flags.Float64Var(&formatFlags.upperBound, "upper", DefaultConfig.Format.UpperBound,
		"Magnitude above which scientific notation is used (default from config)")
}

// formatOptions returns the options from the config, overridden by any of the
// format flags that were set.
func formatOptions(flags *pflag.FlagSet) numfmt.Options {
	opts := cfg.Format.Options()
	if flags.Changed("precision") {
		opts.Precision = formatFlags.precision
	}
	if flags.Changed("lower") {
		opts.LowerBound = formatFlags.lowerBound
	}
	if flags.Changed("upper") {
		opts.UpperBound = formatFlags.upperBound
	}
	log.Debug().
		WithInt("precision", opts.Precision).
		WithStringf("bounds", "[%v, %v]", opts.LowerBound, opts.UpperBound).
		Message("Using format options.")
	return opts
}
