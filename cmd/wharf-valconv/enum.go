package main

import (
	"errors"
	"fmt"

	"github.com/iver-wharf/wharf-valconv/internal/errutil"
	"github.com/iver-wharf/wharf-valconv/internal/flagtypes"
	"github.com/iver-wharf/wharf-valconv/pkg/enumconv"
	"github.com/iver-wharf/wharf-valconv/pkg/valconv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/guregu/null.v4"
)

var errNoMatch = errors.New("no label matches")

var enumFlags = struct {
	labels     []string
	entries    flagtypes.EnumEntryArray
	ignoreCase bool
	fallback   int64
	strict     bool
}{}

var enumCmd = &cobra.Command{
	Use:   "enum",
	Short: "Convert between enum values and labels",
	Long: `Converts between enum values and their text labels, using either an
ordered list of labels, where a label's position is its value, or a table of
explicit value=label entries.`,
}

var enumParseCmd = &cobra.Command{
	Use:   "parse <label>",
	Short: "Print the value of a label in an ordered label list",
	Example: `  wharf-valconv enum parse Blue --labels Red,Green,Blue,Yellow
  wharf-valconv enum parse bLuE --labels Red,Green,Blue,Yellow --ignore-case`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		labels := enumconv.Labels[int64](enumFlags.labels)
		if err := validateIfStrict(labels.Validate(ignoreCase(cmd.Flags()))); err != nil {
			return err
		}
		value, ok := lookupLabels(labels, args[0], ignoreCase(cmd.Flags()))
		if !ok {
			fallback := fallbackFlag(cmd.Flags())
			if !fallback.Valid {
				return fmt.Errorf("%w: %q", errNoMatch, args[0])
			}
			value = fallback.Int64
		}
		label, err := labels.Label(value)
		if err != nil {
			label = enumconv.UnknownLabel
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", value, label)
		return nil
	},
}

var enumLabelCmd = &cobra.Command{
	Use:   "label <value>",
	Short: "Print the label of a value in an ordered label list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := valconv.Parse[int64](args[0])
		if err != nil {
			return err
		}
		label, err := enumconv.Labels[int64](enumFlags.labels).Label(value)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), label)
		return nil
	},
}

var enumTableCmd = &cobra.Command{
	Use:   "table",
	Short: "Convert using a table of value=label entries",
}

var enumTableParseCmd = &cobra.Command{
	Use:   "parse <label>",
	Short: "Print the value of a label in a table of entries",
	Long: `Prints the value of the first entry whose label matches.

If no entry matches and no --fallback is given, the value of the first
entry is used. This mirrors how tables have traditionally been read, but
easily hides typos, so a warning is logged when it happens.`,
	Example: `  wharf-valconv enum table parse Teapot --entry 200=OK --entry 418=Teapot`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		table := enumFlags.entries.Table
		if err := validateIfStrict(table.Validate(ignoreCase(cmd.Flags()))); err != nil {
			return err
		}
		value, ok := lookupTable(table, args[0], ignoreCase(cmd.Flags()))
		if !ok {
			fallback := fallbackFlag(cmd.Flags())
			if fallback.Valid {
				value = fallback.Int64
			} else {
				value = table.ParseOrFirst(args[0])
				log.Warn().
					WithString("label", args[0]).
					WithString("default", table.Label(value)).
					Message("No label matched. Using first entry as default.")
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\n", value, table.Label(value))
		return nil
	},
}

var enumTableLabelCmd = &cobra.Command{
	Use:   "label <value>",
	Short: "Print the label of a value in a table of entries",
	Long: `Prints the label of the first entry with the given value, or "Unknown"
if there is no such entry.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := valconv.Parse[int64](args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), enumFlags.entries.Table.Label(value))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(enumCmd)
	enumCmd.AddCommand(enumParseCmd, enumLabelCmd, enumTableCmd)
	enumTableCmd.AddCommand(enumTableParseCmd, enumTableLabelCmd)

	enumCmd.PersistentFlags().BoolVarP(&enumFlags.ignoreCase, "ignore-case", "i", false, "Compare labels case-insensitively (default from config)")
	enumCmd.PersistentFlags().BoolVar(&enumFlags.strict, "strict", false, "Fail if the labels contain duplicates")

	for _, cmd := range []*cobra.Command{enumParseCmd, enumLabelCmd} {
		cmd.Flags().StringSliceVarP(&enumFlags.labels, "labels", "l", nil, "Comma-separated labels, in enum value order")
		cmd.MarkFlagRequired("labels")
	}
	for _, cmd := range []*cobra.Command{enumTableParseCmd, enumTableLabelCmd} {
		cmd.Flags().VarP(&enumFlags.entries, "entry", "e", "Table entry, can be set multiple times")
		cmd.MarkFlagRequired("entry")
	}
	enumParseCmd.Flags().Int64Var(&enumFlags.fallback, "fallback", 0, "Value to use when no label matches")
	enumTableParseCmd.Flags().Int64Var(&enumFlags.fallback, "fallback", 0, "Value to use when no label matches")
}

func ignoreCase(flags *pflag.FlagSet) bool {
	if flags.Changed("ignore-case") {
		return enumFlags.ignoreCase
	}
	return cfg.Enum.IgnoreCase
}

func fallbackFlag(flags *pflag.FlagSet) null.Int {
	return null.NewInt(enumFlags.fallback, flags.Changed("fallback"))
}

func lookupLabels(labels enumconv.Labels[int64], text string, fold bool) (int64, bool) {
	if fold {
		return labels.LookupFold(text)
	}
	return labels.Lookup(text)
}

func lookupTable(table enumconv.Table[int64], text string, fold bool) (int64, bool) {
	if fold {
		return table.LookupFold(text)
	}
	return table.Lookup(text)
}

func validateIfStrict(errs errutil.Slice) error {
	if len(errs) == 0 {
		return nil
	}
	for _, err := range errs {
		if enumFlags.strict {
			log.Error().Message(err.Error())
		} else {
			log.Warn().Message(err.Error())
		}
	}
	if enumFlags.strict {
		return fmt.Errorf("found %d problems in labels", len(errs))
	}
	return nil
}
