package main

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/iver-wharf/wharf-valconv/internal/errutil"
	"github.com/iver-wharf/wharf-valconv/pkg/nodetext"
	"github.com/iver-wharf/wharf-valconv/pkg/nodetext/yamlnode"
	"github.com/iver-wharf/wharf-valconv/pkg/numfmt"
	"github.com/rogpeppe/go-internal/lockedfile"
	"github.com/spf13/cobra"
	"gopkg.in/typ.v4/slices"
	"gopkg.in/yaml.v3"
)

var (
	colorChangePath = color.New(color.FgHiMagenta)
	colorChangeOld  = color.New(color.FgHiBlack, color.CrossedOut)
	colorChangeNew  = color.New(color.FgGreen)
)

var normalizeFlags = struct {
	write bool
}{}

var normalizeCmd = &cobra.Command{
	Use:   "normalize [file]",
	Short: "Rewrite all floating-point values in a YAML document in canonical form",
	Long: `Reads a YAML document from the file, or from stdin if no file is given,
and formats every floating-point value the same way as "wharf-valconv format".
The resulting document is printed to stdout, or written back to the file if
--write is set. All documents of a multi-document stream are normalized and
written back.

Floats that become integral, such as 1.0, are written without a decimal
point and are therefore read back as integers by YAML parsers.`,
	Args: cobra.MaximumNArgs(1),
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return []string{"yml", "yaml"}, cobra.ShellCompDirectiveFilterFileExt
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		path := slices.SafeGet(args, 0)
		if normalizeFlags.write && (path == "" || path == "-") {
			return fmt.Errorf("--write requires a file argument")
		}
		input, err := readInput(cmd.InOrStdin(), path)
		if err != nil {
			return err
		}

		docs, err := yamlnode.DecodeDocuments(bytes.NewReader(input))
		if err != nil {
			return fmt.Errorf("parse YAML: %w", err)
		}
		if len(docs) == 0 {
			return yamlnode.ErrMissingDoc
		}

		opts := formatOptions(cmd.Flags())
		var changes []floatChange
		var errs errutil.Slice
		for i, doc := range docs {
			docChanges, docErrs := normalizeFloats(doc, opts)
			if len(docs) > 1 {
				docChanges, docErrs = scopeDocument(docChanges, docErrs, i)
			}
			changes = append(changes, docChanges...)
			errs = append(errs, docErrs...)
		}
		errutil.SortByPos(errs)
		for _, err := range errs {
			log.Warn().Message(errutil.Describe(err))
		}
		logChanges(changes)

		var buf bytes.Buffer
		if err := yamlnode.Encode(&buf, docs...); err != nil {
			return fmt.Errorf("encode YAML: %w", err)
		}
		if !normalizeFlags.write {
			_, err := cmd.OutOrStdout().Write(buf.Bytes())
			return err
		}
		if len(changes) == 0 {
			log.Info().WithString("file", path).Message("Already normalized.")
			return nil
		}
		if err := lockedfile.Write(path, &buf, 0644); err != nil {
			return err
		}
		log.Info().
			WithString("file", path).
			WithInt("changes", len(changes)).
			Message("Wrote normalized document.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(normalizeCmd)
	addFormatFlags(normalizeCmd.Flags())
	normalizeCmd.Flags().BoolVarP(&normalizeFlags.write, "write", "w", false, "Write result back to the file")
}

type floatChange struct {
	path    string
	oldText string
	newText string
}

func normalizeFloats(doc *yaml.Node, opts numfmt.Options) ([]floatChange, errutil.Slice) {
	var changes []floatChange
	var errs errutil.Slice
	yamlnode.Walk(doc, func(path string, node yamlnode.Node) error {
		if node.ShortTag() != yamlnode.ShortTagFloat {
			return nil
		}
		old := node.Value
		value, err := nodetext.Read[float64](node)
		if err != nil {
			errs.Add(errutil.Scope(err, path))
			return nil
		}
		if err := nodetext.Write(node, value, opts); err != nil {
			errs.Add(errutil.Scope(err, path))
			return nil
		}
		if node.Value != old {
			changes = append(changes, floatChange{path, old, node.Value})
		}
		return nil
	})
	return changes, errs
}

// scopeDocument prefixes paths and error scopes with the document index,
// starting at 0.
func scopeDocument(changes []floatChange, errs errutil.Slice, index int) ([]floatChange, errutil.Slice) {
	prefix := strconv.Itoa(index)
	for i := range changes {
		changes[i].path = prefix + errutil.ScopeDelimiter + changes[i].path
	}
	return changes, errutil.ScopeSlice(errs, prefix)
}

func logChanges(changes []floatChange) {
	if len(changes) == 0 {
		log.Debug().Message("No values changed.")
		return
	}
	var longestPath int
	for _, c := range changes {
		if n := utf8.RuneCountInString(c.path); n > longestPath {
			longestPath = n
		}
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "Normalized %d values:\n", len(changes))
	for _, c := range changes {
		spaces := strings.Repeat(" ", longestPath-utf8.RuneCountInString(c.path)+2)
		fmt.Fprintf(&sb, "  %s%s%s  %s\n",
			colorChangePath.Sprint(c.path),
			spaces,
			colorChangeOld.Sprint(c.oldText),
			colorChangeNew.Sprint(c.newText))
	}
	log.Info().Message(strings.TrimSuffix(sb.String(), "\n"))
}

func readInput(stdin io.Reader, path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(stdin)
	}
	return lockedfile.Read(path)
}
