package flagtypes

import (
	"errors"
	"strings"

	"github.com/iver-wharf/wharf-core/pkg/logger"
	"github.com/iver-wharf/wharf-valconv/pkg/enumconv"
	"github.com/spf13/cobra"
)

// The first entry per level is its canonical name.
var logLevelTable = enumconv.Table[logger.Level]{
	{Value: logger.LevelDebug, Label: "debug"},
	{Value: logger.LevelDebug, Label: "5"},
	{Value: logger.LevelDebug, Label: "d"},
	{Value: logger.LevelDebug, Label: "debugging"},
	{Value: logger.LevelInfo, Label: "info"},
	{Value: logger.LevelInfo, Label: "4"},
	{Value: logger.LevelInfo, Label: "i"},
	{Value: logger.LevelInfo, Label: "information"},
	{Value: logger.LevelWarn, Label: "warn"},
	{Value: logger.LevelWarn, Label: "3"},
	{Value: logger.LevelWarn, Label: "w"},
	{Value: logger.LevelWarn, Label: "warning"},
	{Value: logger.LevelWarn, Label: "warnings"},
	{Value: logger.LevelError, Label: "error"},
	{Value: logger.LevelError, Label: "2"},
	{Value: logger.LevelError, Label: "e"},
	{Value: logger.LevelError, Label: "errors"},
	{Value: logger.LevelPanic, Label: "panic"},
	{Value: logger.LevelPanic, Label: "1"},
	{Value: logger.LevelPanic, Label: "p"},
	{Value: logger.LevelPanic, Label: "panics"},
}

// LogLevel is a flag for the logging level, accepting names, abbreviations,
// and numbers, such as "debug", "d", or "5".
type LogLevel logger.Level

// Level returns the flag value as a logger.Level.
func (l LogLevel) Level() logger.Level {
	return logger.Level(l)
}

// String implements the pflag.Value and fmt.Stringer interfaces.
func (l *LogLevel) String() string {
	return logLevelTable.Label(l.Level())
}

// Set implements the pflag.Value interface.
func (l *LogLevel) Set(val string) error {
	level, ok := logLevelTable.LookupFold(val)
	if !ok {
		// Errors shouldn't have mutliple lines, but as this is solely for
		// pflag.Value usage then this is an exception.
		return errors.New(`invalid logging level, possible values:
	5  d  debug  debugging
	4  i  info   information
	3  w  warn   warning      warnings
	2  e  error  errors
	1  p  panic  panics`)
	}
	*l = LogLevel(level)
	return nil
}

// Type implements the pflag.Value interface.
func (l *LogLevel) Type() string {
	return "loglevel"
}

// CompleteLogLevel returns the canonical level names for shell completion.
func CompleteLogLevel(_ *cobra.Command, _ []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	descriptions := map[logger.Level]string{
		logger.LevelDebug: "Includes all logs",
		logger.LevelInfo:  "Includes INFO, WARN, ERROR, and PANIC logs (default)",
		logger.LevelWarn:  "Includes WARN, ERROR, and PANIC logs",
		logger.LevelError: "Includes ERROR, and PANIC logs",
		logger.LevelPanic: "Silent, except for PANIC logs",
	}
	var completions []string
	for _, entry := range logLevelTable {
		if logLevelTable.Label(entry.Value) != entry.Label {
			continue
		}
		if !strings.HasPrefix(entry.Label, strings.ToLower(toComplete)) {
			continue
		}
		completions = append(completions, entry.Label+"\t"+descriptions[entry.Value])
	}
	return completions, cobra.ShellCompDirectiveNoFileComp
}
