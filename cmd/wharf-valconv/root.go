package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/iver-wharf/wharf-core/pkg/app"
	"github.com/iver-wharf/wharf-core/pkg/logger"
	"github.com/iver-wharf/wharf-core/pkg/logger/consolepretty"
	"github.com/iver-wharf/wharf-valconv/internal/errutil"
	"github.com/iver-wharf/wharf-valconv/internal/flagtypes"
	"github.com/spf13/cobra"
)

var isLoggingInitialized bool
var loglevel = flagtypes.LogLevel(logger.LevelInfo)

var cfg Config

var rootCmd = &cobra.Command{
	SilenceErrors: true,
	SilenceUsage:  true,
	Use:           "wharf-valconv",
	Short:         "Convert values to and from their canonical text form",
	Long: `Converts numbers and enum labels to and from the canonical text
representation used when storing values in YAML documents.

Numbers are formatted in fixed notation, or in scientific notation when
their magnitude is outside the configured bounds, with trailing zeros
removed.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = loadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		return nil
	},
}

func execute(version app.Version) int {
	rootCmd.Version = versionString(version)
	if err := rootCmd.Execute(); err != nil {
		initLoggingIfNeeded()
		log.Error().Message(errutil.Describe(err))
		return 1
	}
	return 0
}

func versionString(v app.Version) string {
	var sb strings.Builder
	if v.Version != "" {
		sb.WriteString(v.Version)
	} else {
		sb.WriteString("v0.0.0")
	}
	if v.BuildRef != 0 {
		fmt.Fprintf(&sb, " #%d", v.BuildRef)
	}
	if v.BuildGitCommit != "" && v.BuildGitCommit != "HEAD" {
		fmt.Fprintf(&sb, " (%s)", v.BuildGitCommit)
	}
	if v.BuildDate != (time.Time{}) && v.BuildDate.Unix() != 0 {
		sb.WriteString(" built ")
		sb.WriteString(v.BuildDate.Format(time.RFC1123))
	}
	return sb.String()
}

func init() {
	cobra.OnInitialize(initLogging)
	rootCmd.InitDefaultVersionFlag()
	rootCmd.PersistentFlags().Var(&loglevel, "loglevel", "Logging level")
	rootCmd.RegisterFlagCompletionFunc("loglevel", flagtypes.CompleteLogLevel)
}

func initLoggingIfNeeded() {
	if !isLoggingInitialized {
		initLogging()
	}
}

func initLogging() {
	logConfig := consolepretty.DefaultConfig
	if loglevel.Level() != logger.LevelDebug {
		logConfig.DisableCaller = true
		logConfig.DisableDate = true
		logConfig.ScopeMinLengthAuto = false
	}
	logger.AddOutput(loglevel.Level(), consolepretty.New(logConfig))
	log.Debug().WithStringer("loglevel", &loglevel).Message("Setting log-level.")
	isLoggingInitialized = true
}
