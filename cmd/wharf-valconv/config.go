package main

import (
	"os"

	"github.com/iver-wharf/wharf-core/v2/pkg/config"
	"github.com/iver-wharf/wharf-valconv/pkg/numfmt"
)

// Config holds all configurable settings for wharf-valconv.
//
// The config is read in the following order:
//
// 1. File: ~/.config/iver-wharf/wharf-valconv/wharf-valconv-config.yml
//
// 2. File: ./wharf-valconv-config.yml
//
// 3. File from environment variable: WHARF_VALCONV_CONFIG
//
// 4. Environment variables, prefixed with WHARF_VALCONV
//
// Each inner struct is represented as a deeper field in the different
// configurations. For YAML they represent deeper nested maps. For environment
// variables they are joined together by underscores.
//
// All environment variables must be uppercased, while YAML files are
// case-insensitive. Keeping camelCasing in YAML config files is recommended
// for consistency.
type Config struct {
	Format FormatConfig
	Enum   EnumConfig
}

// FormatConfig holds the defaults used when formatting numbers. Each can be
// overridden per command using flags.
type FormatConfig struct {
	// Precision is the number of digits after the decimal point, or after the
	// leading digit in scientific notation, before trailing zeros are removed.
	Precision int
	// LowerBound is the magnitude below which numbers are formatted in
	// scientific notation.
	LowerBound float64
	// UpperBound is the magnitude above which numbers are formatted in
	// scientific notation.
	UpperBound float64
}

// Options returns the config as numfmt.Options.
func (c FormatConfig) Options() numfmt.Options {
	return numfmt.Options{
		Precision:  c.Precision,
		LowerBound: c.LowerBound,
		UpperBound: c.UpperBound,
	}
}

// EnumConfig holds the defaults used when converting enum labels.
type EnumConfig struct {
	// IgnoreCase makes label lookups compare ASCII letters
	// case-insensitively.
	IgnoreCase bool
}

// DefaultConfig is the hard-coded default values for wharf-valconv's configs.
var DefaultConfig = Config{
	Format: FormatConfig{
		Precision:  numfmt.DefaultOptions.Precision,
		LowerBound: numfmt.DefaultOptions.LowerBound,
		UpperBound: numfmt.DefaultOptions.UpperBound,
	},
	Enum: EnumConfig{
		IgnoreCase: false,
	},
}

func loadConfig() (Config, error) {
	cfgBuilder := config.NewBuilder(DefaultConfig)

	cfgBuilder.AddConfigYAMLFile("~/.config/iver-wharf/wharf-valconv/wharf-valconv-config.yml")
	cfgBuilder.AddConfigYAMLFile("wharf-valconv-config.yml")
	if cfgFile, ok := os.LookupEnv("WHARF_VALCONV_CONFIG"); ok {
		cfgBuilder.AddConfigYAMLFile(cfgFile)
	}
	cfgBuilder.AddEnvironmentVariables("WHARF_VALCONV")

	var cfg Config
	if err := cfgBuilder.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (cfg *Config) validate() error {
	return cfg.Format.Options().Validate()
}
