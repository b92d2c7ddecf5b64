// Package config provides configuration management for the Scopus processor.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/khazar-analytics/scopus-processor/internal/observability"
)

// Config holds all configuration for the Scopus processor.
type Config struct {
	// Matching contains duplicate detection and keyword settings.
	Matching MatchingConfig `mapstructure:"matching"`
	// Report contains output report settings.
	Report ReportConfig `mapstructure:"report"`
	// Logging contains structured logging settings.
	Logging observability.LoggingConfig `mapstructure:"logging"`
}

// MatchingConfig holds the tunables of the reconciliation pipeline.
type MatchingConfig struct {
	// Threshold is the fuzzy duplicate similarity threshold, 0-100.
	Threshold int `mapstructure:"threshold" validate:"gte=0,lte=100"`

	// AffiliationKeywords identify the target institution inside an
	// affiliation block (case-insensitive substrings).
	AffiliationKeywords []string `mapstructure:"affiliation_keywords"`

	// AffiliationExcludeKeywords veto an affiliation block even when an
	// inclusion keyword matches.
	AffiliationExcludeKeywords []string `mapstructure:"affiliation_exclude_keywords"`

	// TitleExcludeKeywords drop records whose title contains any of these
	// substrings (corrections, errata and similar re-publications).
	TitleExcludeKeywords []string `mapstructure:"title_exclude_keywords"`
}

// ReportConfig holds settings for the rendered XLSX report.
type ReportConfig struct {
	// HighlightColor is the RGB hex fill for department cells that need
	// manual review.
	HighlightColor string `mapstructure:"highlight_color" validate:"hexadecimal,len=6"`

	// ReferenceSheet is the sheet name read from the reference corpus file.
	ReferenceSheet string `mapstructure:"reference_sheet"`
}

// Load reads configuration from defaults, an optional config.yaml and
// SCOPUS_-prefixed environment variables, then validates it.
func Load() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix("SCOPUS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// No config file is fine; defaults and env vars apply.
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

// Validate checks configuration bounds.
func (c *Config) Validate() error {
	return validator.New().Struct(c)
}

// setDefaults carries the tool's ambient constants: the default threshold,
// the institution keyword list and the correction/erratum title excludes.
func setDefaults(v *viper.Viper) {
	v.SetDefault("matching.threshold", 90)
	v.SetDefault("matching.affiliation_keywords", []string{
		"Khazar University",
		"Khazar",
		"Xəzər Universiteti",
	})
	v.SetDefault("matching.affiliation_exclude_keywords", []string{})
	v.SetDefault("matching.title_exclude_keywords", []string{
		"Correction:",
		"Correction to:",
		"Erratum to",
		"Corrigendum to",
		"<FOR VERIFICATION>",
	})

	v.SetDefault("report.highlight_color", "FFFF00")
	v.SetDefault("report.reference_sheet", "Last")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
	v.SetDefault("logging.output", "stderr")
}
