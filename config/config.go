// Package config loads the optional generation config. With no config file
// the defaults reproduce the canonical corpus byte for byte.
package config

import (
	"fmt"

	"github.com/TFMV/pqcorpus/pkg/corpus"
	"github.com/spf13/viper"
)

// Config holds the user-adjustable generation knobs.
type Config struct {
	Seed         int64    `mapstructure:"seed"`
	Rows         int      `mapstructure:"rows"`
	RowGroupSize int64    `mapstructure:"row_group_size"`
	Prefix       string   `mapstructure:"prefix"`
	NoDictionary []string `mapstructure:"no_dictionary"`
}

// Default returns the canonical corpus configuration.
func Default() Config {
	return Config{
		Seed:         corpus.DefaultSeed,
		Rows:         corpus.DefaultRows,
		RowGroupSize: corpus.DefaultRowGroupSize,
		Prefix:       corpus.DefaultPrefix,
		NoDictionary: []string{corpus.NoDictColumn},
	}
}

// LoadConfig reads a YAML config file, layering it over the defaults.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	defaults := Default()
	v.SetDefault("seed", defaults.Seed)
	v.SetDefault("rows", defaults.Rows)
	v.SetDefault("row_group_size", defaults.RowGroupSize)
	v.SetDefault("prefix", defaults.Prefix)
	v.SetDefault("no_dictionary", defaults.NoDictionary)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate is a helper to reduce repetition.
func validate(condition bool, format string, a ...any) error {
	if !condition {
		return fmt.Errorf(format, a...)
	}
	return nil
}

// Validate rejects configurations the generator cannot honor.
func (c *Config) Validate() error {
	if err := validate(c.Rows > 0, "rows must be positive, got %d", c.Rows); err != nil {
		return err
	}
	if err := validate(c.RowGroupSize > 0, "row_group_size must be positive, got %d", c.RowGroupSize); err != nil {
		return err
	}
	return validate(c.Prefix != "", "prefix is required")
}
