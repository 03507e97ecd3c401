package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Config holds the settings of a cssobj run. Values are taken from flags,
// environment variables prefixed with CSSOBJ_, and an optional config
// file, in this order of precedence.
type Config struct {
	Verbose bool     `mapstructure:"verbose"`
	Format  string   `mapstructure:"format"`
	Strict  bool     `mapstructure:"strict"`
	Counted bool     `mapstructure:"counted"`
	Prefix  string   `mapstructure:"prefix"`
	Globals []string `mapstructure:"globals"`
}

// LoadConfig assembles the configuration for cmd.
func LoadConfig(cmd *cobra.Command) (*Config, error) {
	v := viper.New()

	v.SetDefault("format", "text")
	v.SetDefault("strict", false)
	v.SetDefault("counted", false)
	v.SetDefault("prefix", "")

	if file, _ := cmd.Flags().GetString("config"); file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("cssobj")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("CSSOBJ")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}
	for _, name := range []string{"verbose", "format", "strict", "counted", "prefix", "globals"} {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(name, f); err != nil {
				return nil, err
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}
