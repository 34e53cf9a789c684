package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/grindlemire/go-minsize/internal/debug"
	"github.com/grindlemire/go-minsize/internal/layout"
	"github.com/spf13/viper"
)

// config holds settings merged from flags, MINSIZE_* variables and the config file.
type config struct {
	Axis         string `mapstructure:"axis"`
	ClampEmpty   bool   `mapstructure:"clamp_empty"`
	Strict       bool   `mapstructure:"strict"`
	LogLevel     string `mapstructure:"log_level"`
	Capabilities struct {
		Column bool `mapstructure:"column"`
		Row    bool `mapstructure:"row"`
	} `mapstructure:"capabilities"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("axis", "height")
	v.SetDefault("clamp_empty", false)
	v.SetDefault("strict", false)
	v.SetDefault("log_level", "warn")
	v.SetDefault("capabilities.column", true)
	v.SetDefault("capabilities.row", true)

	v.SetEnvPrefix("minsize")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// loadConfig reads the config file, if any, and decodes all settings.
func loadConfig(v *viper.Viper, path string) (config, error) {
	var cfg config
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return cfg, fmt.Errorf("reading config: %w", err)
		}
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	return cfg, nil
}

// logger returns the debug file logger when MINSIZE_DEBUG is set, otherwise
// a logger on errOut at the configured level.
func (c config) logger(errOut io.Writer) (*log.Logger, error) {
	if err := debug.InitFromEnv(); err != nil {
		return nil, err
	}
	if debug.Enabled() {
		return debug.Logger(), nil
	}
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	return debug.New(errOut, level), nil
}

func (c config) measurer(logger *log.Logger) (*layout.Measurer, error) {
	policy := layout.EmptySpacingLiteral
	if c.ClampEmpty {
		policy = layout.EmptySpacingClamp
	}
	return layout.NewMeasurer(
		layout.WithLogger(logger),
		layout.WithCapabilities(layout.StaticCapabilities{
			Column: c.Capabilities.Column,
			Row:    c.Capabilities.Row,
		}),
		layout.WithEmptySpacing(policy),
		layout.WithValidation(c.Strict),
	)
}
