package config

// Package config provides a reusable loader for corexdr configuration files
// and environment variables. It is versioned so that applications can depend
// on a stable API contract.
//
// Version: v0.1.0

import (
	"fmt"

	"github.com/spf13/viper"

	"corexdr/pkg/utils"
)

// Version is the semantic version of this configuration package.
const Version = "v0.1.0"

// Config is the unified configuration for a corexdr client: which network
// to sign for, how defensive the codec is about untrusted input, and the
// transaction builder's defaults.
type Config struct {
	Network struct {
		Passphrase string `mapstructure:"passphrase" json:"passphrase"`
	} `mapstructure:"network" json:"network"`

	Codec struct {
		MaxDepth  int   `mapstructure:"max_depth" json:"max_depth"`
		MaxLength int64 `mapstructure:"max_length" json:"max_length"`
	} `mapstructure:"codec" json:"codec"`

	Builder struct {
		DefaultBaseFee uint32 `mapstructure:"default_base_fee" json:"default_base_fee"`
		DefaultTimeout int64  `mapstructure:"default_timeout_seconds" json:"default_timeout_seconds"`
	} `mapstructure:"builder" json:"builder"`

	Logging struct {
		Level string `mapstructure:"level" json:"level"`
		File  string `mapstructure:"file" json:"file"`
	} `mapstructure:"logging" json:"logging"`
}

// AppConfig holds the configuration loaded via Load or LoadFromEnv.
var AppConfig Config

// Load reads configuration files and merges any environment specific
// overrides. The resulting configuration is stored in AppConfig and
// returned. If env is empty, only the default configuration is loaded.
func Load(env string) (*Config, error) {
	viper.SetConfigName("default")
	viper.AddConfigPath("cmd/config")
	viper.AddConfigPath("config")
	viper.SetConfigType("yaml")
	viper.SetDefault("codec.max_depth", 512)
	viper.SetDefault("codec.max_length", 256*1024*1024)
	viper.SetDefault("builder.default_base_fee", 100)
	viper.SetDefault("builder.default_timeout_seconds", 300)

	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, utils.Wrap(err, "load config")
		}
	}

	if env != "" {
		viper.SetConfigName(env)
		if err := viper.MergeInConfig(); err != nil {
			return nil, utils.Wrap(err, fmt.Sprintf("merge %s config", env))
		}
	}

	viper.AutomaticEnv() // picks up matching process environment variables

	if err := viper.Unmarshal(&AppConfig); err != nil {
		return nil, utils.Wrap(err, "unmarshal config")
	}
	return &AppConfig, nil
}

// LoadFromEnv loads configuration using the COREXDR_ENV environment
// variable.
func LoadFromEnv() (*Config, error) {
	return Load(utils.EnvOrDefault("COREXDR_ENV", ""))
}
