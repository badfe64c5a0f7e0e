package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DefaultSlippage is the fraction applied when the caller does not set one.
const DefaultSlippage = 0.005

// Config holds configuration values loaded from flags, env, or config file.
type Config struct {
	Network  string
	NodeURL  string
	Owner    string
	Slippage float64
	Journal  string
	PGDSN    string
	LogLevel string
}

// Load merges config file, environment variables, and flags into Config.
func Load(cfgFile string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("DIPCOIN")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("network", "testnet")
	v.SetDefault("slippage", DefaultSlippage)
	v.SetDefault("log-level", "info")

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("bind flags: %w", err)
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return Config{}, fmt.Errorf("read config: %w", err)
			}
		}
	}

	cfg := Config{
		Network:  v.GetString("network"),
		NodeURL:  v.GetString("node-url"),
		Owner:    v.GetString("owner"),
		Slippage: v.GetFloat64("slippage"),
		Journal:  v.GetString("journal"),
		PGDSN:    v.GetString("pg-dsn"),
		LogLevel: v.GetString("log-level"),
	}

	if cfg.NodeURL == "" {
		cfg.NodeURL = DefaultNodeURL(cfg.Network)
	}

	return cfg, nil
}
