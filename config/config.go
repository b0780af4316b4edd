// Package config provides viper-backed configuration for taskline tools,
// layering command-line flags over environment variables over an optional
// config file.
package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config wraps a viper instance.
type Config struct {
	v *viper.Viper
}

// New creates an empty Config.
func New() *Config {
	return &Config{v: viper.New()}
}

// Load reads configuration. Both file paths are optional: with an empty
// configFilePath only flags, environment variables and defaults apply.
// Environment variables are matched with the given prefix and with dots in
// keys replaced by underscores, so key "log_level" with prefix "TLID" reads
// TLID_LOG_LEVEL.
func (c *Config) Load(configFilePath, envFilePath, envPrefix string) error {
	if envFilePath != "" {
		if err := godotenv.Load(envFilePath); err != nil {
			return fmt.Errorf("failed to load .env file %s: %w", envFilePath, err)
		}
	}

	c.v.AutomaticEnv()

	if envPrefix != "" {
		c.v.SetEnvPrefix(envPrefix)
	}

	c.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if configFilePath != "" {
		c.v.SetConfigFile(configFilePath)
		if err := c.v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config %s: %w", configFilePath, err)
		}
	}

	return c.v.BindPFlags(pflag.CommandLine)
}

// DefineFlag declares a command-line flag (short and long form) and binds it
// to a configuration key. The flag takes effect once pflag.Parse has run.
func (c *Config) DefineFlag(short, long, configKey string, defaultValue any, usage string) (err error) {
	switch v := defaultValue.(type) {
	case string:
		pflag.StringP(long, short, v, usage)
		err = c.v.BindPFlag(configKey, pflag.Lookup(long))
	case int:
		pflag.IntP(long, short, v, usage)
		err = c.v.BindPFlag(configKey, pflag.Lookup(long))
	case bool:
		pflag.BoolP(long, short, v, usage)
		err = c.v.BindPFlag(configKey, pflag.Lookup(long))
	default:
		err = fmt.Errorf("unsupported flag type for %s", long)
	}
	return
}

// SetDefault sets a fallback value for a key.
func (c *Config) SetDefault(key string, value any) {
	c.v.SetDefault(key, value)
}

// GetString returns the string value for key.
func (c *Config) GetString(key string) string {
	return c.v.GetString(key)
}

// GetInt returns the integer value for key.
func (c *Config) GetInt(key string) int {
	return c.v.GetInt(key)
}

// GetBool returns the boolean value for key.
func (c *Config) GetBool(key string) bool {
	return c.v.GetBool(key)
}
