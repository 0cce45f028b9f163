// Package config handles loadview configuration using Viper.
//
// Configuration sources (in priority order):
//  1. Environment variables (LOADVIEW_*)
//  2. Config file (~/.config/loadview/config.yaml)
//  3. Built-in defaults
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"loadview/skeleton"
)

const (
	// DefaultStatusAfter is how long a loading view waits before showing status text.
	DefaultStatusAfter = 2 * time.Second
	// DefaultAddr is the demo backend listen address.
	DefaultAddr = ":8000"
)

// Config holds the loadview configuration.
type Config struct {
	v *viper.Viper
}

// Load reads configuration from the default sources.
func Load() (*Config, error) {
	v := viper.New()
	setDefaults(v)

	home, err := os.UserHomeDir()
	if err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "loadview"))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	bindEnv(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	return &Config{v: v}, nil
}

// LoadFile reads configuration from an explicit file plus the environment.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	bindEnv(v)

	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}

	return &Config{v: v}, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("skeleton.lines", skeleton.DefaultLineCount)
	v.SetDefault("skeleton.avatar", false)
	v.SetDefault("skeleton.label", skeleton.DefaultLabel)
	v.SetDefault("skeleton.status_after", DefaultStatusAfter)
	v.SetDefault("server.addr", DefaultAddr)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
}

func bindEnv(v *viper.Viper) {
	v.SetEnvPrefix("LOADVIEW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// reduce_motion has no default, so AutomaticEnv alone would not see it in IsSet.
	_ = v.BindEnv("reduce_motion")
}

// Set overrides a configuration value for this process.
func (c *Config) Set(key string, value interface{}) {
	c.v.Set(key, value)
}

// Skeleton returns the widget options. A negative line count is clamped to
// zero; the boolean reports whether that happened.
func (c *Config) Skeleton() (skeleton.Options, bool) {
	return skeleton.Options{
		LineCount:  c.v.GetInt("skeleton.lines"),
		ShowAvatar: c.v.GetBool("skeleton.avatar"),
		Label:      c.v.GetString("skeleton.label"),
	}.Normalize()
}

// StatusAfter returns the delay before status text appears.
func (c *Config) StatusAfter() time.Duration {
	d := c.v.GetDuration("skeleton.status_after")
	if d <= 0 {
		return DefaultStatusAfter
	}
	return d
}

// ReduceMotion returns the configured reduced motion preference. ok is false
// when nothing is configured.
func (c *Config) ReduceMotion() (value bool, ok bool) {
	if !c.v.IsSet("reduce_motion") {
		return false, false
	}
	return c.v.GetBool("reduce_motion"), true
}

// Addr returns the backend listen address.
func (c *Config) Addr() string {
	return c.v.GetString("server.addr")
}

// LogLevel returns the configured log level.
func (c *Config) LogLevel() string {
	return c.v.GetString("log.level")
}

// LogFormat returns the configured log format.
func (c *Config) LogFormat() string {
	return c.v.GetString("log.format")
}
