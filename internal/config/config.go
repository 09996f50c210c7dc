// SPDX-License-Identifier: EPL-2.0

// Package config loads processwav settings from defaults, an optional config
// file, PROCESSWAV_* environment variables and command line flags.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every key when reading environment variables,
// e.g. PROCESSWAV_FRAME_MS.
const EnvPrefix = "PROCESSWAV"

// Keys
const (
	KeyFrameMS      = "frame_ms"
	KeyThreshold    = "threshold"
	KeyResampleRate = "resample_rate"
	KeyVerbose      = "verbose"
)

var (
	ErrReadConfig          = errors.New("error reading config file")
	ErrInvalidConfig       = errors.New("invalid configuration")
	ErrInvalidFrameMS      = errors.New("frame_ms must be positive")
	ErrInvalidThreshold    = errors.New("threshold must not be negative")
	ErrInvalidResampleRate = errors.New("resample_rate must not be negative")
)

type Config struct {
	FrameMS      int     `mapstructure:"frame_ms"`
	Threshold    float64 `mapstructure:"threshold"`
	ResampleRate int     `mapstructure:"resample_rate"`
	Verbose      bool    `mapstructure:"verbose"`
}

// New returns a viper instance with defaults and environment lookup set up.
// Flags are bound by the caller.
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyFrameMS, 10)
	v.SetDefault(KeyThreshold, 0.01)
	v.SetDefault(KeyResampleRate, 0)
	v.SetDefault(KeyVerbose, false)
}

// Load reads the optional config file at path into v and returns the
// validated settings. An empty path skips the file.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("%w %s: %w", ErrReadConfig, path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.FrameMS <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidFrameMS, c.FrameMS)
	}

	if c.Threshold < 0 {
		return fmt.Errorf("%w: %g", ErrInvalidThreshold, c.Threshold)
	}

	if c.ResampleRate < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidResampleRate, c.ResampleRate)
	}

	return nil
}

// FrameDuration is the analysis frame length.
func (c *Config) FrameDuration() time.Duration {
	return time.Duration(c.FrameMS) * time.Millisecond
}
