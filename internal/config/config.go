// Package config loads the rcgtool configuration file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Neumenon/rcg/stream"
)

type Config struct {
	Log     LogConfig     `yaml:"log"`
	Decode  DecodeConfig  `yaml:"decode"`
	Convert ConvertConfig `yaml:"convert"`
}

type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn or error
	Format string `yaml:"format"` // text or json
	File   string `yaml:"file"`   // optional second sink, appended to
}

type DecodeConfig struct {
	StreamingJSON bool `yaml:"streaming_json"`
	LegacyBallVY  bool `yaml:"legacy_ball_vy"` // read ball vy from "vx" in JSON documents
	MaxMessage    int  `yaml:"max_message"`
}

type ConvertConfig struct {
	Format  string `yaml:"format"`  // text, json, binary or msgpack
	Version int    `yaml:"version"` // 0 picks the newest of the format
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Decode: DecodeConfig{
			MaxMessage: stream.DefaultMaxMessage,
		},
		Convert: ConvertConfig{
			Format: "text",
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults.
func Load(configPath string) (*Config, error) {
	config := Default()
	if configPath == "" {
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate checks the enumerated fields.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: log.level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("config: log.format %q", c.Log.Format)
	}
	if c.Decode.MaxMessage <= 0 {
		return fmt.Errorf("config: decode.max_message %d", c.Decode.MaxMessage)
	}
	return nil
}
