// Package config loads the command line tool settings. Values come from
// defaults, then a YAML file, then SECRETSHARE_ environment variables, and
// command line flags override all of them.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

const envPrefix = "SECRETSHARE"

type Config struct {
	Threshold  int    `yaml:"threshold"`
	ShareCount int    `yaml:"share_count"`
	Format     string `yaml:"format"`
	Output     string `yaml:"output"`
	Log        Log    `yaml:"log"`
}

type Log struct {
	Level     string `yaml:"level"`
	LogType   string `yaml:"type"`
	AddSource bool   `yaml:"add_source"`
}

func (c *Config) Default() {
	c.Threshold = 2
	c.ShareCount = 3
	c.Format = "base64"
	c.Output = "text"
	c.Log = Log{
		Level:   "info",
		LogType: "text",
	}
}

// Validate rejects settings no command could run with. Log levels are not
// checked here: unknown levels fall back to info inside the logger.
func (c *Config) Validate() error {
	if c.Threshold < 2 {
		return fmt.Errorf("threshold must be at least 2, got %d", c.Threshold)
	}

	if c.ShareCount < 2 {
		return fmt.Errorf("share count must be at least 2, got %d", c.ShareCount)
	}

	switch c.Format {
	case "base64", "hex":
	default:
		return fmt.Errorf("format must be base64 or hex, got %q", c.Format)
	}

	switch c.Output {
	case "text", "json":
	default:
		return fmt.Errorf("output must be text or json, got %q", c.Output)
	}

	return nil
}

// DefaultPaths lists where Load looks for a config file when no explicit
// path is given, in loading order.
func DefaultPaths() []string {
	paths := []string{"secretshare.yaml"}

	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "secretshare", "config.yaml"))
	}

	return paths
}

// Load builds the effective config. An explicit path must exist; the
// default locations are tried quietly and may all be absent.
func Load(path string) (*Config, error) {
	conf := new(Config)
	conf.Default()

	if path != "" {
		if err := loadFile(conf, path); err != nil {
			return nil, err
		}
	} else {
		for _, candidate := range DefaultPaths() {
			err := loadFile(conf, candidate)
			if os.IsNotExist(err) {
				continue
			}
			if err != nil {
				return nil, err
			}

			break
		}
	}

	if err := loadEnv(conf); err != nil {
		return nil, err
	}

	if err := conf.Validate(); err != nil {
		return nil, err
	}

	return conf, nil
}

func loadFile(conf *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	if err := yaml.Unmarshal(data, conf); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return nil
}

func loadEnv(conf *Config) error {
	if err := envInt(envPrefix+"_THRESHOLD", &conf.Threshold); err != nil {
		return err
	}

	if err := envInt(envPrefix+"_SHARE_COUNT", &conf.ShareCount); err != nil {
		return err
	}

	envString(envPrefix+"_FORMAT", &conf.Format)
	envString(envPrefix+"_OUTPUT", &conf.Output)
	envString(envPrefix+"_LOG_LEVEL", &conf.Log.Level)
	envString(envPrefix+"_LOG_TYPE", &conf.Log.LogType)

	if err := envBool(envPrefix+"_LOG_ADD_SOURCE", &conf.Log.AddSource); err != nil {
		return err
	}

	return nil
}

func envString(key string, target *string) {
	if value, ok := os.LookupEnv(key); ok {
		*target = value
	}
}

func envInt(key string, target *int) error {
	value, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid integer value for %s: %q", key, value)
	}

	*target = parsed
	return nil
}

func envBool(key string, target *bool) error {
	value, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("invalid boolean value for %s: %q", key, value)
	}

	*target = parsed
	return nil
}
