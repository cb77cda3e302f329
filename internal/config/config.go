// Package config provides centralized configuration management using Viper.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/emony/landing/internal/logger"
	"github.com/emony/landing/internal/navigate"
	"github.com/emony/landing/internal/page"
	"github.com/emony/landing/internal/submit"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// ErrInvalid wraps every validation failure returned by Validate.
var ErrInvalid = errors.New("invalid config")

const (
	appName   = "emony"
	envPrefix = "EMONY"
)

// Config holds all configuration values for emony.
type Config struct {
	Variant     string        `mapstructure:"variant" yaml:"variant"`
	Sink        string        `mapstructure:"sink" yaml:"sink"`
	SubmitDelay time.Duration `mapstructure:"submit_delay" yaml:"submit_delay"`
	ExternalURL string        `mapstructure:"external_url" yaml:"external_url"`
	DataDir     string        `mapstructure:"data_dir" yaml:"data_dir"`
	RedisAddr   string        `mapstructure:"redis_addr" yaml:"redis_addr"`
	IntakeURL   string        `mapstructure:"intake_url" yaml:"intake_url"`
	IntakeAddr  string        `mapstructure:"intake_addr" yaml:"intake_addr"`
	IntakeRate  int           `mapstructure:"intake_rate" yaml:"intake_rate"`
	LogLevel    string        `mapstructure:"log_level" yaml:"log_level"`
	LogFile     string        `mapstructure:"log_file" yaml:"log_file"`
}

var defaults = map[string]any{
	"variant":      page.DefaultVariant,
	"sink":         submit.SinkSimulated,
	"submit_delay": submit.DefaultDelay,
	"external_url": page.ExternalAppURL,
	"data_dir":     ".emony",
	"redis_addr":   "localhost:6379",
	"intake_url":   "",
	"intake_addr":  ":8080",
	"intake_rate":  30,
	"log_level":    "info",
	"log_file":     "",
}

// Default returns the configuration used when no file or env overrides exist.
func Default() *Config {
	return &Config{
		Variant:     page.DefaultVariant,
		Sink:        submit.SinkSimulated,
		SubmitDelay: submit.DefaultDelay,
		ExternalURL: page.ExternalAppURL,
		DataDir:     ".emony",
		RedisAddr:   "localhost:6379",
		IntakeAddr:  ":8080",
		IntakeRate:  30,
		LogLevel:    "info",
	}
}

// LoadDotEnv loads KEY=VALUE pairs from path into the environment without
// overriding variables that are already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("loading %s: %w", path, err)
}

// Load loads configuration with full precedence:
// ENV vars > project config > XDG global config > defaults.
// CLI flags are applied on top by the commands.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName(appName)

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	for key := range defaults {
		env := envPrefix + "_" + strings.ToUpper(key)
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	if globalPath := GlobalPath(); fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	if projectPath := ProjectPath(); fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}

// Validate checks values that would otherwise fail late, at first use.
func (c *Config) Validate() error {
	if _, err := page.Lookup(c.Variant); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if !submit.ValidSink(c.Sink) {
		return fmt.Errorf("%w: sink %q (want one of %s)", ErrInvalid, c.Sink, strings.Join(submit.Sinks, ", "))
	}
	if c.Sink == submit.SinkHTTP && c.IntakeURL == "" {
		return fmt.Errorf("%w: sink %q needs intake_url", ErrInvalid, c.Sink)
	}
	if err := navigate.Check(c.ExternalURL); err != nil {
		return fmt.Errorf("%w: external_url: %v", ErrInvalid, err)
	}
	if c.Sink == submit.SinkHTTP {
		if err := navigate.Check(c.IntakeURL); err != nil {
			return fmt.Errorf("%w: intake_url: %v", ErrInvalid, err)
		}
	}
	if c.SubmitDelay < 0 {
		return fmt.Errorf("%w: submit_delay must not be negative", ErrInvalid)
	}
	if c.IntakeRate <= 0 {
		return fmt.Errorf("%w: intake_rate must be positive", ErrInvalid)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// SubmitOptions maps the config onto sink options.
func (c *Config) SubmitOptions() submit.Options {
	return submit.Options{
		Sink:      c.Sink,
		Delay:     c.SubmitDelay,
		DataDir:   c.DataDir,
		RedisAddr: c.RedisAddr,
		IntakeURL: c.IntakeURL,
	}
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/emony/emony.yml or $XDG_CONFIG_HOME/emony/emony.yml.
func GlobalPath() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName, appName+".yml")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", appName, appName+".yml")
}

// ProjectPath returns the project-local config path.
func ProjectPath() string {
	return appName + ".yml"
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	path := GlobalPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	return write(path, cfg)
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	return write(ProjectPath(), cfg)
}

func write(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
