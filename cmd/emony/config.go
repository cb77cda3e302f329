package main

import (
	"fmt"
	"time"

	"github.com/emony/landing/internal/config"
	"github.com/emony/landing/internal/logger"
	"github.com/spf13/cobra"
)

var globalFlags struct {
	variant  string
	sink     string
	dataDir  string
	logLevel string
	logFile  string
	delay    time.Duration
}

// cfg is the configuration shared by every command, loaded before it runs.
var cfg *config.Config

// loadConfig reads .env, the config files and the environment, applies the
// flags the user set, validates the result and configures the logger.
func loadConfig(cmd *cobra.Command, args []string) error {
	if err := config.LoadDotEnv(".env"); err != nil {
		return err
	}

	loaded, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("variant") {
		loaded.Variant = globalFlags.variant
	}
	if flags.Changed("sink") {
		loaded.Sink = globalFlags.sink
	}
	if flags.Changed("data-dir") {
		loaded.DataDir = globalFlags.dataDir
	}
	if flags.Changed("log-level") {
		loaded.LogLevel = globalFlags.logLevel
	}
	if flags.Changed("log-file") {
		loaded.LogFile = globalFlags.logFile
	}
	if flags.Changed("delay") {
		loaded.SubmitDelay = globalFlags.delay
	}

	if err := loaded.Validate(); err != nil {
		return err
	}
	if err := logger.Configure(loaded.LogLevel, loaded.LogFile); err != nil {
		return fmt.Errorf("failed to configure logger: %w", err)
	}

	cfg = loaded
	return nil
}
