package main

import (
	"context"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/emony/landing/internal/logger"
	"github.com/emony/landing/internal/tui/theme"
	"github.com/spf13/cobra"
)

const (
	logoText1 = "█▀▀ █▀▄▀█ █▀█ █▄ █ █▄█"
	logoText2 = "██▄ █ ▀ █ █▄█ █ ▀█  █ "
)

// Version set via ldflags during build
var version = "dev"

func main() {
	// Ensure logger is closed on exit
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:               "emony",
	Short:             "Emony P2P landing page in the terminal",
	PersistentPreRunE: loadConfig,
	RunE:              runLanding,
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	t := theme.NewEmony()
	line1 := theme.ApplyGradient(logoText1, t.Primary, t.Secondary)
	line2 := theme.ApplyGradient(logoText2, t.Primary, t.Secondary)
	return strings.Join([]string{line1, line2}, "\n")
}

func init() {
	rootCmd.Long = renderLogo() + `

emony shows the Emony P2P landing page in the terminal. Visitors browse the
page, follow the calls-to-action and fill the loan request or user testing
forms in a modal. Completed forms are handed to a lead sink: a simulated
submission, the embedded NATS JetStream store, Redis or a remote intake
server started with 'emony intake'.`

	rootCmd.PersistentFlags().StringVar(&globalFlags.variant, "variant", "", "Landing page variant (hibrido, venta, testing)")
	rootCmd.PersistentFlags().StringVar(&globalFlags.sink, "sink", "", "Lead sink (simulated, nats, redis, http)")
	rootCmd.PersistentFlags().StringVar(&globalFlags.dataDir, "data-dir", "", "Data directory for NATS storage")
	rootCmd.PersistentFlags().StringVar(&globalFlags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&globalFlags.logFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().DurationVar(&globalFlags.delay, "delay", 0, "Simulated submission delay (e.g. 900ms)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(printCmd)
	rootCmd.AddCommand(leadsCmd)
	rootCmd.AddCommand(intakeCmd)
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(variantsCmd)
}
