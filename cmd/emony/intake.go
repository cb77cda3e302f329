package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/emony/landing/internal/intake"
	"github.com/emony/landing/internal/logger"
	"github.com/emony/landing/internal/submit"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

var intakeFlags struct {
	addr string
}

var intakeCmd = &cobra.Command{
	Use:   "intake",
	Short: "Serve the lead intake API",
	Long: `Serve POST /api/leads/{loan|tester} and GET /healthz.

Posted forms are validated step by step and stored through the configured
sink, which must be nats or redis. Requests are rate limited per client.`,
	RunE: runIntake,
}

func init() {
	intakeCmd.Flags().StringVarP(&intakeFlags.addr, "addr", "a", "", "Listen address (default from intake_addr)")
}

func runIntake(cmd *cobra.Command, args []string) error {
	if cfg.Sink != submit.SinkNATS && cfg.Sink != submit.SinkRedis {
		return fmt.Errorf("intake needs a storing sink (nats or redis), got %q", cfg.Sink)
	}
	addr := cfg.IntakeAddr
	if intakeFlags.addr != "" {
		addr = intakeFlags.addr
	}

	// No TUI owns the terminal here.
	if cfg.LogFile == "" {
		logger.Default.SetOutput(os.Stderr)
	}
	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sink, closer, err := submit.Open(ctx, cfg.SubmitOptions())
	if err != nil {
		return fmt.Errorf("failed to open %s sink: %w", cfg.Sink, err)
	}
	defer func() {
		if err := closer.Close(); err != nil {
			logger.Warn("closing %s sink: %v", cfg.Sink, err)
		}
	}()

	return intake.Serve(ctx, intake.Options{
		Addr:      addr,
		PerMinute: cfg.IntakeRate,
		Sink:      sink,
	})
}
