package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/emony/landing/internal/logger"
	"github.com/emony/landing/internal/page"
	"github.com/emony/landing/internal/submit"
	"github.com/emony/landing/internal/tui"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Show the landing page (default command)",
	Long: `Show the landing page full screen.

Tab moves between the calls-to-action, enter follows one. Forms open in a
modal; completed forms are handed to the configured lead sink. Links to the
Emony app open in the system browser and end the program.`,
	RunE: runLanding,
}

func runLanding(cmd *cobra.Command, args []string) error {
	variant, err := page.Lookup(cfg.Variant)
	if err != nil {
		return err
	}
	variant = variant.WithExternalURL(cfg.ExternalURL)

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

	result, err := tui.Run(ctx, tui.Options{
		Variant:   variant,
		Submitter: sink,
		Renderer:  page.NewRenderer(page.StyleDark),
	})
	if err != nil {
		return err
	}

	if result.RedirectURL != "" {
		if result.RedirectErr != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "Abre %s en tu navegador.\n", result.RedirectURL)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "Abriendo %s\n", result.RedirectURL)
		}
	}
	return nil
}
