package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/colorprofile"
	"github.com/emony/landing/internal/page"
	"github.com/spf13/cobra"
)

var printFlags struct {
	width int
	style string
}

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the landing page as a document",
	Long: `Render the whole landing page variant, calls-to-action included, as a
markdown document. Colors are reduced to what the output supports.`,
	RunE: runPrint,
}

func init() {
	printCmd.Flags().IntVarP(&printFlags.width, "width", "w", 80, "Wrap width")
	printCmd.Flags().StringVar(&printFlags.style, "style", page.StyleDark, "Markdown style (dark, light, ascii, notty)")
}

func runPrint(cmd *cobra.Command, args []string) error {
	variant, err := page.Lookup(cfg.Variant)
	if err != nil {
		return err
	}
	variant = variant.WithExternalURL(cfg.ExternalURL)

	switch printFlags.style {
	case page.StyleDark, page.StyleLight, page.StyleASCII, page.StyleNoTTY:
	default:
		return fmt.Errorf("unknown style %q", printFlags.style)
	}

	out := page.NewRenderer(printFlags.style).Markdown(page.Document(variant), printFlags.width)

	w := colorprofile.NewWriter(cmd.OutOrStdout(), os.Environ())
	if _, err := fmt.Fprintln(w, out); err != nil {
		return fmt.Errorf("writing page: %w", err)
	}
	return nil
}
