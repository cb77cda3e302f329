package main

import (
	"fmt"

	"github.com/emony/landing/internal/page"
	"github.com/spf13/cobra"
)

var variantsCmd = &cobra.Command{
	Use:   "variants",
	Short: "List the landing page variants",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range page.Names() {
			v, err := page.Lookup(name)
			if err != nil {
				return err
			}
			marker := " "
			if name == cfg.Variant {
				marker = "*"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %-8s %s\n", marker, name, v.Sections[0].Title)
		}
		return nil
	},
}
