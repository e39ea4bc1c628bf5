package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NovaNexusIO/HelpMate/internal/content"
)

var slidesCmd = &cobra.Command{
	Use:   "slides",
	Short: "Print the onboarding slides in the selected language",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return fmt.Errorf("resolve config: %w", err)
		}
		tr, err := resolveTranslator(cfg)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		slides := content.Slides(tr)
		for i, s := range slides {
			fmt.Fprintf(out, "── %d/%d  [%s · %s] ──\n", i+1, len(slides), s.Accent, s.Background)
			fmt.Fprintln(out, s.Title)
			fmt.Fprintln(out, s.Description)
			fmt.Fprintln(out)
		}
		return nil
	},
}
