package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NovaNexusIO/HelpMate/internal/content"
)

var pledgeCmd = &cobra.Command{
	Use:   "pledge",
	Short: "Print the community pledge in the selected language",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return fmt.Errorf("resolve config: %w", err)
		}
		tr, err := resolveTranslator(cfg)
		if err != nil {
			return err
		}

		p := content.PledgeText(tr)
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, p.Title)
		fmt.Fprintln(out, p.Subtitle)
		fmt.Fprintln(out)
		fmt.Fprintln(out, p.Heading)
		for _, pt := range p.Points {
			fmt.Fprintf(out, "  • %s\n", pt)
		}
		fmt.Fprintln(out)
		fmt.Fprintln(out, p.Warning)
		return nil
	},
}
