package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NovaNexusIO/HelpMate/internal/config"
	"github.com/NovaNexusIO/HelpMate/internal/i18n"
)

var rootCmd = &cobra.Command{
	Use:   "helpmate",
	Short: "Community assistant",
	Long:  "HelpMate: neighbours helping neighbours. Runs the first-run slides and community pledge, then the app.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("lang", "", "Content language, e.g. en or es (overrides HELPMATE_LANG)")
	rootCmd.PersistentFlags().String("log-file", "", "Write diagnostic logs to this file (overrides HELPMATE_LOG_FILE)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (overrides HELPMATE_LOG_LEVEL)")
	rootCmd.PersistentFlags().Bool("reduced-motion", false, "Disable slide animations (overrides HELPMATE_REDUCED_MOTION)")
	rootCmd.Flags().Bool("no-splash", false, "Start directly on the first slide")

	rootCmd.AddCommand(slidesCmd)
	rootCmd.AddCommand(pledgeCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfig loads the environment (and .env) and applies any flags the
// user set explicitly, which take precedence.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(config.DefaultEnvFile)
	if err != nil {
		return config.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("lang") {
		cfg.Language, _ = flags.GetString("lang")
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("reduced-motion") {
		cfg.ReducedMotion, _ = flags.GetBool("reduced-motion")
	}
	return cfg, nil
}

// resolveTranslator returns the translator for the configured language.
func resolveTranslator(cfg config.Config) (i18n.Translator, error) {
	bundle, err := i18n.Load()
	if err != nil {
		return nil, fmt.Errorf("load catalogs: %w", err)
	}
	tr, err := bundle.Translator(cfg.Language)
	if err != nil {
		return nil, fmt.Errorf("select language: %w", err)
	}
	return tr, nil
}
