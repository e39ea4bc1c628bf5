package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/NovaNexusIO/HelpMate/internal/app"
	"github.com/NovaNexusIO/HelpMate/internal/logger"
)

// runApp resolves configuration, sets up logging, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return fmt.Errorf("resolve config: %w", err)
	}

	log := logger.New()
	if err := log.Init(cfg.LogLevel, cfg.LogFile); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	tr, err := resolveTranslator(cfg)
	if err != nil {
		return err
	}

	noSplash, _ := cmd.Flags().GetBool("no-splash")
	log.Log.Info("starting helpmate",
		zap.String("version", version),
		zap.String("lang", cfg.Language),
		zap.Bool("reduced_motion", cfg.ReducedMotion),
	)

	return app.Run(app.Options{
		Translator:    tr,
		Logger:        log.Log,
		ReducedMotion: cfg.ReducedMotion,
		SkipSplash:    noSplash,
	})
}
