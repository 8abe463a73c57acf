package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-sonicai/internal/config"
)

// createRootCommand создает корневую команду с настроенными подкомандами
func (app *Application) createRootCommand(ctx context.Context) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sonicai",
		Short: "Browse and play AI-generated music in the terminal",
		Long:  `SonicAI: browse the catalog of AI-generated tracks, manage playlists and play them in the terminal.`,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return app.load()
		},
		// Без подкоманды запускается интерфейс
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.launchTUI()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&app.configPath, "config", config.DefaultPath, "path to the config file")

	// Добавляем команды, передавая в них экземпляр приложения и контекст
	rootCmd.AddCommand(app.createTUICommand())
	rootCmd.AddCommand(app.createListCommand())
	rootCmd.AddCommand(app.createSearchCommand())
	rootCmd.AddCommand(app.createPlayCommand(ctx))
	rootCmd.AddCommand(app.createUploadCommand(ctx))
	rootCmd.AddCommand(app.createShareCommand())

	return rootCmd
}
