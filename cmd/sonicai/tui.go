package main

import (
	"github.com/spf13/cobra"

	"github.com/hazadus/go-sonicai/internal/tui"
	tuiapp "github.com/hazadus/go-sonicai/internal/tui/app"
)

// createTUICommand создает команду tui с привязкой к экземпляру приложения
func (app *Application) createTUICommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch TUI (Terminal User Interface)",
		Long:  `Launch interactive terminal user interface for browsing, playlists and playback.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.launchTUI()
		},
	}
}

func (app *Application) launchTUI() error {
	tuiApp := tui.NewApp(tuiapp.Deps{
		Catalog:   app.Catalog,
		Playlists: app.Playlists,
		Player:    app.Player,
		Uploads:   app.Uploads,
		Profile:   app.Config.Profile,
	}, app.Config.LogFile)

	return tuiApp.Run()
}
