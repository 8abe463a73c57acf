package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-sonicai/internal/share"
)

// createShareCommand создает команду share с привязкой к экземпляру приложения
func (app *Application) createShareCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "share [trackid]",
		Short: "Copy a share message for the track to the clipboard",
		Long:  `Build a share message for the track and copy it to the system clipboard.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return app.shareTrack(args[0])
		},
	}
}

func (app *Application) shareTrack(trackID string) error {
	track, err := app.Catalog.ByID(trackID)
	if err != nil {
		return fmt.Errorf("ошибка поиска трека: %w", err)
	}

	text, err := share.Copy(track)
	fmt.Printf("📣 %s\n", text)
	if err != nil {
		// Текст уже выведен, его можно скопировать вручную
		fmt.Printf("⚠️ %v\n", err)
		return nil
	}

	fmt.Println("📋 Скопировано в буфер обмена")
	return nil
}
