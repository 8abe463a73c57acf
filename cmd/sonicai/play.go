package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-sonicai/internal/player"
	"github.com/hazadus/go-sonicai/internal/utils"
)

// createPlayCommand создает команду play с привязкой к экземпляру приложения
func (app *Application) createPlayCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "play [trackid]",
		Short: "Play a track by its ID",
		Long:  `Simulate playback of a catalog track in the console. Space pauses, q stops.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Включаем raw режим для чтения одиночных клавиш
			enableRawMode()
			defer disableRawMode()

			// Чтение клавиш прекращается вместе с воспроизведением
			keysCtx, cancel := context.WithCancel(ctx)
			defer cancel()

			return app.playTrack(ctx, args[0], readKeys(keysCtx, os.Stdin))
		},
	}
}

func (app *Application) playTrack(ctx context.Context, trackID string, keys <-chan byte) error {
	track, err := app.Catalog.ByID(trackID)
	if err != nil {
		return fmt.Errorf("ошибка поиска трека: %w", err)
	}

	fmt.Printf("🎵 Сейчас играет:\n")
	fmt.Printf("   ID: %s\n", track.ID)
	fmt.Printf("   Исполнитель: %s\n", track.Artist)
	fmt.Printf("   Название: %s\n", track.Title)
	fmt.Printf("   Жанр: %s\n", track.Genre)
	fmt.Printf("   Продолжительность: %s\n", track.Duration)
	if plays := utils.FormatPlays(track.Plays); plays != "" {
		fmt.Printf("   %s\n", plays)
	}
	fmt.Println()
	fmt.Printf("🎮 Управление:\n")
	fmt.Printf("   [Пробел] - пауза/воспроизведение\n")
	fmt.Printf("   [q] или [Ctrl+C] - остановить и выйти\n")
	fmt.Println()

	sub := app.Player.Subscribe()
	defer app.Player.Unsubscribe(sub)

	app.Player.Play(track)

	// Главный цикл обработки событий
	for {
		select {
		case status := <-sub.Updates:
			displayProgress(status)

		case <-sub.Finished:
			fmt.Println("\n✅ Воспроизведение завершено")
			return nil

		case key, ok := <-keys:
			if !ok {
				keys = nil
				continue
			}
			switch key {
			case ' ', '\n', '\r':
				app.Player.TogglePlayPause()
			case 'q':
				app.Player.Pause()
				fmt.Println("\n⏹️  Воспроизведение остановлено пользователем")
				return nil
			}

		case <-sub.Done:
			return nil

		case <-ctx.Done():
			app.Player.Pause()
			fmt.Println("\n⏹️  Воспроизведение остановлено")
			return nil
		}
	}
}

// displayProgress отображает прогресс воспроизведения
func displayProgress(status player.Status) {
	if status.Track == nil {
		return
	}

	icon := "▶️"
	if !status.Playing {
		icon = "⏸️"
	}

	total := status.Track.Duration
	if status.Duration > 0 {
		total = player.FormatTime(status.Duration.Seconds())
	}

	fmt.Printf("\r\033[K%s  %s / %s | %.1f%%",
		icon,
		player.FormatTime(status.Elapsed.Seconds()),
		total,
		status.Progress)
}
