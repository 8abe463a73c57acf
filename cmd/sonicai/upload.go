package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-sonicai/internal/upload"
	"github.com/hazadus/go-sonicai/internal/utils"
)

const uploadTimeout = 10 * time.Minute

// createUploadCommand создает команду upload с привязкой к экземпляру приложения
func (app *Application) createUploadCommand(ctx context.Context) *cobra.Command {
	var genre, filePath, artist string

	cmd := &cobra.Command{
		Use:   "upload [title]",
		Short: "Upload a track",
		Long: `Upload a track with the given title and genre.
With --file and configured S3 storage the mp3 file is uploaded to the bucket,
otherwise the upload is simulated.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Создаем контекст с таймаутом для загрузки
			uploadCtx, cancel := context.WithTimeout(ctx, uploadTimeout)
			defer cancel()

			if artist == "" {
				artist = app.Config.Profile.DisplayName
			}

			return app.uploadTrack(uploadCtx, upload.Request{
				Title:    args[0],
				Genre:    genre,
				Artist:   artist,
				FilePath: filePath,
			})
		},
	}

	cmd.Flags().StringVar(&genre, "genre", "", "genre of the track")
	cmd.Flags().StringVar(&filePath, "file", "", "path to the mp3 file")
	cmd.Flags().StringVar(&artist, "artist", "", "artist name, defaults to the profile display name")
	_ = cmd.MarkFlagRequired("genre")

	return cmd
}

// uploadTrack загружает трек с отображением прогресса
func (app *Application) uploadTrack(ctx context.Context, req upload.Request) error {
	if req.FilePath != "" && !app.Config.HasS3() {
		fmt.Println("⚠️ S3 не настроен, загрузка файла будет симулирована")
	}

	fmt.Printf("📤 Загружаем трек %q\n", req.Title)
	if req.FilePath != "" {
		fmt.Printf("   Файл: %s\n", req.FilePath)
	}
	if app.Config.HasS3() {
		fmt.Printf("   Бакет: %s\n", app.Config.AwsBucketName)
	}
	fmt.Println()

	started := time.Now()
	result, err := app.Uploads.Upload(ctx, req, func(percent int) {
		fmt.Printf("\r📊 Прогресс: %3d%% | Прошло: %s", percent, utils.FormatDuration(time.Since(started)))
	})
	if err != nil {
		return err
	}

	track := result.Track
	fmt.Printf("\n✅ Трек успешно загружен!\n")
	fmt.Printf("   ID: %s\n", track.ID)
	fmt.Printf("   Название: %s\n", track.Title)
	fmt.Printf("   Исполнитель: %s\n", track.Artist)
	fmt.Printf("   Жанр: %s\n", track.Genre)
	fmt.Printf("   Продолжительность: %s\n", track.Duration)
	if result.Size > 0 {
		fmt.Printf("   Размер: %s\n", utils.FormatBytes(result.Size))
	}
	if result.URL != "" {
		fmt.Printf("   URL: %s\n", result.URL)
	}
	return nil
}
