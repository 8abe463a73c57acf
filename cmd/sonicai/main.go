package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hazadus/go-sonicai/internal/catalog"
	"github.com/hazadus/go-sonicai/internal/config"
	"github.com/hazadus/go-sonicai/internal/player"
	"github.com/hazadus/go-sonicai/internal/playlist"
	"github.com/hazadus/go-sonicai/internal/s3"
	"github.com/hazadus/go-sonicai/internal/upload"
)

// Application содержит общее состояние для всех команд
type Application struct {
	Config    *config.Config
	Catalog   *catalog.Catalog
	Playlists *playlist.Store
	Player    *player.Player
	Uploads   *upload.Service

	configPath string
}

// newApplication создает приложение по конфигурации
func newApplication(cfg *config.Config) (*Application, error) {
	app := &Application{Config: cfg}
	if err := app.setup(); err != nil {
		return nil, err
	}
	return app, nil
}

// setup создает каталог, хранилище плейлистов, плеер и сервис загрузки
func (app *Application) setup() error {
	cfg := app.Config

	var err error
	if cfg.CatalogPath != "" {
		if app.Catalog, err = catalog.Load(cfg.CatalogPath); err != nil {
			return fmt.Errorf("ошибка загрузки каталога: %w", err)
		}
	} else {
		app.Catalog = catalog.Default()
	}

	if err := cfg.ValidateProfile(); err != nil {
		log.Printf("⚠️ Профиль в конфигурации заполнен некорректно: %v", err)
	}

	app.Playlists = playlist.NewStore(playlist.WithPlaylists(playlist.DefaultPlaylists(time.Now())...))
	app.Player = player.New(
		player.WithTickInterval(cfg.TickInterval()),
		player.WithVolume(cfg.Volume),
	)

	var files upload.Backend
	if cfg.HasS3() {
		uploader, err := s3.NewUploader(&s3.Config{
			Region:     cfg.AwsRegion,
			AccessKey:  cfg.AwsAccessKey,
			SecretKey:  cfg.AwsSecretKey,
			Endpoint:   cfg.AwsEndpoint,
			BucketName: cfg.AwsBucketName,
		})
		if err != nil {
			return fmt.Errorf("ошибка создания S3 uploader: %w", err)
		}
		files = upload.NewS3(uploader)
	}
	app.Uploads = upload.NewService(upload.NewSimulated(0, 0), files)

	return nil
}

// load читает конфигурацию по пути из флага --config
func (app *Application) load() error {
	cfg, err := config.LoadConfig(app.configPath)
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}
	app.Config = cfg
	return app.setup()
}

// Close освобождает ресурсы приложения
func (app *Application) Close() {
	if app.Player != nil {
		_ = app.Player.Close()
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := &Application{configPath: config.DefaultPath}
	defer app.Close()

	rootCmd := app.createRootCommand(ctx)
	if err := rootCmd.Execute(); err != nil {
		app.Close()
		stop()
		log.Fatal(err)
	}
}
