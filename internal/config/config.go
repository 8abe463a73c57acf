// Package config содержит функции для загрузки конфигурации приложения
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hazadus/go-sonicai/internal/validate"
)

// DefaultPath - путь к файлу конфигурации по умолчанию
const DefaultPath = "~/.sonicai"

const (
	defaultVolume         = 75
	defaultTickIntervalMs = 100
)

// Profile содержит настройки профиля пользователя
type Profile struct {
	Username      string        `yaml:"username"`
	DisplayName   string        `yaml:"display_name"`
	Email         string        `yaml:"email"`
	Notifications Notifications `yaml:"notifications"`
	Privacy       Privacy       `yaml:"privacy"`
}

// Notifications содержит подписки на уведомления
type Notifications struct {
	NewReleases     bool `yaml:"new_releases"`
	Recommendations bool `yaml:"recommendations"`
	Social          bool `yaml:"social"`
}

// Privacy содержит настройки приватности профиля
type Privacy struct {
	PublicProfile        bool `yaml:"public_profile"`
	ShowListeningHistory bool `yaml:"show_listening_history"`
}

// Config структура для хранения конфигурации приложения
type Config struct {
	CatalogPath    string  `yaml:"catalog_path"`
	LogFile        string  `yaml:"log_file"`
	Volume         int     `yaml:"volume"`
	TickIntervalMs int     `yaml:"tick_interval_ms"`
	Profile        Profile `yaml:"profile"`

	AwsBucketName string `yaml:"aws_bucket_name"`
	AwsAccessKey  string `yaml:"aws_access_key"`
	AwsSecretKey  string `yaml:"aws_secret_key"`
	AwsRegion     string `yaml:"aws_region"`
	AwsEndpoint   string `yaml:"aws_endpoint"`
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		Volume:         defaultVolume,
		TickIntervalMs: defaultTickIntervalMs,
		Profile: Profile{
			Username:    "music_lover",
			DisplayName: "Music Lover",
			Email:       "user@example.com",
			Notifications: Notifications{
				NewReleases:     true,
				Recommendations: true,
			},
			Privacy: Privacy{
				PublicProfile: true,
			},
		},
	}
}

// LoadConfig загружает конфигурацию приложения из указанного файла.
// Если файла нет, возвращается конфигурация по умолчанию.
func LoadConfig(filePath string) (*Config, error) {
	path, err := ExpandHome(filePath)
	if err != nil {
		return nil, err
	}

	config := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения конфигурации: %w", err)
	}

	// Ключи, которых нет в файле, сохраняют значения по умолчанию
	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("ошибка разбора конфигурации: %w", err)
	}

	if config.TickIntervalMs <= 0 {
		config.TickIntervalMs = defaultTickIntervalMs
	}
	if config.Volume < 0 || config.Volume > 100 {
		return nil, fmt.Errorf("громкость должна быть в диапазоне 0..100, получено %d", config.Volume)
	}

	// Раскрываем тильду в путях
	if config.CatalogPath, err = ExpandHome(config.CatalogPath); err != nil {
		return nil, err
	}
	if config.LogFile, err = ExpandHome(config.LogFile); err != nil {
		return nil, err
	}

	return config, nil
}

// ExpandHome заменяет ведущую тильду на домашний каталог пользователя
func ExpandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return strings.Replace(path, "~", home, 1), nil
}

// TickInterval возвращает период таймера плеера
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.TickIntervalMs) * time.Millisecond
}

// HasS3 сообщает, настроено ли S3-хранилище для загрузок
func (c *Config) HasS3() bool {
	return c.AwsBucketName != "" && c.AwsRegion != ""
}

// ValidateProfile проверяет настройки профиля
func (c *Config) ValidateProfile() error {
	return validate.Profile(c.Profile.Username, c.Profile.DisplayName, c.Profile.Email)
}
