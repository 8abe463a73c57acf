package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"
)

func TestLoadConfigFromFile(t *testing.T) {
	// Создаем временный файл конфигурации
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	// Создаем тестовую конфигурацию
	testConfig := Config{
		CatalogPath:    "~/music/catalog.yaml",
		LogFile:        "/tmp/sonicai.log",
		Volume:         40,
		TickIntervalMs: 250,
		Profile: Profile{
			Username:    "tester",
			DisplayName: "Test User",
			Email:       "tester@example.com",
		},
		AwsBucketName: "test-bucket",
		AwsAccessKey:  "test-access-key",
		AwsSecretKey:  "test-secret-key",
		AwsRegion:     "us-east-1",
		AwsEndpoint:   "https://s3.amazonaws.com",
	}

	// Сериализуем конфигурацию в YAML
	data, err := yaml.Marshal(testConfig)
	if err != nil {
		t.Fatalf("Ошибка сериализации конфигурации: %v", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		t.Fatalf("Ошибка записи файла конфигурации: %v", err)
	}

	loadedConfig, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	if loadedConfig.AwsBucketName != testConfig.AwsBucketName {
		t.Errorf("Ожидался AwsBucketName: %s, получено: %s", testConfig.AwsBucketName, loadedConfig.AwsBucketName)
	}
	if loadedConfig.AwsEndpoint != testConfig.AwsEndpoint {
		t.Errorf("Ожидался AwsEndpoint: %s, получено: %s", testConfig.AwsEndpoint, loadedConfig.AwsEndpoint)
	}
	if loadedConfig.Volume != 40 {
		t.Errorf("Ожидалась громкость 40, получено: %d", loadedConfig.Volume)
	}
	if loadedConfig.TickInterval() != 250*time.Millisecond {
		t.Errorf("Ожидался период 250ms, получено: %v", loadedConfig.TickInterval())
	}
	if loadedConfig.Profile != testConfig.Profile {
		t.Errorf("Ожидался профиль %+v, получено: %+v", testConfig.Profile, loadedConfig.Profile)
	}
	if !loadedConfig.HasS3() {
		t.Error("S3 должно считаться настроенным")
	}

	// Проверяем, что CatalogPath раскрывается с тильдой
	home, _ := os.UserHomeDir()
	expectedCatalogPath := filepath.Join(home, "music", "catalog.yaml")
	if loadedConfig.CatalogPath != expectedCatalogPath {
		t.Errorf("Ожидался CatalogPath: %s, получено: %s", expectedCatalogPath, loadedConfig.CatalogPath)
	}
}

func TestDefaultConfig(t *testing.T) {
	// Создаем минимальную конфигурацию
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "minimal_config.yaml")

	minimalConfig := map[string]string{
		"aws_bucket_name": "test-bucket",
	}

	data, err := yaml.Marshal(minimalConfig)
	if err != nil {
		t.Fatalf("Ошибка сериализации конфигурации: %v", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		t.Fatalf("Ошибка записи файла конфигурации: %v", err)
	}

	loadedConfig, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	// Незаданные ключи получают значения по умолчанию
	if loadedConfig.Volume != defaultVolume {
		t.Errorf("Ожидалась громкость по умолчанию %d, получено: %d", defaultVolume, loadedConfig.Volume)
	}
	if loadedConfig.TickIntervalMs != defaultTickIntervalMs {
		t.Errorf("Ожидался период по умолчанию %d, получено: %d", defaultTickIntervalMs, loadedConfig.TickIntervalMs)
	}
	if loadedConfig.Profile.Username != "music_lover" {
		t.Errorf("Ожидался профиль по умолчанию, получено: %+v", loadedConfig.Profile)
	}
	if !loadedConfig.Profile.Notifications.NewReleases || loadedConfig.Profile.Notifications.Social {
		t.Errorf("Неожиданные уведомления по умолчанию: %+v", loadedConfig.Profile.Notifications)
	}
	if !loadedConfig.Profile.Privacy.PublicProfile || loadedConfig.Profile.Privacy.ShowListeningHistory {
		t.Errorf("Неожиданная приватность по умолчанию: %+v", loadedConfig.Profile.Privacy)
	}

	// Без региона S3 не используется
	if loadedConfig.HasS3() {
		t.Error("S3 не должно считаться настроенным без региона")
	}
}

func TestZeroVolumeIsKept(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	err := os.WriteFile(configPath, []byte("volume: 0\n"), 0644)
	if err != nil {
		t.Fatalf("Ошибка записи файла конфигурации: %v", err)
	}

	loadedConfig, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}
	if loadedConfig.Volume != 0 {
		t.Errorf("Явно заданная нулевая громкость должна сохраниться, получено: %d", loadedConfig.Volume)
	}
}

func TestLoadConfigInvalidVolume(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "config.yaml")

	err := os.WriteFile(configPath, []byte("volume: 150\n"), 0644)
	if err != nil {
		t.Fatalf("Ошибка записи файла конфигурации: %v", err)
	}

	if _, err := LoadConfig(configPath); err == nil {
		t.Error("Ожидалась ошибка для громкости вне диапазона")
	}
}

func TestLoadConfigNonExistentFile(t *testing.T) {
	// Отсутствующий файл не считается ошибкой
	loadedConfig, err := LoadConfig("/non/existent/config.yaml")
	if err != nil {
		t.Fatalf("Неожиданная ошибка: %v", err)
	}

	if *loadedConfig != *Default() {
		t.Errorf("Ожидалась конфигурация по умолчанию, получено: %+v", loadedConfig)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "invalid_config.yaml")

	invalidYAML := `aws_bucket_name: "test-bucket"
aws_access_key: "test-key"
invalid_field: [unclosed array
`
	err := os.WriteFile(configPath, []byte(invalidYAML), 0644)
	if err != nil {
		t.Fatalf("Ошибка записи файла конфигурации: %v", err)
	}

	_, err = LoadConfig(configPath)
	if err == nil {
		t.Fatal("Ожидалась ошибка при загрузке некорректного YAML")
	}

	if !strings.Contains(err.Error(), "yaml") {
		t.Errorf("Неожиданное сообщение об ошибке: %v", err)
	}
}

func TestExpandHome(t *testing.T) {
	home, _ := os.UserHomeDir()

	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"/abs/path", "/abs/path"},
		{"~/.sonicai", filepath.Join(home, ".sonicai")},
		{"relative/~/path", "relative/~/path"},
	}

	for _, test := range tests {
		result, err := ExpandHome(test.input)
		if err != nil {
			t.Fatalf("ExpandHome(%s): %v", test.input, err)
		}
		if result != test.expected {
			t.Errorf("ExpandHome(%s) = %s; expected %s", test.input, result, test.expected)
		}
	}
}

func TestValidateProfile(t *testing.T) {
	config := Default()
	if err := config.ValidateProfile(); err != nil {
		t.Errorf("Профиль по умолчанию должен быть корректным: %v", err)
	}

	config.Profile.Username = "x"
	if err := config.ValidateProfile(); err == nil {
		t.Error("Ожидалась ошибка для слишком короткого имени пользователя")
	}
}
