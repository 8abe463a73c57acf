package metadata

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeTempFile создает временный файл с указанным именем и содержимым
func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Ошибка создания тестового файла: %v", err)
	}
	return path
}

func TestReadTagsFromFileWithoutTags(t *testing.T) {
	path := writeTempFile(t, "Artist - Title.mp3", "fake content")

	tags := NewExtractor().ReadTagsFromFile(path)

	if tags.Artist != "Artist" {
		t.Errorf("Ожидался Artist: Artist, получено: %s", tags.Artist)
	}
	if tags.Title != "Title" {
		t.Errorf("Ожидался Title: Title, получено: %s", tags.Title)
	}
}

func TestTagsFromName(t *testing.T) {
	tests := []struct {
		source string
		artist string
		title  string
	}{
		{"/path/to/Artist - Title.mp3", "Artist", "Title"},
		{"/path/to/SimpleTrack.mp3", UnknownArtist, "SimpleTrack"},
		{"/path/to/Artist - Album - Title.mp3", "Artist", "Album - Title"},
		{"Neon Nights.wav", UnknownArtist, "Neon Nights"},
	}

	for _, test := range tests {
		tags := tagsFromName(test.source)
		if tags.Artist != test.artist || tags.Title != test.title {
			t.Errorf("tagsFromName(%s) = %+v, expected %s / %s", test.source, tags, test.artist, test.title)
		}
	}
}

func TestReadTagsMissingFile(t *testing.T) {
	tags := NewExtractor().ReadTagsFromFile("/non/existent/Band - Song.mp3")

	if tags.Artist != "Band" || tags.Title != "Song" {
		t.Errorf("Ожидались теги из имени файла, получено: %+v", tags)
	}
}

func TestReadTagsFromReader(t *testing.T) {
	path := writeTempFile(t, "Test - Song.mp3", "test content")

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Ошибка открытия файла: %v", err)
	}
	defer file.Close()

	tags := NewExtractor().ReadTags(file, path)

	if tags.Artist != "Test" || tags.Title != "Song" {
		t.Errorf("Неожиданные теги: %+v", tags)
	}
}

func TestInspectInvalidMP3(t *testing.T) {
	path := writeTempFile(t, "test.mp3", "test content for file info")

	info, err := NewExtractor().Inspect(path)

	// Файл не является валидным MP3
	if err == nil {
		t.Fatal("Ожидалась ошибка для некорректного MP3 файла")
	}
	if info != nil {
		t.Error("info должен быть nil при ошибке")
	}
	if !strings.Contains(err.Error(), "ошибка получения длительности") {
		t.Errorf("Неожиданное сообщение об ошибке: %v", err)
	}
}

func TestInspectNonExistentFile(t *testing.T) {
	_, err := NewExtractor().Inspect("/non/existent/file.mp3")

	if err == nil {
		t.Fatal("Ожидалась ошибка для несуществующего файла")
	}
	if !strings.Contains(err.Error(), "ошибка получения информации о файле") {
		t.Errorf("Неожиданное сообщение об ошибке: %v", err)
	}
}

func TestInspectDirectory(t *testing.T) {
	if _, err := NewExtractor().Inspect(t.TempDir()); err == nil {
		t.Error("Ожидалась ошибка для каталога")
	}
}

func TestDuration(t *testing.T) {
	path := writeTempFile(t, "test.mp3", "test content")

	duration, err := NewExtractor().Duration(path)

	if err == nil {
		t.Fatal("Ожидалась ошибка для некорректного MP3 файла")
	}
	if !strings.Contains(err.Error(), "ошибка декодирования MP3") {
		t.Errorf("Неожиданное сообщение об ошибке: %v", err)
	}
	if duration != 0 {
		t.Errorf("Ожидалась длительность 0 при ошибке, получено: %v", duration)
	}
}

func TestDurationNonExistentFile(t *testing.T) {
	_, err := NewExtractor().Duration("/non/existent/file.mp3")

	if err == nil {
		t.Fatal("Ожидалась ошибка для несуществующего файла")
	}
	if !strings.Contains(err.Error(), "ошибка открытия файла") {
		t.Errorf("Неожиданное сообщение об ошибке: %v", err)
	}
}
