// Package metadata предоставляет функционал для извлечения метаданных из загружаемых аудио файлов
package metadata

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dhowden/tag"
	"github.com/gopxl/beep/mp3"
)

// UnknownArtist подставляется, если исполнителя не удалось определить
const UnknownArtist = "Unknown Artist"

// Tags хранит теги трека
type Tags struct {
	Artist string
	Title  string
	Album  string
	Genre  string
}

// Info содержит теги и физические параметры файла
type Info struct {
	Tags
	Size     int64
	Duration time.Duration
}

// Extractor извлекает метаданные из аудио файлов
type Extractor struct{}

// NewExtractor создает новый экстрактор метаданных
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ReadTags читает теги из io.ReadSeeker.
// Если тегов нет, они восстанавливаются из имени источника.
func (e *Extractor) ReadTags(reader io.ReadSeeker, source string) Tags {
	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return tagsFromName(source)
	}

	m, err := tag.ReadFrom(reader)
	if err != nil {
		return tagsFromName(source)
	}

	tags := Tags{
		Artist: strings.TrimSpace(m.Artist()),
		Title:  strings.TrimSpace(m.Title()),
		Album:  strings.TrimSpace(m.Album()),
		Genre:  strings.TrimSpace(m.Genre()),
	}

	// Недостающие поля берем из имени файла
	fallback := tagsFromName(source)
	if tags.Title == "" {
		tags.Title = fallback.Title
	}
	if tags.Artist == "" {
		tags.Artist = fallback.Artist
	}
	return tags
}

// ReadTagsFromFile читает теги из файла
func (e *Extractor) ReadTagsFromFile(filePath string) Tags {
	file, err := os.Open(filePath)
	if err != nil {
		return tagsFromName(filePath)
	}
	defer file.Close()

	return e.ReadTags(file, filePath)
}

// Duration получает длительность MP3 файла
func (e *Extractor) Duration(filePath string) (time.Duration, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return 0, fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer file.Close()

	streamer, format, err := mp3.Decode(file)
	if err != nil {
		return 0, fmt.Errorf("ошибка декодирования MP3: %w", err)
	}
	defer streamer.Close()

	return format.SampleRate.D(streamer.Len()), nil
}

// Inspect собирает теги, размер и длительность файла
func (e *Extractor) Inspect(filePath string) (*Info, error) {
	stat, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения информации о файле: %w", err)
	}
	if stat.IsDir() {
		return nil, fmt.Errorf("ошибка получения информации о файле: %s является каталогом", filePath)
	}

	duration, err := e.Duration(filePath)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения длительности: %w", err)
	}

	return &Info{
		Tags:     e.ReadTagsFromFile(filePath),
		Size:     stat.Size(),
		Duration: duration,
	}, nil
}

// tagsFromName разбирает имя файла в формате "Artist - Title"
func tagsFromName(source string) Tags {
	fileName := filepath.Base(source)
	name := strings.TrimSuffix(fileName, filepath.Ext(fileName))

	artist, title, ok := strings.Cut(name, " - ")
	if ok {
		return Tags{
			Artist: strings.TrimSpace(artist),
			Title:  strings.TrimSpace(title),
		}
	}

	return Tags{
		Artist: UnknownArtist,
		Title:  name,
	}
}
