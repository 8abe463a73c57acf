// Package catalog содержит неизменяемый каталог треков и запросы для страниц приложения
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"math/rand/v2"
	"os"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// AllGenres - значение фильтра жанра, при котором показываются все треки
const AllGenres = "All"

// ErrTrackNotFound возвращается, если трек с указанным ID отсутствует в каталоге
var ErrTrackNotFound = errors.New("трек не найден")

//go:embed tracks.yaml
var defaultTracks []byte

// Track описывает запись каталога
type Track struct {
	ID       string `yaml:"id"`
	Title    string `yaml:"title"`
	Artist   string `yaml:"artist"`
	Duration string `yaml:"duration"` // Отображаемая длительность в формате m:ss
	Cover    string `yaml:"cover"`
	Plays    int    `yaml:"plays,omitempty"` // 0 - количество прослушиваний неизвестно
	Genre    string `yaml:"genre,omitempty"`
}

// DurationSeconds разбирает отображаемую длительность трека.
// Возвращает 0, если строка пуста или не распознана.
func (t Track) DurationSeconds() float64 {
	parts := strings.Split(strings.TrimSpace(t.Duration), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0
	}

	total := 0
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n < 0 {
			return 0
		}
		// Минуты и секунды не могут быть больше 59, кроме старшего разряда
		if i > 0 && n > 59 {
			return 0
		}
		total = total*60 + n
	}
	return float64(total)
}

type catalogFile struct {
	Tracks []Track `yaml:"tracks"`
}

// Catalog хранит список треков. После создания не изменяется.
type Catalog struct {
	tracks []Track
	index  map[string]int
}

// New создает каталог из списка треков.
// Треки копируются, ID должны быть уникальными и непустыми.
func New(tracks []Track) (*Catalog, error) {
	c := &Catalog{
		tracks: make([]Track, len(tracks)),
		index:  make(map[string]int, len(tracks)),
	}
	copy(c.tracks, tracks)

	for i, t := range c.tracks {
		if t.ID == "" {
			return nil, fmt.Errorf("трек #%d без ID", i+1)
		}
		if _, ok := c.index[t.ID]; ok {
			return nil, fmt.Errorf("повторяющийся ID трека: %s", t.ID)
		}
		c.index[t.ID] = i
	}
	return c, nil
}

// Default возвращает встроенный демо-каталог
func Default() *Catalog {
	c, err := Parse(defaultTracks)
	if err != nil {
		// Встроенные данные проверяются тестами
		panic(err)
	}
	return c
}

// Parse разбирает каталог в формате YAML
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("ошибка разбора каталога: %w", err)
	}
	return New(file.Tracks)
}

// Load загружает каталог из YAML файла
func Load(filePath string) (*Catalog, error) {
	path := filePath
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		path = strings.Replace(path, "~", home, 1)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения файла каталога: %w", err)
	}
	return Parse(data)
}

// Len возвращает количество треков в каталоге
func (c *Catalog) Len() int {
	return len(c.tracks)
}

// Tracks возвращает копию всех треков в исходном порядке
func (c *Catalog) Tracks() []Track {
	return c.slice(0, len(c.tracks))
}

// ByID возвращает трек по ID
func (c *Catalog) ByID(id string) (Track, error) {
	i, ok := c.index[id]
	if !ok {
		return Track{}, fmt.Errorf("%w: %s", ErrTrackNotFound, id)
	}
	return c.tracks[i], nil
}

// Featured возвращает первые n треков (блок «Рекомендуемое» на главной)
func (c *Catalog) Featured(n int) []Track {
	return c.slice(0, min(n, len(c.tracks)))
}

// Latest возвращает последние n треков (блок «Новое» на главной)
func (c *Catalog) Latest(n int) []Track {
	return c.slice(max(0, len(c.tracks)-n), len(c.tracks))
}

// Trending возвращает треки, отсортированные по убыванию количества прослушиваний
func (c *Catalog) Trending() []Track {
	tracks := c.Tracks()
	sort.SliceStable(tracks, func(i, j int) bool {
		return tracks[i].Plays > tracks[j].Plays
	})
	return tracks
}

// Recent возвращает треки в обратном порядке
func (c *Catalog) Recent() []Track {
	tracks := c.Tracks()
	for i, j := 0, len(tracks)-1; i < j; i, j = i+1, j-1 {
		tracks[i], tracks[j] = tracks[j], tracks[i]
	}
	return tracks
}

// Search ищет треки по подстроке в названии или имени исполнителя без учета регистра.
// Пустой запрос ничего не находит.
func (c *Catalog) Search(query string) []Track {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var result []Track
	for _, t := range c.tracks {
		if strings.Contains(strings.ToLower(t.Title), q) || strings.Contains(strings.ToLower(t.Artist), q) {
			result = append(result, t)
		}
	}
	return result
}

// Genres возвращает список жанров для фильтра: AllGenres и жанры каталога по алфавиту
func (c *Catalog) Genres() []string {
	seen := make(map[string]bool)
	var genres []string
	for _, t := range c.tracks {
		if t.Genre == "" || seen[t.Genre] {
			continue
		}
		seen[t.Genre] = true
		genres = append(genres, t.Genre)
	}
	sort.Strings(genres)
	return append([]string{AllGenres}, genres...)
}

// ByGenre возвращает треки указанного жанра
func (c *Catalog) ByGenre(genre string) []Track {
	if genre == "" || genre == AllGenres {
		return c.Tracks()
	}

	var result []Track
	for _, t := range c.tracks {
		if strings.EqualFold(t.Genre, genre) {
			result = append(result, t)
		}
	}
	return result
}

// Next возвращает трек, следующий за указанным, с переходом в начало каталога
func (c *Catalog) Next(id string) (Track, error) {
	i, ok := c.index[id]
	if !ok {
		return Track{}, fmt.Errorf("%w: %s", ErrTrackNotFound, id)
	}
	return c.tracks[(i+1)%len(c.tracks)], nil
}

// Previous возвращает трек, предшествующий указанному, с переходом в конец каталога
func (c *Catalog) Previous(id string) (Track, error) {
	i, ok := c.index[id]
	if !ok {
		return Track{}, fmt.Errorf("%w: %s", ErrTrackNotFound, id)
	}
	if i == 0 {
		return c.tracks[len(c.tracks)-1], nil
	}
	return c.tracks[i-1], nil
}

// Random возвращает случайный трек, отличный от excludeID, если это возможно
func (c *Catalog) Random(rng *rand.Rand, excludeID string) (Track, bool) {
	if len(c.tracks) == 0 {
		return Track{}, false
	}
	if len(c.tracks) == 1 {
		return c.tracks[0], true
	}

	for {
		t := c.tracks[rng.IntN(len(c.tracks))]
		if t.ID != excludeID {
			return t, true
		}
	}
}

func (c *Catalog) slice(from, to int) []Track {
	if from >= to {
		return nil
	}
	out := make([]Track, to-from)
	copy(out, c.tracks[from:to])
	return out
}
