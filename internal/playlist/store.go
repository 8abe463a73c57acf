// Package playlist содержит хранилище пользовательских плейлистов в памяти
package playlist

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hazadus/go-sonicai/internal/catalog"
)

// DefaultCover - обложка новых плейлистов
const DefaultCover = "/assets/album-1.jpg"

// ErrPlaylistNotFound возвращается для неизвестного ID плейлиста
var ErrPlaylistNotFound = errors.New("плейлист не найден")

// Playlist описывает пользовательский плейлист
type Playlist struct {
	ID          string
	Name        string
	Description string
	Tracks      []catalog.Track
	Cover       string
	CreatedAt   time.Time
}

// TrackIDs возвращает ID всех треков плейлиста
func (p Playlist) TrackIDs() []string {
	ids := make([]string, len(p.Tracks))
	for i, t := range p.Tracks {
		ids[i] = t.ID
	}
	return ids
}

func (p Playlist) clone() Playlist {
	c := p
	if p.Tracks != nil {
		c.Tracks = make([]catalog.Track, len(p.Tracks))
		copy(c.Tracks, p.Tracks)
	}
	return c
}

// Patch содержит поля для частичного обновления плейлиста.
// nil означает «оставить как есть».
type Patch struct {
	Name        *string
	Description *string
	Cover       *string
	Tracks      []catalog.Track
}

// Option настраивает хранилище
type Option func(*Store)

// WithClock задает источник текущего времени
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithIDGenerator задает генератор ID новых плейлистов
func WithIDGenerator(newID func() string) Option {
	return func(s *Store) {
		s.newID = newID
	}
}

// WithPlaylists задает начальный набор плейлистов
func WithPlaylists(playlists ...Playlist) Option {
	return func(s *Store) {
		for _, p := range playlists {
			s.playlists = append(s.playlists, p.clone())
		}
	}
}

// Store управляет плейлистами. Состояние живет только в памяти процесса.
type Store struct {
	mutex     sync.RWMutex
	playlists []Playlist
	now       func() time.Time
	newID     func() string
}

// NewStore создает новое хранилище плейлистов
func NewStore(opts ...Option) *Store {
	s := &Store{
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DefaultPlaylists возвращает демонстрационные плейлисты
func DefaultPlaylists(now time.Time) []Playlist {
	return []Playlist{
		{
			ID:          "p1",
			Name:        "AI Favorites",
			Description: "My favorite AI-generated tracks",
			Tracks:      []catalog.Track{},
			Cover:       "/assets/album-1.jpg",
			CreatedAt:   now,
		},
		{
			ID:          "p2",
			Name:        "Workout Beats",
			Description: "High-energy AI music for workouts",
			Tracks:      []catalog.Track{},
			Cover:       "/assets/album-2.jpg",
			CreatedAt:   now,
		},
	}
}

// Create добавляет новый пустой плейлист в конец списка
func (s *Store) Create(name, description string) Playlist {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	p := Playlist{
		ID:          s.newID(),
		Name:        name,
		Description: description,
		Tracks:      []catalog.Track{},
		Cover:       DefaultCover,
		CreatedAt:   s.now(),
	}
	s.playlists = append(s.playlists, p)
	return p.clone()
}

// Delete удаляет плейлист по ID
func (s *Store) Delete(id string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrPlaylistNotFound, id)
	}
	s.playlists = append(s.playlists[:i], s.playlists[i+1:]...)
	return nil
}

// AddTrack добавляет трек в конец плейлиста.
// Повторы не проверяются: вызывающий код использует Contains.
func (s *Store) AddTrack(playlistID string, track catalog.Track) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	i := s.indexLocked(playlistID)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrPlaylistNotFound, playlistID)
	}
	s.playlists[i].Tracks = append(s.playlists[i].Tracks, track)
	return nil
}

// RemoveTrack удаляет из плейлиста все вхождения трека
func (s *Store) RemoveTrack(playlistID, trackID string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	i := s.indexLocked(playlistID)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrPlaylistNotFound, playlistID)
	}

	kept := make([]catalog.Track, 0, len(s.playlists[i].Tracks))
	for _, t := range s.playlists[i].Tracks {
		if t.ID != trackID {
			kept = append(kept, t)
		}
	}
	s.playlists[i].Tracks = kept
	return nil
}

// Update применяет к плейлисту заданные поля
func (s *Store) Update(id string, patch Patch) (Playlist, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	i := s.indexLocked(id)
	if i < 0 {
		return Playlist{}, fmt.Errorf("%w: %s", ErrPlaylistNotFound, id)
	}

	p := &s.playlists[i]
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Cover != nil {
		p.Cover = *patch.Cover
	}
	if patch.Tracks != nil {
		p.Tracks = make([]catalog.Track, len(patch.Tracks))
		copy(p.Tracks, patch.Tracks)
	}
	return p.clone(), nil
}

// List возвращает копии всех плейлистов в порядке создания
func (s *Store) List() []Playlist {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]Playlist, len(s.playlists))
	for i, p := range s.playlists {
		out[i] = p.clone()
	}
	return out
}

// Get возвращает копию плейлиста по ID
func (s *Store) Get(id string) (Playlist, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	i := s.indexLocked(id)
	if i < 0 {
		return Playlist{}, fmt.Errorf("%w: %s", ErrPlaylistNotFound, id)
	}
	return s.playlists[i].clone(), nil
}

// Len возвращает количество плейлистов
func (s *Store) Len() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.playlists)
}

// Contains сообщает, есть ли трек в плейлисте
func (s *Store) Contains(playlistID, trackID string) bool {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	i := s.indexLocked(playlistID)
	if i < 0 {
		return false
	}
	for _, t := range s.playlists[i].Tracks {
		if t.ID == trackID {
			return true
		}
	}
	return false
}

func (s *Store) indexLocked(id string) int {
	for i := range s.playlists {
		if s.playlists[i].ID == id {
			return i
		}
	}
	return -1
}
