package picker

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-sonicai/internal/catalog"
	"github.com/hazadus/go-sonicai/internal/playlist"
)

var track = catalog.Track{ID: "1", Title: "Digital Dreams", Artist: "SynthAI"}

func newStore() *playlist.Store {
	return playlist.NewStore(playlist.WithPlaylists(playlist.DefaultPlaylists(time.Now())...))
}

func TestAddToPlaylist(t *testing.T) {
	store := newStore()
	model := NewModel(store, track)

	model.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("Ожидалась команда после добавления")
	}

	msg, ok := cmd().(AddedMsg)
	if !ok || msg.PlaylistName != "Workout Beats" || msg.Track.ID != "1" {
		t.Errorf("Неожиданное сообщение: %#v", cmd())
	}
	if !store.Contains("p2", "1") {
		t.Error("Трек должен быть добавлен во второй плейлист")
	}
	if store.Contains("p1", "1") {
		t.Error("Первый плейлист не должен измениться")
	}
}

func TestAddDuplicate(t *testing.T) {
	store := newStore()
	_ = store.AddTrack("p1", track)

	model := NewModel(store, track)
	if !strings.Contains(model.View(), "уже добавлен") {
		t.Error("Ожидалась пометка уже добавленного трека")
	}

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if _, ok := cmd().(AlreadyAddedMsg); !ok {
		t.Errorf("Ожидалось AlreadyAddedMsg, получено %#v", cmd())
	}

	got, _ := store.Get("p1")
	if len(got.Tracks) != 1 {
		t.Errorf("Повтор не должен добавляться, получено %d треков", len(got.Tracks))
	}
}

func TestCursorBounds(t *testing.T) {
	model := NewModel(newStore(), track)

	model.Update(tea.KeyMsg{Type: tea.KeyUp})
	if model.cursor != 0 {
		t.Errorf("Курсор не должен уходить выше первого элемента: %d", model.cursor)
	}

	for range 5 {
		model.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	if model.cursor != 1 {
		t.Errorf("Курсор не должен уходить ниже последнего элемента: %d", model.cursor)
	}
}

func TestDeletedPlaylistWhileOpen(t *testing.T) {
	store := newStore()
	model := NewModel(store, track)
	_ = store.Delete("p1")

	if _, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Error("Добавление в удаленный плейлист не должно сообщать об успехе")
	}
	if len(model.playlists) != 1 {
		t.Errorf("Список плейлистов должен обновиться, получено %d", len(model.playlists))
	}
}

func TestEmptyAndNavigation(t *testing.T) {
	model := NewModel(playlist.NewStore(), track)

	if _, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Error("Без плейлистов Enter ничего не делает")
	}

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("n")})
	if _, ok := cmd().(CreatePlaylistMsg); !ok {
		t.Error("Ожидалось CreatePlaylistMsg")
	}

	_, cmd = model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if _, ok := cmd().(GoBackMsg); !ok {
		t.Error("Ожидалось GoBackMsg")
	}
}
