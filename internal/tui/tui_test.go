// Package tui содержит тесты для TUI компонентов
package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-sonicai/internal/catalog"
	"github.com/hazadus/go-sonicai/internal/config"
	"github.com/hazadus/go-sonicai/internal/player"
	"github.com/hazadus/go-sonicai/internal/playlist"
	"github.com/hazadus/go-sonicai/internal/tui/app"
	tuiPlayer "github.com/hazadus/go-sonicai/internal/tui/player"
	"github.com/hazadus/go-sonicai/internal/tui/tracklist"
	"github.com/hazadus/go-sonicai/internal/upload"
)

func newTestApp(t *testing.T) (*App, *player.Player) {
	t.Helper()

	p := player.New()
	t.Cleanup(func() { _ = p.Close() })

	deps := app.Deps{
		Catalog:   catalog.Default(),
		Playlists: playlist.NewStore(playlist.WithPlaylists(playlist.DefaultPlaylists(time.Now())...)),
		Player:    p,
		Uploads:   upload.NewService(upload.NewSimulated(0, 0), nil),
		Profile:   config.Default().Profile,
	}
	return NewApp(deps, ""), p
}

func TestMainModelRouting(t *testing.T) {
	tuiApp, p := newTestApp(t)
	model := tuiApp.newMainModel()

	// Проверяем начальное состояние
	if model.Screen() != app.HomeScreen {
		t.Errorf("Expected initial screen to be HomeScreen, got %v", model.Screen())
	}

	// Выбор трека запускает воспроизведение без смены экрана
	track := catalog.Default().Tracks()[0]
	updatedModel, _ := model.Update(tracklist.TrackSelectedMsg{Track: track})
	model = updatedModel.(*app.MainModel)

	if current := p.CurrentTrack(); current == nil || current.ID != track.ID {
		t.Errorf("Expected track %s to be playing, got %v", track.ID, current)
	}
	if model.Screen() != app.HomeScreen {
		t.Errorf("Expected screen to stay HomeScreen, got %v", model.Screen())
	}

	// Открываем полноэкранный плеер и возвращаемся
	updatedModel, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("f")})
	model = updatedModel.(*app.MainModel)
	if model.Screen() != app.PlayerScreen {
		t.Errorf("Expected screen to be PlayerScreen after f, got %v", model.Screen())
	}

	updatedModel, _ = model.Update(tuiPlayer.GoBackMsg{})
	model = updatedModel.(*app.MainModel)
	if model.Screen() != app.HomeScreen {
		t.Errorf("Expected screen to be HomeScreen after GoBackMsg, got %v", model.Screen())
	}

	// Тестируем глобальные горячие клавиши
	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Error("Expected tea.Quit command after Ctrl+C")
	}
}

func TestMainModelView(t *testing.T) {
	tuiApp, _ := newTestApp(t)
	model := tuiApp.newMainModel()
	model.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	view := model.View()
	if !strings.Contains(view, "SonicAI") {
		t.Error("Expected header in view")
	}
	if !strings.Contains(view, "Ничего не играет") {
		t.Error("Expected idle player bar in view")
	}

	// Переключаемся на библиотеку
	model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("5")})
	if model.Screen() != app.LibraryScreen {
		t.Fatalf("Expected LibraryScreen after 5, got %v", model.Screen())
	}
	if !strings.Contains(model.View(), "AI Favorites") {
		t.Error("Expected playlists in library view")
	}
}
