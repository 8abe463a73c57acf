// Package picker содержит диалог выбора плейлиста для добавления трека
package picker

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-sonicai/internal/catalog"
	"github.com/hazadus/go-sonicai/internal/playlist"
)

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Margin(1, 0, 1, 2)
	itemStyle     = lipgloss.NewStyle().PaddingLeft(4)
	selectedStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Margin(1, 0, 0, 4)
)

// AddedMsg отправляется после добавления трека в плейлист
type AddedMsg struct {
	PlaylistName string
	Track        catalog.Track
}

// AlreadyAddedMsg отправляется, если трек уже есть в плейлисте
type AlreadyAddedMsg struct {
	PlaylistName string
	Track        catalog.Track
}

// CreatePlaylistMsg отправляется, если пользователь хочет создать новый плейлист
type CreatePlaylistMsg struct{}

// GoBackMsg отправляется при закрытии диалога
type GoBackMsg struct{}

// Model представляет диалог выбора плейлиста
type Model struct {
	store     *playlist.Store
	track     catalog.Track
	playlists []playlist.Playlist
	cursor    int
}

// NewModel создает диалог для указанного трека
func NewModel(store *playlist.Store, track catalog.Track) *Model {
	return &Model{
		store:     store,
		track:     track,
		playlists: store.List(),
	}
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc", "q":
		return m, func() tea.Msg { return GoBackMsg{} }

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.playlists)-1 {
			m.cursor++
		}

	case "n":
		return m, func() tea.Msg { return CreatePlaylistMsg{} }

	case "enter":
		return m, m.add()
	}

	return m, nil
}

// add добавляет трек в выбранный плейлист, если его там еще нет
func (m *Model) add() tea.Cmd {
	if len(m.playlists) == 0 {
		return nil
	}

	target := m.playlists[m.cursor]
	track := m.track

	if m.store.Contains(target.ID, track.ID) {
		return func() tea.Msg {
			return AlreadyAddedMsg{PlaylistName: target.Name, Track: track}
		}
	}

	if err := m.store.AddTrack(target.ID, track); err != nil {
		// Плейлист удален, пока диалог был открыт
		m.playlists = m.store.List()
		m.cursor = 0
		return nil
	}

	return func() tea.Msg {
		return AddedMsg{PlaylistName: target.Name, Track: track}
	}
}

// View отображает модель
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Добавить %q в плейлист", m.track.Title)))
	b.WriteString("\n")

	if len(m.playlists) == 0 {
		b.WriteString(itemStyle.Render(mutedStyle.Render("Плейлистов нет. Нажмите n, чтобы создать.")))
		b.WriteString("\n")
	}

	for i, p := range m.playlists {
		line := fmt.Sprintf("%s (%d)", p.Name, len(p.Tracks))
		if m.store.Contains(p.ID, m.track.ID) {
			line += mutedStyle.Render(" ✓ уже добавлен")
		}

		if i == m.cursor {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString(itemStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("↑/↓: выбор • Enter: добавить • n: новый плейлист • Esc: отмена"))
	return b.String()
}
