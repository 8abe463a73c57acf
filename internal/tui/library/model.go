// Package library содержит экран библиотеки плейлистов для TUI
package library

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-sonicai/internal/playlist"
	"github.com/hazadus/go-sonicai/internal/utils"
)

var (
	titleStyle        = lipgloss.NewStyle().MarginLeft(2)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	confirmStyle      = lipgloss.NewStyle().MarginLeft(4).Foreground(lipgloss.Color("196")).Bold(true)
	helpStyle         = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
	emptyStyle        = lipgloss.NewStyle().Margin(1, 0, 1, 4).Foreground(lipgloss.Color("241"))
)

// OpenMsg отправляется при открытии плейлиста
type OpenMsg struct {
	Playlist playlist.Playlist
}

// PlayMsg отправляется при запуске плейлиста с первого трека
type PlayMsg struct {
	Playlist playlist.Playlist
}

// EditMsg отправляется при редактировании плейлиста
type EditMsg struct {
	Playlist playlist.Playlist
}

// CreateMsg отправляется при создании нового плейлиста
type CreateMsg struct{}

// DeletedMsg отправляется после удаления плейлиста
type DeletedMsg struct {
	Name string
}

// item реализует интерфейс list.Item для плейлиста
type item struct {
	playlist playlist.Playlist
}

func (i item) FilterValue() string { return i.playlist.Name }

type itemDelegate struct{}

func (d itemDelegate) Height() int                             { return 1 }
func (d itemDelegate) Spacing() int                            { return 0 }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(item)
	if !ok {
		return
	}

	str := fmt.Sprintf("%s %3d треков  %s",
		utils.PadRight(i.playlist.Name, 30),
		len(i.playlist.Tracks),
		utils.TruncateString(i.playlist.Description, 40))

	fn := itemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return selectedItemStyle.Render("> " + strings.Join(s, " "))
		}
	}

	fmt.Fprint(w, fn(str))
}

// Model представляет экран библиотеки
type Model struct {
	store *playlist.Store
	list  list.Model

	// confirming содержит плейлист, ожидающий подтверждения удаления
	confirming *playlist.Playlist
}

// NewModel создает экран библиотеки
func NewModel(store *playlist.Store) *Model {
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.Title = "Библиотека"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.KeyMap.Quit.SetEnabled(false)
	l.Styles.Title = titleStyle
	l.Styles.HelpStyle = helpStyle

	m := &Model{store: store, list: l}
	m.Refresh()
	return m
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return nil
}

// Refresh перечитывает плейлисты из хранилища
func (m *Model) Refresh() {
	playlists := m.store.List()
	items := make([]list.Item, len(playlists))
	for i, p := range playlists {
		items[i] = item{playlist: p}
	}
	m.list.SetItems(items)
}

// Confirming сообщает, ожидается ли подтверждение удаления
func (m *Model) Confirming() bool {
	return m.confirming != nil
}

func (m *Model) selected() (playlist.Playlist, bool) {
	i, ok := m.list.SelectedItem().(item)
	if !ok {
		return playlist.Playlist{}, false
	}
	return i.playlist, true
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.confirming != nil {
			return m, m.handleConfirm(msg)
		}

		switch msg.String() {
		case "enter":
			if p, ok := m.selected(); ok {
				return m, func() tea.Msg { return OpenMsg{Playlist: p} }
			}
			return m, nil

		case "p":
			if p, ok := m.selected(); ok {
				return m, func() tea.Msg { return PlayMsg{Playlist: p} }
			}
			return m, nil

		case "e":
			if p, ok := m.selected(); ok {
				return m, func() tea.Msg { return EditMsg{Playlist: p} }
			}
			return m, nil

		case "n":
			return m, func() tea.Msg { return CreateMsg{} }

		case "x":
			if p, ok := m.selected(); ok {
				m.confirming = &p
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// handleConfirm обрабатывает ответ на запрос удаления
func (m *Model) handleConfirm(msg tea.KeyMsg) tea.Cmd {
	target := *m.confirming
	m.confirming = nil

	switch msg.String() {
	case "y", "enter":
		if err := m.store.Delete(target.ID); err != nil {
			m.Refresh()
			return nil
		}
		m.Refresh()
		return func() tea.Msg { return DeletedMsg{Name: target.Name} }
	}
	return nil
}

// View отображает модель
func (m *Model) View() string {
	var b strings.Builder

	if len(m.list.Items()) == 0 {
		b.WriteString(titleStyle.Render(m.list.Title))
		b.WriteString("\n")
		b.WriteString(emptyStyle.Render("Плейлистов пока нет. Нажмите n, чтобы создать."))
	} else {
		b.WriteString(m.list.View())
	}
	b.WriteString("\n")

	if m.confirming != nil {
		b.WriteString(confirmStyle.Render(fmt.Sprintf("Удалить плейлист %q? (y/n)", m.confirming.Name)))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("Enter: открыть • p: слушать • n: новый • e: изменить • x: удалить"))
	return b.String()
}
