// Package tracklist содержит модель экрана списка треков для TUI
package tracklist

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-sonicai/internal/catalog"
	"github.com/hazadus/go-sonicai/internal/utils"
)

var (
	titleStyle        = lipgloss.NewStyle().MarginLeft(2)
	itemStyle         = lipgloss.NewStyle().PaddingLeft(4)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("170"))
	badgeStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	genreStyle        = lipgloss.NewStyle().MarginLeft(2).Foreground(lipgloss.Color("241"))
	activeGenreStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	paginationStyle   = list.DefaultStyles().PaginationStyle.PaddingLeft(4)
	helpStyle         = list.DefaultStyles().HelpStyle.PaddingLeft(4).PaddingBottom(1)
	emptyStyle        = lipgloss.NewStyle().Margin(1, 0, 1, 4).Foreground(lipgloss.Color("241"))
)

// TrackSelectedMsg отправляется при выборе трека для воспроизведения
type TrackSelectedMsg struct {
	Track catalog.Track
}

// AddToPlaylistMsg отправляется при добавлении трека в плейлист
type AddToPlaylistMsg struct {
	Track catalog.Track
}

// ShareMsg отправляется при публикации трека
type ShareMsg struct {
	Track catalog.Track
}

// DownloadMsg отправляется при попытке скачать трек
type DownloadMsg struct {
	Track catalog.Track
}

// RemoveFromPlaylistMsg отправляется при удалении трека из открытого плейлиста
type RemoveFromPlaylistMsg struct {
	PlaylistID string
	Track      catalog.Track
}

// GoBackMsg отправляется при выходе из списка, открытого из другого экрана
type GoBackMsg struct{}

// Item - элемент списка с необязательной пометкой
type Item struct {
	Track catalog.Track
	Badge string
}

func (i Item) FilterValue() string {
	return fmt.Sprintf("%s %s", i.Track.Artist, i.Track.Title)
}

// itemDelegate реализует отображение элементов списка
type itemDelegate struct {
	current func() string
}

func (d itemDelegate) Height() int                             { return 1 }
func (d itemDelegate) Spacing() int                            { return 0 }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(Item)
	if !ok {
		return
	}

	// Таблица: Название | Исполнитель | Длительность | Прослушивания
	marker := "  "
	if d.current != nil && d.current() == i.Track.ID {
		marker = "♪ "
	}
	str := fmt.Sprintf("%s%s %s %5s  %s",
		marker,
		utils.PadRight(i.Track.Title, 28),
		utils.PadRight(i.Track.Artist, 18),
		i.Track.Duration,
		utils.FormatPlays(i.Track.Plays))
	if i.Badge != "" {
		str += " " + badgeStyle.Render(i.Badge)
	}

	fn := itemStyle.Render
	if index == m.Index() {
		fn = func(s ...string) string {
			return selectedItemStyle.Render("> " + strings.Join(s, " "))
		}
	}

	fmt.Fprint(w, fn(str))
}

// Option настраивает модель списка
type Option func(*Model)

// WithGenres включает фильтр по жанрам каталога (клавиша g)
func WithGenres(c *catalog.Catalog) Option {
	return func(m *Model) {
		m.catalog = c
		m.genres = c.Genres()
	}
}

// WithPlaylist привязывает список к плейлисту: x удаляет трек из него, esc возвращает назад
func WithPlaylist(playlistID string) Option {
	return func(m *Model) {
		m.playlistID = playlistID
	}
}

// WithCurrent задает функцию, возвращающую ID играющего трека
func WithCurrent(current func() string) Option {
	return func(m *Model) {
		m.current = current
	}
}

// Model представляет модель экрана списка треков
type Model struct {
	list       list.Model
	current    func() string
	catalog    *catalog.Catalog
	genres     []string
	genreIndex int
	playlistID string
}

// NewModel создает новую модель списка треков
func NewModel(title string, items []Item, opts ...Option) *Model {
	m := &Model{}
	for _, opt := range opts {
		opt(m)
	}

	l := list.New(toListItems(items), itemDelegate{current: m.current}, 0, 0)
	l.Title = title
	l.SetShowStatusBar(false)
	l.SetShowTitle(true)
	// Поиск по каталогу работает через отдельный экран
	l.SetFilteringEnabled(false)
	// Выход обрабатывает главная модель, esc используется для возврата
	l.KeyMap.Quit.SetEnabled(false)
	l.Styles.Title = titleStyle
	l.Styles.PaginationStyle = paginationStyle
	l.Styles.HelpStyle = helpStyle
	m.list = l

	if m.catalog != nil {
		m.applyGenre()
	}
	return m
}

// Items оборачивает треки в элементы списка
func Items(tracks []catalog.Track, badge string) []Item {
	items := make([]Item, len(tracks))
	for i, t := range tracks {
		items[i] = Item{Track: t, Badge: badge}
	}
	return items
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return nil
}

// SetItems заменяет элементы списка
func (m *Model) SetItems(items []Item) {
	m.list.SetItems(toListItems(items))
}

// Len возвращает количество треков в списке
func (m *Model) Len() int {
	return len(m.list.Items())
}

// Genre возвращает выбранный жанр, пустую строку если фильтр выключен
func (m *Model) Genre() string {
	if len(m.genres) == 0 {
		return ""
	}
	return m.genres[m.genreIndex]
}

// PlaylistID возвращает ID плейлиста, к которому привязан список
func (m *Model) PlaylistID() string {
	return m.playlistID
}

// SelectedTrack возвращает выбранный трек
func (m *Model) SelectedTrack() (catalog.Track, bool) {
	item, ok := m.list.SelectedItem().(Item)
	if !ok {
		return catalog.Track{}, false
	}
	return item.Track, true
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return m, m.withSelected(func(t catalog.Track) tea.Msg { return TrackSelectedMsg{Track: t} })

		case "a":
			return m, m.withSelected(func(t catalog.Track) tea.Msg { return AddToPlaylistMsg{Track: t} })

		case "s":
			return m, m.withSelected(func(t catalog.Track) tea.Msg { return ShareMsg{Track: t} })

		case "d":
			return m, m.withSelected(func(t catalog.Track) tea.Msg { return DownloadMsg{Track: t} })

		case "x":
			if m.playlistID == "" {
				return m, nil
			}
			id := m.playlistID
			return m, m.withSelected(func(t catalog.Track) tea.Msg {
				return RemoveFromPlaylistMsg{PlaylistID: id, Track: t}
			})

		case "g":
			if len(m.genres) > 0 {
				m.genreIndex = (m.genreIndex + 1) % len(m.genres)
				m.applyGenre()
			}
			return m, nil

		case "G":
			if len(m.genres) > 0 {
				m.genreIndex = (m.genreIndex - 1 + len(m.genres)) % len(m.genres)
				m.applyGenre()
			}
			return m, nil

		case "esc":
			if m.playlistID != "" {
				return m, func() tea.Msg { return GoBackMsg{} }
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View отображает модель
func (m *Model) View() string {
	var b strings.Builder

	if len(m.genres) > 0 {
		b.WriteString(m.genreBar())
		b.WriteString("\n")
	}

	if len(m.list.Items()) == 0 {
		b.WriteString(titleStyle.Render(m.list.Title))
		b.WriteString("\n")
		b.WriteString(emptyStyle.Render("Здесь пока нет треков"))
	} else {
		b.WriteString(m.list.View())
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help()))
	return b.String()
}

func (m *Model) help() string {
	parts := []string{"Enter: воспроизвести", "a: в плейлист", "s: поделиться", "d: скачать"}
	if len(m.genres) > 0 {
		parts = append(parts, "g/G: жанр")
	}
	if m.playlistID != "" {
		parts = append(parts, "x: убрать из плейлиста", "esc: назад")
	}
	return strings.Join(parts, " • ")
}

func (m *Model) genreBar() string {
	labels := make([]string, len(m.genres))
	for i, g := range m.genres {
		if i == m.genreIndex {
			labels[i] = activeGenreStyle.Render("[" + g + "]")
		} else {
			labels[i] = g
		}
	}
	return genreStyle.Render("Жанр: " + strings.Join(labels, " "))
}

func (m *Model) applyGenre() {
	m.list.SetItems(toListItems(Items(m.catalog.ByGenre(m.Genre()), "")))
	m.list.ResetSelected()
}

func (m *Model) withSelected(msg func(catalog.Track) tea.Msg) tea.Cmd {
	t, ok := m.SelectedTrack()
	if !ok {
		return nil
	}
	return func() tea.Msg { return msg(t) }
}

func toListItems(items []Item) []list.Item {
	out := make([]list.Item, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}
