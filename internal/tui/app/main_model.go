// Package app содержит основную логику TUI приложения
package app

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-sonicai/internal/catalog"
	"github.com/hazadus/go-sonicai/internal/config"
	"github.com/hazadus/go-sonicai/internal/player"
	"github.com/hazadus/go-sonicai/internal/playlist"
	"github.com/hazadus/go-sonicai/internal/share"
	"github.com/hazadus/go-sonicai/internal/tui/editor"
	"github.com/hazadus/go-sonicai/internal/tui/library"
	"github.com/hazadus/go-sonicai/internal/tui/picker"
	tuiPlayer "github.com/hazadus/go-sonicai/internal/tui/player"
	"github.com/hazadus/go-sonicai/internal/tui/playerbar"
	"github.com/hazadus/go-sonicai/internal/tui/premium"
	"github.com/hazadus/go-sonicai/internal/tui/profile"
	"github.com/hazadus/go-sonicai/internal/tui/search"
	"github.com/hazadus/go-sonicai/internal/tui/tracklist"
	tuiUpload "github.com/hazadus/go-sonicai/internal/tui/upload"
	"github.com/hazadus/go-sonicai/internal/upload"
)

// ScreenType определяет тип текущего экрана
type ScreenType int

// Константы для типов экранов
const (
	// HomeScreen - главная страница: избранное и новинки
	HomeScreen ScreenType = iota
	// DiscoverScreen - каталог с фильтром по жанру
	DiscoverScreen
	// TrendingScreen - популярные треки
	TrendingScreen
	// RecentScreen - недавно добавленные треки
	RecentScreen
	// LibraryScreen - плейлисты пользователя
	LibraryScreen
	// PlaylistScreen - треки открытого плейлиста
	PlaylistScreen
	// ResultsScreen - результаты поиска
	ResultsScreen
	// SearchScreen - строка поиска
	SearchScreen
	// PlayerScreen - полноэкранный плеер
	PlayerScreen
	// UploadScreen - диалог загрузки трека
	UploadScreen
	// EditorScreen - форма плейлиста
	EditorScreen
	// PickerScreen - выбор плейлиста для трека
	PickerScreen
	// ProfileScreen - настройки профиля
	ProfileScreen
	// PremiumScreen - оформление подписки
	PremiumScreen
)

const (
	homeSectionSize = 8
	noticeTTL       = 3 * time.Second

	headerHeight = 2
	footerHeight = 4
)

var (
	logoStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	tabStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	activeTabStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Underline(true).Padding(0, 1)
	profileStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	noticeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).PaddingLeft(1)
)

var tabs = []struct {
	screen ScreenType
	key    string
	title  string
}{
	{HomeScreen, "1", "Главная"},
	{DiscoverScreen, "2", "Обзор"},
	{TrendingScreen, "3", "В тренде"},
	{RecentScreen, "4", "Недавние"},
	{LibraryScreen, "5", "Библиотека"},
}

// trackFinishedMsg сообщает, что трек доиграл до конца
type trackFinishedMsg struct {
	Track catalog.Track
}

// clearNoticeMsg скрывает уведомление с указанным номером
type clearNoticeMsg struct {
	id int
}

// Deps содержит зависимости главной модели
type Deps struct {
	Catalog   *catalog.Catalog
	Playlists *playlist.Store
	Player    *player.Player
	Uploads   *upload.Service
	Profile   config.Profile
	Rand      *rand.Rand // Источник случайности для перемешивания, nil означает случайный сид
}

// MainModel представляет главную модель TUI
type MainModel struct {
	catalog   *catalog.Catalog
	playlists *playlist.Store
	player    *player.Player
	uploads   *upload.Service
	profile   config.Profile
	rng       *rand.Rand

	sub    *player.Subscription
	status player.Status
	bar    *playerbar.Bar

	currentScreen ScreenType
	stack         []ScreenType // Открытые поверх страниц экраны

	pages        map[ScreenType]*tracklist.Model
	libraryModel *library.Model
	playlistView *tracklist.Model
	resultsView  *tracklist.Model
	searchModel  *search.Model
	playerModel  *tuiPlayer.Model
	uploadModel  *tuiUpload.Model
	editorModel  *editor.Model
	pickerModel  *picker.Model
	pickerTrack  catalog.Track
	profileModel *profile.Model
	premiumModel *premium.Model
	plan         string // Название оформленного тарифа, пустое для Free
	query        string

	notice   string
	noticeID int

	width  int
	height int
}

// NewMainModel создает новую главную модель
func NewMainModel(deps Deps) *MainModel {
	rng := deps.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	m := &MainModel{
		catalog:       deps.Catalog,
		playlists:     deps.Playlists,
		player:        deps.Player,
		uploads:       deps.Uploads,
		profile:       deps.Profile,
		rng:           rng,
		bar:           playerbar.New(),
		currentScreen: HomeScreen,
	}

	current := m.currentTrackID
	home := append(
		tracklist.Items(m.catalog.Featured(homeSectionSize), "featured"),
		tracklist.Items(m.catalog.Latest(homeSectionSize), "new")...,
	)

	m.pages = map[ScreenType]*tracklist.Model{
		HomeScreen:     tracklist.NewModel("🎧 Добро пожаловать в SonicAI", home, tracklist.WithCurrent(current)),
		DiscoverScreen: tracklist.NewModel("🔎 Обзор", nil, tracklist.WithGenres(m.catalog), tracklist.WithCurrent(current)),
		TrendingScreen: tracklist.NewModel("🔥 В тренде", tracklist.Items(m.catalog.Trending(), ""), tracklist.WithCurrent(current)),
		RecentScreen:   tracklist.NewModel("🆕 Недавние", tracklist.Items(m.catalog.Recent(), ""), tracklist.WithCurrent(current)),
	}
	m.libraryModel = library.NewModel(m.playlists)

	m.sub = m.player.Subscribe()
	m.status = m.player.Status()
	return m
}

// Init инициализирует модель
func (m *MainModel) Init() tea.Cmd {
	return waitForPlayer(m.sub)
}

// Screen возвращает текущий экран
func (m *MainModel) Screen() ScreenType {
	return m.currentScreen
}

// Notice возвращает текст текущего уведомления
func (m *MainModel) Notice() string {
	return m.notice
}

// waitForPlayer ждет следующее событие плеера
func waitForPlayer(sub *player.Subscription) tea.Cmd {
	return func() tea.Msg {
		select {
		case status := <-sub.Updates:
			return tuiPlayer.StatusMsg{Status: status}
		case track := <-sub.Finished:
			return trackFinishedMsg{Track: track}
		case <-sub.Done:
			return nil
		}
	}
}

// Update обрабатывает сообщения
func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.player.Pause()
			return m, tea.Quit
		}
		if m.isBrowseScreen() && !m.libraryModel.Confirming() {
			if cmd, handled := m.handleGlobalKey(msg); handled {
				return m, cmd
			}
		}

	case tea.WindowSizeMsg:
		m.resize(msg)
		return m, nil

	case tuiPlayer.StatusMsg:
		m.status = msg.Status
		var cmd tea.Cmd
		if m.playerModel != nil {
			m.playerModel, cmd = m.playerModel.Update(msg)
		}
		return m, tea.Batch(cmd, waitForPlayer(m.sub))

	case trackFinishedMsg:
		if m.player.Controls().Repeat {
			m.player.Play(msg.Track)
		}
		return m, waitForPlayer(m.sub)

	case clearNoticeMsg:
		if msg.id == m.noticeID {
			m.notice = ""
		}
		return m, nil

	// Списки треков
	case tracklist.TrackSelectedMsg:
		m.player.Play(msg.Track)
		m.status = m.player.Status()
		return m, nil

	case tracklist.AddToPlaylistMsg:
		m.pickerTrack = msg.Track
		m.pickerModel = picker.NewModel(m.playlists, msg.Track)
		return m, m.push(PickerScreen, m.pickerModel.Init())

	case tracklist.ShareMsg:
		return m, m.share(msg.Track)

	case tracklist.DownloadMsg:
		if m.plan == "" {
			return m, m.setNotice("⬇️ Скачивание доступно с премиум-подпиской (U)")
		}
		return m, m.setNotice(fmt.Sprintf("⬇️ Трек %q добавлен в очередь скачивания", msg.Track.Title))

	case tracklist.RemoveFromPlaylistMsg:
		if err := m.playlists.RemoveTrack(msg.PlaylistID, msg.Track.ID); err != nil {
			return m, m.setNotice(fmt.Sprintf("❌ Ошибка удаления трека: %v", err))
		}
		m.refreshPlaylistView()
		m.libraryModel.Refresh()
		return m, m.setNotice(fmt.Sprintf("Трек %q удален из плейлиста", msg.Track.Title))

	case tracklist.GoBackMsg:
		m.playlistView = nil
		m.libraryModel.Refresh()
		m.currentScreen = LibraryScreen
		return m, nil

	// Библиотека
	case library.OpenMsg:
		m.openPlaylist(msg.Playlist)
		return m, nil

	case library.PlayMsg:
		if len(msg.Playlist.Tracks) == 0 {
			return m, m.setNotice("Плейлист пуст. Сначала добавьте треки")
		}
		m.player.Play(msg.Playlist.Tracks[0])
		m.status = m.player.Status()
		return m, m.setNotice(fmt.Sprintf("▶️ Воспроизведение плейлиста %q", msg.Playlist.Name))

	case library.EditMsg:
		m.editorModel = editor.NewEditModel(m.playlists, msg.Playlist)
		return m, m.push(EditorScreen, m.editorModel.Init())

	case library.CreateMsg, picker.CreatePlaylistMsg:
		m.editorModel = editor.NewModel(m.playlists)
		return m, m.push(EditorScreen, m.editorModel.Init())

	case library.DeletedMsg:
		return m, m.setNotice(fmt.Sprintf("🗑 Плейлист %q удален", msg.Name))

	// Форма плейлиста
	case editor.SavedMsg:
		m.editorModel = nil
		m.pop()
		m.libraryModel.Refresh()
		m.refreshPlaylistView()
		if m.currentScreen == PickerScreen {
			m.pickerModel = picker.NewModel(m.playlists, m.pickerTrack)
		}
		if msg.Created {
			return m, m.setNotice(fmt.Sprintf("✅ Плейлист %q создан", msg.Playlist.Name))
		}
		return m, m.setNotice(fmt.Sprintf("✅ Плейлист %q сохранен", msg.Playlist.Name))

	case editor.GoBackMsg:
		m.editorModel = nil
		m.pop()
		return m, nil

	// Выбор плейлиста
	case picker.AddedMsg:
		m.closePicker()
		m.libraryModel.Refresh()
		m.refreshPlaylistView()
		return m, m.setNotice(fmt.Sprintf("✅ %q добавлен в плейлист %q", msg.Track.Title, msg.PlaylistName))

	case picker.AlreadyAddedMsg:
		m.closePicker()
		return m, m.setNotice(fmt.Sprintf("Трек уже есть в плейлисте %q", msg.PlaylistName))

	case picker.GoBackMsg:
		m.closePicker()
		return m, nil

	// Поиск
	case search.QueryMsg:
		m.searchModel = nil
		m.stack = nil
		m.query = msg.Query
		m.resultsView = tracklist.NewModel(
			fmt.Sprintf("Результаты поиска: %q", msg.Query),
			tracklist.Items(m.catalog.Search(msg.Query), ""),
			tracklist.WithCurrent(m.currentTrackID),
		)
		m.resizeModel(m.resultsView)
		m.currentScreen = ResultsScreen
		return m, nil

	case search.GoBackMsg:
		m.searchModel = nil
		m.pop()
		return m, nil

	// Полноэкранный плеер
	case tuiPlayer.GoBackMsg:
		m.playerModel = nil
		m.pop()
		return m, nil

	case tuiPlayer.NextMsg:
		return m, m.skip(true)

	case tuiPlayer.PreviousMsg:
		return m, m.skip(false)

	case tuiPlayer.LikedMsg:
		if msg.Liked {
			return m, m.setNotice("♥ Добавлено в понравившиеся")
		}
		return m, m.setNotice("Убрано из понравившихся")

	// Профиль
	case profile.SavedMsg:
		m.profile = msg.Profile
		m.profileModel = nil
		m.pop()
		return m, m.setNotice("✅ Настройки профиля сохранены")

	case profile.GoBackMsg:
		m.profileModel = nil
		m.pop()
		return m, nil

	// Подписка
	case premium.UpgradedMsg:
		m.plan = msg.Plan.Name
		m.premiumModel = nil
		m.pop()
		return m, m.setNotice(fmt.Sprintf("👑 Подписка SonicAI %s оформлена", msg.Plan.Name))

	case premium.GoBackMsg:
		m.premiumModel = nil
		m.pop()
		return m, nil

	// Загрузка
	case tuiUpload.DoneMsg:
		m.uploadModel = nil
		m.pop()
		return m, m.setNotice(fmt.Sprintf("✅ Трек %q загружен", msg.Result.Track.Title))

	case tuiUpload.GoBackMsg:
		if m.uploadModel != nil {
			m.uploadModel.Cancel()
		}
		m.uploadModel = nil
		m.pop()
		return m, nil
	}

	return m, m.updateActive(msg)
}

// handleGlobalKey обрабатывает горячие клавиши страниц
func (m *MainModel) handleGlobalKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	key := msg.String()

	for _, tab := range tabs {
		if key == tab.key {
			m.switchTo(tab.screen)
			return nil, true
		}
	}

	switch key {
	case "q":
		m.player.Pause()
		return tea.Quit, true

	case "/":
		m.searchModel = search.NewModel(m.query)
		return m.push(SearchScreen, m.searchModel.Init()), true

	case "u":
		m.uploadModel = tuiUpload.NewModel(m.uploads, m.profile.DisplayName)
		return m.push(UploadScreen, m.uploadModel.Init()), true

	case "p":
		m.profileModel = profile.NewModel(m.profile)
		return m.push(ProfileScreen, m.profileModel.Init()), true

	case "U":
		if m.plan != "" {
			return m.setNotice(fmt.Sprintf("👑 Подписка %s уже оформлена", m.plan)), true
		}
		m.premiumModel = premium.NewModel()
		return m.push(PremiumScreen, m.premiumModel.Init()), true

	case "f", "P":
		if m.player.CurrentTrack() == nil {
			return m.setNotice("Сначала выберите трек"), true
		}
		m.playerModel = tuiPlayer.NewModel(m.player)
		return m.push(PlayerScreen, m.playerModel.Init()), true

	case " ":
		m.player.TogglePlayPause()
		m.status = m.player.Status()
		return nil, true

	case ">":
		return m.skip(true), true

	case "<":
		return m.skip(false), true

	case "w":
		track := m.player.CurrentTrack()
		if track == nil {
			return nil, true
		}
		return m.setNotice(fmt.Sprintf("Вы подписались на %s", track.Artist)), true

	case "L":
		return m.setNotice("Выход из аккаунта пока недоступен"), true
	}

	return nil, false
}

// updateActive передает сообщение активной модели
func (m *MainModel) updateActive(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd

	switch m.currentScreen {
	case HomeScreen, DiscoverScreen, TrendingScreen, RecentScreen:
		m.pages[m.currentScreen], cmd = m.pages[m.currentScreen].Update(msg)

	case LibraryScreen:
		m.libraryModel, cmd = m.libraryModel.Update(msg)

	case PlaylistScreen:
		if m.playlistView != nil {
			m.playlistView, cmd = m.playlistView.Update(msg)
		}

	case ResultsScreen:
		if m.resultsView != nil {
			m.resultsView, cmd = m.resultsView.Update(msg)
		}

	case SearchScreen:
		if m.searchModel != nil {
			m.searchModel, cmd = m.searchModel.Update(msg)
		}

	case PlayerScreen:
		if m.playerModel != nil {
			m.playerModel, cmd = m.playerModel.Update(msg)
		}

	case UploadScreen:
		if m.uploadModel != nil {
			m.uploadModel, cmd = m.uploadModel.Update(msg)
		}

	case EditorScreen:
		if m.editorModel != nil {
			m.editorModel, cmd = m.editorModel.Update(msg)
		}

	case PickerScreen:
		if m.pickerModel != nil {
			m.pickerModel, cmd = m.pickerModel.Update(msg)
		}

	case ProfileScreen:
		if m.profileModel != nil {
			m.profileModel, cmd = m.profileModel.Update(msg)
		}

	case PremiumScreen:
		if m.premiumModel != nil {
			m.premiumModel, cmd = m.premiumModel.Update(msg)
		}
	}

	return cmd
}

// isBrowseScreen сообщает, является ли текущий экран страницей навигации
func (m *MainModel) isBrowseScreen() bool {
	switch m.currentScreen {
	case HomeScreen, DiscoverScreen, TrendingScreen, RecentScreen, LibraryScreen, PlaylistScreen, ResultsScreen:
		return true
	}
	return false
}

// switchTo переключает страницу и закрывает открытые поверх экраны
func (m *MainModel) switchTo(screen ScreenType) {
	m.stack = nil
	if screen == LibraryScreen {
		m.libraryModel.Refresh()
	}
	m.currentScreen = screen
}

// push открывает экран поверх текущего
func (m *MainModel) push(screen ScreenType, cmd tea.Cmd) tea.Cmd {
	m.stack = append(m.stack, m.currentScreen)
	m.currentScreen = screen
	m.resizeAll()
	return cmd
}

// pop возвращает к предыдущему экрану
func (m *MainModel) pop() {
	if len(m.stack) == 0 {
		m.currentScreen = HomeScreen
		return
	}
	m.currentScreen = m.stack[len(m.stack)-1]
	m.stack = m.stack[:len(m.stack)-1]
}

func (m *MainModel) closePicker() {
	m.pickerModel = nil
	m.pop()
}

// openPlaylist показывает треки плейлиста
func (m *MainModel) openPlaylist(p playlist.Playlist) {
	m.playlistView = tracklist.NewModel(
		"📀 "+p.Name,
		tracklist.Items(p.Tracks, ""),
		tracklist.WithPlaylist(p.ID),
		tracklist.WithCurrent(m.currentTrackID),
	)
	m.resizeModel(m.playlistView)
	m.currentScreen = PlaylistScreen
}

// refreshPlaylistView перечитывает открытый плейлист из хранилища
func (m *MainModel) refreshPlaylistView() {
	if m.playlistView == nil {
		return
	}

	p, err := m.playlists.Get(m.playlistView.PlaylistID())
	if err != nil {
		m.playlistView = nil
		if m.currentScreen == PlaylistScreen {
			m.currentScreen = LibraryScreen
		}
		return
	}

	m.playlistView.SetItems(tracklist.Items(p.Tracks, ""))
}

// skip переключает на следующий или предыдущий трек.
// В режиме перемешивания выбирается случайный трек.
func (m *MainModel) skip(forward bool) tea.Cmd {
	current := m.player.CurrentTrack()
	if current == nil {
		return nil
	}

	var (
		next catalog.Track
		err  error
	)

	switch {
	case m.player.Controls().Shuffle:
		var ok bool
		next, ok = m.catalog.Random(m.rng, current.ID)
		if !ok {
			return nil
		}
	case forward:
		next, err = m.catalog.Next(current.ID)
	default:
		next, err = m.catalog.Previous(current.ID)
	}

	if err != nil {
		return m.setNotice(fmt.Sprintf("❌ %v", err))
	}

	m.player.Play(next)
	m.status = m.player.Status()
	return nil
}

// share копирует текст о треке в буфер обмена
func (m *MainModel) share(track catalog.Track) tea.Cmd {
	text, err := share.Copy(track)
	if err != nil {
		return m.setNotice(fmt.Sprintf("❌ %v", err))
	}
	return m.setNotice("📋 Скопировано: " + text)
}

// setNotice показывает уведомление и планирует его скрытие
func (m *MainModel) setNotice(text string) tea.Cmd {
	m.noticeID++
	m.notice = text

	id := m.noticeID
	return tea.Tick(noticeTTL, func(time.Time) tea.Msg {
		return clearNoticeMsg{id: id}
	})
}

func (m *MainModel) currentTrackID() string {
	if track := m.player.CurrentTrack(); track != nil {
		return track.ID
	}
	return ""
}

// resize сохраняет размеры окна и передает их всем моделям
func (m *MainModel) resize(msg tea.WindowSizeMsg) {
	m.width = msg.Width
	m.height = msg.Height
	m.bar.SetWidth(msg.Width)
	m.resizeAll()
}

func (m *MainModel) resizeAll() {
	if m.width == 0 {
		return
	}

	for screen := range m.pages {
		m.resizeModel(m.pages[screen])
	}
	m.libraryModel, _ = m.libraryModel.Update(m.contentSize())

	if m.playlistView != nil {
		m.resizeModel(m.playlistView)
	}
	if m.resultsView != nil {
		m.resizeModel(m.resultsView)
	}
	if m.searchModel != nil {
		m.searchModel, _ = m.searchModel.Update(m.contentSize())
	}
	if m.playerModel != nil {
		m.playerModel, _ = m.playerModel.Update(m.contentSize())
	}
	if m.uploadModel != nil {
		m.uploadModel, _ = m.uploadModel.Update(m.contentSize())
	}
	if m.editorModel != nil {
		m.editorModel, _ = m.editorModel.Update(m.contentSize())
	}
	if m.profileModel != nil {
		m.profileModel, _ = m.profileModel.Update(m.contentSize())
	}
}

func (m *MainModel) resizeModel(model *tracklist.Model) {
	if m.width == 0 {
		return
	}
	model.Update(m.contentSize())
}

// contentSize возвращает размер области между заголовком и строкой плеера
func (m *MainModel) contentSize() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{
		Width:  m.width,
		Height: max(5, m.height-headerHeight-footerHeight),
	}
}

// View отображает интерфейс
func (m *MainModel) View() string {
	var b strings.Builder

	b.WriteString(m.header())
	b.WriteString("\n")
	b.WriteString(m.content())
	b.WriteString("\n")

	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice))
	}
	b.WriteString("\n")

	b.WriteString(m.bar.View(m.barState()))
	return b.String()
}

func (m *MainModel) barState() playerbar.State {
	state := playerbar.State{
		Status:   m.status,
		Controls: m.player.Controls(),
	}
	if m.status.Track != nil {
		state.Liked = m.player.IsLiked(m.status.Track.ID)
	}
	return state
}

func (m *MainModel) header() string {
	parts := []string{logoStyle.Render("♫ SonicAI")}
	for _, tab := range tabs {
		label := tab.key + " " + tab.title
		if m.activeTab() == tab.screen {
			parts = append(parts, activeTabStyle.Render(label))
		} else {
			parts = append(parts, tabStyle.Render(label))
		}
	}

	if m.profile.DisplayName != "" {
		name := "👤 " + m.profile.DisplayName
		if m.plan != "" {
			name += " 👑 " + m.plan
		}
		parts = append(parts, profileStyle.Render(name))
	}

	return strings.Join(parts, " ") + "\n" +
		profileStyle.Render(" /: поиск • u: загрузить • f: плеер • space: пауза • </>: трек • p: профиль • U: премиум • q: выход")
}

// activeTab возвращает вкладку, к которой относится текущий экран
func (m *MainModel) activeTab() ScreenType {
	screen := m.currentScreen
	if len(m.stack) > 0 {
		screen = m.stack[0]
	}
	if screen == PlaylistScreen {
		return LibraryScreen
	}
	return screen
}

func (m *MainModel) content() string {
	switch m.currentScreen {
	case HomeScreen, DiscoverScreen, TrendingScreen, RecentScreen:
		return m.pages[m.currentScreen].View()

	case LibraryScreen:
		return m.libraryModel.View()

	case PlaylistScreen:
		if m.playlistView != nil {
			return m.playlistView.View()
		}
		return "Ошибка: плейлист не открыт"

	case ResultsScreen:
		if m.resultsView != nil {
			return m.resultsView.View()
		}
		return "Ошибка: нет результатов поиска"

	case SearchScreen:
		if m.searchModel != nil {
			return m.searchModel.View()
		}
		return "Ошибка: модель поиска не инициализирована"

	case PlayerScreen:
		if m.playerModel != nil {
			return m.playerModel.View()
		}
		return "Ошибка: модель плеера не инициализирована"

	case UploadScreen:
		if m.uploadModel != nil {
			return m.uploadModel.View()
		}
		return "Ошибка: модель загрузки не инициализирована"

	case EditorScreen:
		if m.editorModel != nil {
			return m.editorModel.View()
		}
		return "Ошибка: модель редактора не инициализирована"

	case PickerScreen:
		if m.pickerModel != nil {
			return m.pickerModel.View()
		}
		return "Ошибка: модель выбора плейлиста не инициализирована"

	case ProfileScreen:
		if m.profileModel != nil {
			return m.profileModel.View()
		}
		return "Ошибка: модель профиля не инициализирована"

	case PremiumScreen:
		if m.premiumModel != nil {
			return m.premiumModel.View()
		}
		return "Ошибка: модель подписки не инициализирована"

	default:
		return "Неизвестный экран"
	}
}

// Close закрывает ресурсы главной модели
func (m *MainModel) Close() {
	if m.uploadModel != nil {
		m.uploadModel.Cancel()
	}
	if m.player != nil {
		m.player.Unsubscribe(m.sub)
	}
}
