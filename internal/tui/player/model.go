// Package player содержит модель полноэкранного плеера для TUI
package player

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-sonicai/internal/player"
	"github.com/hazadus/go-sonicai/internal/tui/playerbar"
)

// seekStep - шаг перемотки стрелками, в процентах
const seekStep = 5

// volumeStep - шаг изменения громкости
const volumeStep = 5

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	coverStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(1, 4).
			MarginBottom(1)

	trackInfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginBottom(1)

	statusStyle = lipgloss.NewStyle().
			Bold(true).
			MarginTop(1).
			MarginBottom(1)

	controlsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			MarginTop(1)
)

// GoBackMsg отправляется для возврата к предыдущему экрану
type GoBackMsg struct{}

// NextMsg запрашивает следующий трек
type NextMsg struct{}

// PreviousMsg запрашивает предыдущий трек
type PreviousMsg struct{}

// LikedMsg сообщает об изменении отметки «нравится»
type LikedMsg struct {
	Liked bool
}

// StatusMsg передает модели новое состояние плеера
type StatusMsg struct {
	Status player.Status
}

// Model представляет модель экрана воспроизведения
type Model struct {
	player      *player.Player
	progressBar progress.Model
	status      player.Status
	width       int
	height      int
}

// NewModel создает новую модель полноэкранного плеера поверх общего плеера
func NewModel(p *player.Player) *Model {
	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 40

	return &Model{
		player:      p,
		progressBar: prog,
		status:      p.Status(),
	}
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progressBar.Width = max(10, min(60, msg.Width-10))
		return m, nil

	case StatusMsg:
		m.status = msg.Status
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc":
			return m, func() tea.Msg { return GoBackMsg{} }

		case " ":
			m.player.TogglePlayPause()

		case "left":
			m.player.Seek(m.status.Progress - seekStep)

		case "right":
			m.player.Seek(m.status.Progress + seekStep)

		case "n":
			return m, func() tea.Msg { return NextMsg{} }

		case "p":
			return m, func() tea.Msg { return PreviousMsg{} }

		case "l":
			liked, ok := m.player.ToggleLike()
			if ok {
				return m, func() tea.Msg { return LikedMsg{Liked: liked} }
			}

		case "s":
			m.player.ToggleShuffle()

		case "r":
			m.player.ToggleRepeat()

		case "m":
			m.player.ToggleMute()

		case "+", "=":
			m.player.SetVolume(m.player.Controls().Volume + volumeStep)

		case "-":
			m.player.SetVolume(m.player.Controls().Volume - volumeStep)
		}

		m.status = m.player.Status()
		return m, nil
	}

	return m, nil
}

// View отображает модель
func (m *Model) View() string {
	title := titleStyle.Render("🎵 Сейчас играет")

	track := m.status.Track
	if track == nil {
		return fmt.Sprintf(
			"%s\n\n%s\n\n%s",
			title,
			trackInfoStyle.Render("Трек не выбран"),
			controlsStyle.Render("q/esc: назад"),
		)
	}

	cover := coverStyle.Render(fmt.Sprintf("♫  %s", coverLabel(track.Cover)))

	trackInfo := trackInfoStyle.Render(fmt.Sprintf(
		"🎵 %s\n🎤 %s",
		track.Title,
		track.Artist,
	))

	statusIcon := "⏸️"
	if m.status.Playing {
		statusIcon = "▶️"
	}
	statusText := statusStyle.Render(fmt.Sprintf("%s %s", statusIcon, formatStatus(m.status.Playing)))

	timeText := fmt.Sprintf(
		"%s / %s",
		playerbar.ElapsedText(m.status),
		playerbar.TotalText(m.status),
	)

	state := playerbar.State{
		Status:   m.status,
		Controls: m.player.Controls(),
		Liked:    m.player.IsLiked(track.ID),
	}

	controls := controlsStyle.Render(strings.Join([]string{
		"Пробел: пауза/воспроизведение • ←/→: перемотка • n/p: следующий/предыдущий",
		"l: нравится • s: перемешать • r: повтор • m: без звука • +/-: громкость • q/esc: назад",
	}, "\n"))

	return fmt.Sprintf(
		"%s\n\n%s\n%s\n%s\n\n%s\n%s\n%s\n%s",
		title,
		cover,
		trackInfo,
		statusText,
		m.progressBar.ViewAs(m.status.Progress/100),
		timeText,
		playerbar.Flags(state),
		controls,
	)
}

// Вспомогательные функции

func formatStatus(isPlaying bool) string {
	if isPlaying {
		return "Воспроизведение"
	}
	return "Пауза"
}

// coverLabel возвращает имя файла обложки без пути и расширения
func coverLabel(cover string) string {
	if cover == "" {
		return "без обложки"
	}
	name := cover[strings.LastIndex(cover, "/")+1:]
	if dot := strings.LastIndex(name, "."); dot > 0 {
		name = name[:dot]
	}
	return name
}
