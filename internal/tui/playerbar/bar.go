// Package playerbar отображает строку плеера, которая видна на всех экранах
package playerbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-sonicai/internal/player"
	"github.com/hazadus/go-sonicai/internal/utils"
)

var (
	barStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(lipgloss.Color("240")).
			PaddingLeft(1)

	trackStyle  = lipgloss.NewStyle().Bold(true)
	artistStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	idleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// State содержит все, что нужно для отрисовки строки плеера
type State struct {
	Status   player.Status
	Controls player.Controls
	Liked    bool
}

// Bar отрисовывает строку плеера
type Bar struct {
	progress progress.Model
	width    int
}

// New создает строку плеера
func New() *Bar {
	prog := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	prog.Width = 30
	return &Bar{progress: prog, width: 80}
}

// SetWidth задает ширину строки
func (b *Bar) SetWidth(width int) {
	b.width = width
	b.progress.Width = max(10, min(40, width/3))
}

// View отображает строку плеера
func (b *Bar) View(state State) string {
	status := state.Status
	if status.Track == nil {
		return barStyle.Render(idleStyle.Render("Ничего не играет • Enter на треке: воспроизвести"))
	}

	icon := "⏸"
	if status.Playing {
		icon = "▶"
	}

	info := fmt.Sprintf("%s %s %s",
		icon,
		trackStyle.Render(utils.TruncateString(status.Track.Title, 28)),
		artistStyle.Render(utils.TruncateString(status.Track.Artist, 20)),
	)

	timeText := fmt.Sprintf("%s / %s", ElapsedText(status), TotalText(status))

	line := strings.Join([]string{
		info,
		b.progress.ViewAs(status.Progress / 100),
		timeText,
		Flags(state),
	}, "  ")

	return barStyle.Width(b.width).Render(line)
}

// ElapsedText возвращает прошедшее время в виде m:ss
func ElapsedText(status player.Status) string {
	return player.FormatTime(status.Elapsed.Seconds())
}

// TotalText возвращает длительность трека; если она неизвестна, показывается строка из каталога
func TotalText(status player.Status) string {
	if status.Duration > 0 {
		return player.FormatTime(status.Duration.Seconds())
	}
	if status.Track != nil && status.Track.Duration != "" {
		return status.Track.Duration
	}
	return "-:--"
}

// Flags отображает режимы плеера: отметку, перемешивание, повтор и громкость
func Flags(state State) string {
	flag := func(on bool, label string) string {
		if on {
			return activeStyle.Render(label)
		}
		return idleStyle.Render(label)
	}

	volume := fmt.Sprintf("🔊 %d%%", state.Controls.Volume)
	if state.Controls.Muted || state.Controls.Volume == 0 {
		volume = "🔇"
	}

	return strings.Join([]string{
		flag(state.Liked, "♥"),
		flag(state.Controls.Shuffle, "⤮"),
		flag(state.Controls.Repeat, "↻"),
		volume,
	}, " ")
}
