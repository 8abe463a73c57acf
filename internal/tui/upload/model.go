// Package upload содержит диалог загрузки трека для TUI
package upload

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-sonicai/internal/upload"
	"github.com/hazadus/go-sonicai/internal/utils"
	"github.com/hazadus/go-sonicai/internal/validate"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Margin(1, 0)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(15)
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	blurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Margin(1, 0)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Margin(1, 0)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Margin(1, 0)
)

// DoneMsg отправляется после успешной загрузки и закрытия диалога
type DoneMsg struct {
	Result upload.Result
}

// GoBackMsg отправляется при закрытии диалога без результата
type GoBackMsg struct{}

// progressMsg передает прогресс из горутины загрузки
type progressMsg struct {
	events  <-chan tea.Msg
	percent int
}

// finishedMsg передает итог загрузки
type finishedMsg struct {
	events <-chan tea.Msg
	result *upload.Result
	err    error
}

type state int

const (
	stateForm state = iota
	stateUploading
	stateDone
)

const (
	titleField = iota
	genreField
	fileField
	numFields
)

// Model представляет диалог загрузки
type Model struct {
	service    *upload.Service
	artist     string
	inputs     []textinput.Model
	focusIndex int
	progress   progress.Model
	state      state
	percent    int
	result     *upload.Result
	err        string
	events     <-chan tea.Msg
	cancel     context.CancelFunc
}

// NewModel создает диалог загрузки. artist подставляется в трек, если в файле нет тегов.
func NewModel(service *upload.Service, artist string) *Model {
	inputs := make([]textinput.Model, numFields)

	inputs[titleField] = textinput.New()
	inputs[titleField].Placeholder = "Название трека"
	inputs[titleField].CharLimit = 200
	inputs[titleField].Focus()
	inputs[titleField].PromptStyle = focusedStyle
	inputs[titleField].TextStyle = focusedStyle

	inputs[genreField] = textinput.New()
	inputs[genreField].Placeholder = "Жанр"
	inputs[genreField].CharLimit = 50

	inputs[fileField] = textinput.New()
	inputs[fileField].Placeholder = "Путь к MP3 (необязательно)"
	inputs[fileField].CharLimit = 1024

	return &Model{
		service:  service,
		artist:   artist,
		inputs:   inputs,
		progress: progress.New(progress.WithDefaultGradient()),
	}
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Uploading сообщает, идет ли загрузка
func (m *Model) Uploading() bool {
	return m.state == stateUploading
}

// Percent возвращает текущий прогресс загрузки
func (m *Model) Percent() int {
	return m.percent
}

// Error возвращает текст последней ошибки
func (m *Model) Error() string {
	return m.err
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		if msg.events != m.events {
			return m, nil
		}
		m.percent = msg.percent
		return m, waitForEvent(m.events)

	case finishedMsg:
		if msg.events != m.events {
			return m, nil
		}
		return m, m.finish(msg)

	case tea.WindowSizeMsg:
		m.progress.Width = min(max(msg.Width-20, 20), 80)
		for i := range m.inputs {
			m.inputs[i].Width = max(10, msg.Width-20)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.state {
		case stateUploading:
			if msg.String() == "esc" {
				m.Cancel()
				return m, func() tea.Msg { return GoBackMsg{} }
			}
			return m, nil

		case stateDone:
			switch msg.String() {
			case "enter", "esc":
				result := *m.result
				return m, func() tea.Msg { return DoneMsg{Result: result} }
			}
			return m, nil
		}

		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return GoBackMsg{} }

		case "ctrl+s":
			return m, m.start()

		case "tab", "shift+tab", "enter", "up", "down":
			s := msg.String()

			if s == "enter" && m.focusIndex == len(m.inputs) {
				return m, m.start()
			}

			if s == "up" || s == "shift+tab" {
				m.focusIndex--
			} else {
				m.focusIndex++
			}

			if m.focusIndex > len(m.inputs) {
				m.focusIndex = 0
			} else if m.focusIndex < 0 {
				m.focusIndex = len(m.inputs)
			}

			return m, m.updateFocus()
		}
	}

	if m.state == stateForm && m.focusIndex < len(m.inputs) {
		var cmd tea.Cmd
		m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) updateFocus() tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		if i == m.focusIndex {
			cmds[i] = m.inputs[i].Focus()
			m.inputs[i].PromptStyle = focusedStyle
			m.inputs[i].TextStyle = focusedStyle
		} else {
			m.inputs[i].Blur()
			m.inputs[i].PromptStyle = blurredStyle
			m.inputs[i].TextStyle = blurredStyle
		}
	}
	return tea.Batch(cmds...)
}

// start запускает загрузку в отдельной горутине.
// Прогресс и итог приходят через канал событий.
func (m *Model) start() tea.Cmd {
	req := upload.Request{
		Title:    m.inputs[titleField].Value(),
		Genre:    m.inputs[genreField].Value(),
		Artist:   m.artist,
		FilePath: strings.TrimSpace(m.inputs[fileField].Value()),
	}

	ctx, cancel := context.WithCancel(context.Background())
	events := make(chan tea.Msg, 16)

	m.cancel = cancel
	m.events = events
	m.state = stateUploading
	m.percent = 0
	m.err = ""

	go func() {
		defer close(events)

		result, err := m.service.Upload(ctx, req, func(percent int) {
			select {
			case events <- progressMsg{events: events, percent: percent}:
			case <-ctx.Done():
			}
		})
		select {
		case events <- finishedMsg{events: events, result: result, err: err}:
		case <-ctx.Done():
		}
	}()

	return waitForEvent(events)
}

// waitForEvent ждет следующее событие загрузки
func waitForEvent(events <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-events
		if !ok {
			return nil
		}
		return msg
	}
}

func (m *Model) finish(msg finishedMsg) tea.Cmd {
	m.cancel()
	m.cancel = nil

	if msg.err != nil {
		m.state = stateForm
		m.percent = 0
		m.err = formatError(msg.err)
		return m.updateFocus()
	}

	m.state = stateDone
	m.percent = 100
	m.result = msg.result
	return nil
}

// Cancel прерывает текущую загрузку
func (m *Model) Cancel() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.events = nil
	if m.state == stateUploading {
		m.state = stateForm
		m.percent = 0
	}
}

// View отображает модель
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Загрузка трека"))
	b.WriteString("\n\n")

	switch m.state {
	case stateUploading:
		b.WriteString(fmt.Sprintf("Загрузка %q...\n\n", m.inputs[titleField].Value()))
		b.WriteString(m.progress.ViewAs(float64(m.percent) / 100))
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("Esc: отменить загрузку"))
		return b.String()

	case stateDone:
		track := m.result.Track
		line := fmt.Sprintf("✅ Трек %q (%s) загружен", track.Title, track.Genre)
		if m.result.Size > 0 {
			line += ", " + utils.FormatBytes(m.result.Size)
		}
		b.WriteString(successStyle.Render(line))
		b.WriteString("\n")
		if m.result.URL != "" {
			b.WriteString(m.result.URL)
			b.WriteString("\n")
		}
		b.WriteString(helpStyle.Render("Enter: закрыть"))
		return b.String()
	}

	labels := []string{"Название:", "Жанр:", "Файл:"}
	for i, input := range m.inputs {
		b.WriteString(labelStyle.Render(labels[i]))
		b.WriteString(" ")
		b.WriteString(input.View())
		b.WriteString("\n\n")
	}

	button := "[ Загрузить ]"
	if m.focusIndex == len(m.inputs) {
		button = focusedStyle.Render(button)
	} else {
		button = blurredStyle.Render(button)
	}
	b.WriteString(button)
	b.WriteString("\n")

	if m.err != "" {
		b.WriteString(errorStyle.Render(m.err))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("Tab/Enter: следующее поле • Ctrl+S: загрузить • Esc: отмена"))
	return b.String()
}

// formatError собирает сообщения об ошибках полей в одну строку
func formatError(err error) string {
	var errs validate.Errors
	if !errors.As(err, &errs) {
		return err.Error()
	}

	messages := make([]string, len(errs))
	for i, fe := range errs {
		messages[i] = fe.Message
	}
	return strings.Join(messages, "\n")
}
