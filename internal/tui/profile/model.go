// Package profile содержит форму настроек профиля для TUI
package profile

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-sonicai/internal/config"
	"github.com/hazadus/go-sonicai/internal/sanitize"
	"github.com/hazadus/go-sonicai/internal/validate"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Margin(1, 0)
	sectionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(20)
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	blurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Margin(1, 0)
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Margin(1, 0)
)

// SavedMsg отправляется когда профиль успешно сохранен
type SavedMsg struct {
	Profile config.Profile
}

// GoBackMsg отправляется при закрытии формы без сохранения
type GoBackMsg struct{}

const (
	usernameField = iota
	displayNameField
	emailField
	numFields
)

// toggle описывает переключатель настройки
type toggle struct {
	section string
	label   string
	hint    string
	value   *bool
}

// Model представляет модель формы профиля
type Model struct {
	profile    config.Profile // Рабочая копия, переключатели меняют ее напрямую
	inputs     []textinput.Model
	toggles    []toggle
	focusIndex int
	err        string
}

// NewModel создает форму с текущими настройками профиля
func NewModel(current config.Profile) *Model {
	m := &Model{profile: current}

	m.inputs = make([]textinput.Model, numFields)

	m.inputs[usernameField] = textinput.New()
	m.inputs[usernameField].Placeholder = "music_lover"
	m.inputs[usernameField].CharLimit = 30
	m.inputs[usernameField].SetValue(current.Username)
	m.inputs[usernameField].Focus()
	m.inputs[usernameField].PromptStyle = focusedStyle
	m.inputs[usernameField].TextStyle = focusedStyle

	m.inputs[displayNameField] = textinput.New()
	m.inputs[displayNameField].Placeholder = "Music Lover"
	m.inputs[displayNameField].CharLimit = 50
	m.inputs[displayNameField].SetValue(current.DisplayName)

	m.inputs[emailField] = textinput.New()
	m.inputs[emailField].Placeholder = "user@example.com"
	m.inputs[emailField].CharLimit = 255
	m.inputs[emailField].SetValue(current.Email)

	m.toggles = []toggle{
		{"🔔 Уведомления", "Новые релизы", "Новые AI-треки", &m.profile.Notifications.NewReleases},
		{"", "Рекомендации", "Персональные подборки", &m.profile.Notifications.Recommendations},
		{"", "Социальные", "Активность тех, на кого вы подписаны", &m.profile.Notifications.Social},
		{"🛡 Приватность", "Публичный профиль", "Другие могут видеть ваш профиль", &m.profile.Privacy.PublicProfile},
		{"", "История прослушиваний", "Показывать недавние треки всем", &m.profile.Privacy.ShowListeningHistory},
	}

	return m
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg {
				return GoBackMsg{}
			}

		case "ctrl+s":
			return m, m.save()

		case " ":
			if t, ok := m.focusedToggle(); ok {
				*t.value = !*t.value
				return m, nil
			}

		case "tab", "shift+tab", "enter", "up", "down":
			s := msg.String()

			if s == "enter" && m.focusIndex == m.saveIndex() {
				return m, m.save()
			}

			if s == "up" || s == "shift+tab" {
				m.focusIndex--
			} else {
				m.focusIndex++
			}

			if m.focusIndex > m.saveIndex() {
				m.focusIndex = 0
			} else if m.focusIndex < 0 {
				m.focusIndex = m.saveIndex()
			}

			return m, m.updateFocus()
		}

	case tea.WindowSizeMsg:
		for i := range m.inputs {
			m.inputs[i].Width = max(10, msg.Width-30)
		}
		return m, nil
	}

	if m.focusIndex < len(m.inputs) {
		var cmd tea.Cmd
		m.inputs[m.focusIndex], cmd = m.inputs[m.focusIndex].Update(msg)
		return m, cmd
	}

	return m, nil
}

// saveIndex возвращает позицию кнопки сохранения в порядке фокуса
func (m *Model) saveIndex() int {
	return len(m.inputs) + len(m.toggles)
}

func (m *Model) focusedToggle() (toggle, bool) {
	i := m.focusIndex - len(m.inputs)
	if i < 0 || i >= len(m.toggles) {
		return toggle{}, false
	}
	return m.toggles[i], true
}

func (m *Model) updateFocus() tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := 0; i < len(m.inputs); i++ {
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

// save очищает и проверяет поля. При ошибке форма остается открытой.
func (m *Model) save() tea.Cmd {
	username := sanitize.Input(m.inputs[usernameField].Value())
	displayName := sanitize.Input(m.inputs[displayNameField].Value())
	email := sanitize.Input(m.inputs[emailField].Value())

	if err := validate.Profile(username, displayName, email); err != nil {
		m.err = formatError(err)
		return nil
	}

	saved := m.profile
	saved.Username = username
	saved.DisplayName = displayName
	saved.Email = email

	m.err = ""
	return func() tea.Msg {
		return SavedMsg{Profile: saved}
	}
}

// Error возвращает текст последней ошибки формы
func (m *Model) Error() string {
	return m.err
}

// View отображает модель
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("👤 Настройки профиля"))
	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Основное"))
	b.WriteString("\n\n")

	labels := []string{"Имя пользователя:", "Отображаемое имя:", "Email:"}
	for i, input := range m.inputs {
		b.WriteString(labelStyle.Render(labels[i]))
		b.WriteString(" ")
		b.WriteString(input.View())
		b.WriteString("\n")
	}

	for i, t := range m.toggles {
		if t.section != "" {
			b.WriteString("\n")
			b.WriteString(sectionStyle.Render(t.section))
			b.WriteString("\n")
		}

		mark := "[ ]"
		if *t.value {
			mark = "[x]"
		}
		line := mark + " " + t.label
		if len(m.inputs)+i == m.focusIndex {
			line = focusedStyle.Render(line)
		} else {
			line = blurredStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("  ")
		b.WriteString(hintStyle.Render(t.hint))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	saveButton := "[ Сохранить ]"
	if m.focusIndex == m.saveIndex() {
		saveButton = focusedStyle.Render(saveButton)
	} else {
		saveButton = blurredStyle.Render(saveButton)
	}
	b.WriteString(saveButton)
	b.WriteString("\n")

	if m.err != "" {
		b.WriteString(errorStyle.Render(m.err))
		b.WriteString("\n")
	}

	b.WriteString(footerStyle.Render("Tab: следующее поле • Space: переключить • Ctrl+S: сохранить • Esc: отмена"))

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
