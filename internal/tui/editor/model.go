// Package editor содержит форму создания и редактирования плейлиста для TUI
package editor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-sonicai/internal/playlist"
	"github.com/hazadus/go-sonicai/internal/sanitize"
	"github.com/hazadus/go-sonicai/internal/validate"
)

var (
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Margin(1, 0)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Width(15)
	focusedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	blurredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Margin(1, 0)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Margin(1, 0)
	footerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Margin(1, 0)
)

// SavedMsg отправляется когда плейлист успешно сохранен
type SavedMsg struct {
	Playlist playlist.Playlist
	Created  bool
}

// GoBackMsg отправляется при отмене редактирования
type GoBackMsg struct{}

// fieldType определяет тип поля для редактирования
type fieldType int

const (
	nameField fieldType = iota
	descriptionField
	numFields
)

// Model представляет модель формы плейлиста
type Model struct {
	store      *playlist.Store
	editingID  string // Пустой для нового плейлиста
	inputs     []textinput.Model
	focusIndex int
	err        string
}

// NewModel создает форму нового плейлиста
func NewModel(store *playlist.Store) *Model {
	return newModel(store, playlist.Playlist{})
}

// NewEditModel создает форму редактирования существующего плейлиста
func NewEditModel(store *playlist.Store, existing playlist.Playlist) *Model {
	return newModel(store, existing)
}

func newModel(store *playlist.Store, existing playlist.Playlist) *Model {
	inputs := make([]textinput.Model, numFields)

	inputs[nameField] = textinput.New()
	inputs[nameField].Placeholder = "Название плейлиста"
	inputs[nameField].CharLimit = 100
	inputs[nameField].SetValue(existing.Name)
	inputs[nameField].Focus()
	inputs[nameField].PromptStyle = focusedStyle
	inputs[nameField].TextStyle = focusedStyle

	inputs[descriptionField] = textinput.New()
	inputs[descriptionField].Placeholder = "Описание (необязательно)"
	inputs[descriptionField].CharLimit = 500
	inputs[descriptionField].SetValue(existing.Description)

	return &Model{
		store:     store,
		editingID: existing.ID,
		inputs:    inputs,
	}
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

		case "tab", "shift+tab", "enter", "up", "down":
			s := msg.String()

			// Enter на кнопке сохранения
			if s == "enter" && m.focusIndex == len(m.inputs) {
				return m, m.save()
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

	case tea.WindowSizeMsg:
		for i := range m.inputs {
			m.inputs[i].Width = max(10, msg.Width-20)
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

// save очищает и проверяет поля, затем сохраняет плейлист в хранилище.
// При ошибке форма остается открытой.
func (m *Model) save() tea.Cmd {
	name := sanitize.PlaylistName(m.inputs[nameField].Value())
	description := sanitize.Description(m.inputs[descriptionField].Value())

	if err := validate.Playlist(name, description); err != nil {
		m.err = formatError(err)
		return nil
	}

	if m.editingID == "" {
		created := m.store.Create(name, description)
		m.err = ""
		return func() tea.Msg {
			return SavedMsg{Playlist: created, Created: true}
		}
	}

	updated, err := m.store.Update(m.editingID, playlist.Patch{
		Name:        &name,
		Description: &description,
	})
	if err != nil {
		m.err = fmt.Sprintf("Ошибка обновления плейлиста: %v", err)
		return nil
	}

	m.err = ""
	return func() tea.Msg {
		return SavedMsg{Playlist: updated}
	}
}

// Error возвращает текст последней ошибки формы
func (m *Model) Error() string {
	return m.err
}

// View отображает модель
func (m *Model) View() string {
	var b strings.Builder

	title := "Новый плейлист"
	if m.editingID != "" {
		title = "Редактирование плейлиста"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")

	labels := []string{"Название:", "Описание:"}
	for i, input := range m.inputs {
		b.WriteString(labelStyle.Render(labels[i]))
		b.WriteString(" ")
		b.WriteString(input.View())
		b.WriteString("\n\n")
	}

	saveButton := "[ Сохранить ]"
	if m.focusIndex == len(m.inputs) {
		saveButton = focusedStyle.Render(saveButton)
	} else {
		saveButton = blurredStyle.Render(saveButton)
	}
	b.WriteString(saveButton)
	b.WriteString("\n\n")

	if m.err != "" {
		b.WriteString(errorStyle.Render(m.err))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("Tab/Enter: следующее поле • Shift+Tab: предыдущее поле"))
	b.WriteString("\n")
	b.WriteString(footerStyle.Render("Ctrl+S: сохранить • Esc: отмена"))

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
