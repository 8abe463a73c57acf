// Package search содержит строку поиска по каталогу
package search

import (
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/hazadus/go-sonicai/internal/sanitize"
	"github.com/hazadus/go-sonicai/internal/validate"
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Margin(1, 0)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Margin(1, 0)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Margin(1, 0)
)

// QueryMsg отправляется с очищенным поисковым запросом
type QueryMsg struct {
	Query string
}

// GoBackMsg отправляется при отмене поиска
type GoBackMsg struct{}

// Model представляет строку поиска
type Model struct {
	input textinput.Model
	err   string
}

// NewModel создает строку поиска с предыдущим запросом
func NewModel(query string) *Model {
	input := textinput.New()
	input.Placeholder = "Название или исполнитель"
	input.Prompt = "🔍 "
	input.CharLimit = 100
	input.SetValue(query)
	input.Focus()

	return &Model{input: input}
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Error возвращает текст последней ошибки
func (m *Model) Error() string {
	return m.err
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg { return GoBackMsg{} }

		case "enter":
			query := sanitize.SearchQuery(m.input.Value())
			if err := validate.SearchQuery(query); err != nil {
				m.err = errorText(err)
				return m, nil
			}

			m.err = ""
			return m, func() tea.Msg { return QueryMsg{Query: query} }
		}

	case tea.WindowSizeMsg:
		m.input.Width = max(10, msg.Width-10)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View отображает модель
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Поиск"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.err != "" {
		b.WriteString(errorStyle.Render(m.err))
		b.WriteString("\n")
	}

	b.WriteString(helpStyle.Render("Enter: искать • Esc: отмена"))
	return b.String()
}

func errorText(err error) string {
	var errs validate.Errors
	if errors.As(err, &errs) {
		if message, ok := errs.Field("query"); ok {
			return message
		}
	}
	return err.Error()
}
