// Package premium содержит диалог оформления премиум-подписки
package premium

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// upgradeDelay - длительность имитации оформления подписки
const upgradeDelay = 2 * time.Second

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true).Margin(1, 0)
	currentStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	planStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1).Width(34)
	selectedStyle = planStyle.BorderForeground(lipgloss.Color("205"))
	priceStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	badgeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Margin(1, 0)
)

// Plan описывает тарифный план
type Plan struct {
	ID       string
	Name     string
	Price    string
	Features []string
	Popular  bool
}

// Plans возвращает доступные тарифы
func Plans() []Plan {
	return []Plan{
		{
			ID:    "pro",
			Name:  "Pro",
			Price: "$9.99",
			Features: []string{
				"Unlimited AI track generation",
				"High-quality audio downloads",
				"Priority support",
				"Advanced AI models",
				"Commercial license",
			},
			Popular: true,
		},
		{
			ID:    "ultimate",
			Name:  "Ultimate",
			Price: "$19.99",
			Features: []string{
				"Everything in Pro",
				"Exclusive AI models",
				"Custom voice synthesis",
				"API access",
				"White-label solution",
				"Priority queue",
			},
		},
	}
}

// UpgradedMsg отправляется после оформления подписки
type UpgradedMsg struct {
	Plan Plan
}

// GoBackMsg отправляется при закрытии диалога
type GoBackMsg struct{}

// upgradeFinishedMsg завершает имитацию оформления
type upgradeFinishedMsg struct {
	plan Plan
}

// Model представляет модель диалога подписки
type Model struct {
	plans     []Plan
	selected  int
	upgrading bool
}

// NewModel создает диалог с выбранным по умолчанию тарифом Pro
func NewModel() *Model {
	return &Model{plans: Plans()}
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case upgradeFinishedMsg:
		m.upgrading = false
		return m, func() tea.Msg {
			return UpgradedMsg{Plan: msg.plan}
		}

	case tea.KeyMsg:
		// Во время оформления диалог не закрывается
		if m.upgrading {
			return m, nil
		}

		switch msg.String() {
		case "esc", "q":
			return m, func() tea.Msg {
				return GoBackMsg{}
			}

		case "left", "h", "up", "k", "shift+tab":
			m.selected = (m.selected - 1 + len(m.plans)) % len(m.plans)

		case "right", "l", "down", "j", "tab":
			m.selected = (m.selected + 1) % len(m.plans)

		case "enter":
			m.upgrading = true
			plan := m.plans[m.selected]
			return m, tea.Tick(upgradeDelay, func(time.Time) tea.Msg {
				return upgradeFinishedMsg{plan: plan}
			})
		}
	}

	return m, nil
}

// Selected возвращает выбранный тариф
func (m *Model) Selected() Plan {
	return m.plans[m.selected]
}

// Upgrading сообщает, идет ли оформление подписки
func (m *Model) Upgrading() bool {
	return m.upgrading
}

// View отображает модель
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("👑 Премиум-подписка"))
	b.WriteString("\n")
	b.WriteString(currentStyle.Render("Текущий план: Free. Ограниченные возможности и генерация треков"))
	b.WriteString("\n\n")

	cards := make([]string, len(m.plans))
	for i, plan := range m.plans {
		var card strings.Builder
		card.WriteString(plan.Name)
		if plan.Popular {
			card.WriteString(" " + badgeStyle.Render("★ Популярный"))
		}
		card.WriteString("\n")
		card.WriteString(priceStyle.Render(plan.Price) + "/мес")
		card.WriteString("\n\n")
		for _, feature := range plan.Features {
			card.WriteString("✓ " + feature + "\n")
		}

		style := planStyle
		if i == m.selected {
			style = selectedStyle
		}
		cards[i] = style.Render(strings.TrimSuffix(card.String(), "\n"))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	b.WriteString("\n")

	if m.upgrading {
		b.WriteString(footerStyle.Render("Оформление подписки..."))
	} else {
		b.WriteString(footerStyle.Render(fmt.Sprintf("←/→: выбор тарифа • Enter: перейти на %s • Esc: отмена", m.Selected().Name)))
	}

	return b.String()
}
