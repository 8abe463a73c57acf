package search

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestSubmitQuery(t *testing.T) {
	model := NewModel("")
	model.input.SetValue("  <Synth>  ")

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("Ожидалась команда поиска")
	}

	msg, ok := cmd().(QueryMsg)
	if !ok {
		t.Fatalf("Ожидалось QueryMsg, получено %#v", cmd())
	}
	if msg.Query != "Synth" {
		t.Errorf("Ожидался очищенный запрос Synth, получено %q", msg.Query)
	}
}

func TestInvalidQuery(t *testing.T) {
	model := NewModel("rock; drop")

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("Недопустимый запрос не должен отправляться")
	}
	if model.Error() == "" {
		t.Error("Ожидалась ошибка проверки запроса")
	}
}

func TestEmptyQueryIsAllowed(t *testing.T) {
	model := NewModel("")

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if msg, ok := cmd().(QueryMsg); !ok || msg.Query != "" {
		t.Errorf("Ожидался пустой запрос, получено %#v", cmd())
	}
}

func TestGoBack(t *testing.T) {
	model := NewModel("synth")

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if _, ok := cmd().(GoBackMsg); !ok {
		t.Error("Ожидалось GoBackMsg")
	}
}
