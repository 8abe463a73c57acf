// Package tui содержит компоненты для текстового пользовательского интерфейса
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-sonicai/internal/tui/app"
)

// App представляет основное TUI приложение
type App struct {
	deps    app.Deps
	logFile string // Файл для вывода log, пока терминал занят интерфейсом
}

// NewApp создает новый экземпляр TUI приложения
func NewApp(deps app.Deps, logFile string) *App {
	return &App{
		deps:    deps,
		logFile: logFile,
	}
}

// newMainModel создает главную модель интерфейса
func (tuiApp *App) newMainModel() *app.MainModel {
	return app.NewMainModel(tuiApp.deps)
}

// Run запускает TUI приложение
func (tuiApp *App) Run() error {
	if tuiApp.logFile != "" {
		f, err := tea.LogToFile(tuiApp.logFile, "sonicai")
		if err != nil {
			return fmt.Errorf("ошибка открытия файла журнала: %w", err)
		}
		defer f.Close()
	}

	model := tuiApp.newMainModel()

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()

	// Отписываемся от плеера после завершения программы
	model.Close()

	return err
}
