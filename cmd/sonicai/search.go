package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-sonicai/internal/sanitize"
	"github.com/hazadus/go-sonicai/internal/validate"
)

// createSearchCommand создает команду search с привязкой к экземпляру приложения
func (app *Application) createSearchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search [query]",
		Short: "Search tracks by title or artist",
		Long:  `Search the catalog for tracks whose title or artist contains the query.`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return app.searchTracks(strings.Join(args, " "))
		},
	}
}

func (app *Application) searchTracks(query string) error {
	query = sanitize.SearchQuery(query)
	if err := validate.SearchQuery(query); err != nil {
		return fmt.Errorf("некорректный запрос: %w", err)
	}

	tracks := app.Catalog.Search(query)
	if len(tracks) == 0 {
		fmt.Printf("🔍 По запросу %q ничего не найдено.\n", query)
		return nil
	}

	fmt.Printf("🔍 Найдено по запросу %q: %d\n\n", query, len(tracks))
	printTracks(tracks)
	return nil
}
