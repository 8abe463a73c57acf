package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-sonicai/internal/catalog"
	"github.com/hazadus/go-sonicai/internal/utils"
)

const (
	sortTrending = "trending"
	sortRecent   = "recent"
)

// createListCommand создает команду list с привязкой к экземпляру приложения
func (app *Application) createListCommand() *cobra.Command {
	var sortBy, genre string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tracks from the catalog",
		Long:  `Display tracks from the catalog, optionally sorted by plays or release order and filtered by genre.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return app.listTracks(sortBy, genre)
		},
	}

	cmd.Flags().StringVar(&sortBy, "sort", "", "sort order: trending or recent")
	cmd.Flags().StringVar(&genre, "genre", "", "show only tracks of the genre")

	return cmd
}

func (app *Application) listTracks(sortBy, genre string) error {
	var tracks []catalog.Track

	switch sortBy {
	case "":
		tracks = app.Catalog.Tracks()
	case sortTrending:
		tracks = app.Catalog.Trending()
	case sortRecent:
		tracks = app.Catalog.Recent()
	default:
		return fmt.Errorf("неизвестный порядок сортировки %q: используйте %s или %s", sortBy, sortTrending, sortRecent)
	}

	if genre != "" {
		tracks = filterGenre(tracks, genre)
	}

	if len(tracks) == 0 {
		fmt.Println("📚 Треков не найдено.")
		return nil
	}

	fmt.Printf("📚 Найдено треков: %d\n\n", len(tracks))
	printTracks(tracks)

	fmt.Println()
	fmt.Println("💡 Используйте 'sonicai play [ID]' для воспроизведения трека")
	return nil
}

// filterGenre оставляет треки указанного жанра, сохраняя порядок
func filterGenre(tracks []catalog.Track, genre string) []catalog.Track {
	var result []catalog.Track
	for _, t := range tracks {
		if strings.EqualFold(t.Genre, genre) {
			result = append(result, t)
		}
	}
	return result
}

// printTracks выводит треки таблицей
func printTracks(tracks []catalog.Track) {
	fmt.Printf("%s %s %s %s %s %s\n",
		utils.PadRight("ID", 4),
		utils.PadRight("Название", 30),
		utils.PadRight("Исполнитель", 24),
		utils.PadRight("Жанр", 14),
		utils.PadRight("Время", 8),
		"Прослушивания")
	fmt.Println(strings.Repeat("-", 100))

	for _, track := range tracks {
		fmt.Printf("%s %s %s %s %s %s\n",
			utils.PadRight(track.ID, 4),
			utils.PadRight(track.Title, 30),
			utils.PadRight(track.Artist, 24),
			utils.PadRight(track.Genre, 14),
			utils.PadRight(track.Duration, 8),
			utils.FormatPlays(track.Plays))
	}
}
