// Package sanitize очищает пользовательский ввод перед сохранением и отображением
package sanitize

import (
	"regexp"
	"strings"
)

const (
	maxInputLength        = 1000
	maxPlaylistNameLength = 100
	maxTrackTitleLength   = 200
	maxDescriptionLength  = 500
	maxSearchQueryLength  = 100
)

var (
	angleBrackets = regexp.MustCompile(`[<>]`)
	jsProtocol    = regexp.MustCompile(`(?i)javascript:`)
	eventHandler  = regexp.MustCompile(`(?i)on\w+\s*=`)
)

// Input обрезает пробелы, удаляет угловые скобки, протокол javascript:
// и обработчики событий вида onclick=. Результат ограничен 1000 символами.
func Input(s string) string {
	s = strings.TrimSpace(s)
	s = angleBrackets.ReplaceAllString(s, "")
	s = jsProtocol.ReplaceAllString(s, "")
	s = eventHandler.ReplaceAllString(s, "")
	return truncate(s, maxInputLength)
}

// PlaylistName очищает название плейлиста
func PlaylistName(s string) string {
	return truncate(Input(s), maxPlaylistNameLength)
}

// TrackTitle очищает название трека
func TrackTitle(s string) string {
	return truncate(Input(s), maxTrackTitleLength)
}

// Description очищает описание
func Description(s string) string {
	return truncate(Input(s), maxDescriptionLength)
}

// SearchQuery очищает поисковый запрос
func SearchQuery(s string) string {
	return truncate(Input(s), maxSearchQueryLength)
}

// truncate ограничивает строку n символами (рунами)
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
