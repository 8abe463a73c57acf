// Package share формирует текст для публикации трека и копирует его в буфер обмена
package share

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/hazadus/go-sonicai/internal/catalog"
)

// writeClipboard подменяется в тестах
var writeClipboard = clipboard.WriteAll

// Text возвращает текст для публикации трека
func Text(track catalog.Track) string {
	return fmt.Sprintf(`Check out "%s" by %s on SonicAI!`, track.Title, track.Artist)
}

// Copy копирует текст публикации в системный буфер обмена
func Copy(track catalog.Track) (string, error) {
	text := Text(track)
	if err := writeClipboard(text); err != nil {
		return text, fmt.Errorf("не удалось скопировать в буфер обмена: %w", err)
	}
	return text, nil
}
