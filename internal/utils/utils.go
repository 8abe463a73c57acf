// Package utils содержит утилитарные функции, используемые в разных частях приложения
package utils

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"
)

// FormatDuration форматирует time.Duration в формат HH:MM:SS
func FormatDuration(d time.Duration) string {
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	seconds := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
}

// FormatClock форматирует длительность трека в вид m:ss или h:mm:ss
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	d = d.Round(time.Second)
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d / time.Second

	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// FormatPlays форматирует количество прослушиваний с разделителями разрядов.
// Для неизвестного значения возвращает пустую строку.
func FormatPlays(plays int) string {
	if plays <= 0 {
		return ""
	}
	return humanize.Comma(int64(plays)) + " plays"
}

// FormatBytes форматирует размер файла (KiB, MiB...)
func FormatBytes(size int64) string {
	if size < 0 {
		size = 0
	}
	return humanize.IBytes(uint64(size))
}

// TruncateString обрезает строку до указанной ширины в терминале, добавляя "..." если строка длиннее
func TruncateString(s string, maxWidth int) string {
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return runewidth.Truncate(s, maxWidth, "")
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// PadRight дополняет строку пробелами до указанной ширины, обрезая длинные строки
func PadRight(s string, width int) string {
	return runewidth.FillRight(TruncateString(s, width), width)
}
