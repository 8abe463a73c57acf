package share

import (
	"errors"
	"testing"

	"github.com/hazadus/go-sonicai/internal/catalog"
)

var track = catalog.Track{ID: "1", Title: "Digital Dreams", Artist: "SynthAI"}

func TestText(t *testing.T) {
	expected := `Check out "Digital Dreams" by SynthAI on SonicAI!`
	if got := Text(track); got != expected {
		t.Errorf("Text() = %s, expected %s", got, expected)
	}
}

func TestCopy(t *testing.T) {
	original := writeClipboard
	defer func() { writeClipboard = original }()

	var written string
	writeClipboard = func(s string) error {
		written = s
		return nil
	}

	text, err := Copy(track)
	if err != nil {
		t.Fatalf("Неожиданная ошибка: %v", err)
	}
	if written != text || text != Text(track) {
		t.Errorf("В буфер записано %q, ожидалось %q", written, Text(track))
	}
}

func TestCopyError(t *testing.T) {
	original := writeClipboard
	defer func() { writeClipboard = original }()

	clipErr := errors.New("no clipboard")
	writeClipboard = func(string) error { return clipErr }

	text, err := Copy(track)
	if !errors.Is(err, clipErr) {
		t.Errorf("Ожидалась обернутая ошибка буфера обмена, получено %v", err)
	}
	if text == "" {
		t.Error("Текст должен возвращаться даже при ошибке")
	}
}
