package sanitize

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestInput(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"  hello  ", "hello"},
		{"<script>alert(1)</script>", "scriptalert(1)/script"},
		{"javascript:alert(1)", "alert(1)"},
		{"JaVaScRiPt:void(0)", "void(0)"},
		{`img onerror="x"`, `img "x"`},
		{"ONCLICK = go", " go"},
		{"Chill Vibes!", "Chill Vibes!"},
		{"", ""},
	}

	for _, test := range tests {
		result := Input(test.input)
		if result != test.expected {
			t.Errorf("Input(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestInputLengthCap(t *testing.T) {
	long := strings.Repeat("a", 1500)
	if got := len(Input(long)); got != 1000 {
		t.Errorf("Ожидалась длина 1000, получено %d", got)
	}

	// Ограничение считается в символах, а не в байтах
	cyrillic := strings.Repeat("я", 1200)
	if got := utf8.RuneCountInString(Input(cyrillic)); got != 1000 {
		t.Errorf("Ожидалось 1000 символов, получено %d", got)
	}
}

func TestFieldLimits(t *testing.T) {
	long := strings.Repeat("x", 2000)

	tests := []struct {
		name     string
		fn       func(string) string
		expected int
	}{
		{"PlaylistName", PlaylistName, 100},
		{"TrackTitle", TrackTitle, 200},
		{"Description", Description, 500},
		{"SearchQuery", SearchQuery, 100},
	}

	for _, test := range tests {
		if got := len(test.fn(long)); got != test.expected {
			t.Errorf("%s: ожидалась длина %d, получено %d", test.name, test.expected, got)
		}
	}
}

func TestPlaylistNameStripsMarkup(t *testing.T) {
	if got := PlaylistName("  <b>Road Trip</b> "); got != "bRoad Trip/b" {
		t.Errorf("Неожиданный результат: %q", got)
	}
}
