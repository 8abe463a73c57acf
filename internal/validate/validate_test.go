package validate

import (
	"errors"
	"strings"
	"testing"
)

func TestPlaylist(t *testing.T) {
	tests := []struct {
		name        string
		description string
		wantField   string
	}{
		{"Road Trip", "", ""},
		{"Chill-Out_2.0 !?", strings.Repeat("d", 500), ""},
		{strings.Repeat("n", 100), "", ""},
		{"", "", "name"},
		{strings.Repeat("n", 101), "", "name"},
		{"Rock & Roll", "", "name"},
		{"<script>", "", "name"},
		{"Ok", strings.Repeat("d", 501), "description"},
	}

	for _, test := range tests {
		err := Playlist(test.name, test.description)
		checkField(t, "Playlist", err, test.wantField)
	}
}

func TestTrackUpload(t *testing.T) {
	tests := []struct {
		title     string
		genre     string
		wantField string
	}{
		{"Night Drive (Remix) & More", "Synthwave", ""},
		{"", "Jazz", "title"},
		{strings.Repeat("t", 201), "Jazz", "title"},
		{"Title #1", "Jazz", "title"},
		{"Title", "", "genre"},
		{"Title", "Lo-Fi Hip Hop", ""},
		{"Title", "R&B", "genre"},
		{"Title", strings.Repeat("g", 51), "genre"},
	}

	for _, test := range tests {
		err := TrackUpload(test.title, test.genre)
		checkField(t, "TrackUpload", err, test.wantField)
	}
}

func TestProfile(t *testing.T) {
	tests := []struct {
		username    string
		displayName string
		email       string
		wantField   string
	}{
		{"music_lover", "Music Lover", "user@example.com", ""},
		{"ab", "Name", "user@example.com", "username"},
		{"bad-name", "Name", "user@example.com", "username"},
		{strings.Repeat("u", 31), "Name", "user@example.com", "username"},
		{"user", "", "user@example.com", "display_name"},
		{"user", "Name!", "user@example.com", "display_name"},
		{"user", "Name", "not-an-email", "email"},
		{"user", "Name", "Name <user@example.com>", "email"},
		{"user", "Name", "user@localhost", "email"},
		{"user", "Name", strings.Repeat("e", 250) + "@example.com", "email"},
	}

	for _, test := range tests {
		err := Profile(test.username, test.displayName, test.email)
		checkField(t, "Profile", err, test.wantField)
	}
}

func TestSearchQuery(t *testing.T) {
	tests := []struct {
		query     string
		wantField string
	}{
		{"", ""},
		{"neon (live) & more?", ""},
		{"drop table;", "query"},
		{strings.Repeat("q", 101), "query"},
	}

	for _, test := range tests {
		err := SearchQuery(test.query)
		checkField(t, "SearchQuery", err, test.wantField)
	}
}

func TestErrorsCollectAllFields(t *testing.T) {
	err := TrackUpload("", "")

	var errs Errors
	if !errors.As(err, &errs) {
		t.Fatalf("Ожидался тип Errors, получено %T", err)
	}
	if len(errs) != 2 {
		t.Errorf("Ожидалось 2 ошибки, получено %d: %v", len(errs), errs)
	}
	if !strings.Contains(err.Error(), "title") || !strings.Contains(err.Error(), "genre") {
		t.Errorf("Текст ошибки должен упоминать оба поля: %s", err)
	}
}

// checkField проверяет, что ошибка относится к ожидаемому полю (или отсутствует)
func checkField(t *testing.T, name string, err error, wantField string) {
	t.Helper()

	if wantField == "" {
		if err != nil {
			t.Errorf("%s: неожиданная ошибка: %v", name, err)
		}
		return
	}

	var errs Errors
	if !errors.As(err, &errs) {
		t.Errorf("%s: ожидалась ошибка поля %s, получено %v", name, wantField, err)
		return
	}
	if _, ok := errs.Field(wantField); !ok {
		t.Errorf("%s: ожидалась ошибка поля %s, получено %v", name, wantField, errs)
	}
}
