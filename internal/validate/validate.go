// Package validate проверяет данные форм: плейлисты, загрузку треков, профиль и поиск
package validate

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	playlistNamePattern = regexp.MustCompile(`^[a-zA-Z0-9\s\-_.!?]+$`)
	trackTitlePattern   = regexp.MustCompile(`^[a-zA-Z0-9\s\-_.!?&()]+$`)
	genrePattern        = regexp.MustCompile(`^[a-zA-Z0-9\s\-]+$`)
	usernamePattern     = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	displayNamePattern  = regexp.MustCompile(`^[a-zA-Z0-9\s\-_.]+$`)
	searchQueryPattern  = regexp.MustCompile(`^[a-zA-Z0-9\s\-_.!?&()]*$`)
)

// FieldError описывает ошибку одного поля формы
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Errors содержит все ошибки формы
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Error()
	}
	return strings.Join(parts, "; ")
}

// Field возвращает первое сообщение об ошибке для поля
func (e Errors) Field(name string) (string, bool) {
	for _, fe := range e {
		if fe.Field == name {
			return fe.Message, true
		}
	}
	return "", false
}

// err возвращает nil для пустого списка, чтобы не получить ненулевой интерфейс
func (e Errors) err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// rule описывает ограничения одного текстового поля
type rule struct {
	field    string
	label    string
	min, max int
	pattern  *regexp.Regexp
}

func (r rule) check(value string, errs *Errors) {
	n := utf8.RuneCountInString(value)
	switch {
	case r.min > 0 && n == 0:
		*errs = append(*errs, FieldError{r.field, fmt.Sprintf("%s обязательно", r.label)})
	case n < r.min:
		*errs = append(*errs, FieldError{r.field, fmt.Sprintf("%s: минимум %d символов", r.label, r.min)})
	case r.max > 0 && n > r.max:
		*errs = append(*errs, FieldError{r.field, fmt.Sprintf("%s: максимум %d символов", r.label, r.max)})
	case r.pattern != nil && !r.pattern.MatchString(value):
		*errs = append(*errs, FieldError{r.field, fmt.Sprintf("%s содержит недопустимые символы", r.label)})
	}
}

// Playlist проверяет название и описание плейлиста
func Playlist(name, description string) error {
	var errs Errors
	rule{field: "name", label: "Название плейлиста", min: 1, max: 100, pattern: playlistNamePattern}.check(name, &errs)
	rule{field: "description", label: "Описание", max: 500}.check(description, &errs)
	return errs.err()
}

// TrackUpload проверяет данные загружаемого трека
func TrackUpload(title, genre string) error {
	var errs Errors
	rule{field: "title", label: "Название трека", min: 1, max: 200, pattern: trackTitlePattern}.check(title, &errs)
	rule{field: "genre", label: "Жанр", min: 1, max: 50, pattern: genrePattern}.check(genre, &errs)
	return errs.err()
}

// Profile проверяет настройки профиля
func Profile(username, displayName, email string) error {
	var errs Errors
	rule{field: "username", label: "Имя пользователя", min: 3, max: 30, pattern: usernamePattern}.check(username, &errs)
	rule{field: "display_name", label: "Отображаемое имя", min: 1, max: 50, pattern: displayNamePattern}.check(displayName, &errs)

	switch {
	case utf8.RuneCountInString(email) > 255:
		errs = append(errs, FieldError{"email", "Email: максимум 255 символов"})
	case !validEmail(email):
		errs = append(errs, FieldError{"email", "Введите корректный email"})
	}
	return errs.err()
}

// SearchQuery проверяет поисковый запрос. Пустой запрос допустим.
func SearchQuery(query string) error {
	var errs Errors
	rule{field: "query", label: "Поисковый запрос", max: 100, pattern: searchQueryPattern}.check(query, &errs)
	return errs.err()
}

// validEmail принимает только голый адрес вида user@host
func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}
	at := strings.LastIndex(email, "@")
	return at > 0 && strings.Contains(email[at+1:], ".")
}
