// Package upload принимает пользовательские треки: проверяет данные формы
// и передает файл выбранному способу загрузки с отчетом о прогрессе
package upload

import (
	"context"
	"errors"
	"fmt"

	"github.com/hazadus/go-sonicai/internal/catalog"
	"github.com/hazadus/go-sonicai/internal/sanitize"
	"github.com/hazadus/go-sonicai/internal/validate"
)

// ErrNoBackend возвращается, если сервис создан без способа загрузки
var ErrNoBackend = errors.New("не задан способ загрузки")

// Request содержит данные формы загрузки
type Request struct {
	Title    string
	Genre    string
	Artist   string // Имя автора для результата, если в файле нет тегов
	FilePath string // Пустой путь означает загрузку без файла
}

// Result содержит результат загрузки
type Result struct {
	Track catalog.Track
	URL   string // Адрес файла в хранилище, пустой для симуляции
	Size  int64
}

// ProgressFunc получает прогресс загрузки в процентах (0..100)
type ProgressFunc func(percent int)

// Backend выполняет загрузку
type Backend interface {
	Upload(ctx context.Context, req Request, onProgress ProgressFunc) (*Result, error)
}

// Service управляет процессом загрузки треков
type Service struct {
	simulated Backend
	files     Backend
}

// NewService создает сервис загрузки.
// files используется для запросов с файлом и может быть nil.
func NewService(simulated, files Backend) *Service {
	return &Service{
		simulated: simulated,
		files:     files,
	}
}

// Upload очищает и проверяет данные формы, затем выполняет загрузку
func (s *Service) Upload(ctx context.Context, req Request, onProgress ProgressFunc) (*Result, error) {
	req.Title = sanitize.TrackTitle(req.Title)
	req.Genre = sanitize.Input(req.Genre)
	req.Artist = sanitize.Input(req.Artist)

	if err := validate.TrackUpload(req.Title, req.Genre); err != nil {
		return nil, err
	}

	if onProgress == nil {
		onProgress = func(int) {}
	}

	backend := s.simulated
	if req.FilePath != "" && s.files != nil {
		backend = s.files
	}
	if backend == nil {
		return nil, ErrNoBackend
	}

	result, err := backend.Upload(ctx, req, onProgress)
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки трека: %w", err)
	}
	return result, nil
}
