package upload

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hazadus/go-sonicai/internal/catalog"
)

const (
	// DefaultStepInterval - период шага симулированной загрузки
	DefaultStepInterval = 200 * time.Millisecond
	// DefaultStepPercent - прирост прогресса за шаг
	DefaultStepPercent = 10

	defaultCover = "/assets/album-1.jpg"
)

// Simulated имитирует загрузку: прогресс растет на фиксированный шаг по таймеру
type Simulated struct {
	interval time.Duration
	step     int
}

// NewSimulated создает симуляцию загрузки
func NewSimulated(interval time.Duration, step int) *Simulated {
	if interval <= 0 {
		interval = DefaultStepInterval
	}
	if step <= 0 {
		step = DefaultStepPercent
	}
	return &Simulated{interval: interval, step: step}
}

// Upload сообщает прогресс до 100% и возвращает трек без файла.
// Отмена контекста прерывает загрузку.
func (s *Simulated) Upload(ctx context.Context, req Request, onProgress ProgressFunc) (*Result, error) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	progress := 0
	for progress < 100 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
			progress = min(progress+s.step, 100)
			onProgress(progress)
		}
	}

	artist := req.Artist
	if artist == "" {
		artist = "You"
	}

	return &Result{
		Track: catalog.Track{
			ID:       uuid.NewString(),
			Title:    req.Title,
			Artist:   artist,
			Duration: "0:00",
			Cover:    defaultCover,
			Genre:    req.Genre,
		},
	}, nil
}
