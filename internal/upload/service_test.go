package upload

import (
	"context"
	"errors"
	"testing"

	"github.com/hazadus/go-sonicai/internal/catalog"
	"github.com/hazadus/go-sonicai/internal/validate"
)

// mockBackend запоминает последний запрос
type mockBackend struct {
	calls   int
	lastReq Request
	err     error
}

func (m *mockBackend) Upload(ctx context.Context, req Request, onProgress ProgressFunc) (*Result, error) {
	m.calls++
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	onProgress(100)
	return &Result{Track: catalog.Track{Title: req.Title}}, nil
}

func TestUploadSanitizesInput(t *testing.T) {
	sim := &mockBackend{}
	service := NewService(sim, nil)

	_, err := service.Upload(context.Background(), Request{Title: "  <Night> Drive ", Genre: " Synthwave "}, nil)
	if err != nil {
		t.Fatalf("Неожиданная ошибка: %v", err)
	}

	if sim.lastReq.Title != "Night Drive" {
		t.Errorf("Ожидалось очищенное название, получено %q", sim.lastReq.Title)
	}
	if sim.lastReq.Genre != "Synthwave" {
		t.Errorf("Ожидался очищенный жанр, получено %q", sim.lastReq.Genre)
	}
}

func TestUploadValidation(t *testing.T) {
	sim := &mockBackend{}
	service := NewService(sim, nil)

	_, err := service.Upload(context.Background(), Request{Title: "", Genre: "R&B"}, nil)

	var errs validate.Errors
	if !errors.As(err, &errs) {
		t.Fatalf("Ожидалась ошибка валидации, получено %v", err)
	}
	if _, ok := errs.Field("title"); !ok {
		t.Error("Ожидалась ошибка поля title")
	}
	if _, ok := errs.Field("genre"); !ok {
		t.Error("Ожидалась ошибка поля genre")
	}
	if sim.calls != 0 {
		t.Error("Некорректные данные не должны передаваться на загрузку")
	}
}

func TestUploadChoosesBackend(t *testing.T) {
	testCases := []struct {
		name      string
		filePath  string
		withFiles bool
		wantFiles bool
	}{
		{"NoFile", "", true, false},
		{"FileWithStorage", "/music/a.mp3", true, true},
		{"FileWithoutStorage", "/music/a.mp3", false, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sim := &mockBackend{}
			files := &mockBackend{}

			var service *Service
			if tc.withFiles {
				service = NewService(sim, files)
			} else {
				service = NewService(sim, nil)
			}

			var progress int
			_, err := service.Upload(context.Background(), Request{Title: "Song", Genre: "Jazz", FilePath: tc.filePath}, func(p int) {
				progress = p
			})
			if err != nil {
				t.Fatalf("Неожиданная ошибка: %v", err)
			}

			if (files.calls == 1) != tc.wantFiles || (sim.calls == 1) == tc.wantFiles {
				t.Errorf("Выбран не тот способ загрузки: sim=%d files=%d", sim.calls, files.calls)
			}
			if progress != 100 {
				t.Errorf("Ожидался прогресс 100, получено %d", progress)
			}
		})
	}
}

func TestUploadWrapsBackendError(t *testing.T) {
	backendErr := errors.New("disk full")
	service := NewService(&mockBackend{err: backendErr}, nil)

	_, err := service.Upload(context.Background(), Request{Title: "Song", Genre: "Jazz"}, nil)
	if !errors.Is(err, backendErr) {
		t.Errorf("Ожидалась обернутая ошибка, получено %v", err)
	}
}

func TestUploadWithoutBackend(t *testing.T) {
	_, err := NewService(nil, nil).Upload(context.Background(), Request{Title: "Song", Genre: "Jazz"}, nil)
	if !errors.Is(err, ErrNoBackend) {
		t.Errorf("Ожидалась ErrNoBackend, получено %v", err)
	}
}
