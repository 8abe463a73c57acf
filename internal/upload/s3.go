package upload

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/hazadus/go-sonicai/internal/catalog"
	"github.com/hazadus/go-sonicai/internal/metadata"
	"github.com/hazadus/go-sonicai/internal/s3"
	"github.com/hazadus/go-sonicai/internal/utils"
)

// FileUploader загружает содержимое файла в хранилище
type FileUploader interface {
	UploadFile(ctx context.Context, reader io.Reader, key, contentType string) (string, error)
}

// S3 загружает аудио файл в S3-совместимое хранилище
type S3 struct {
	uploader FileUploader
	inspect  func(filePath string) (*metadata.Info, error)
}

// NewS3 создает загрузку в S3
func NewS3(uploader FileUploader) *S3 {
	return &S3{
		uploader: uploader,
		inspect:  metadata.NewExtractor().Inspect,
	}
}

// Upload читает метаданные файла и загружает его, сообщая прогресс по прочитанным байтам
func (s *S3) Upload(ctx context.Context, req Request, onProgress ProgressFunc) (*Result, error) {
	info, err := s.inspect(req.FilePath)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(req.FilePath)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer file.Close()

	// Чтение идет в горутинах s3manager, поэтому прогресс передается через канал
	bytesRead := make(chan int64, 1)
	reader := &ProgressReader{
		Reader: file,
		Size:   info.Size,
		OnProgress: func(n int64) {
			select {
			case bytesRead <- n:
			default:
			}
		},
	}

	var url string
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(bytesRead)
		var err error
		url, err = s.uploader.UploadFile(gctx, reader, s3.ObjectKey(req.FilePath), s3.ContentType(req.FilePath))
		return err
	})
	g.Go(func() error {
		last := -1
		for n := range bytesRead {
			// 100% сообщается только после подтверждения загрузки
			percent := min(percentOf(n, info.Size), 99)
			if percent != last {
				onProgress(percent)
				last = percent
			}
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	onProgress(100)

	artist := info.Artist
	if artist == "" || artist == metadata.UnknownArtist {
		if req.Artist != "" {
			artist = req.Artist
		}
	}

	return &Result{
		Track: catalog.Track{
			ID:       uuid.NewString(),
			Title:    req.Title,
			Artist:   artist,
			Duration: utils.FormatClock(info.Duration),
			Cover:    defaultCover,
			Genre:    req.Genre,
		},
		URL:  url,
		Size: info.Size,
	}, nil
}

// ProgressReader структура для отслеживания прогресса чтения
type ProgressReader struct {
	io.Reader
	Size       int64
	OnProgress func(int64)
	bytesRead  int64
}

func (pr *ProgressReader) Read(p []byte) (n int, err error) {
	n, err = pr.Reader.Read(p)
	pr.bytesRead += int64(n)
	if pr.OnProgress != nil {
		pr.OnProgress(pr.bytesRead)
	}
	return n, err
}

// percentOf возвращает долю прочитанного в процентах
func percentOf(n, size int64) int {
	if size <= 0 {
		return 0
	}
	return int(min(n*100/size, 100))
}
