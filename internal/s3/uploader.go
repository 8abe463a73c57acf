// Package s3 загружает аудио файлы в S3-совместимое хранилище
package s3

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3/s3manager"
	"github.com/google/uuid"
)

// keyPrefix - каталог загруженных треков в бакете
const keyPrefix = "tracks/"

// Config содержит настройки для S3
type Config struct {
	Region     string
	AccessKey  string
	SecretKey  string
	Endpoint   string
	BucketName string
}

// ObjectURL возвращает публичный адрес объекта
func (c *Config) ObjectURL(key string) string {
	if c.Endpoint != "" {
		return fmt.Sprintf("%s/%s/%s", strings.TrimRight(c.Endpoint, "/"), c.BucketName, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", c.BucketName, c.Region, key)
}

// uploadAPI - часть s3manager.Uploader, которая нужна для загрузки
type uploadAPI interface {
	UploadWithContext(ctx aws.Context, input *s3manager.UploadInput, opts ...func(*s3manager.Uploader)) (*s3manager.UploadOutput, error)
}

// Uploader обертка для S3 uploader
type Uploader struct {
	api    uploadAPI
	config *Config
}

// NewUploader создает новый S3 uploader
func NewUploader(config *Config) (*Uploader, error) {
	if config.BucketName == "" {
		return nil, fmt.Errorf("не задано имя бакета")
	}

	awsConfig := &aws.Config{
		Region: aws.String(config.Region),
	}
	if config.AccessKey != "" {
		awsConfig.Credentials = credentials.NewStaticCredentials(
			config.AccessKey,
			config.SecretKey,
			"",
		)
	}

	// Если указан endpoint, добавляем его
	if config.Endpoint != "" {
		awsConfig.Endpoint = aws.String(config.Endpoint)
		awsConfig.S3ForcePathStyle = aws.Bool(true)
	}

	sess, err := session.NewSession(awsConfig)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания AWS сессии: %w", err)
	}

	return newUploader(config, s3manager.NewUploader(sess)), nil
}

func newUploader(config *Config, api uploadAPI) *Uploader {
	return &Uploader{api: api, config: config}
}

// UploadFile загружает содержимое reader под указанным ключом и возвращает URL объекта
func (u *Uploader) UploadFile(ctx context.Context, reader io.Reader, key, contentType string) (string, error) {
	input := &s3manager.UploadInput{
		Bucket: aws.String(u.config.BucketName),
		Key:    aws.String(key),
		Body:   reader,
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	_, err := u.api.UploadWithContext(ctx, input)
	if err != nil {
		return "", fmt.Errorf("ошибка загрузки: %w", err)
	}

	return u.config.ObjectURL(key), nil
}

// ObjectKey формирует уникальный ключ объекта для файла.
// Расширение исходного файла сохраняется.
func ObjectKey(filePath string) string {
	ext := strings.ToLower(filepath.Ext(filePath))
	if ext == "" {
		ext = ".mp3"
	}
	return keyPrefix + uuid.NewString() + ext
}

// ContentType возвращает MIME-тип по расширению аудио файла
func ContentType(filePath string) string {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".mp3":
		return "audio/mpeg"
	case ".flac":
		return "audio/flac"
	case ".ogg":
		return "audio/ogg"
	case ".wav":
		return "audio/wav"
	case ".m4a":
		return "audio/mp4"
	default:
		return "application/octet-stream"
	}
}
