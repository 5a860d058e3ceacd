package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/google/uuid"

	"entrega/internal/config"
	"entrega/internal/domain"
	"entrega/internal/port"
)

// UploadImageInput carries an image upload stream and its declared metadata.
type UploadImageInput struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// UploadImageOutput describes the stored image.
type UploadImageOutput struct {
	Key      string `json:"key"`
	Location string `json:"location"`
	URL      string `json:"url"`
}

// MediaService stores and serves uploaded images.
type MediaService interface {
	UploadImage(ctx context.Context, input UploadImageInput) (*UploadImageOutput, error)
	DeleteImage(ctx context.Context, key string) error
}

type mediaService struct {
	storage port.ObjectStorage
	cfg     config.S3Config
}

// NewMediaService creates a new MediaService implementation.
func NewMediaService(storage port.ObjectStorage, cfg config.S3Config) MediaService {
	return &mediaService{storage: storage, cfg: cfg}
}

func (s *mediaService) UploadImage(ctx context.Context, input UploadImageInput) (*UploadImageOutput, error) {
	imageType, ok := domain.AllowedImageContentTypes[input.ContentType]
	if !ok {
		return nil, domain.ErrUnsupportedImageType
	}
	if input.Size > s.cfg.MaxImageMB*1024*1024 {
		return nil, domain.ErrImageTooLarge
	}

	key := fmt.Sprintf("images/%s/%s.%s",
		time.Now().UTC().Format("2006/01/02"), uuid.New().String(), imageType)

	result, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.cfg.Bucket,
		Key:         key,
		Body:        input.Body,
		ContentType: input.ContentType,
	})
	if err != nil {
		return nil, fmt.Errorf("media.UploadImage: %w", err)
	}

	url, err := s.storage.GetPresignedURL(ctx, s.cfg.Bucket, key, s.cfg.PresignExpiry)
	if err != nil {
		return nil, fmt.Errorf("media.UploadImage presign: %w", err)
	}

	return &UploadImageOutput{Key: key, Location: result.Location, URL: url}, nil
}

func (s *mediaService) DeleteImage(ctx context.Context, key string) error {
	if key == "" || path.Clean(key) != key {
		return domain.ErrNotFound
	}
	return s.storage.Delete(ctx, s.cfg.Bucket, key)
}
