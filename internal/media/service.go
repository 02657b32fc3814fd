package media

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/google/uuid"

	"github.com/veranolabs/hotel-admin-backend/internal/pkg/storage"
)

const (
	maxUploadBytes = 10 << 20 // 10 MiB
	maxPhotoSide   = 1600
	thumbSide      = 200
)

type UploadInput struct {
	HotelID    string
	OwnerType  string
	OwnerID    string
	FileHeader *multipart.FileHeader
}

// Service stores normalized photos and serves them back.
type Service interface {
	Upload(ctx context.Context, in UploadInput) (*Photo, error)
	Get(ctx context.Context, id string) (*Photo, error)
	Download(ctx context.Context, id string) (io.ReadCloser, *Photo, error)
	DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *Photo, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo    Repository
	storage storage.Storage
	imgProc *storage.ImageProcessor
}

// NewService creates a new media service.
func NewService(repo Repository, store storage.Storage) Service {
	return &service{
		repo:    repo,
		storage: store,
		imgProc: storage.NewImageProcessor(),
	}
}

func (s *service) Upload(ctx context.Context, in UploadInput) (*Photo, error) {
	if !ValidOwner(in.OwnerType) {
		return nil, ErrInvalidOwner
	}
	if in.FileHeader.Size > maxUploadBytes {
		return nil, ErrTooLarge
	}
	if !strings.HasPrefix(in.FileHeader.Header.Get("Content-Type"), "image/") {
		return nil, ErrNotAnImage
	}

	src, err := in.FileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("open uploaded file failed: %w", err)
	}
	defer src.Close()

	fileBytes, err := io.ReadAll(io.LimitReader(src, maxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read uploaded file failed: %w", err)
	}
	if int64(len(fileBytes)) > maxUploadBytes {
		return nil, ErrTooLarge
	}

	normalized, err := s.imgProc.NormalizePhoto(bytes.NewReader(fileBytes), maxPhotoSide, maxPhotoSide)
	if err != nil {
		return nil, ErrNotAnImage
	}
	normalizedBytes, err := io.ReadAll(normalized)
	if err != nil {
		return nil, fmt.Errorf("read normalized photo failed: %w", err)
	}

	thumb, err := s.imgProc.GenerateThumbnail(bytes.NewReader(fileBytes), thumbSide, thumbSide)
	if err != nil {
		return nil, ErrNotAnImage
	}

	photoID := uuid.New().String()
	shard := photoID[:2]
	storagePath := fmt.Sprintf("photos/%s/%s.jpg", shard, photoID)
	thumbnailPath := fmt.Sprintf("photos/%s/%s_thumb.jpg", shard, photoID)

	if err := s.storage.Save(ctx, storagePath, bytes.NewReader(normalizedBytes)); err != nil {
		return nil, fmt.Errorf("save photo failed: %w", err)
	}
	if err := s.storage.Save(ctx, thumbnailPath, thumb); err != nil {
		_ = s.storage.Delete(ctx, storagePath)
		return nil, fmt.Errorf("save thumbnail failed: %w", err)
	}

	p := &Photo{
		ID:            photoID,
		HotelID:       in.HotelID,
		OwnerType:     in.OwnerType,
		OwnerID:       in.OwnerID,
		StoragePath:   storagePath,
		ThumbnailPath: thumbnailPath,
		Size:          int64(len(normalizedBytes)),
	}

	if err := s.repo.Create(ctx, p); err != nil {
		_ = s.storage.Delete(ctx, storagePath)
		_ = s.storage.Delete(ctx, thumbnailPath)
		return nil, err
	}

	return p, nil
}

func (s *service) Get(ctx context.Context, id string) (*Photo, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) Download(ctx context.Context, id string) (io.ReadCloser, *Photo, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	rc, err := s.storage.Get(ctx, p.StoragePath)
	if err != nil {
		return nil, nil, ErrNotFound
	}
	return rc, p, nil
}

func (s *service) DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *Photo, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	rc, err := s.storage.Get(ctx, p.ThumbnailPath)
	if err != nil {
		return nil, nil, ErrNotFound
	}
	return rc, p, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// Best effort storage cleanup; the record is the source of truth.
	_ = s.storage.Delete(ctx, p.StoragePath)
	_ = s.storage.Delete(ctx, p.ThumbnailPath)

	return s.repo.Delete(ctx, id)
}
