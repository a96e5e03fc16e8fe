package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/coralstream/catalog/internal/domain/video"
)

// LocalStorage implements video.MediaStorage on the local filesystem. Assets
// live under basePath/<videoID>/<fileName>.
type LocalStorage struct {
	basePath string
	logger   *zap.Logger
}

// NewLocalStorage creates a local media storage rooted at basePath
func NewLocalStorage(basePath string, logger *zap.Logger) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create base path: %w", err)
	}

	return &LocalStorage{
		basePath: basePath,
		logger:   logger,
	}, nil
}

// StoreAudioVideo writes a raw audio/video asset and returns a pending descriptor
func (s *LocalStorage) StoreAudioVideo(ctx context.Context, videoID uuid.UUID, resource video.Resource) (video.AudioVideoMedia, error) {
	location, err := s.store(videoID, resource)
	if err != nil {
		return video.AudioVideoMedia{}, err
	}
	return video.NewAudioVideoMedia(resource.Checksum(), resource.Name, location), nil
}

// StoreImage writes an image asset and returns its descriptor
func (s *LocalStorage) StoreImage(ctx context.Context, videoID uuid.UUID, resource video.Resource) (video.ImageMedia, error) {
	location, err := s.store(videoID, resource)
	if err != nil {
		return video.ImageMedia{}, err
	}
	return video.NewImageMedia(resource.Checksum(), resource.Name, location), nil
}

// ClearResources removes every asset stored for the video
func (s *LocalStorage) ClearResources(ctx context.Context, videoID uuid.UUID) error {
	dir := filepath.Join(s.basePath, videoID.String())
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("failed to clear resources: %w", err)
	}

	s.logger.Debug("cleared local media resources", zap.String("video_id", videoID.String()))
	return nil
}

func (s *LocalStorage) store(videoID uuid.UUID, resource video.Resource) (string, error) {
	key := filepath.Join(videoID.String(), resource.Name)
	path := filepath.Join(s.basePath, key)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(path, resource.Content, 0644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return key, nil
}
