package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/coralstream/catalog/internal/domain/video"
)

func newTestStorage(t *testing.T) *LocalStorage {
	t.Helper()
	s, err := NewLocalStorage(t.TempDir(), zap.NewNop())
	require.NoError(t, err)
	return s
}

func TestLocalStorage_StoreAudioVideo(t *testing.T) {
	s := newTestStorage(t)
	videoID := uuid.New()
	resource := video.Resource{Content: []byte("raw bytes"), Name: "movie.mp4"}

	media, err := s.StoreAudioVideo(context.Background(), videoID, resource)
	require.NoError(t, err)

	assert.Equal(t, resource.Checksum(), media.Checksum)
	assert.Equal(t, "movie.mp4", media.Name)
	assert.Equal(t, video.MediaStatusPending, media.Status)
	assert.Equal(t, filepath.Join(videoID.String(), "movie.mp4"), media.RawLocation)

	written, err := os.ReadFile(filepath.Join(s.basePath, media.RawLocation))
	require.NoError(t, err)
	assert.Equal(t, []byte("raw bytes"), written)
}

func TestLocalStorage_ClearResources(t *testing.T) {
	s := newTestStorage(t)
	videoID := uuid.New()

	_, err := s.StoreImage(context.Background(), videoID, video.Resource{Content: []byte("png"), Name: "banner.png"})
	require.NoError(t, err)

	require.NoError(t, s.ClearResources(context.Background(), videoID))

	_, err = os.Stat(filepath.Join(s.basePath, videoID.String()))
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStorage_ClearResourcesIsIdempotent(t *testing.T) {
	s := newTestStorage(t)
	assert.NoError(t, s.ClearResources(context.Background(), uuid.New()))
}
