package video

import (
	"context"

	"github.com/google/uuid"

	"github.com/coralstream/catalog/internal/domain"
)

// Repository is the persistence gateway for the Video aggregate. Media slots
// and the three association sets load and save atomically with the aggregate.
type Repository interface {
	Create(ctx context.Context, video *Video) error
	Update(ctx context.Context, video *Video) error
	FindByID(ctx context.Context, id uuid.UUID) (*Video, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
	FindAll(ctx context.Context, query domain.SearchQuery) (domain.Page[*Video], error)
}

// MediaStorage is the gateway to the external object store for raw and image
// assets. The upload flow calls it synchronously.
type MediaStorage interface {
	// StoreAudioVideo persists a raw audio/video asset and returns its
	// descriptor with status PENDING
	StoreAudioVideo(ctx context.Context, videoID uuid.UUID, resource Resource) (AudioVideoMedia, error)

	// StoreImage persists an image asset and returns its descriptor
	StoreImage(ctx context.Context, videoID uuid.UUID, resource Resource) (ImageMedia, error)

	// ClearResources removes every stored asset belonging to a video
	ClearResources(ctx context.Context, videoID uuid.UUID) error
}
