package video

import (
	"github.com/google/uuid"

	"github.com/coralstream/catalog/internal/domain/video"
)

// CreateVideoCommand carries everything needed to create a video.
type CreateVideoCommand struct {
	Title       string
	Description string
	LaunchedAt  int
	Duration    float64
	Opened      bool
	Rating      video.Rating
	Categories  []uuid.UUID
	Genres      []uuid.UUID
	CastMembers []uuid.UUID
}

// UpdateVideoCommand replaces all mutable metadata of a video.
type UpdateVideoCommand struct {
	ID          uuid.UUID
	Title       string
	Description string
	LaunchedAt  int
	Duration    float64
	Opened      bool
	Published   bool
	Rating      video.Rating
	Categories  []uuid.UUID
	Genres      []uuid.UUID
	CastMembers []uuid.UUID
}

// UploadMediaCommand attaches a raw resource to one of the five media slots.
type UploadMediaCommand struct {
	VideoID   uuid.UUID
	MediaType video.MediaType
	Resource  video.Resource
}

// UploadMediaOutput reports which video and slot were processed.
type UploadMediaOutput struct {
	VideoID   uuid.UUID
	MediaType video.MediaType
}

// UpdateMediaStatusCommand is derived from the external encoder's status report.
type UpdateMediaStatusCommand struct {
	Status   video.MediaStatus
	VideoID  uuid.UUID
	Checksum string
	Folder   string
	Filename string
}
