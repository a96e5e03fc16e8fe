package video

import (
	"github.com/google/uuid"

	"github.com/coralstream/catalog/internal/domain/events"
)

const (
	// EventTypeMediaCreated signals that an audio/video slot received new raw
	// media and encoding should be requested by the external worker.
	EventTypeMediaCreated = "video.media.created"
)

// MediaCreatedEvent is raised when the video or trailer slot is replaced.
type MediaCreatedEvent struct {
	events.BaseEvent
	MediaType   MediaType `json:"media_type"`
	Checksum    string    `json:"checksum"`
	RawLocation string    `json:"raw_location"`
}

// NewMediaCreatedEvent creates a media created event for a video or trailer slot
func NewMediaCreatedEvent(videoID uuid.UUID, mediaType MediaType, media AudioVideoMedia) *MediaCreatedEvent {
	return &MediaCreatedEvent{
		BaseEvent:   events.NewBaseEvent(videoID, EventTypeMediaCreated),
		MediaType:   mediaType,
		Checksum:    media.Checksum,
		RawLocation: media.RawLocation,
	}
}
