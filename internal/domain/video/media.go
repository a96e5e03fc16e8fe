package video

import (
	"crypto/sha256"
	"encoding/hex"
)

// MediaStatus tracks an audio/video asset through the external encoding pipeline.
type MediaStatus string

const (
	MediaStatusPending    MediaStatus = "PENDING"
	MediaStatusProcessing MediaStatus = "PROCESSING"
	MediaStatusCompleted  MediaStatus = "COMPLETED"
)

// MediaType identifies one of the five media slots of a video.
type MediaType string

const (
	MediaTypeVideo         MediaType = "VIDEO"
	MediaTypeTrailer       MediaType = "TRAILER"
	MediaTypeBanner        MediaType = "BANNER"
	MediaTypeThumbnail     MediaType = "THUMBNAIL"
	MediaTypeThumbnailHalf MediaType = "THUMBNAIL_HALF"
)

// IsValid reports whether the media type is one of the known slots
func (t MediaType) IsValid() bool {
	switch t {
	case MediaTypeVideo, MediaTypeTrailer, MediaTypeBanner, MediaTypeThumbnail, MediaTypeThumbnailHalf:
		return true
	default:
		return false
	}
}

// AudioVideoMedia is an immutable descriptor of a stored audio/video asset.
// Two instances are equal iff all fields are equal.
type AudioVideoMedia struct {
	Checksum        string
	Name            string
	RawLocation     string
	EncodedLocation string
	Status          MediaStatus
}

// NewAudioVideoMedia creates a pending media descriptor for a freshly uploaded raw asset
func NewAudioVideoMedia(checksum, name, rawLocation string) AudioVideoMedia {
	return AudioVideoMedia{
		Checksum:    checksum,
		Name:        name,
		RawLocation: rawLocation,
		Status:      MediaStatusPending,
	}
}

// Processing returns a copy of the media with status PROCESSING
func (m AudioVideoMedia) Processing() AudioVideoMedia {
	m.Status = MediaStatusProcessing
	return m
}

// Completed returns a copy of the media with status COMPLETED and the
// encoded output location set
func (m AudioVideoMedia) Completed(encodedLocation string) AudioVideoMedia {
	m.Status = MediaStatusCompleted
	m.EncodedLocation = encodedLocation
	return m
}

// ImageMedia is an immutable descriptor of a stored image asset. Images are
// stored synchronously and have no encoding phase.
type ImageMedia struct {
	Checksum string
	Name     string
	Location string
}

// NewImageMedia creates an image media descriptor
func NewImageMedia(checksum, name, location string) ImageMedia {
	return ImageMedia{
		Checksum: checksum,
		Name:     name,
		Location: location,
	}
}

// Resource holds the raw bytes of an uploaded asset before storage.
type Resource struct {
	Content     []byte
	ContentType string
	Name        string
}

// Checksum returns the content-derived identity of the resource
func (r Resource) Checksum() string {
	sum := sha256.Sum256(r.Content)
	return hex.EncodeToString(sum[:])
}
