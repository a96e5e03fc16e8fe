package video

import (
	"github.com/google/uuid"

	"github.com/coralstream/catalog/internal/domain"
	"github.com/coralstream/catalog/internal/domain/events"
)

// Video is the aggregate root of the catalog's video bounded context. It owns
// scalar metadata, category/genre/cast-member associations and up to five
// media slots. Mutations never validate by themselves; callers run Validate
// against a handler after mutating, so a staged-invalid state is possible
// until checked.
type Video struct {
	domain.BaseAggregate

	title       string
	description string
	launchedAt  int
	duration    float64
	opened      bool
	published   bool
	rating      Rating

	categories  []uuid.UUID
	genres      []uuid.UUID
	castMembers []uuid.UUID

	video         *AudioVideoMedia
	trailer       *AudioVideoMedia
	banner        *ImageMedia
	thumbnail     *ImageMedia
	thumbnailHalf *ImageMedia

	pendingEvents []events.Event
}

// NewVideo creates a new Video aggregate with a fresh identifier and
// timestamps. Association sets may be empty but are never stored as nil.
func NewVideo(
	title, description string,
	launchedAt int,
	duration float64,
	opened bool,
	rating Rating,
	categories, genres, castMembers []uuid.UUID,
) *Video {
	return &Video{
		BaseAggregate: domain.NewBaseAggregate(),
		title:         title,
		description:   description,
		launchedAt:    launchedAt,
		duration:      duration,
		opened:        opened,
		rating:        rating,
		categories:    copyIDs(categories),
		genres:        copyIDs(genres),
		castMembers:   copyIDs(castMembers),
	}
}

// RestoreParams carries every persisted field needed to reconstitute a Video.
type RestoreParams struct {
	Base          domain.BaseAggregate
	Title         string
	Description   string
	LaunchedAt    int
	Duration      float64
	Opened        bool
	Published     bool
	Rating        Rating
	Categories    []uuid.UUID
	Genres        []uuid.UUID
	CastMembers   []uuid.UUID
	Video         *AudioVideoMedia
	Trailer       *AudioVideoMedia
	Banner        *ImageMedia
	Thumbnail     *ImageMedia
	ThumbnailHalf *ImageMedia
}

// Restore reconstitutes a Video from its persisted representation without
// raising events or refreshing timestamps.
func Restore(p RestoreParams) *Video {
	return &Video{
		BaseAggregate: p.Base,
		title:         p.Title,
		description:   p.Description,
		launchedAt:    p.LaunchedAt,
		duration:      p.Duration,
		opened:        p.Opened,
		published:     p.Published,
		rating:        p.Rating,
		categories:    copyIDs(p.Categories),
		genres:        copyIDs(p.Genres),
		castMembers:   copyIDs(p.CastMembers),
		video:         p.Video,
		trailer:       p.Trailer,
		banner:        p.Banner,
		thumbnail:     p.Thumbnail,
		thumbnailHalf: p.ThumbnailHalf,
	}
}

// Update replaces all mutable metadata and association sets and refreshes the
// update timestamp. It does not validate; run Validate afterwards.
func (v *Video) Update(
	title, description string,
	launchedAt int,
	duration float64,
	opened, published bool,
	rating Rating,
	categories, genres, castMembers []uuid.UUID,
) {
	v.title = title
	v.description = description
	v.launchedAt = launchedAt
	v.duration = duration
	v.opened = opened
	v.published = published
	v.rating = rating
	v.categories = copyIDs(categories)
	v.genres = copyIDs(genres)
	v.castMembers = copyIDs(castMembers)
	v.Touch()
}

// UpdateVideoMedia replaces the primary video slot and records a media
// created event so encoding is requested by the external worker.
func (v *Video) UpdateVideoMedia(media AudioVideoMedia) {
	v.video = &media
	v.Touch()
	v.recordEvent(NewMediaCreatedEvent(v.ID, MediaTypeVideo, media))
}

// UpdateTrailerMedia replaces the trailer slot and records a media created event.
func (v *Video) UpdateTrailerMedia(media AudioVideoMedia) {
	v.trailer = &media
	v.Touch()
	v.recordEvent(NewMediaCreatedEvent(v.ID, MediaTypeTrailer, media))
}

// UpdateBannerMedia replaces the banner slot. Images need no async processing,
// so no event is recorded.
func (v *Video) UpdateBannerMedia(media ImageMedia) {
	v.banner = &media
	v.Touch()
}

// UpdateThumbnailMedia replaces the thumbnail slot.
func (v *Video) UpdateThumbnailMedia(media ImageMedia) {
	v.thumbnail = &media
	v.Touch()
}

// UpdateThumbnailHalfMedia replaces the half-size thumbnail slot.
func (v *Video) UpdateThumbnailHalfMedia(media ImageMedia) {
	v.thumbnailHalf = &media
	v.Touch()
}

// Processing marks the matching audio/video slot as PROCESSING. No-op when
// the slot is absent or the type has no encoding phase. The transition is
// permissive: a slot already PROCESSING or COMPLETED is simply re-set.
func (v *Video) Processing(mediaType MediaType) {
	switch mediaType {
	case MediaTypeVideo:
		if v.video != nil {
			media := v.video.Processing()
			v.video = &media
			v.Touch()
		}
	case MediaTypeTrailer:
		if v.trailer != nil {
			media := v.trailer.Processing()
			v.trailer = &media
			v.Touch()
		}
	}
}

// Completed marks the matching audio/video slot as COMPLETED with the encoded
// output location. No-op when the slot is absent.
func (v *Video) Completed(mediaType MediaType, encodedLocation string) {
	switch mediaType {
	case MediaTypeVideo:
		if v.video != nil {
			media := v.video.Completed(encodedLocation)
			v.video = &media
			v.Touch()
		}
	case MediaTypeTrailer:
		if v.trailer != nil {
			media := v.trailer.Completed(encodedLocation)
			v.trailer = &media
			v.Touch()
		}
	}
}

// Title returns the video title
func (v *Video) Title() string { return v.title }

// Description returns the video description
func (v *Video) Description() string { return v.description }

// LaunchedAt returns the launch year
func (v *Video) LaunchedAt() int { return v.launchedAt }

// Duration returns the duration in minutes
func (v *Video) Duration() float64 { return v.duration }

// Opened reports whether the video is opened
func (v *Video) Opened() bool { return v.opened }

// Published reports whether the video is published
func (v *Video) Published() bool { return v.published }

// Rating returns the content classification
func (v *Video) Rating() Rating { return v.rating }

// Categories returns a copy of the associated category IDs
func (v *Video) Categories() []uuid.UUID { return copyIDs(v.categories) }

// Genres returns a copy of the associated genre IDs
func (v *Video) Genres() []uuid.UUID { return copyIDs(v.genres) }

// CastMembers returns a copy of the associated cast member IDs
func (v *Video) CastMembers() []uuid.UUID { return copyIDs(v.castMembers) }

// VideoMedia returns the primary video slot, if present
func (v *Video) VideoMedia() (AudioVideoMedia, bool) {
	if v.video == nil {
		return AudioVideoMedia{}, false
	}
	return *v.video, true
}

// TrailerMedia returns the trailer slot, if present
func (v *Video) TrailerMedia() (AudioVideoMedia, bool) {
	if v.trailer == nil {
		return AudioVideoMedia{}, false
	}
	return *v.trailer, true
}

// BannerMedia returns the banner slot, if present
func (v *Video) BannerMedia() (ImageMedia, bool) {
	if v.banner == nil {
		return ImageMedia{}, false
	}
	return *v.banner, true
}

// ThumbnailMedia returns the thumbnail slot, if present
func (v *Video) ThumbnailMedia() (ImageMedia, bool) {
	if v.thumbnail == nil {
		return ImageMedia{}, false
	}
	return *v.thumbnail, true
}

// ThumbnailHalfMedia returns the half-size thumbnail slot, if present
func (v *Video) ThumbnailHalfMedia() (ImageMedia, bool) {
	if v.thumbnailHalf == nil {
		return ImageMedia{}, false
	}
	return *v.thumbnailHalf, true
}

// Events returns the pending domain events without clearing them
func (v *Video) Events() []events.Event {
	return v.pendingEvents
}

// TakeEvents drains the pending domain events, returning an owned slice and
// clearing the aggregate's list.
func (v *Video) TakeEvents() []events.Event {
	taken := v.pendingEvents
	v.pendingEvents = nil
	return taken
}

func (v *Video) recordEvent(event events.Event) {
	v.pendingEvents = append(v.pendingEvents, event)
}

func copyIDs(ids []uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, len(ids))
	copy(out, ids)
	return out
}
