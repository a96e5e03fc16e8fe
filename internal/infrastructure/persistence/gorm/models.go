package gorm

import (
	"time"

	"github.com/google/uuid"

	"github.com/coralstream/catalog/internal/domain"
	"github.com/coralstream/catalog/internal/domain/catalog"
	"github.com/coralstream/catalog/internal/domain/video"
)

// BaseModel provides common fields for all models
type BaseModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Version   int       `gorm:"not null;default:1"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (m BaseModel) toAggregate() domain.BaseAggregate {
	return domain.BaseAggregate{
		ID:        m.ID,
		Version:   m.Version,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func baseModelFrom(a domain.BaseAggregate) BaseModel {
	return BaseModel{
		ID:        a.ID,
		Version:   a.Version,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

// CategoryModel represents a catalog category in the database
type CategoryModel struct {
	BaseModel
	Name          string `gorm:"not null;index"`
	Description   string
	Active        bool `gorm:"not null;default:true"`
	DeactivatedAt *time.Time
}

// TableName returns the table name for categories
func (CategoryModel) TableName() string { return "categories" }

// ToDomain converts a CategoryModel to a domain Category
func (m *CategoryModel) ToDomain() *catalog.Category {
	return catalog.RestoreCategory(m.toAggregate(), m.Name, m.Description, m.Active, m.DeactivatedAt)
}

// FromDomain converts a domain Category to a CategoryModel
func (m *CategoryModel) FromDomain(c *catalog.Category) {
	m.BaseModel = baseModelFrom(c.BaseAggregate)
	m.Name = c.Name()
	m.Description = c.Description()
	m.Active = c.Active()
	m.DeactivatedAt = c.DeactivatedAt()
}

// GenreModel represents a genre in the database
type GenreModel struct {
	BaseModel
	Name string `gorm:"not null;index"`
}

// TableName returns the table name for genres
func (GenreModel) TableName() string { return "genres" }

// GenreCategoryModel links genres to categories
type GenreCategoryModel struct {
	GenreID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	CategoryID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName returns the table name for genre-category links
func (GenreCategoryModel) TableName() string { return "genre_categories" }

// ToDomain converts a GenreModel plus its category links to a domain Genre
func (m *GenreModel) ToDomain(categories []uuid.UUID) *catalog.Genre {
	return catalog.RestoreGenre(m.toAggregate(), m.Name, categories)
}

// FromDomain converts a domain Genre to a GenreModel
func (m *GenreModel) FromDomain(g *catalog.Genre) {
	m.BaseModel = baseModelFrom(g.BaseAggregate)
	m.Name = g.Name()
}

// CastMemberModel represents a cast member in the database
type CastMemberModel struct {
	BaseModel
	Name string `gorm:"not null;index"`
	Type string `gorm:"not null"`
}

// TableName returns the table name for cast members
func (CastMemberModel) TableName() string { return "cast_members" }

// ToDomain converts a CastMemberModel to a domain CastMember
func (m *CastMemberModel) ToDomain() *catalog.CastMember {
	return catalog.RestoreCastMember(m.toAggregate(), m.Name, catalog.CastMemberType(m.Type))
}

// FromDomain converts a domain CastMember to a CastMemberModel
func (m *CastMemberModel) FromDomain(c *catalog.CastMember) {
	m.BaseModel = baseModelFrom(c.BaseAggregate)
	m.Name = c.Name()
	m.Type = string(c.Type())
}

// AudioVideoMediaModel is embedded into VideoModel with a per-slot column
// prefix. An empty checksum means the slot is absent.
type AudioVideoMediaModel struct {
	Checksum        string
	Name            string
	RawLocation     string
	EncodedLocation string
	Status          string
}

func (m AudioVideoMediaModel) toDomain() *video.AudioVideoMedia {
	if m.Checksum == "" {
		return nil
	}
	return &video.AudioVideoMedia{
		Checksum:        m.Checksum,
		Name:            m.Name,
		RawLocation:     m.RawLocation,
		EncodedLocation: m.EncodedLocation,
		Status:          video.MediaStatus(m.Status),
	}
}

func audioVideoMediaFrom(media *video.AudioVideoMedia) AudioVideoMediaModel {
	if media == nil {
		return AudioVideoMediaModel{}
	}
	return AudioVideoMediaModel{
		Checksum:        media.Checksum,
		Name:            media.Name,
		RawLocation:     media.RawLocation,
		EncodedLocation: media.EncodedLocation,
		Status:          string(media.Status),
	}
}

// ImageMediaModel is embedded into VideoModel with a per-slot column prefix.
type ImageMediaModel struct {
	Checksum string
	Name     string
	Location string
}

func (m ImageMediaModel) toDomain() *video.ImageMedia {
	if m.Checksum == "" {
		return nil
	}
	return &video.ImageMedia{
		Checksum: m.Checksum,
		Name:     m.Name,
		Location: m.Location,
	}
}

func imageMediaFrom(media *video.ImageMedia) ImageMediaModel {
	if media == nil {
		return ImageMediaModel{}
	}
	return ImageMediaModel{
		Checksum: media.Checksum,
		Name:     media.Name,
		Location: media.Location,
	}
}

// VideoModel represents a video aggregate in the database. The five media
// slots live on the same row so slot updates commit atomically with the
// aggregate version.
type VideoModel struct {
	BaseModel
	Title       string `gorm:"not null;index"`
	Description string `gorm:"type:text"`
	LaunchedAt  int    `gorm:"not null"`
	Duration    float64
	Opened      bool
	Published   bool
	Rating      string `gorm:"not null"`

	Video         AudioVideoMediaModel `gorm:"embedded;embeddedPrefix:video_"`
	Trailer       AudioVideoMediaModel `gorm:"embedded;embeddedPrefix:trailer_"`
	Banner        ImageMediaModel      `gorm:"embedded;embeddedPrefix:banner_"`
	Thumbnail     ImageMediaModel      `gorm:"embedded;embeddedPrefix:thumbnail_"`
	ThumbnailHalf ImageMediaModel      `gorm:"embedded;embeddedPrefix:thumbnail_half_"`
}

// TableName returns the table name for videos
func (VideoModel) TableName() string { return "videos" }

// VideoCategoryModel links videos to categories
type VideoCategoryModel struct {
	VideoID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	CategoryID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName returns the table name for video-category links
func (VideoCategoryModel) TableName() string { return "video_categories" }

// VideoGenreModel links videos to genres
type VideoGenreModel struct {
	VideoID uuid.UUID `gorm:"type:uuid;primaryKey"`
	GenreID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName returns the table name for video-genre links
func (VideoGenreModel) TableName() string { return "video_genres" }

// VideoCastMemberModel links videos to cast members
type VideoCastMemberModel struct {
	VideoID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	CastMemberID uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName returns the table name for video-cast-member links
func (VideoCastMemberModel) TableName() string { return "video_cast_members" }

// ToDomain converts a VideoModel plus its association links to a domain Video
func (m *VideoModel) ToDomain(categories, genres, castMembers []uuid.UUID) *video.Video {
	return video.Restore(video.RestoreParams{
		Base:          m.toAggregate(),
		Title:         m.Title,
		Description:   m.Description,
		LaunchedAt:    m.LaunchedAt,
		Duration:      m.Duration,
		Opened:        m.Opened,
		Published:     m.Published,
		Rating:        video.Rating(m.Rating),
		Categories:    categories,
		Genres:        genres,
		CastMembers:   castMembers,
		Video:         m.Video.toDomain(),
		Trailer:       m.Trailer.toDomain(),
		Banner:        m.Banner.toDomain(),
		Thumbnail:     m.Thumbnail.toDomain(),
		ThumbnailHalf: m.ThumbnailHalf.toDomain(),
	})
}

// FromDomain converts a domain Video to a VideoModel
func (m *VideoModel) FromDomain(v *video.Video) {
	m.BaseModel = baseModelFrom(v.BaseAggregate)
	m.Title = v.Title()
	m.Description = v.Description()
	m.LaunchedAt = v.LaunchedAt()
	m.Duration = v.Duration()
	m.Opened = v.Opened()
	m.Published = v.Published()
	m.Rating = string(v.Rating())

	var videoMedia, trailerMedia *video.AudioVideoMedia
	if media, ok := v.VideoMedia(); ok {
		videoMedia = &media
	}
	if media, ok := v.TrailerMedia(); ok {
		trailerMedia = &media
	}
	var banner, thumbnail, thumbnailHalf *video.ImageMedia
	if media, ok := v.BannerMedia(); ok {
		banner = &media
	}
	if media, ok := v.ThumbnailMedia(); ok {
		thumbnail = &media
	}
	if media, ok := v.ThumbnailHalfMedia(); ok {
		thumbnailHalf = &media
	}

	m.Video = audioVideoMediaFrom(videoMedia)
	m.Trailer = audioVideoMediaFrom(trailerMedia)
	m.Banner = imageMediaFrom(banner)
	m.Thumbnail = imageMediaFrom(thumbnail)
	m.ThumbnailHalf = imageMediaFrom(thumbnailHalf)
}
