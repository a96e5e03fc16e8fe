package gorm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/coralstream/catalog/internal/domain"
	"github.com/coralstream/catalog/internal/domain/video"
	pkgerrors "github.com/coralstream/catalog/pkg/errors"
)

// VideoRepository implements video.Repository on GORM. Association links are
// replaced wholesale inside the same transaction as the aggregate row, and
// updates carry an optimistic version guard.
type VideoRepository struct {
	db *gorm.DB
}

// NewVideoRepository creates a new GORM video repository
func NewVideoRepository(db *gorm.DB) video.Repository {
	return &VideoRepository{db: db}
}

// Create persists a new video aggregate and its association links
func (r *VideoRepository) Create(ctx context.Context, v *video.Video) error {
	model := &VideoModel{}
	model.FromDomain(v)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model).Error; err != nil {
			if pkgerrors.IsDuplicateError(err) {
				return pkgerrors.Conflict(fmt.Sprintf("video with ID %s already exists", v.ID))
			}
			return fmt.Errorf("creating video: %w", err)
		}
		return replaceVideoLinks(tx, v)
	})
}

// Update persists an already-stored video aggregate. The stored row must
// carry a version lower than the aggregate's, otherwise a concurrent writer
// won and the update fails with a conflict.
func (r *VideoRepository) Update(ctx context.Context, v *video.Video) error {
	model := &VideoModel{}
	model.FromDomain(v)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&VideoModel{}).
			Where("id = ? AND version < ?", v.ID, v.Version).
			Select("*").
			Omit("id", "created_at").
			Updates(model)
		if result.Error != nil {
			return fmt.Errorf("updating video: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&VideoModel{}).Where("id = ?", v.ID).Count(&count).Error; err != nil {
				return fmt.Errorf("updating video: %w", err)
			}
			if count == 0 {
				return pkgerrors.NotFoundWithID("video", v.ID.String())
			}
			return pkgerrors.Conflict(fmt.Sprintf("video %s was modified concurrently", v.ID))
		}
		return replaceVideoLinks(tx, v)
	})
}

// FindByID retrieves a video aggregate with its association links
func (r *VideoRepository) FindByID(ctx context.Context, id uuid.UUID) (*video.Video, error) {
	var model VideoModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.NotFoundWithID("video", id.String())
		}
		return nil, fmt.Errorf("finding video: %w", err)
	}

	links, err := r.loadLinks(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}

	l := links[id]
	return model.ToDomain(l.categories, l.genres, l.castMembers), nil
}

// DeleteByID removes a video aggregate and its association links
func (r *VideoRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&VideoCategoryModel{}, "video_id = ?", id).Error; err != nil {
			return fmt.Errorf("deleting video categories: %w", err)
		}
		if err := tx.Delete(&VideoGenreModel{}, "video_id = ?", id).Error; err != nil {
			return fmt.Errorf("deleting video genres: %w", err)
		}
		if err := tx.Delete(&VideoCastMemberModel{}, "video_id = ?", id).Error; err != nil {
			return fmt.Errorf("deleting video cast members: %w", err)
		}
		result := tx.Delete(&VideoModel{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("deleting video: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return pkgerrors.NotFoundWithID("video", id.String())
		}
		return nil
	})
}

// FindAll returns one page of videos matching the search query
func (r *VideoRepository) FindAll(ctx context.Context, query domain.SearchQuery) (domain.Page[*video.Video], error) {
	var page domain.Page[*video.Video]

	tx := r.db.WithContext(ctx).Model(&VideoModel{})
	if query.Term != "" {
		tx = tx.Where("LOWER(title) LIKE ?", "%"+strings.ToLower(query.Term)+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return page, fmt.Errorf("counting videos: %w", err)
	}

	var models []VideoModel
	err := tx.Order(orderClause(query, videoSortColumns)).
		Offset(query.Offset()).
		Limit(query.Limit()).
		Find(&models).Error
	if err != nil {
		return page, fmt.Errorf("listing videos: %w", err)
	}

	ids := make([]uuid.UUID, len(models))
	for i, m := range models {
		ids[i] = m.ID
	}
	links, err := r.loadLinks(ctx, ids)
	if err != nil {
		return page, err
	}

	items := make([]*video.Video, len(models))
	for i, m := range models {
		l := links[m.ID]
		items[i] = m.ToDomain(l.categories, l.genres, l.castMembers)
	}

	page.CurrentPage = query.Page
	page.PerPage = query.Limit()
	page.Total = total
	page.Items = items
	return page, nil
}

type videoLinks struct {
	categories  []uuid.UUID
	genres      []uuid.UUID
	castMembers []uuid.UUID
}

func (r *VideoRepository) loadLinks(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]videoLinks, error) {
	links := make(map[uuid.UUID]videoLinks, len(ids))
	if len(ids) == 0 {
		return links, nil
	}

	var categories []VideoCategoryModel
	if err := r.db.WithContext(ctx).Where("video_id IN ?", ids).Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("loading video categories: %w", err)
	}
	for _, c := range categories {
		l := links[c.VideoID]
		l.categories = append(l.categories, c.CategoryID)
		links[c.VideoID] = l
	}

	var genres []VideoGenreModel
	if err := r.db.WithContext(ctx).Where("video_id IN ?", ids).Find(&genres).Error; err != nil {
		return nil, fmt.Errorf("loading video genres: %w", err)
	}
	for _, g := range genres {
		l := links[g.VideoID]
		l.genres = append(l.genres, g.GenreID)
		links[g.VideoID] = l
	}

	var castMembers []VideoCastMemberModel
	if err := r.db.WithContext(ctx).Where("video_id IN ?", ids).Find(&castMembers).Error; err != nil {
		return nil, fmt.Errorf("loading video cast members: %w", err)
	}
	for _, cm := range castMembers {
		l := links[cm.VideoID]
		l.castMembers = append(l.castMembers, cm.CastMemberID)
		links[cm.VideoID] = l
	}

	return links, nil
}

func replaceVideoLinks(tx *gorm.DB, v *video.Video) error {
	if err := tx.Delete(&VideoCategoryModel{}, "video_id = ?", v.ID).Error; err != nil {
		return fmt.Errorf("clearing video categories: %w", err)
	}
	if err := tx.Delete(&VideoGenreModel{}, "video_id = ?", v.ID).Error; err != nil {
		return fmt.Errorf("clearing video genres: %w", err)
	}
	if err := tx.Delete(&VideoCastMemberModel{}, "video_id = ?", v.ID).Error; err != nil {
		return fmt.Errorf("clearing video cast members: %w", err)
	}

	for _, id := range v.Categories() {
		if err := tx.Create(&VideoCategoryModel{VideoID: v.ID, CategoryID: id}).Error; err != nil {
			return fmt.Errorf("linking video category: %w", err)
		}
	}
	for _, id := range v.Genres() {
		if err := tx.Create(&VideoGenreModel{VideoID: v.ID, GenreID: id}).Error; err != nil {
			return fmt.Errorf("linking video genre: %w", err)
		}
	}
	for _, id := range v.CastMembers() {
		if err := tx.Create(&VideoCastMemberModel{VideoID: v.ID, CastMemberID: id}).Error; err != nil {
			return fmt.Errorf("linking video cast member: %w", err)
		}
	}
	return nil
}
