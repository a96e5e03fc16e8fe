package gorm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/coralstream/catalog/internal/domain"
	"github.com/coralstream/catalog/internal/domain/catalog"
	pkgerrors "github.com/coralstream/catalog/pkg/errors"
)

// GenreRepository implements catalog.GenreRepository. Category links live in
// a join table replaced wholesale in the same transaction as the genre row.
type GenreRepository struct {
	db *gorm.DB
}

// NewGenreRepository creates a new GORM genre repository
func NewGenreRepository(db *gorm.DB) catalog.GenreRepository {
	return &GenreRepository{db: db}
}

// Create persists a new genre and its category links
func (r *GenreRepository) Create(ctx context.Context, genre *catalog.Genre) error {
	model := &GenreModel{}
	model.FromDomain(genre)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model).Error; err != nil {
			if pkgerrors.IsDuplicateError(err) {
				return pkgerrors.Conflict(fmt.Sprintf("genre with ID %s already exists", genre.ID))
			}
			return fmt.Errorf("creating genre: %w", err)
		}
		return replaceGenreLinks(tx, genre)
	})
}

// Update persists an already-stored genre with an optimistic version guard
func (r *GenreRepository) Update(ctx context.Context, genre *catalog.Genre) error {
	model := &GenreModel{}
	model.FromDomain(genre)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&GenreModel{}).
			Where("id = ? AND version < ?", genre.ID, genre.Version).
			Select("*").
			Omit("id", "created_at").
			Updates(model)
		if result.Error != nil {
			return fmt.Errorf("updating genre: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			var count int64
			if err := tx.Model(&GenreModel{}).Where("id = ?", genre.ID).Count(&count).Error; err != nil {
				return fmt.Errorf("updating genre: %w", err)
			}
			if count == 0 {
				return pkgerrors.NotFoundWithID("genre", genre.ID.String())
			}
			return pkgerrors.Conflict(fmt.Sprintf("genre %s was modified concurrently", genre.ID))
		}
		return replaceGenreLinks(tx, genre)
	})
}

// FindByID retrieves a genre with its category links
func (r *GenreRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Genre, error) {
	var model GenreModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.NotFoundWithID("genre", id.String())
		}
		return nil, fmt.Errorf("finding genre: %w", err)
	}

	categories, err := r.loadCategoryLinks(ctx, []uuid.UUID{id})
	if err != nil {
		return nil, err
	}
	return model.ToDomain(categories[id]), nil
}

// DeleteByID removes a genre and its category links
func (r *GenreRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&GenreCategoryModel{}, "genre_id = ?", id).Error; err != nil {
			return fmt.Errorf("deleting genre categories: %w", err)
		}
		result := tx.Delete(&GenreModel{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("deleting genre: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return pkgerrors.NotFoundWithID("genre", id.String())
		}
		return nil
	})
}

// FindAll returns one page of genres matching the search query
func (r *GenreRepository) FindAll(ctx context.Context, query domain.SearchQuery) (domain.Page[*catalog.Genre], error) {
	var page domain.Page[*catalog.Genre]

	tx := r.db.WithContext(ctx).Model(&GenreModel{})
	if query.Term != "" {
		tx = tx.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(query.Term)+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return page, fmt.Errorf("counting genres: %w", err)
	}

	var models []GenreModel
	err := tx.Order(orderClause(query, genreSortColumns)).
		Offset(query.Offset()).
		Limit(query.Limit()).
		Find(&models).Error
	if err != nil {
		return page, fmt.Errorf("listing genres: %w", err)
	}

	ids := make([]uuid.UUID, len(models))
	for i, m := range models {
		ids[i] = m.ID
	}
	categories, err := r.loadCategoryLinks(ctx, ids)
	if err != nil {
		return page, err
	}

	items := make([]*catalog.Genre, len(models))
	for i, m := range models {
		items[i] = m.ToDomain(categories[m.ID])
	}

	page.CurrentPage = query.Page
	page.PerPage = query.Limit()
	page.Total = total
	page.Items = items
	return page, nil
}

func (r *GenreRepository) loadCategoryLinks(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID][]uuid.UUID, error) {
	links := make(map[uuid.UUID][]uuid.UUID, len(ids))
	if len(ids) == 0 {
		return links, nil
	}

	var rows []GenreCategoryModel
	if err := r.db.WithContext(ctx).Where("genre_id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("loading genre categories: %w", err)
	}
	for _, row := range rows {
		links[row.GenreID] = append(links[row.GenreID], row.CategoryID)
	}
	return links, nil
}

func replaceGenreLinks(tx *gorm.DB, genre *catalog.Genre) error {
	if err := tx.Delete(&GenreCategoryModel{}, "genre_id = ?", genre.ID).Error; err != nil {
		return fmt.Errorf("clearing genre categories: %w", err)
	}
	for _, id := range genre.Categories() {
		if err := tx.Create(&GenreCategoryModel{GenreID: genre.ID, CategoryID: id}).Error; err != nil {
			return fmt.Errorf("linking genre category: %w", err)
		}
	}
	return nil
}
