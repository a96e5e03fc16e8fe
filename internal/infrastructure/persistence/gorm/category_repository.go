package gorm

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/coralstream/catalog/internal/domain"
	"github.com/coralstream/catalog/internal/domain/catalog"
	pkgerrors "github.com/coralstream/catalog/pkg/errors"
	"github.com/coralstream/catalog/pkg/repository"
)

// CategoryRepository implements catalog.CategoryRepository
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new GORM category repository
func NewCategoryRepository(db *gorm.DB) catalog.CategoryRepository {
	return &CategoryRepository{db: db}
}

// Create persists a new category
func (r *CategoryRepository) Create(ctx context.Context, category *catalog.Category) error {
	model := &CategoryModel{}
	model.FromDomain(category)
	return repository.Create(ctx, r.db, model)
}

// Update persists an already-stored category with an optimistic version guard
func (r *CategoryRepository) Update(ctx context.Context, category *catalog.Category) error {
	model := &CategoryModel{}
	model.FromDomain(category)

	result := r.db.WithContext(ctx).Model(&CategoryModel{}).
		Where("id = ? AND version < ?", category.ID, category.Version).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("updating category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		if _, err := repository.FindByID[CategoryModel](ctx, r.db, category.ID); err != nil {
			return pkgerrors.NotFoundWithID("category", category.ID.String())
		}
		return pkgerrors.Conflict(fmt.Sprintf("category %s was modified concurrently", category.ID))
	}
	return nil
}

// FindByID retrieves a category by its ID
func (r *CategoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	model, err := repository.FindByID[CategoryModel](ctx, r.db, id)
	if err != nil {
		if pkgerrors.IsNotFound(err) {
			return nil, pkgerrors.NotFoundWithID("category", id.String())
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// DeleteByID removes a category row entirely
func (r *CategoryRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if err := repository.Delete[CategoryModel](ctx, r.db, id); err != nil {
		if pkgerrors.IsNotFound(err) {
			return pkgerrors.NotFoundWithID("category", id.String())
		}
		return err
	}
	return nil
}

// FindAll returns one page of categories matching the search query
func (r *CategoryRepository) FindAll(ctx context.Context, query domain.SearchQuery) (domain.Page[*catalog.Category], error) {
	var page domain.Page[*catalog.Category]

	tx := r.db.WithContext(ctx).Model(&CategoryModel{})
	if query.Term != "" {
		tx = tx.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(query.Term)+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return page, fmt.Errorf("counting categories: %w", err)
	}

	var models []CategoryModel
	err := tx.Order(orderClause(query, categorySortColumns)).
		Offset(query.Offset()).
		Limit(query.Limit()).
		Find(&models).Error
	if err != nil {
		return page, fmt.Errorf("listing categories: %w", err)
	}

	items := make([]*catalog.Category, len(models))
	for i, m := range models {
		items[i] = m.ToDomain()
	}

	page.CurrentPage = query.Page
	page.PerPage = query.Limit()
	page.Total = total
	page.Items = items
	return page, nil
}
