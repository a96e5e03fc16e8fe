package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/coralstream/catalog/internal/domain"
	"github.com/coralstream/catalog/internal/domain/catalog"
	"github.com/coralstream/catalog/internal/domain/validation"
	"github.com/coralstream/catalog/pkg/interfaces"
)

// CategoryService handles category use cases.
type CategoryService struct {
	repo   catalog.CategoryRepository
	logger interfaces.Logger
}

// NewCategoryService creates a new category service
func NewCategoryService(repo catalog.CategoryRepository, logger interfaces.Logger) *CategoryService {
	return &CategoryService{repo: repo, logger: logger}
}

// CreateCategory validates and persists a new category
func (s *CategoryService) CreateCategory(ctx context.Context, name, description string) (uuid.UUID, error) {
	category := catalog.NewCategory(name, description)

	notification := validation.NewNotification()
	category.Validate(notification)
	if notification.HasErrors() {
		return uuid.Nil, validation.NewNotificationError(notification.Errors())
	}

	if err := s.repo.Create(ctx, category); err != nil {
		return uuid.Nil, fmt.Errorf("creating category: %w", err)
	}

	s.logger.Info("category created",
		interfaces.String("id", category.ID.String()),
		interfaces.String("name", category.Name()))

	return category.ID, nil
}

// UpdateCategory replaces a category's metadata and active flag
func (s *CategoryService) UpdateCategory(ctx context.Context, id uuid.UUID, name, description string, active bool) error {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	category.Update(name, description)
	if active {
		category.Activate()
	} else {
		category.Deactivate()
	}

	notification := validation.NewNotification()
	category.Validate(notification)
	if notification.HasErrors() {
		return validation.NewNotificationError(notification.Errors())
	}

	if err := s.repo.Update(ctx, category); err != nil {
		return fmt.Errorf("updating category: %w", err)
	}

	return nil
}

// GetCategory loads a category by identifier
func (s *CategoryService) GetCategory(ctx context.Context, id uuid.UUID) (*catalog.Category, error) {
	return s.repo.FindByID(ctx, id)
}

// ListCategories returns one page of categories
func (s *CategoryService) ListCategories(ctx context.Context, query domain.SearchQuery) (domain.Page[*catalog.Category], error) {
	return s.repo.FindAll(ctx, query)
}

// DeleteCategory soft-deletes a category by deactivating it. Deleting an
// already-deactivated category is a no-op.
func (s *CategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if !category.Active() {
		return nil
	}

	category.Deactivate()

	if err := s.repo.Update(ctx, category); err != nil {
		return fmt.Errorf("deactivating category: %w", err)
	}

	s.logger.Info("category deactivated", interfaces.String("id", id.String()))

	return nil
}
