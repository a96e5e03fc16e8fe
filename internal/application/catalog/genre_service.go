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

// GenreService handles genre use cases.
type GenreService struct {
	repo   catalog.GenreRepository
	logger interfaces.Logger
}

// NewGenreService creates a new genre service
func NewGenreService(repo catalog.GenreRepository, logger interfaces.Logger) *GenreService {
	return &GenreService{repo: repo, logger: logger}
}

// CreateGenre validates and persists a new genre
func (s *GenreService) CreateGenre(ctx context.Context, name string, categories []uuid.UUID) (uuid.UUID, error) {
	genre := catalog.NewGenre(name, categories)

	notification := validation.NewNotification()
	genre.Validate(notification)
	if notification.HasErrors() {
		return uuid.Nil, validation.NewNotificationError(notification.Errors())
	}

	if err := s.repo.Create(ctx, genre); err != nil {
		return uuid.Nil, fmt.Errorf("creating genre: %w", err)
	}

	s.logger.Info("genre created",
		interfaces.String("id", genre.ID.String()),
		interfaces.String("name", genre.Name()))

	return genre.ID, nil
}

// UpdateGenre replaces a genre's name and category associations
func (s *GenreService) UpdateGenre(ctx context.Context, id uuid.UUID, name string, categories []uuid.UUID) error {
	genre, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	genre.Update(name, categories)

	notification := validation.NewNotification()
	genre.Validate(notification)
	if notification.HasErrors() {
		return validation.NewNotificationError(notification.Errors())
	}

	if err := s.repo.Update(ctx, genre); err != nil {
		return fmt.Errorf("updating genre: %w", err)
	}

	return nil
}

// GetGenre loads a genre by identifier
func (s *GenreService) GetGenre(ctx context.Context, id uuid.UUID) (*catalog.Genre, error) {
	return s.repo.FindByID(ctx, id)
}

// ListGenres returns one page of genres
func (s *GenreService) ListGenres(ctx context.Context, query domain.SearchQuery) (domain.Page[*catalog.Genre], error) {
	return s.repo.FindAll(ctx, query)
}

// DeleteGenre removes a genre by identifier
func (s *GenreService) DeleteGenre(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}

	s.logger.Info("genre deleted", interfaces.String("id", id.String()))

	return nil
}
