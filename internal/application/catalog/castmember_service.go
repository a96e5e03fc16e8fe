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

// CastMemberService handles cast member use cases.
type CastMemberService struct {
	repo   catalog.CastMemberRepository
	logger interfaces.Logger
}

// NewCastMemberService creates a new cast member service
func NewCastMemberService(repo catalog.CastMemberRepository, logger interfaces.Logger) *CastMemberService {
	return &CastMemberService{repo: repo, logger: logger}
}

// CreateCastMember validates and persists a new cast member
func (s *CastMemberService) CreateCastMember(ctx context.Context, name string, kind catalog.CastMemberType) (uuid.UUID, error) {
	member := catalog.NewCastMember(name, kind)

	notification := validation.NewNotification()
	member.Validate(notification)
	if notification.HasErrors() {
		return uuid.Nil, validation.NewNotificationError(notification.Errors())
	}

	if err := s.repo.Create(ctx, member); err != nil {
		return uuid.Nil, fmt.Errorf("creating cast member: %w", err)
	}

	s.logger.Info("cast member created",
		interfaces.String("id", member.ID.String()),
		interfaces.String("name", member.Name()))

	return member.ID, nil
}

// UpdateCastMember replaces a cast member's name and type
func (s *CastMemberService) UpdateCastMember(ctx context.Context, id uuid.UUID, name string, kind catalog.CastMemberType) error {
	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	member.Update(name, kind)

	notification := validation.NewNotification()
	member.Validate(notification)
	if notification.HasErrors() {
		return validation.NewNotificationError(notification.Errors())
	}

	if err := s.repo.Update(ctx, member); err != nil {
		return fmt.Errorf("updating cast member: %w", err)
	}

	return nil
}

// GetCastMember loads a cast member by identifier
func (s *CastMemberService) GetCastMember(ctx context.Context, id uuid.UUID) (*catalog.CastMember, error) {
	return s.repo.FindByID(ctx, id)
}

// ListCastMembers returns one page of cast members
func (s *CastMemberService) ListCastMembers(ctx context.Context, query domain.SearchQuery) (domain.Page[*catalog.CastMember], error) {
	return s.repo.FindAll(ctx, query)
}

// DeleteCastMember removes a cast member by identifier
func (s *CastMemberService) DeleteCastMember(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}

	s.logger.Info("cast member deleted", interfaces.String("id", id.String()))

	return nil
}
