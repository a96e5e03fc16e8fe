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

// CastMemberRepository implements catalog.CastMemberRepository
type CastMemberRepository struct {
	db *gorm.DB
}

// NewCastMemberRepository creates a new GORM cast member repository
func NewCastMemberRepository(db *gorm.DB) catalog.CastMemberRepository {
	return &CastMemberRepository{db: db}
}

// Create persists a new cast member
func (r *CastMemberRepository) Create(ctx context.Context, member *catalog.CastMember) error {
	model := &CastMemberModel{}
	model.FromDomain(member)
	return repository.Create(ctx, r.db, model)
}

// Update persists an already-stored cast member with an optimistic version guard
func (r *CastMemberRepository) Update(ctx context.Context, member *catalog.CastMember) error {
	model := &CastMemberModel{}
	model.FromDomain(member)

	result := r.db.WithContext(ctx).Model(&CastMemberModel{}).
		Where("id = ? AND version < ?", member.ID, member.Version).
		Select("*").
		Omit("id", "created_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("updating cast member: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		if _, err := repository.FindByID[CastMemberModel](ctx, r.db, member.ID); err != nil {
			return pkgerrors.NotFoundWithID("cast member", member.ID.String())
		}
		return pkgerrors.Conflict(fmt.Sprintf("cast member %s was modified concurrently", member.ID))
	}
	return nil
}

// FindByID retrieves a cast member by its ID
func (r *CastMemberRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.CastMember, error) {
	model, err := repository.FindByID[CastMemberModel](ctx, r.db, id)
	if err != nil {
		if pkgerrors.IsNotFound(err) {
			return nil, pkgerrors.NotFoundWithID("cast member", id.String())
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// DeleteByID removes a cast member
func (r *CastMemberRepository) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if err := repository.Delete[CastMemberModel](ctx, r.db, id); err != nil {
		if pkgerrors.IsNotFound(err) {
			return pkgerrors.NotFoundWithID("cast member", id.String())
		}
		return err
	}
	return nil
}

// FindAll returns one page of cast members matching the search query
func (r *CastMemberRepository) FindAll(ctx context.Context, query domain.SearchQuery) (domain.Page[*catalog.CastMember], error) {
	var page domain.Page[*catalog.CastMember]

	tx := r.db.WithContext(ctx).Model(&CastMemberModel{})
	if query.Term != "" {
		tx = tx.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(query.Term)+"%")
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return page, fmt.Errorf("counting cast members: %w", err)
	}

	var models []CastMemberModel
	err := tx.Order(orderClause(query, castMemberSortColumns)).
		Offset(query.Offset()).
		Limit(query.Limit()).
		Find(&models).Error
	if err != nil {
		return page, fmt.Errorf("listing cast members: %w", err)
	}

	items := make([]*catalog.CastMember, len(models))
	for i, m := range models {
		items[i] = m.ToDomain()
	}

	page.CurrentPage = query.Page
	page.PerPage = query.Limit()
	page.Total = total
	page.Items = items
	return page, nil
}
