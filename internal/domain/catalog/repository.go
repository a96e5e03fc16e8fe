package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/coralstream/catalog/internal/domain"
)

// CategoryRepository is the persistence gateway for categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	Update(ctx context.Context, category *Category) error
	FindByID(ctx context.Context, id uuid.UUID) (*Category, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
	FindAll(ctx context.Context, query domain.SearchQuery) (domain.Page[*Category], error)
}

// GenreRepository is the persistence gateway for genres.
type GenreRepository interface {
	Create(ctx context.Context, genre *Genre) error
	Update(ctx context.Context, genre *Genre) error
	FindByID(ctx context.Context, id uuid.UUID) (*Genre, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
	FindAll(ctx context.Context, query domain.SearchQuery) (domain.Page[*Genre], error)
}

// CastMemberRepository is the persistence gateway for cast members.
type CastMemberRepository interface {
	Create(ctx context.Context, member *CastMember) error
	Update(ctx context.Context, member *CastMember) error
	FindByID(ctx context.Context, id uuid.UUID) (*CastMember, error)
	DeleteByID(ctx context.Context, id uuid.UUID) error
	FindAll(ctx context.Context, query domain.SearchQuery) (domain.Page[*CastMember], error)
}
