package catalog

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/coralstream/catalog/internal/domain"
	"github.com/coralstream/catalog/internal/domain/validation"
)

// Genre classifies videos and may be linked to any number of categories. The
// genre stores only the category identifiers, not the categories themselves.
type Genre struct {
	domain.BaseAggregate

	name       string
	categories []uuid.UUID
}

// NewGenre creates a genre with a fresh identifier. The category set may be
// empty but is never stored as nil.
func NewGenre(name string, categories []uuid.UUID) *Genre {
	return &Genre{
		BaseAggregate: domain.NewBaseAggregate(),
		name:          name,
		categories:    copyCategoryIDs(categories),
	}
}

// RestoreGenre reconstitutes a Genre from its persisted representation
func RestoreGenre(base domain.BaseAggregate, name string, categories []uuid.UUID) *Genre {
	return &Genre{
		BaseAggregate: base,
		name:          name,
		categories:    copyCategoryIDs(categories),
	}
}

// Update replaces the genre name and category associations
func (g *Genre) Update(name string, categories []uuid.UUID) {
	g.name = name
	g.categories = copyCategoryIDs(categories)
	g.Touch()
}

// AddCategory links one category to the genre, ignoring duplicates
func (g *Genre) AddCategory(categoryID uuid.UUID) {
	for _, id := range g.categories {
		if id == categoryID {
			return
		}
	}
	g.categories = append(g.categories, categoryID)
	g.Touch()
}

// RemoveCategory unlinks one category from the genre
func (g *Genre) RemoveCategory(categoryID uuid.UUID) {
	for i, id := range g.categories {
		if id == categoryID {
			g.categories = append(g.categories[:i], g.categories[i+1:]...)
			g.Touch()
			return
		}
	}
}

// Validate appends one error per violated rule; all rules always run.
func (g *Genre) Validate(handler validation.Handler) {
	if strings.TrimSpace(g.name) == "" {
		handler.AddError(validation.NewError("name", "should not be empty"))
	} else if utf8.RuneCountInString(g.name) > maxNameLength {
		handler.AddError(validation.NewError("name", "must be between 1 and 255 characters"))
	}
}

// Name returns the genre name
func (g *Genre) Name() string { return g.name }

// Categories returns a copy of the associated category IDs
func (g *Genre) Categories() []uuid.UUID { return copyCategoryIDs(g.categories) }

func copyCategoryIDs(ids []uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, len(ids))
	copy(out, ids)
	return out
}
