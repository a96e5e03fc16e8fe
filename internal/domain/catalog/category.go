package catalog

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/coralstream/catalog/internal/domain"
	"github.com/coralstream/catalog/internal/domain/validation"
)

// Category groups videos into a browsable section of the catalog. Deletion is
// soft: a deactivated category keeps its row with DeactivatedAt set.
type Category struct {
	domain.BaseAggregate

	name          string
	description   string
	active        bool
	deactivatedAt *time.Time
}

// NewCategory creates an active category with a fresh identifier
func NewCategory(name, description string) *Category {
	return &Category{
		BaseAggregate: domain.NewBaseAggregate(),
		name:          name,
		description:   description,
		active:        true,
	}
}

// RestoreCategory reconstitutes a Category from its persisted representation
func RestoreCategory(base domain.BaseAggregate, name, description string, active bool, deactivatedAt *time.Time) *Category {
	return &Category{
		BaseAggregate: base,
		name:          name,
		description:   description,
		active:        active,
		deactivatedAt: deactivatedAt,
	}
}

// Update replaces the category's mutable metadata
func (c *Category) Update(name, description string) {
	c.name = name
	c.description = description
	c.Touch()
}

// Activate re-enables a deactivated category
func (c *Category) Activate() {
	c.active = true
	c.deactivatedAt = nil
	c.Touch()
}

// Deactivate soft-deletes the category
func (c *Category) Deactivate() {
	if !c.active {
		return
	}
	now := time.Now()
	c.active = false
	c.deactivatedAt = &now
	c.Touch()
}

// Validate appends one error per violated rule; all rules always run.
func (c *Category) Validate(handler validation.Handler) {
	if strings.TrimSpace(c.name) == "" {
		handler.AddError(validation.NewError("name", "should not be empty"))
	} else if utf8.RuneCountInString(c.name) > maxNameLength {
		handler.AddError(validation.NewError("name", "must be between 1 and 255 characters"))
	}
}

// Name returns the category name
func (c *Category) Name() string { return c.name }

// Description returns the category description
func (c *Category) Description() string { return c.description }

// Active reports whether the category is active
func (c *Category) Active() bool { return c.active }

// DeactivatedAt returns when the category was soft-deleted, if it was
func (c *Category) DeactivatedAt() *time.Time { return c.deactivatedAt }

const maxNameLength = 255
