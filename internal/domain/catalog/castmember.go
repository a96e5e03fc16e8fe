package catalog

import (
	"strings"
	"unicode/utf8"

	"github.com/coralstream/catalog/internal/domain"
	"github.com/coralstream/catalog/internal/domain/validation"
)

// CastMemberType distinguishes actors from directors.
type CastMemberType string

const (
	CastMemberTypeActor    CastMemberType = "ACTOR"
	CastMemberTypeDirector CastMemberType = "DIRECTOR"
)

// IsValid reports whether the cast member type is known
func (t CastMemberType) IsValid() bool {
	return t == CastMemberTypeActor || t == CastMemberTypeDirector
}

// CastMember is an actor or director referenced by videos.
type CastMember struct {
	domain.BaseAggregate

	name string
	kind CastMemberType
}

// NewCastMember creates a cast member with a fresh identifier
func NewCastMember(name string, kind CastMemberType) *CastMember {
	return &CastMember{
		BaseAggregate: domain.NewBaseAggregate(),
		name:          name,
		kind:          kind,
	}
}

// RestoreCastMember reconstitutes a CastMember from its persisted representation
func RestoreCastMember(base domain.BaseAggregate, name string, kind CastMemberType) *CastMember {
	return &CastMember{
		BaseAggregate: base,
		name:          name,
		kind:          kind,
	}
}

// Update replaces the cast member's name and type
func (m *CastMember) Update(name string, kind CastMemberType) {
	m.name = name
	m.kind = kind
	m.Touch()
}

// Validate appends one error per violated rule; all rules always run.
func (m *CastMember) Validate(handler validation.Handler) {
	if strings.TrimSpace(m.name) == "" {
		handler.AddError(validation.NewError("name", "should not be empty"))
	} else if utf8.RuneCountInString(m.name) > maxNameLength {
		handler.AddError(validation.NewError("name", "must be between 1 and 255 characters"))
	}
	if !m.kind.IsValid() {
		handler.AddError(validation.NewError("type", "must be ACTOR or DIRECTOR"))
	}
}

// Name returns the cast member name
func (m *CastMember) Name() string { return m.name }

// Type returns the cast member type
func (m *CastMember) Type() CastMemberType { return m.kind }
