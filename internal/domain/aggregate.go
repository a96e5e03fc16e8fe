package domain

import (
	"time"

	"github.com/google/uuid"
)

// BaseAggregate provides identity, optimistic-locking version and timestamps
// for every aggregate root in the catalog.
type BaseAggregate struct {
	ID        uuid.UUID
	Version   int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewBaseAggregate creates a new base aggregate with a fresh UUID and current timestamps
func NewBaseAggregate() BaseAggregate {
	now := time.Now()
	return BaseAggregate{
		ID:        uuid.New(),
		Version:   1,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// GetID returns the aggregate's ID
func (a BaseAggregate) GetID() uuid.UUID {
	return a.ID
}

// GetVersion returns the aggregate's version
func (a BaseAggregate) GetVersion() int {
	return a.Version
}

// GetCreatedAt returns the aggregate's creation time
func (a BaseAggregate) GetCreatedAt() time.Time {
	return a.CreatedAt
}

// GetUpdatedAt returns the aggregate's last update time
func (a BaseAggregate) GetUpdatedAt() time.Time {
	return a.UpdatedAt
}

// Touch bumps the version and refreshes the update timestamp
func (a *BaseAggregate) Touch() {
	a.Version++
	a.UpdatedAt = time.Now()
}
