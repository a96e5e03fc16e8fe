// Package repository holds the generic gorm helpers shared by the catalog
// repositories. Aggregate-specific concerns (version guards, join tables,
// search queries) stay in the repositories themselves.
package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgerrors "github.com/coralstream/catalog/pkg/errors"
)

// Create inserts a new row, reporting a duplicate key as a conflict.
func Create[T any](ctx context.Context, db *gorm.DB, model *T) error {
	if err := db.WithContext(ctx).Create(model).Error; err != nil {
		if pkgerrors.IsDuplicateError(err) {
			return pkgerrors.Conflict("record already exists")
		}
		return err
	}
	return nil
}

// FindByID loads one row by primary key.
func FindByID[T any](ctx context.Context, db *gorm.DB, id uuid.UUID) (*T, error) {
	var model T
	if err := db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.NotFound("record not found")
		}
		return nil, err
	}
	return &model, nil
}

// Delete removes one row by primary key, reporting a missing row as not found.
func Delete[T any](ctx context.Context, db *gorm.DB, id uuid.UUID) error {
	var model T
	result := db.WithContext(ctx).Delete(&model, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return pkgerrors.NotFound("record not found")
	}
	return nil
}
