package catalog_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/coralstream/catalog/internal/domain/catalog"
	"github.com/coralstream/catalog/internal/domain/validation"
)

func TestNewGenre_NilCategoriesBecomeEmpty(t *testing.T) {
	genre := catalog.NewGenre("Drama", nil)

	assert.NotNil(t, genre.Categories())
	assert.Empty(t, genre.Categories())
}

func TestGenre_AddCategoryIgnoresDuplicates(t *testing.T) {
	id := uuid.New()
	genre := catalog.NewGenre("Drama", nil)

	genre.AddCategory(id)
	genre.AddCategory(id)

	assert.Len(t, genre.Categories(), 1)
}

func TestGenre_RemoveCategory(t *testing.T) {
	keep := uuid.New()
	drop := uuid.New()
	genre := catalog.NewGenre("Drama", []uuid.UUID{keep, drop})

	genre.RemoveCategory(drop)

	assert.Equal(t, []uuid.UUID{keep}, genre.Categories())
}

func TestGenre_RemoveUnknownCategoryIsNoOp(t *testing.T) {
	genre := catalog.NewGenre("Drama", []uuid.UUID{uuid.New()})
	version := genre.Version

	genre.RemoveCategory(uuid.New())

	assert.Equal(t, version, genre.Version)
}

func TestGenre_CategoriesReturnsCopy(t *testing.T) {
	genre := catalog.NewGenre("Drama", []uuid.UUID{uuid.New()})

	out := genre.Categories()
	out[0] = uuid.New()

	assert.NotEqual(t, out[0], genre.Categories()[0])
}

func TestGenre_Validate(t *testing.T) {
	notification := validation.NewNotification()
	catalog.NewGenre("", nil).Validate(notification)

	assert.Len(t, notification.Errors(), 1)
}
