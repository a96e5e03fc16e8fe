package gorm_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/coralstream/catalog/internal/domain"
	"github.com/coralstream/catalog/internal/domain/catalog"
	gormrepo "github.com/coralstream/catalog/internal/infrastructure/persistence/gorm"
	"github.com/coralstream/catalog/pkg/errors"
)

type CategoryRepositoryTestSuite struct {
	suite.Suite

	ctx  context.Context
	repo catalog.CategoryRepository
}

func (suite *CategoryRepositoryTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.repo = gormrepo.NewCategoryRepository(gormrepo.NewTestDB(suite.T()))
}

func (suite *CategoryRepositoryTestSuite) TestCreateAndFindByID_RoundTrip() {
	category := catalog.NewCategory("Documentary", "Long form documentaries")
	suite.Require().NoError(suite.repo.Create(suite.ctx, category))

	found, err := suite.repo.FindByID(suite.ctx, category.ID)
	suite.Require().NoError(err)

	suite.Equal(category.ID, found.ID)
	suite.Equal("Documentary", found.Name())
	suite.Equal("Long form documentaries", found.Description())
	suite.True(found.Active())
	suite.Nil(found.DeactivatedAt())
}

func (suite *CategoryRepositoryTestSuite) TestUpdate_PersistsDeactivation() {
	category := catalog.NewCategory("Documentary", "")
	suite.Require().NoError(suite.repo.Create(suite.ctx, category))

	category.Deactivate()
	suite.Require().NoError(suite.repo.Update(suite.ctx, category))

	found, err := suite.repo.FindByID(suite.ctx, category.ID)
	suite.Require().NoError(err)
	suite.False(found.Active())
	suite.NotNil(found.DeactivatedAt())
}

func (suite *CategoryRepositoryTestSuite) TestUpdate_StaleVersionConflicts() {
	category := catalog.NewCategory("Documentary", "")
	suite.Require().NoError(suite.repo.Create(suite.ctx, category))

	category.Update("Docs", "")
	suite.Require().NoError(suite.repo.Update(suite.ctx, category))

	err := suite.repo.Update(suite.ctx, category)
	suite.Require().Error(err)
	suite.True(errors.IsConflict(err))
}

func (suite *CategoryRepositoryTestSuite) TestUpdate_MissingCategoryIsNotFound() {
	category := catalog.NewCategory("Documentary", "")
	category.Touch()

	err := suite.repo.Update(suite.ctx, category)
	suite.Require().Error(err)
	suite.True(errors.IsNotFound(err))
}

func (suite *CategoryRepositoryTestSuite) TestFindAll_TermFilter() {
	for _, name := range []string{"Documentary", "Drama", "Comedy"} {
		suite.Require().NoError(suite.repo.Create(suite.ctx, catalog.NewCategory(name, "")))
	}

	page, err := suite.repo.FindAll(suite.ctx, domain.SearchQuery{
		Page:      1,
		PerPage:   10,
		Term:      "d",
		Sort:      "name",
		Direction: "asc",
	})
	suite.Require().NoError(err)

	suite.Equal(int64(2), page.Total)
	suite.Require().Len(page.Items, 2)
	suite.Equal("Documentary", page.Items[0].Name())
	suite.Equal("Drama", page.Items[1].Name())
}

func TestCategoryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CategoryRepositoryTestSuite))
}
