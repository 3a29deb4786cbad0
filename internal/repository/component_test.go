//go:build integration
// +build integration

package repository

import (
	"testing"

	"test-manager-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// ComponentRepositoryTestSuite tests the ComponentRepository
type ComponentRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ComponentRepository
	projectRepo   *ProjectRepository
	factories     *testutils.FactorySet
}

func (suite *ComponentRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewComponentRepository(suite.baseTestSuite.DB)
	suite.projectRepo = NewProjectRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *ComponentRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *ComponentRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *ComponentRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *ComponentRepositoryTestSuite) createProject() int64 {
	project := suite.factories.Project.Create()
	suite.Require().NoError(suite.projectRepo.Create(project))
	return project.ID
}

// TestGetByProjectID lists only the components of one project
func (suite *ComponentRepositoryTestSuite) TestGetByProjectID() {
	first := suite.createProject()
	second := suite.createProject()

	for i := 0; i < 2; i++ {
		suite.Require().NoError(suite.repo.Create(suite.factories.Component.Create(first)))
	}
	suite.Require().NoError(suite.repo.Create(suite.factories.Component.Create(second)))

	components, err := suite.repo.GetByProjectID(first)

	suite.NoError(err)
	suite.Len(components, 2)
	for _, c := range components {
		suite.Equal(first, c.ProjectID)
	}
	suite.Less(components[0].ID, components[1].ID)
}

// TestCountByProjectID counts dependent components
func (suite *ComponentRepositoryTestSuite) TestCountByProjectID() {
	projectID := suite.createProject()

	count, err := suite.repo.CountByProjectID(projectID)
	suite.NoError(err)
	suite.Zero(count)

	suite.Require().NoError(suite.repo.Create(suite.factories.Component.Create(projectID)))

	count, err = suite.repo.CountByProjectID(projectID)
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

// TestCreateWithoutProjectRow succeeds: the schema declares no FK constraint
func (suite *ComponentRepositoryTestSuite) TestCreateWithoutProjectRow() {
	component := suite.factories.Component.Create(999)

	suite.NoError(suite.repo.Create(component))
	suite.NotZero(component.ID)
}

// TestUpdateAndDelete tests the write path
func (suite *ComponentRepositoryTestSuite) TestUpdateAndDelete() {
	component := suite.factories.Component.Create(suite.createProject())
	suite.Require().NoError(suite.repo.Create(component))

	component.Name = "Checkout"
	suite.NoError(suite.repo.Update(component))

	found, err := suite.repo.GetByID(component.ID)
	suite.NoError(err)
	suite.Equal("Checkout", found.Name)

	suite.NoError(suite.repo.Delete(component.ID))
	all, err := suite.repo.GetAll()
	suite.NoError(err)
	suite.Empty(all)
}

func TestComponentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ComponentRepositoryTestSuite))
}
