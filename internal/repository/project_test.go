//go:build integration
// +build integration

package repository

import (
	"testing"

	"test-manager-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ProjectRepositoryTestSuite tests the ProjectRepository
type ProjectRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ProjectRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ProjectRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewProjectRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ProjectRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ProjectRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ProjectRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new project
func (suite *ProjectRepositoryTestSuite) TestCreate() {
	project := suite.factories.Project.Create()

	err := suite.repo.Create(project)

	suite.NoError(err)
	suite.Equal(int64(1), project.ID)
	suite.NotZero(project.CreatedAt)
	suite.NotZero(project.UpdatedAt)
}

// TestGetByID round-trips every field
func (suite *ProjectRepositoryTestSuite) TestGetByID() {
	project := suite.factories.Project.WithName("Alpha")
	suite.Require().NoError(suite.repo.Create(project))

	found, err := suite.repo.GetByID(project.ID)

	suite.NoError(err)
	suite.Equal(project.Name, found.Name)
	suite.Equal(project.Description, found.Description)
	suite.True(project.StartDate.Equal(found.StartDate))
	suite.True(project.EndDate.Equal(found.EndDate))
}

// TestGetByIDNotFound tests retrieving a non-existent project
func (suite *ProjectRepositoryTestSuite) TestGetByIDNotFound() {
	project, err := suite.repo.GetByID(999)

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(project)
}

// TestGetAllOrderedByID tests listing projects
func (suite *ProjectRepositoryTestSuite) TestGetAllOrderedByID() {
	for _, name := range []string{"Charlie", "Alpha", "Bravo"} {
		suite.Require().NoError(suite.repo.Create(suite.factories.Project.WithName(name)))
	}

	projects, err := suite.repo.GetAll()

	suite.NoError(err)
	suite.Len(projects, 3)
	suite.Equal("Charlie", projects[0].Name)
	suite.Equal("Bravo", projects[2].Name)
}

// TestUpdate tests updating a project
func (suite *ProjectRepositoryTestSuite) TestUpdate() {
	project := suite.factories.Project.Create()
	suite.Require().NoError(suite.repo.Create(project))

	project.Name = "Renamed"
	project.Description = "Updated description"
	suite.NoError(suite.repo.Update(project))

	found, err := suite.repo.GetByID(project.ID)
	suite.NoError(err)
	suite.Equal("Renamed", found.Name)
	suite.Equal("Updated description", found.Description)
}

// TestDelete tests deleting a project
func (suite *ProjectRepositoryTestSuite) TestDelete() {
	project := suite.factories.Project.Create()
	suite.Require().NoError(suite.repo.Create(project))

	suite.NoError(suite.repo.Delete(project.ID))

	_, err := suite.repo.GetByID(project.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestProjectRepositoryTestSuite runs the test suite
func TestProjectRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectRepositoryTestSuite))
}
