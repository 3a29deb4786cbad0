//go:build integration
// +build integration

package repository

import (
	"testing"

	"test-manager-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// UserRepositoryTestSuite tests the user and user role repositories
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	roleRepo      *UserRoleRepository
	statusRepo    *TestStatusRepository
	factories     *testutils.FactorySet
}

func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.roleRepo = NewUserRoleRepository(suite.baseTestSuite.DB)
	suite.statusRepo = NewTestStatusRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestUsersByRole lists and counts role holders
func (suite *UserRepositoryTestSuite) TestUsersByRole() {
	role := suite.factories.UserRole.Create()
	suite.Require().NoError(suite.roleRepo.Create(role))

	suite.Require().NoError(suite.repo.Create(suite.factories.User.WithRole(role.ID)))
	suite.Require().NoError(suite.repo.Create(suite.factories.User.Create()))

	users, err := suite.repo.GetByRoleID(role.ID)
	suite.NoError(err)
	suite.Len(users, 1)
	suite.Equal(role.ID, *users[0].RoleID)

	count, err := suite.repo.CountByRoleID(role.ID)
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

// TestUserWithoutRole stores a NULL role id
func (suite *UserRepositoryTestSuite) TestUserWithoutRole() {
	user := suite.factories.User.Create()
	suite.Require().NoError(suite.repo.Create(user))

	found, err := suite.repo.GetByID(user.ID)

	suite.NoError(err)
	suite.Nil(found.RoleID)
	suite.Equal("secret", found.Password)
}

// TestRoleAndStatusCRUD covers the two lookup tables
func (suite *UserRepositoryTestSuite) TestRoleAndStatusCRUD() {
	role := suite.factories.UserRole.Create()
	suite.Require().NoError(suite.roleRepo.Create(role))
	role.Description = "changed"
	suite.NoError(suite.roleRepo.Update(role))
	foundRole, err := suite.roleRepo.GetByID(role.ID)
	suite.NoError(err)
	suite.Equal("changed", foundRole.Description)
	suite.NoError(suite.roleRepo.Delete(role.ID))

	status := suite.factories.TestStatus.Create()
	suite.Require().NoError(suite.statusRepo.Create(status))
	statuses, err := suite.statusRepo.GetAll()
	suite.NoError(err)
	suite.Len(statuses, 1)
	suite.NoError(suite.statusRepo.Delete(status.ID))
}

func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
