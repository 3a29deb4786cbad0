//go:build integration
// +build integration

package repository

import (
	"testing"

	"test-manager-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// TestCaseRepositoryTestSuite tests the TestCaseRepository
type TestCaseRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TestCaseRepository
	factories     *testutils.FactorySet
}

func (suite *TestCaseRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTestCaseRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *TestCaseRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *TestCaseRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *TestCaseRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestFindAndCountByEachForeignKey covers the component, user and status lookups
func (suite *TestCaseRepositoryTestSuite) TestFindAndCountByEachForeignKey() {
	suite.Require().NoError(suite.repo.Create(suite.factories.TestCase.Create(1, 10, 100)))
	suite.Require().NoError(suite.repo.Create(suite.factories.TestCase.Create(1, 11, 100)))
	suite.Require().NoError(suite.repo.Create(suite.factories.TestCase.Create(2, 10, 101)))

	byComponent, err := suite.repo.GetByComponentID(1)
	suite.NoError(err)
	suite.Len(byComponent, 2)

	byUser, err := suite.repo.GetByAssignedUser(10)
	suite.NoError(err)
	suite.Len(byUser, 2)

	byStatus, err := suite.repo.GetByStatusID(101)
	suite.NoError(err)
	suite.Len(byStatus, 1)
	suite.Equal(int64(2), byStatus[0].ComponentID)

	count, err := suite.repo.CountByComponentID(2)
	suite.NoError(err)
	suite.Equal(int64(1), count)

	count, err = suite.repo.CountByAssignedUser(11)
	suite.NoError(err)
	suite.Equal(int64(1), count)

	count, err = suite.repo.CountByStatusID(100)
	suite.NoError(err)
	suite.Equal(int64(2), count)

	count, err = suite.repo.CountByStatusID(999)
	suite.NoError(err)
	suite.Zero(count)
}

// TestRoundTrip checks every column survives a write and read
func (suite *TestCaseRepositoryTestSuite) TestRoundTrip() {
	testCase := suite.factories.TestCase.Create(3, 4, 5)
	suite.Require().NoError(suite.repo.Create(testCase))

	found, err := suite.repo.GetByID(testCase.ID)

	suite.NoError(err)
	suite.Equal(testCase.ComponentID, found.ComponentID)
	suite.Equal(testCase.AssignedUser, found.AssignedUser)
	suite.Equal(testCase.StatusID, found.StatusID)
	suite.Equal(testCase.Name, found.Name)
	suite.Equal(testCase.Priority, found.Priority)
	suite.Equal(testCase.Status, found.Status)
}

func TestTestCaseRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TestCaseRepositoryTestSuite))
}
