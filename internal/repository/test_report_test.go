//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"test-manager-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// TestReportRepositoryTestSuite tests the report and history repositories
type TestReportRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TestReportRepository
	historyRepo   *TestHistoryRepository
	factories     *testutils.FactorySet
}

func (suite *TestReportRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTestReportRepository(suite.baseTestSuite.DB)
	suite.historyRepo = NewTestHistoryRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

func (suite *TestReportRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

func (suite *TestReportRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

func (suite *TestReportRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestReportsNewestExecutionFirst checks the listing order
func (suite *TestReportRepositoryTestSuite) TestReportsNewestExecutionFirst() {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	for _, offset := range []int{0, 30, 10} {
		suite.Require().NoError(suite.repo.Create(suite.factories.TestReport.Create(1, base.AddDate(0, 0, offset))))
	}
	suite.Require().NoError(suite.repo.Create(suite.factories.TestReport.Create(2, base)))

	reports, err := suite.repo.GetByTestCaseID(1)

	suite.NoError(err)
	suite.Len(reports, 3)
	suite.True(reports[0].ExecutionDate.Equal(base.AddDate(0, 0, 30)))
	suite.True(reports[1].ExecutionDate.Equal(base.AddDate(0, 0, 10)))
	suite.True(reports[2].ExecutionDate.Equal(base))
}

// TestHistoryNewestFirst checks both history listings
func (suite *TestReportRepositoryTestSuite) TestHistoryNewestFirst() {
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	suite.Require().NoError(suite.historyRepo.Create(suite.factories.TestHistory.Create(1, 7, base)))
	suite.Require().NoError(suite.historyRepo.Create(suite.factories.TestHistory.Create(1, 8, base.Add(time.Hour))))
	suite.Require().NoError(suite.historyRepo.Create(suite.factories.TestHistory.Create(2, 7, base.Add(2*time.Hour))))

	byCase, err := suite.historyRepo.GetByTestCaseID(1)
	suite.NoError(err)
	suite.Len(byCase, 2)
	suite.Equal(int64(8), byCase[0].UserID)

	byUser, err := suite.historyRepo.GetByUserID(7)
	suite.NoError(err)
	suite.Len(byUser, 2)
	suite.Equal(int64(2), byUser[0].TestCaseID)
}

// TestDeleteReport removes a single report
func (suite *TestReportRepositoryTestSuite) TestDeleteReport() {
	report := suite.factories.TestReport.Create(1, time.Now().UTC())
	suite.Require().NoError(suite.repo.Create(report))

	suite.NoError(suite.repo.Delete(report.ID))

	reports, err := suite.repo.GetAll()
	suite.NoError(err)
	suite.Empty(reports)
}

func TestTestReportRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TestReportRepositoryTestSuite))
}
