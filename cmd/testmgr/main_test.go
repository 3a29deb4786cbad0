package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"test-manager-backend/internal/config"
	apperrors "test-manager-backend/internal/errors"
	"test-manager-backend/internal/mocks"
	"test-manager-backend/internal/service"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// CLITestSuite runs the commands against mocked services
type CLITestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	projects *mocks.MockProjectServiceInterface
	out      *bytes.Buffer
	app      *app
	opened   int
}

func (suite *CLITestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.projects = mocks.NewMockProjectServiceInterface(suite.ctrl)
	suite.out = &bytes.Buffer{}
	suite.opened = 0

	suite.app = &app{
		out: suite.out,
		loadConfig: func() (*config.Config, error) {
			return &config.Config{Environment: "test", Port: "7008", LogLevel: "error", SeedFile: "initial_data.yaml"}, nil
		},
		openDB: func(cfg *config.Config, attempts int) (*gorm.DB, error) {
			suite.opened++
			return nil, nil
		},
		newServices: func(db *gorm.DB) *service.Services {
			return &service.Services{Project: suite.projects}
		},
	}
}

func (suite *CLITestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *CLITestSuite) run(args ...string) error {
	root := newRootCmd(suite.app)
	root.SetArgs(args)
	return root.Execute()
}

// TestVersion skips configuration and the database
func (suite *CLITestSuite) TestVersion() {
	suite.app.loadConfig = func() (*config.Config, error) {
		return nil, errors.New("should not be called")
	}

	suite.NoError(suite.run("version"))
	suite.Equal("testmgr dev\n", suite.out.String())
	suite.Zero(suite.opened)
}

// TestConfigError is reported before any command runs
func (suite *CLITestSuite) TestConfigError() {
	suite.app.loadConfig = func() (*config.Config, error) {
		return nil, errors.New("port is required")
	}

	err := suite.run("projects", "list")

	suite.Error(err)
	suite.Contains(err.Error(), "load config")
	suite.Zero(suite.opened)
}

// TestProjectsListTable prints one row per project
func (suite *CLITestSuite) TestProjectsListTable() {
	suite.projects.EXPECT().GetAll().Return([]service.ProjectResponse{
		{ID: 1, Name: "Alpha", StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{ID: 2, Name: "Beta"},
	}, nil)

	suite.NoError(suite.run("projects", "list"))

	output := suite.out.String()
	suite.Contains(output, "NAME")
	suite.Contains(output, "Alpha")
	suite.Contains(output, "2024-01-01")
	suite.Contains(output, "Beta")
	suite.Equal(1, suite.opened)
}

// TestProjectsListJSON prints the service responses as JSON
func (suite *CLITestSuite) TestProjectsListJSON() {
	suite.projects.EXPECT().GetAll().Return([]service.ProjectResponse{{ID: 1, Name: "Alpha"}}, nil)

	suite.NoError(suite.run("projects", "list", "--json"))

	var projects []service.ProjectResponse
	suite.Require().NoError(json.Unmarshal(suite.out.Bytes(), &projects))
	suite.Require().Len(projects, 1)
	suite.Equal("Alpha", projects[0].Name)
}

// TestProjectsDelete uses the guarded delete by default
func (suite *CLITestSuite) TestProjectsDelete() {
	suite.projects.EXPECT().Delete(int64(4)).Return(nil)

	suite.NoError(suite.run("projects", "delete", "4"))
	suite.Contains(suite.out.String(), "Deleted project 4")
}

// TestProjectsDeleteConflict returns the service error
func (suite *CLITestSuite) TestProjectsDeleteConflict() {
	suite.projects.EXPECT().Delete(int64(4)).Return(apperrors.ErrProjectHasComponents)

	err := suite.run("projects", "delete", "4")

	suite.Error(err)
	suite.True(apperrors.IsConflict(err))
}

// TestProjectsDeleteCascade prints the per-kind counts
func (suite *CLITestSuite) TestProjectsDeleteCascade() {
	suite.projects.EXPECT().DeleteCascade(int64(4)).Return(&service.CascadeDeleteResponse{
		ProjectID: 4, Components: 2, TestCases: 3, TestReports: 5,
	}, nil)

	suite.NoError(suite.run("projects", "delete", "4", "--cascade"))

	output := suite.out.String()
	suite.Contains(output, "Deleted 5 test reports, 3 test cases, 2 components")
	suite.Contains(output, "11 rows in total")
}

// TestProjectsDeleteInvalidID never opens the database
func (suite *CLITestSuite) TestProjectsDeleteInvalidID() {
	err := suite.run("projects", "delete", "abc")

	suite.Error(err)
	suite.Contains(err.Error(), "invalid project ID")
	suite.Zero(suite.opened)
}

func TestCLITestSuite(t *testing.T) {
	suite.Run(t, new(CLITestSuite))
}
