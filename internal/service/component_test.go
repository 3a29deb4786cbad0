package service_test

import (
	"testing"

	"test-manager-backend/internal/database/models"
	apperrors "test-manager-backend/internal/errors"
	"test-manager-backend/internal/mocks"
	"test-manager-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type ComponentServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockRepo         *mocks.MockComponentRepositoryInterface
	mockProjectRepo  *mocks.MockProjectRepositoryInterface
	mockTestCaseRepo *mocks.MockTestCaseRepositoryInterface
	componentService *service.ComponentService
}

func (suite *ComponentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockComponentRepositoryInterface(suite.ctrl)
	suite.mockProjectRepo = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.mockTestCaseRepo = mocks.NewMockTestCaseRepositoryInterface(suite.ctrl)
	suite.componentService = service.NewComponentService(suite.mockRepo, suite.mockProjectRepo, suite.mockTestCaseRepo, service.NewValidator())
}

func (suite *ComponentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ComponentServiceTestSuite) TestCreateComponent_MissingProject() {
	suite.mockProjectRepo.EXPECT().GetByID(int64(999)).Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().Create(gomock.Any()).Times(0)

	resp, err := suite.componentService.Create(&service.ComponentRequest{ProjectID: 999, Name: "X"})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrProjectNotFound)
	assert.Equal(suite.T(), apperrors.KindNotFound, apperrors.KindOf(err))
}

func (suite *ComponentServiceTestSuite) TestCreateComponent_NameScopedToProject() {
	byProject := map[int64][]models.Component{}
	suite.mockProjectRepo.EXPECT().GetByID(gomock.Any()).DoAndReturn(func(id int64) (*models.Project, error) {
		return &models.Project{BaseModel: models.BaseModel{ID: id}}, nil
	}).AnyTimes()
	suite.mockRepo.EXPECT().GetByProjectID(gomock.Any()).DoAndReturn(func(projectID int64) ([]models.Component, error) {
		return byProject[projectID], nil
	}).AnyTimes()
	nextID := int64(1)
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(c *models.Component) error {
		c.ID = nextID
		nextID++
		byProject[c.ProjectID] = append(byProject[c.ProjectID], *c)
		return nil
	}).Times(2)

	_, err := suite.componentService.Create(&service.ComponentRequest{ProjectID: 1, Name: "Login"})
	assert.NoError(suite.T(), err)

	_, err = suite.componentService.Create(&service.ComponentRequest{ProjectID: 1, Name: "LOGIN"})
	assert.ErrorIs(suite.T(), err, apperrors.ErrComponentExists)

	other, err := suite.componentService.Create(&service.ComponentRequest{ProjectID: 2, Name: "login"})
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(2), other.ProjectID)
}

func (suite *ComponentServiceTestSuite) TestCreateComponent_InvalidProjectID() {
	resp, err := suite.componentService.Create(&service.ComponentRequest{ProjectID: 0, Name: ""})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *ComponentServiceTestSuite) TestDeleteComponent_GuardedByTestCases() {
	component := &models.Component{BaseModel: models.BaseModel{ID: 4}, ProjectID: 1, Name: "API"}
	suite.mockRepo.EXPECT().GetByID(int64(4)).Return(component, nil).Times(2)

	gomock.InOrder(
		suite.mockTestCaseRepo.EXPECT().CountByComponentID(int64(4)).Return(int64(1), nil),
		suite.mockTestCaseRepo.EXPECT().CountByComponentID(int64(4)).Return(int64(0), nil),
	)
	suite.mockRepo.EXPECT().Delete(int64(4)).Return(nil).Times(1)

	err := suite.componentService.Delete(4)
	assert.ErrorIs(suite.T(), err, apperrors.ErrComponentHasTestCases)

	err = suite.componentService.Delete(4)
	assert.NoError(suite.T(), err)
}

func (suite *ComponentServiceTestSuite) TestUpdateComponent_MovesToProjectScope() {
	existing := &models.Component{BaseModel: models.BaseModel{ID: 4}, ProjectID: 1, Name: "API"}
	suite.mockRepo.EXPECT().GetByID(int64(4)).Return(existing, nil)
	suite.mockProjectRepo.EXPECT().GetByID(int64(2)).Return(&models.Project{BaseModel: models.BaseModel{ID: 2}}, nil)
	suite.mockRepo.EXPECT().GetByProjectID(int64(2)).Return([]models.Component{
		{BaseModel: models.BaseModel{ID: 9}, ProjectID: 2, Name: "api"},
	}, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Times(0)

	resp, err := suite.componentService.Update(4, &service.ComponentRequest{ProjectID: 2, Name: "API"})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrComponentExists)
}

func (suite *ComponentServiceTestSuite) TestGetComponentsByProject() {
	suite.mockProjectRepo.EXPECT().GetByID(int64(1)).Return(&models.Project{BaseModel: models.BaseModel{ID: 1}}, nil)
	suite.mockRepo.EXPECT().GetByProjectID(int64(1)).Return([]models.Component{
		{BaseModel: models.BaseModel{ID: 1}, ProjectID: 1, Name: "UI"},
		{BaseModel: models.BaseModel{ID: 2}, ProjectID: 1, Name: "API"},
	}, nil)

	resp, err := suite.componentService.GetByProjectID(1)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp, 2)
	assert.Equal(suite.T(), "UI", resp[0].Name)
}

func (suite *ComponentServiceTestSuite) TestGetComponentsByProject_MissingProject() {
	suite.mockProjectRepo.EXPECT().GetByID(int64(3)).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.componentService.GetByProjectID(3)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrProjectNotFound)
}

func TestComponentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ComponentServiceTestSuite))
}
