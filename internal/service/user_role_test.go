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

type UserRoleServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockRepo        *mocks.MockUserRoleRepositoryInterface
	mockUserRepo    *mocks.MockUserRepositoryInterface
	userRoleService *service.UserRoleService
}

func (suite *UserRoleServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockUserRoleRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.userRoleService = service.NewUserRoleService(suite.mockRepo, suite.mockUserRepo, service.NewValidator())
}

func (suite *UserRoleServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *UserRoleServiceTestSuite) TestCreateRole_Success() {
	suite.mockRepo.EXPECT().GetAll().Return([]models.UserRole{{BaseModel: models.BaseModel{ID: 1}, RoleName: "Tester"}}, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(r *models.UserRole) error {
		r.ID = 2
		return nil
	})

	resp, err := suite.userRoleService.Create(&service.UserRoleRequest{RoleName: "Lead", Description: "Test lead"})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(2), resp.ID)
	assert.Equal(suite.T(), "Lead", resp.RoleName)
}

func (suite *UserRoleServiceTestSuite) TestCreateRole_DuplicateIgnoringCase() {
	suite.mockRepo.EXPECT().GetAll().Return([]models.UserRole{{BaseModel: models.BaseModel{ID: 1}, RoleName: "Tester"}}, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).Times(0)

	resp, err := suite.userRoleService.Create(&service.UserRoleRequest{RoleName: "tESTER"})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUserRoleExists)
}

func (suite *UserRoleServiceTestSuite) TestCreateRole_NameTooLong() {
	resp, err := suite.userRoleService.Create(&service.UserRoleRequest{RoleName: string(make([]byte, 51))})

	assert.Nil(suite.T(), resp)
	assert.Contains(suite.T(), err.Error(), "role_name - cannot exceed 50 characters")
}

func (suite *UserRoleServiceTestSuite) TestDeleteRole_HasUsers() {
	suite.mockRepo.EXPECT().GetByID(int64(1)).Return(&models.UserRole{BaseModel: models.BaseModel{ID: 1}}, nil)
	suite.mockUserRepo.EXPECT().CountByRoleID(int64(1)).Return(int64(1), nil)
	suite.mockRepo.EXPECT().Delete(gomock.Any()).Times(0)

	err := suite.userRoleService.Delete(1)

	assert.ErrorIs(suite.T(), err, apperrors.ErrUserRoleHasUsers)
}

func (suite *UserRoleServiceTestSuite) TestDeleteRole_Success() {
	suite.mockRepo.EXPECT().GetByID(int64(1)).Return(&models.UserRole{BaseModel: models.BaseModel{ID: 1}}, nil)
	suite.mockUserRepo.EXPECT().CountByRoleID(int64(1)).Return(int64(0), nil)
	suite.mockRepo.EXPECT().Delete(int64(1)).Return(nil)

	assert.NoError(suite.T(), suite.userRoleService.Delete(1))
}

func (suite *UserRoleServiceTestSuite) TestUpdateRole_NotFound() {
	suite.mockRepo.EXPECT().GetByID(int64(6)).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.userRoleService.Update(6, &service.UserRoleRequest{RoleName: "Lead"})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrUserRoleNotFound)
}

func TestUserRoleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserRoleServiceTestSuite))
}
