package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	apperrors "test-manager-backend/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRequest_Phases(t *testing.T) {
	v := NewValidator()
	jan := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	jun := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name    string
		req     interface{}
		field   string
		message string
	}{
		{
			name:    "required wins over length and date order",
			req:     &ProjectRequest{Name: "", Description: strings.Repeat("d", 501), StartDate: jun, EndDate: jan},
			field:   "name",
			message: "is required",
		},
		{
			name:    "length wins over date order",
			req:     &ProjectRequest{Name: "Alpha", Description: strings.Repeat("d", 501), StartDate: jun, EndDate: jan},
			field:   "description",
			message: "cannot exceed 500 characters",
		},
		{
			name:    "date order reported last",
			req:     &ProjectRequest{Name: "Beta", StartDate: jun, EndDate: jan},
			field:   "start_date",
			message: "start date cannot be later than end date",
		},
		{
			name:    "foreign key counts as required",
			req:     &ComponentRequest{ProjectID: 0, Name: strings.Repeat("n", 101)},
			field:   "project_id",
			message: "must be a positive integer",
		},
		{
			name:    "zero execution date",
			req:     &TestReportRequest{TestCaseID: 1, Result: "Passed"},
			field:   "execution_date",
			message: "is required",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateRequest(v, tc.req)
			var verr *apperrors.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tc.field, verr.Field)
			assert.Equal(t, tc.message, verr.Message)
		})
	}
}

func TestValidateRequest_Valid(t *testing.T) {
	v := NewValidator()
	day := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.NoError(t, validateRequest(v, &ProjectRequest{Name: "Alpha", StartDate: day, EndDate: day}))
	assert.NoError(t, validateRequest(v, &ProjectRequest{Name: "No dates"}))
	assert.NoError(t, validateRequest(v, &UserRequest{Name: "A", Email: "a@b.c", Password: "p"}))
	assert.NoError(t, validateRequest(v, &TestCaseRequest{ComponentID: 1, AssignedUser: 1, StatusID: 1}))
}

func TestValidateRequest_RuneLength(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, validateRequest(v, &UserRoleRequest{RoleName: strings.Repeat("ü", 50)}))
	assert.Error(t, validateRequest(v, &UserRoleRequest{RoleName: strings.Repeat("ü", 51)}))
}

func TestValidateID(t *testing.T) {
	assert.NoError(t, validateID("id", 1))
	assert.True(t, apperrors.IsValidation(validateID("id", 0)))
	assert.True(t, apperrors.IsValidation(validateID("id", -5)))
}
