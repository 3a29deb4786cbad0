package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	apperrors "test-manager-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Validation runs in three phases: missing values, then lengths, then
// cross-field rules. Only the first error of the earliest phase is reported.
const (
	phaseRequired = iota
	phaseLength
	phaseCrossField
)

// NewValidator returns a validator configured with the tags used by the
// request types in this package.
func NewValidator() *validator.Validate {
	v := validator.New()

	// Report json field names so errors match the API payload
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// notblank treats whitespace-only strings as absent
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	v.RegisterStructValidation(projectDatesValidation, ProjectRequest{})
	v.RegisterStructValidation(testReportDateValidation, TestReportRequest{})

	return v
}

func projectDatesValidation(sl validator.StructLevel) {
	req := sl.Current().Interface().(ProjectRequest)
	if req.StartDate.After(req.EndDate) {
		sl.ReportError(req.StartDate, "start_date", "StartDate", "date_order", "")
	}
}

func testReportDateValidation(sl validator.StructLevel) {
	req := sl.Current().Interface().(TestReportRequest)
	if req.ExecutionDate.IsZero() {
		sl.ReportError(req.ExecutionDate, "execution_date", "ExecutionDate", "required", "")
	}
}

// validateRequest validates req and converts the outcome into a single
// ValidationError.
func validateRequest(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return apperrors.NewValidationError("", err.Error())
	}

	first := fieldErrs[0]
	for _, fe := range fieldErrs[1:] {
		if validationPhase(fe.Tag()) < validationPhase(first.Tag()) {
			first = fe
		}
	}
	return apperrors.NewValidationError(first.Field(), validationMessage(first))
}

func validationPhase(tag string) int {
	switch tag {
	case "notblank", "required", "gt":
		return phaseRequired
	case "max", "min":
		return phaseLength
	}
	return phaseCrossField
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "notblank", "required":
		return "is required"
	case "gt":
		return "must be a positive integer"
	case "max":
		return fmt.Sprintf("cannot exceed %s characters", fe.Param())
	case "date_order":
		return "start date cannot be later than end date"
	}
	return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
}

// validateID rejects non-positive identifiers before any store access
func validateID(field string, id int64) error {
	if id <= 0 {
		return apperrors.NewValidationError(field, "must be a positive integer")
	}
	return nil
}
