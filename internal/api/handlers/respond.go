package handlers

import (
	"net/http"
	"strconv"

	apperrors "test-manager-backend/internal/errors"
	"test-manager-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// statusFor maps an application error kind to its HTTP status
func statusFor(err error) int {
	switch apperrors.KindOf(err) {
	case apperrors.KindValidation:
		return http.StatusBadRequest
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes err as {"error": "..."} with the status matching its kind
func respondError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		logger.WithContext(c).WithError(err).Error("Request failed")
		_ = c.Error(err)
	}
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

// parseID reads an integer path parameter. It writes a 400 response and
// returns false when the parameter is not a number; range checks belong to
// the services.
func parseID(c *gin.Context, param, entity string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + entity + " ID"})
		return 0, false
	}
	return id, true
}

// bindJSON decodes the request body into req, writing a 400 response on failure
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return false
	}
	return true
}
