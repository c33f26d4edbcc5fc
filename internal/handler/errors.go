package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/studyhq/studyplan-backend/internal/response"
	"github.com/studyhq/studyplan-backend/internal/service"
)

// failFromService maps service-layer sentinel errors to HTTP responses.
// Missing and not-owned resources share the same 404 on purpose.
func failFromService(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUserNotFound):
		response.Fail(c, http.StatusBadRequest, response.ErrUserNotFound)
	case errors.Is(err, service.ErrNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	case errors.Is(err, service.ErrInvalidTaskType), errors.Is(err, service.ErrInvalidTaskStatus):
		response.Fail(c, http.StatusBadRequest, response.ErrValidation)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
