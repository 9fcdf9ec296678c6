package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/beauroweb/backend/internal/registry"
	"github.com/beauroweb/backend/internal/services"
	"github.com/beauroweb/backend/pkg/response"
)

// fail maps domain errors to HTTP responses. Duplicate names conflict,
// other validation failures are unprocessable, missing resources are 404.
func fail(c *gin.Context, err error) {
	var validationErr *registry.ValidationError
	if errors.As(err, &validationErr) {
		if validationErr.Code == registry.CodeDuplicateName {
			response.Conflict(c, validationErr.Message)
			return
		}
		response.Unprocessable(c, validationErr.Message)
		return
	}

	var notFoundErr *registry.NotFoundError
	if errors.As(err, &notFoundErr) {
		response.NotFound(c, notFoundErr.Error())
		return
	}

	switch {
	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrProfileNotFound),
		errors.Is(err, services.ErrRequestNotFound):
		response.NotFound(c, err.Error())
	case errors.Is(err, services.ErrUsernameTaken):
		response.Conflict(c, err.Error())
	case errors.Is(err, services.ErrAlreadyDecided):
		response.Conflict(c, err.Error())
	default:
		response.Error(c, err)
	}
}
