package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jagadeeshwarid/TaskTrackerPro/types"
)

// respondError maps the service error taxonomy onto HTTP statuses in
// one place. Handlers never inspect errors themselves.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, types.ErrValidation),
		errors.Is(err, types.ErrAlreadyLoggedIn),
		errors.Is(err, types.ErrNotLoggedIn):
		status = http.StatusBadRequest
	case errors.Is(err, types.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, types.ErrAlreadyExists):
		status = http.StatusConflict
	case errors.Is(err, types.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, types.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, types.ErrStorageUnavailable):
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, types.DataResponse{
		Status:  false,
		Message: err.Error(),
	})
}

func respondData(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data:   data,
	})
}

func respondOK(c *gin.Context, message string) {
	c.JSON(http.StatusOK, types.DataResponse{
		Status:  true,
		Message: message,
	})
}
