package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"todo-api/internal/domain/model"
	"todo-api/pkg/log"
)

// writeError translates domain errors to responses: validation failures
// become a 400 with the field-keyed message map, missing or foreign-owned
// resources become an indistinguishable 404.
func writeError(c echo.Context, err error) error {
	var validationErrs model.ValidationErrors
	if errors.As(err, &validationErrs) {
		return c.JSON(http.StatusBadRequest, validationErrs)
	}
	if errors.Is(err, model.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"detail": "Not found."})
	}

	log.Errorf("Unhandled error: %v", err)
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "Internal server error"})
}
