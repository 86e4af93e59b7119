// controllers/response.go
package controllers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ibrahimbusiness24525/Pharmacy-Backend/middleware"
	"github.com/ibrahimbusiness24525/Pharmacy-Backend/models"
	"github.com/ibrahimbusiness24525/Pharmacy-Backend/services"
)

// currentUserID resolves the authenticated owner for owner-scoped
// operations.
func currentUserID(c echo.Context) (primitive.ObjectID, error) {
	userID, err := middleware.ExtractUserID(c)
	if err != nil {
		return primitive.NilObjectID, err
	}
	return primitive.ObjectIDFromHex(userID)
}

// respondError maps a service failure to its HTTP status. Typed failures
// keep their message; anything unexpected becomes a server error with the
// given fallback message.
func respondError(c echo.Context, err error, fallback string) error {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: validationErr.Message,
		})
	}

	var authErr *services.AuthenticationError
	if errors.As(err, &authErr) {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: authErr.Message,
		})
	}

	var notFoundErr *services.NotFoundError
	if errors.As(err, &notFoundErr) {
		return c.JSON(http.StatusNotFound, models.Response{
			Status:  http.StatusNotFound,
			Message: notFoundErr.Message,
		})
	}

	var conflictErr *services.ConflictError
	if errors.As(err, &conflictErr) {
		return c.JSON(http.StatusConflict, models.Response{
			Status:  http.StatusConflict,
			Message: conflictErr.Message,
		})
	}

	var configErr *services.ConfigurationError
	if errors.As(err, &configErr) {
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: configErr.Message,
		})
	}

	return c.JSON(http.StatusInternalServerError, models.Response{
		Status:  http.StatusInternalServerError,
		Message: fallback,
	})
}
