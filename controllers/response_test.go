package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/ibrahimbusiness24525/Pharmacy-Backend/services"
)

func TestRespondErrorStatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", services.NewValidationError("Gram is required for tablet type"), http.StatusBadRequest, "Gram is required for tablet type"},
		{"authentication", services.NewAuthenticationError("Invalid OTP"), http.StatusUnauthorized, "Invalid OTP"},
		{"not found", services.NewNotFoundError("Purchase not found"), http.StatusNotFound, "Purchase not found"},
		{"conflict", services.NewConflictError("Email already registered"), http.StatusConflict, "Email already registered"},
		{"configuration", services.NewConfigurationError("Email service is not configured"), http.StatusInternalServerError, "Email service is not configured"},
		{"unexpected", errors.New("connection reset"), http.StatusInternalServerError, "Something went wrong"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := respondError(c, tt.err, "Something went wrong")
			assert.NoError(t, err)
			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.message)
		})
	}
}
