package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"khalti-storefront-demo/internal/apperr"
)

// httpError maps the error taxonomy onto response codes.
func httpError(err error) error {
	var validationErr *apperr.ValidationError
	if errors.As(err, &validationErr) {
		return echo.NewHTTPError(http.StatusBadRequest, validationErr.Error())
	}

	var authErr *apperr.AuthError
	if errors.As(err, &authErr) {
		switch authErr.Code {
		case apperr.AuthBadCredentials:
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid email or password")
		case apperr.AuthDuplicateAccount:
			return echo.NewHTTPError(http.StatusConflict, "an account with this email already exists")
		case apperr.AuthRateLimited:
			return echo.NewHTTPError(http.StatusTooManyRequests, "too many attempts, try again later")
		default:
			return echo.NewHTTPError(http.StatusBadGateway, "identity provider unavailable")
		}
	}

	var networkErr *apperr.NetworkError
	if errors.As(err, &networkErr) {
		return echo.NewHTTPError(http.StatusBadGateway, "upstream service unavailable")
	}

	var persistenceErr *apperr.PersistenceError
	if errors.As(err, &persistenceErr) {
		return echo.NewHTTPError(http.StatusInternalServerError, "storage failure")
	}

	return err
}
