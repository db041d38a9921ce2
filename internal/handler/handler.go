package handler

import (
	stderrors "errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"devboost/internal/errors"
)

const msgInvalidBody = "Invalid request body"

// errorResponse renders err through the error taxonomy. fallback is the
// client message for server-side failures.
func errorResponse(err error, fallback string) error {
	httpErr := errors.MapErrorToHTTP(err, fallback)
	return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
}

func validationError(message string) error {
	return errorResponse(errors.Reason(errors.ErrValidation, message), "")
}

// failedTag returns the first validator tag that failed on field, or "".
func failedTag(err error, field string) string {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return ""
	}
	for _, fe := range verrs {
		if fe.Field() == field {
			return fe.Tag()
		}
	}
	return ""
}

// hasTag reports whether any field failed tag.
func hasTag(err error, tag string) bool {
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) {
		return false
	}
	for _, fe := range verrs {
		if fe.Tag() == tag {
			return true
		}
	}
	return false
}
