package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/chenna14/Real-time-Data-Classification/internal/api/shared"
	"github.com/chenna14/Real-time-Data-Classification/internal/domain"
	"github.com/chenna14/Real-time-Data-Classification/internal/domain/classify"
	"github.com/chenna14/Real-time-Data-Classification/internal/service"
	"github.com/chenna14/Real-time-Data-Classification/internal/service/auth"
	"github.com/chenna14/Real-time-Data-Classification/internal/store"
	"github.com/go-playground/validator/v10"
)

// Messages whose exact wording is part of the API contract.
const (
	MsgInvalidSentence = "Invalid input: sentence is required and must be a string"
	MsgServerError     = "Server error"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var validationErrs validator.ValidationErrors

	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, service.ErrNotOwned):
		return http.StatusForbidden

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, classify.ErrInvalidSentence),
		errors.Is(err, service.ErrInvalidCondition),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.As(err, &validationErrs):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var validationErr *domain.ValidationError

	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid token"
	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid credentials"
	case errors.Is(err, domain.ErrUnauthorized):
		return "Unauthorized"

	case errors.Is(err, service.ErrNotOwned):
		return "You do not own this rule"

	case errors.Is(err, store.ErrRuleNotFound):
		return "Rule not found"
	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"
	case errors.Is(err, store.ErrNotFound):
		return "Not found"

	case errors.Is(err, store.ErrRuleExists):
		return "Rule with this condition already exists. Please update the existing rule."
	case errors.Is(err, store.ErrUsernameExists),
		errors.Is(err, store.ErrEmailExists):
		return "User already exists"

	case errors.Is(err, classify.ErrInvalidSentence):
		return MsgInvalidSentence

	case errors.Is(err, service.ErrInvalidCondition):
		return invalidConditionMessage(err)

	case errors.As(err, &validationErr):
		return fmt.Sprintf("Invalid %s: %s", validationErr.Field, validationErr.Message)
	case errors.Is(err, domain.ErrInvalidID):
		return "Invalid ID"
	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation):
		return "Invalid entity data"

	default:
		return "An unexpected error occurred"
	}
}

// invalidConditionMessage describes why a condition was rejected. Condition
// errors only echo user input, so they are safe to return.
func invalidConditionMessage(err error) string {
	var syntaxErr *classify.SyntaxError
	switch {
	case errors.As(err, &syntaxErr):
		return "Invalid condition: " + syntaxErr.Error()
	case errors.Is(err, classify.ErrEmptyCondition):
		return "Invalid condition: " + classify.ErrEmptyCondition.Error()
	case errors.Is(err, classify.ErrConditionTooLong):
		return "Invalid condition: " + classify.ErrConditionTooLong.Error()
	case errors.Is(err, classify.ErrTooDeep):
		return "Invalid condition: " + classify.ErrTooDeep.Error()
	case errors.Is(err, classify.ErrTooManyArguments):
		return "Invalid condition: " + classify.ErrTooManyArguments.Error()
	case errors.Is(err, classify.ErrNotBoolean):
		return "Invalid condition: " + classify.ErrNotBoolean.Error()
	default:
		return "Invalid condition"
	}
}

// SanitizeValidationError removes sensitive details from validation errors
// and returns a user-friendly message.
func SanitizeValidationError(err error) string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		fe := validationErrs[0]
		return fmt.Sprintf("Invalid %s: %s", strings.ToLower(fe.Field()), getValidationTagMessage(fe.Tag()))
	}
	return "Validation error"
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}

// HandleAPIError writes the status and safe message for err. A non-empty
// message overrides the derived one.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, message string) {
	status := MapErrorToStatusCode(err)
	if message == "" {
		if status == http.StatusInternalServerError {
			message = MsgServerError
		} else {
			message = GetSafeErrorMessage(err)
		}
	}

	var opts []shared.ResponseOption
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		opts = append(opts, shared.WithElevatedLogLevel())
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err, opts...)
}
