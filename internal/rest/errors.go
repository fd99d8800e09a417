package rest

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"rest-core/internal/model"
	"rest-core/internal/store"
)

type AppError struct {
	Code    string        `json:"code"`
	Status  int           `json:"-"`
	Message string        `json:"message"`
	Details []ErrorDetail `json:"details,omitempty"`
}

type ErrorDetail struct {
	Field   string `json:"field,omitempty"`
	Rule    string `json:"rule,omitempty"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

type ErrorResponse struct {
	Error *AppError `json:"error"`
}

func NewAppError(code string, status int, msg string) *AppError {
	return &AppError{Code: code, Status: status, Message: msg}
}

func NotFoundError(msg string) *AppError {
	return &AppError{Code: "NOT_FOUND", Status: 404, Message: msg}
}

func InvalidPayloadError(msg string) *AppError {
	return &AppError{Code: "INVALID_PAYLOAD", Status: 400, Message: msg}
}

func InvalidParamError(name, reason string) *AppError {
	return &AppError{
		Code:    "INVALID_PARAM",
		Status:  400,
		Message: fmt.Sprintf("Invalid %s: %s", name, reason),
	}
}

func ValidationError(details []ErrorDetail) *AppError {
	return &AppError{
		Code:    "VALIDATION_FAILED",
		Status:  422,
		Message: "Validation failed",
		Details: details,
	}
}

func UnauthorizedError(msg string) *AppError {
	return &AppError{Code: "UNAUTHORIZED", Status: 401, Message: msg}
}

func ConflictError(msg string) *AppError {
	return &AppError{Code: "CONFLICT", Status: 409, Message: msg}
}

// ErrorHandler is the fiber error handler. Handlers return controller
// errors untouched; this is where they become HTTP statuses.
func ErrorHandler(c *fiber.Ctx, err error) error {
	appErr := toAppError(err)
	if appErr.Status >= 500 {
		logrus.WithFields(logrus.Fields{
			"method": c.Method(),
			"path":   c.Path(),
		}).WithError(err).Error("request failed")
	}
	return c.Status(appErr.Status).JSON(ErrorResponse{Error: appErr})
}

func toAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var notFound *model.ErrEntityNotFound
	if errors.As(err, &notFound) {
		return NotFoundError(notFound.Error())
	}

	var violation *model.ErrRuleViolation
	if errors.As(err, &violation) {
		details := make([]ErrorDetail, 0, len(violation.Details))
		for _, d := range violation.Details {
			details = append(details, ErrorDetail{Rule: d.Rule, Message: d.Message})
		}
		return ValidationError(details)
	}

	switch {
	case errors.Is(err, model.ErrInvalidListOptions):
		return InvalidParamError("list_options", err.Error())
	case errors.Is(err, store.ErrUniqueViolation):
		return ConflictError("A record with this value already exists")
	case errors.Is(err, store.ErrForeignKeyViolation):
		return NewAppError("INVALID_REFERENCE", 422, "Referenced record does not exist")
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return &AppError{Code: "HTTP_ERROR", Status: fiberErr.Code, Message: fiberErr.Message}
	}

	return &AppError{Code: "INTERNAL_ERROR", Status: 500, Message: "Internal server error"}
}
