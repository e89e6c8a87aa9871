package handlerUtil

import (
	"FinanceTracker/pkg/log"
	"FinanceTracker/pkg/response"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/sirupsen/logrus"
)

type ErrorHandler struct {
	logger *logrus.Logger
	appEnv string
}

func New(logger *logrus.Logger, appEnv string) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
		appEnv: appEnv,
	}
}

// Handle maps a domain error to its stable client-facing shape. Anything that
// is not a *response.Error is treated as unexpected and surfaced as a generic
// 500; the detail only leaves the process outside production.
func (h *ErrorHandler) Handle(c *fiber.Ctx, requestID string, err error, path string, operation string) error {
	var respErr *response.Error
	if errors.As(err, &respErr) {
		h.logger.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"code":       respErr.Code,
			"status":     respErr.Status,
			"path":       path,
			"operation":  operation,
		}).Warn("Operation failed with error response")

		body := fiber.Map{
			"error": respErr.Error(),
			"code":  respErr.Code,
		}
		if len(respErr.Fields) > 0 {
			body["fields"] = respErr.Fields
		}
		return c.Status(respErr.Status).JSON(body)
	}

	traceID := log.NewTraceID(requestID)

	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"trace_id":   traceID,
		"error":      err.Error(),
		"path":       path,
		"operation":  operation,
	}).Error("Unexpected error")

	body := fiber.Map{
		"error":    "An unexpected error occurred",
		"code":     response.CodeInternalError,
		"trace_id": traceID,
	}
	if h.appEnv != "production" {
		body["details"] = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(body)
}

// HandleValidationError converts validator failures into a per-field detail
// tree and renders it through the common domain-error path.
func (h *ErrorHandler) HandleValidationError(c *fiber.Ctx, requestID string, err error, path string) error {
	fields := map[string]string{}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, fe := range validationErrs {
			fields[fe.Field()] = validationMessage(fe)
		}
	}

	return h.Handle(c, requestID, response.NewValidationError(fields), path, "validate_request")
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	case "oneof":
		return "must be one of: " + fe.Param()
	default:
		return "is invalid"
	}
}

func (h *ErrorHandler) HandleRequestTimeout(c *fiber.Ctx) error {
	return c.Status(fiber.StatusRequestTimeout).JSON(utils.StatusMessage(fiber.StatusRequestTimeout))
}

func (h *ErrorHandler) HandleUnauthorized(c *fiber.Ctx, requestID string, message string) error {
	h.logger.WithFields(log.Fields{
		"request_id": requestID,
		"path":       c.Path(),
		"message":    message,
	}).Warn("Unauthorized access")

	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"error": message,
		"code":  response.CodeUnauthorized,
	})
}

func (h *ErrorHandler) HandleSuccess(c *fiber.Ctx, statusCode int, data interface{}) error {
	if data == nil {
		return c.SendStatus(statusCode)
	}
	return c.Status(statusCode).JSON(data)
}
