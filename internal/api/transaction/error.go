package transaction

import (
	"FinanceTracker/pkg/response"
	"net/http"
)

var (
	// Covers both a nonexistent record and one owned by another user, so
	// the two cases are indistinguishable to the caller.
	ErrTransactionNotFound  = response.NewError(http.StatusNotFound, response.CodeNotFound, "transaction not found")
	ErrInvalidTransactionID = response.NewError(http.StatusBadRequest, response.CodeValidationError, "invalid transaction id")
	ErrInvalidCreatedAt     = response.NewError(http.StatusBadRequest, response.CodeValidationError, "created_at must be an RFC3339 timestamp")
	// The owner id comes from a verified token; failing to parse it means
	// the caller's identity cannot be trusted.
	ErrInvalidUserID = response.NewError(http.StatusUnauthorized, response.CodeUnauthorized, "invalid user identity")
)
