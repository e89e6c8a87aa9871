package auth

import (
	"FinanceTracker/pkg/response"
	"net/http"
)

var (
	ErrEmailAlreadyExists = response.NewError(http.StatusConflict, response.CodeDuplicateEntry, "user with this email already exists")
	// Same message for unknown email and wrong password.
	ErrInvalidEmailOrPassword = response.NewError(http.StatusBadRequest, response.CodeInvalidCredentials, "invalid email or password")
	ErrUserNotFound           = response.NewError(http.StatusNotFound, response.CodeNotFound, "user not found")
)
