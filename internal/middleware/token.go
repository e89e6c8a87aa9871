package middleware

import (
	"FinanceTracker/internal/entity"
	"FinanceTracker/pkg/response"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const UserContextKey = "user"

// NewAuthContext builds the per-request auth context. It never rejects a
// request: a missing, malformed, expired or tampered token simply leaves the
// context anonymous. Protected routes enforce identity via RequireAuth.
func (m *middleware) NewAuthContext(ctx *fiber.Ctx) error {
	authHeader := ctx.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return ctx.Next()
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		m.log.WithFields(logrus.Fields{
			"path": ctx.Path(),
		}).Debug("Authorization header present but not a bearer token")
		return ctx.Next()
	}

	accessToken := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
	if accessToken == "" {
		return ctx.Next()
	}

	user, err := m.tokenService.Parse(accessToken)
	if err != nil {
		m.log.WithFields(logrus.Fields{
			"path":  ctx.Path(),
			"error": err.Error(),
		}).Warn("Token verification failed, continuing as anonymous")
		return ctx.Next()
	}

	ctx.Locals(UserContextKey, user)
	return ctx.Next()
}

// RequireAuth rejects requests whose context carries no identity. It runs
// after the access-log middleware so unauthorized attempts are still logged.
func (m *middleware) RequireAuth(ctx *fiber.Ctx) error {
	if _, ok := ctx.Locals(UserContextKey).(entity.UserLoginData); !ok {
		m.log.WithFields(logrus.Fields{
			"path":   ctx.Path(),
			"method": ctx.Method(),
			"ip":     ctx.IP(),
		}).Warn("Rejected unauthenticated request to protected route")
		return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "You must be logged in to access this resource",
			"code":  response.CodeUnauthorized,
		})
	}

	return ctx.Next()
}
