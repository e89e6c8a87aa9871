package jwtPkg

import (
	"FinanceTracker/internal/entity"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const TokenTTL = 24 * time.Hour

var ErrInvalidToken = errors.New("invalid or expired token")

type ItfJwt interface {
	Sign(user entity.UserLoginData) (string, int64, error)
	Parse(accessToken string) (entity.UserLoginData, error)
}

// jwtService holds the signing secret. The secret is injected once at startup
// and never leaves this package.
type jwtService struct {
	secret []byte
	ttl    time.Duration
}

func New(secret string) ItfJwt {
	return &jwtService{
		secret: []byte(secret),
		ttl:    TokenTTL,
	}
}

func NewWithTTL(secret string, ttl time.Duration) ItfJwt {
	return &jwtService{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (s *jwtService) Sign(user entity.UserLoginData) (string, int64, error) {
	expiredAt := time.Now().Add(s.ttl).Unix()

	claims := jwt.MapClaims{
		"id":    user.ID,
		"email": user.Email,
		"exp":   expiredAt,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	accessToken, err := token.SignedString(s.secret)
	if err != nil {
		return "", 0, err
	}

	return accessToken, expiredAt, nil
}

// Parse returns the identity encoded in the token. Every failure mode
// (malformed, expired, wrong signature, missing claims) collapses into
// ErrInvalidToken so callers can treat the request as anonymous.
func (s *jwtService) Parse(accessToken string) (entity.UserLoginData, error) {
	token, err := jwt.Parse(accessToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return entity.UserLoginData{}, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return entity.UserLoginData{}, ErrInvalidToken
	}

	id, ok := claims["id"].(string)
	if !ok || id == "" {
		return entity.UserLoginData{}, ErrInvalidToken
	}
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return entity.UserLoginData{}, ErrInvalidToken
	}

	return entity.UserLoginData{ID: id, Email: email}, nil
}

// GetUserLoginData reads the identity placed in fiber locals by the auth
// context middleware.
func GetUserLoginData(c *fiber.Ctx) (entity.UserLoginData, error) {
	userData := c.Locals("user")

	user, ok := userData.(entity.UserLoginData)
	if !ok {
		return entity.UserLoginData{}, fiber.ErrUnauthorized
	}

	return user, nil
}
