package authService

import (
	"FinanceTracker/internal/api/auth"
	"FinanceTracker/internal/entity"
	contextPkg "FinanceTracker/pkg/context"
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
)

func (s *authService) Register(c context.Context, req auth.RegisterRequest) (auth.AuthResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.authRepository.NewClient()
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.AuthResponse{}, err
	}

	// Email uniqueness is enforced here, before the insert.
	_, err = repo.Users.GetByEmail(c, req.Email)
	if err == nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Registration attempt with existing email")
		return auth.AuthResponse{}, auth.ErrEmailAlreadyExists
	}
	if !errors.Is(err, auth.ErrUserNotFound) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to check existing user")
		return auth.AuthResponse{}, err
	}

	passwordHash, err := s.bcryptUtils.HashPassword(req.Password)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to hash password")
		return auth.AuthResponse{}, err
	}

	newUser := entity.User{
		Email:        req.Email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}

	insertedID, err := repo.Users.CreateUser(c, newUser)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create user")
		return auth.AuthResponse{}, err
	}

	token, _, err := s.tokenService.Sign(entity.UserLoginData{ID: insertedID, Email: req.Email})
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign token")
		return auth.AuthResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    insertedID,
	}).Info("User registered")

	return auth.AuthResponse{
		Token: token,
		User: auth.UserResponse{
			ID:    insertedID,
			Email: req.Email,
		},
	}, nil
}

func (s *authService) Login(c context.Context, req auth.LoginRequest) (auth.AuthResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.authRepository.NewClient()
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return auth.AuthResponse{}, err
	}

	user, err := repo.Users.GetByEmail(c, req.Email)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Warn("Login attempt with unknown email")
			return auth.AuthResponse{}, auth.ErrInvalidEmailOrPassword
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get user by email")
		return auth.AuthResponse{}, err
	}

	if err := s.bcryptUtils.ComparePassword(user.PasswordHash, req.Password); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Password comparison failed")
		return auth.AuthResponse{}, auth.ErrInvalidEmailOrPassword
	}

	token, _, err := s.tokenService.Sign(entity.UserLoginData{ID: user.ID.Hex(), Email: user.Email})
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to sign token")
		return auth.AuthResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"user_id":    user.ID.Hex(),
	}).Info("Token created")

	return auth.AuthResponse{
		Token: token,
		User: auth.UserResponse{
			ID:    user.ID.Hex(),
			Email: user.Email,
		},
	}, nil
}

// GetSelf resolves the caller's identity back to a stored record. A nil
// response means the identity no longer maps to a user.
func (s *authService) GetSelf(c context.Context, userID string) (*auth.UserResponse, error) {
	requestID := contextPkg.GetRequestID(c)
	repo, err := s.authRepository.NewClient()
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	user, err := repo.Users.GetByID(c, userID)
	if err != nil {
		if errors.Is(err, auth.ErrUserNotFound) {
			return nil, nil
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to get user by id")
		return nil, err
	}

	return &auth.UserResponse{
		ID:    user.ID.Hex(),
		Email: user.Email,
	}, nil
}
