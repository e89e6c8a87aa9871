package authService

import (
	"FinanceTracker/internal/api/auth"
	authRepository "FinanceTracker/internal/api/auth/repository"
	"FinanceTracker/pkg/bcrypt"
	jwtPkg "FinanceTracker/pkg/jwt"
	"context"

	"github.com/sirupsen/logrus"
)

type AuthService interface {
	Register(c context.Context, req auth.RegisterRequest) (auth.AuthResponse, error)
	Login(c context.Context, req auth.LoginRequest) (auth.AuthResponse, error)
	GetSelf(c context.Context, userID string) (*auth.UserResponse, error)
}

type authService struct {
	log            *logrus.Logger
	authRepository authRepository.Repository
	tokenService   jwtPkg.ItfJwt
	bcryptUtils    bcrypt.IBcrypt
}

func New(
	log *logrus.Logger,
	repo authRepository.Repository,
	tokenService jwtPkg.ItfJwt,
	bcryptUtils bcrypt.IBcrypt,
) AuthService {
	return &authService{
		log:            log,
		authRepository: repo,
		tokenService:   tokenService,
		bcryptUtils:    bcryptUtils,
	}
}
