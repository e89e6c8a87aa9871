package authService_test

import (
	"FinanceTracker/internal/api/auth"
	authRepository "FinanceTracker/internal/api/auth/repository"
	authService "FinanceTracker/internal/api/auth/service"
	"FinanceTracker/internal/entity"
	"FinanceTracker/pkg/bcrypt"
	jwtPkg "FinanceTracker/pkg/jwt"
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeUserRepo struct {
	getByEmailFn func(ctx context.Context, email string) (entity.User, error)
	getByIDFn    func(ctx context.Context, id string) (entity.User, error)
	createUserFn func(ctx context.Context, user entity.User) (string, error)
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (entity.User, error) {
	return f.getByEmailFn(ctx, email)
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (entity.User, error) {
	return f.getByIDFn(ctx, id)
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user entity.User) (string, error) {
	return f.createUserFn(ctx, user)
}

type fakeRepository struct {
	users *fakeUserRepo
}

func (f *fakeRepository) NewClient() (authRepository.Client, error) {
	return authRepository.Client{Users: f.users}, nil
}

var (
	testToken  = jwtPkg.New("service-test-secret")
	testBcrypt = bcrypt.NewWithCost(4)
)

func newService(users *fakeUserRepo) authService.AuthService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return authService.New(logger, &fakeRepository{users: users}, testToken, testBcrypt)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newService(&fakeUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (entity.User, error) {
			return entity.User{ID: primitive.NewObjectID(), Email: email}, nil
		},
	})

	_, err := svc.Register(context.Background(), auth.RegisterRequest{
		Email:    "taken@example.com",
		Password: "whatever-password",
	})
	assert.ErrorIs(t, err, auth.ErrEmailAlreadyExists)
}

func TestRegisterIssuesVerifiableToken(t *testing.T) {
	userID := primitive.NewObjectID().Hex()
	var stored entity.User

	svc := newService(&fakeUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (entity.User, error) {
			return entity.User{}, auth.ErrUserNotFound
		},
		createUserFn: func(ctx context.Context, user entity.User) (string, error) {
			stored = user
			return userID, nil
		},
	})

	res, err := svc.Register(context.Background(), auth.RegisterRequest{
		Email:    "new@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.Equal(t, userID, res.User.ID)
	assert.Equal(t, "new@example.com", res.User.Email)

	// The stored record carries a hash, never the plaintext.
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.NoError(t, testBcrypt.ComparePassword(stored.PasswordHash, "secret123"))
	assert.WithinDuration(t, time.Now(), stored.CreatedAt, time.Minute)

	identity, err := testToken.Parse(res.Token)
	require.NoError(t, err)
	assert.Equal(t, userID, identity.ID)
	assert.Equal(t, "new@example.com", identity.Email)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	hash, err := testBcrypt.HashPassword("correct-password")
	require.NoError(t, err)

	unknownEmail := newService(&fakeUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (entity.User, error) {
			return entity.User{}, auth.ErrUserNotFound
		},
	})
	wrongPassword := newService(&fakeUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (entity.User, error) {
			return entity.User{ID: primitive.NewObjectID(), Email: email, PasswordHash: hash}, nil
		},
	})

	_, errUnknown := unknownEmail.Login(context.Background(), auth.LoginRequest{Email: "nobody@example.com", Password: "correct-password"})
	_, errWrong := wrongPassword.Login(context.Background(), auth.LoginRequest{Email: "user@example.com", Password: "wrong-password"})

	require.Error(t, errUnknown)
	require.Error(t, errWrong)
	assert.ErrorIs(t, errUnknown, auth.ErrInvalidEmailOrPassword)
	assert.ErrorIs(t, errWrong, auth.ErrInvalidEmailOrPassword)
	assert.Equal(t, errUnknown.Error(), errWrong.Error())
}

func TestLoginSuccess(t *testing.T) {
	hash, err := testBcrypt.HashPassword("correct-password")
	require.NoError(t, err)
	userID := primitive.NewObjectID()

	svc := newService(&fakeUserRepo{
		getByEmailFn: func(ctx context.Context, email string) (entity.User, error) {
			return entity.User{ID: userID, Email: email, PasswordHash: hash}, nil
		},
	})

	res, err := svc.Login(context.Background(), auth.LoginRequest{Email: "user@example.com", Password: "correct-password"})
	require.NoError(t, err)
	assert.Equal(t, userID.Hex(), res.User.ID)

	identity, err := testToken.Parse(res.Token)
	require.NoError(t, err)
	assert.Equal(t, userID.Hex(), identity.ID)
}

func TestGetSelfUnresolvedIdentityIsNil(t *testing.T) {
	svc := newService(&fakeUserRepo{
		getByIDFn: func(ctx context.Context, id string) (entity.User, error) {
			return entity.User{}, auth.ErrUserNotFound
		},
	})

	res, err := svc.GetSelf(context.Background(), primitive.NewObjectID().Hex())
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestGetSelfReturnsPublicFields(t *testing.T) {
	userID := primitive.NewObjectID()
	svc := newService(&fakeUserRepo{
		getByIDFn: func(ctx context.Context, id string) (entity.User, error) {
			return entity.User{ID: userID, Email: "user@example.com", PasswordHash: "hash"}, nil
		},
	})

	res, err := svc.GetSelf(context.Background(), userID.Hex())
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, userID.Hex(), res.ID)
	assert.Equal(t, "user@example.com", res.Email)
}
