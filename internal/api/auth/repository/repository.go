package authRepository

import (
	"FinanceTracker/internal/entity"
	"context"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

const usersCollection = "users"

func New(db *mongo.Database, log *logrus.Logger) Repository {
	return &repository{
		db:  db,
		log: log,
	}
}

type repository struct {
	db  *mongo.Database
	log *logrus.Logger
}

type Repository interface {
	NewClient() (Client, error)
}

func (r *repository) NewClient() (Client, error) {
	return Client{
		Users: &userRepository{
			users: r.db.Collection(usersCollection),
			log:   r.log,
		},
	}, nil
}

type Client struct {
	Users interface {
		GetByEmail(c context.Context, email string) (entity.User, error)
		GetByID(c context.Context, id string) (entity.User, error)
		CreateUser(c context.Context, user entity.User) (string, error)
	}
}

type userRepository struct {
	users *mongo.Collection
	log   *logrus.Logger
}
