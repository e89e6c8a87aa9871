package authRepository

import (
	"FinanceTracker/internal/api/auth"
	"FinanceTracker/internal/entity"
	contextPkg "FinanceTracker/pkg/context"
	"context"
	"errors"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *userRepository) GetByEmail(c context.Context, email string) (entity.User, error) {
	requestID := contextPkg.GetRequestID(c)

	var user entity.User
	if err := r.users.FindOne(c, bson.M{"email": email}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Warn("GetByEmail no document found")
			return entity.User{}, auth.ErrUserNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByEmail execution err")
		return entity.User{}, err
	}

	return user, nil
}

func (r *userRepository) GetByID(c context.Context, id string) (entity.User, error) {
	requestID := contextPkg.GetRequestID(c)

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("GetByID invalid object id")
		return entity.User{}, auth.ErrUserNotFound
	}

	var user entity.User
	if err := r.users.FindOne(c, bson.M{"_id": objectID}).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Warn("GetByID no document found")
			return entity.User{}, auth.ErrUserNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID execution err")
		return entity.User{}, err
	}

	return user, nil
}

func (r *userRepository) CreateUser(c context.Context, user entity.User) (string, error) {
	requestID := contextPkg.GetRequestID(c)

	result, err := r.users.InsertOne(c, user)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating user")
		return "", err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Error("CreateUser unexpected inserted id type")
		return "", errors.New("unexpected inserted id type")
	}

	return insertedID.Hex(), nil
}
