package transactionRepository

import (
	"FinanceTracker/internal/api/transaction"
	"FinanceTracker/internal/entity"
	"context"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const transactionsCollection = "transactions"

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
		Transactions: &transactionRepository{
			transactions: r.db.Collection(transactionsCollection),
			log:          r.log,
		},
	}, nil
}

type Client struct {
	Transactions interface {
		Create(c context.Context, tx entity.Transaction) (string, error)
		Update(c context.Context, userID, id primitive.ObjectID, patch transaction.UpdateTransactionRequest) error
		Delete(c context.Context, userID, id primitive.ObjectID) error
		GetByID(c context.Context, userID, id primitive.ObjectID) (entity.Transaction, error)
		List(c context.Context, userID primitive.ObjectID, filter transaction.ListFilter) ([]entity.Transaction, int64, error)
	}
}

type transactionRepository struct {
	transactions *mongo.Collection
	log          *logrus.Logger
}
