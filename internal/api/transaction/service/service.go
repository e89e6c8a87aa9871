package transactionService

import (
	"FinanceTracker/internal/api/transaction"
	transactionRepository "FinanceTracker/internal/api/transaction/repository"
	"FinanceTracker/internal/entity"
	"context"

	"github.com/sirupsen/logrus"
)

type TransactionService interface {
	Add(c context.Context, userID string, req transaction.CreateTransactionRequest) (transaction.AckResponse, error)
	Update(c context.Context, userID string, id string, req transaction.UpdateTransactionRequest) (transaction.AckResponse, error)
	Delete(c context.Context, userID string, id string) (transaction.AckResponse, error)
	Get(c context.Context, userID string, id string) (entity.Transaction, error)
	List(c context.Context, userID string, q transaction.ListTransactionsQuery) (transaction.ListTransactionsResponse, error)
}

type transactionService struct {
	log                   *logrus.Logger
	transactionRepository transactionRepository.Repository
}

func New(log *logrus.Logger, repo transactionRepository.Repository) TransactionService {
	return &transactionService{
		log:                   log,
		transactionRepository: repo,
	}
}
