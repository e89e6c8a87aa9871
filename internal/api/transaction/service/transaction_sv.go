package transactionService

import (
	"FinanceTracker/internal/api/transaction"
	"FinanceTracker/internal/entity"
	contextPkg "FinanceTracker/pkg/context"
	"context"
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	defaultPage     = 1
	defaultPageSize = 25
)

func (s *transactionService) Add(c context.Context, userID string, req transaction.CreateTransactionRequest) (transaction.AckResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	ownerID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return transaction.AckResponse{}, transaction.ErrInvalidUserID
	}

	repo, err := s.transactionRepository.NewClient()
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return transaction.AckResponse{}, err
	}

	category := req.Category
	if category == nil {
		category = []string{}
	}

	// Both timestamps start at the caller-supplied date; updates refresh
	// only updatedAt.
	tx := entity.Transaction{
		UserID:      ownerID,
		Type:        entity.TransactionType(req.Type),
		Amount:      *req.Amount,
		Category:    category,
		CreatedAt:   req.Date,
		UpdatedAt:   req.Date,
		Description: req.Description,
	}

	insertedID, err := repo.Transactions.Create(c, tx)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create transaction")
		return transaction.AckResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id":     requestID,
		"user_id":        userID,
		"transaction_id": insertedID,
	}).Info("Transaction created")

	return transaction.AckResponse{
		Acknowledged: true,
		InsertedID:   insertedID,
	}, nil
}

func (s *transactionService) Update(c context.Context, userID string, id string, req transaction.UpdateTransactionRequest) (transaction.AckResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	ownerID, txID, err := parseScope(userID, id)
	if err != nil {
		return transaction.AckResponse{}, err
	}

	repo, err := s.transactionRepository.NewClient()
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return transaction.AckResponse{}, err
	}

	if err := repo.Transactions.Update(c, ownerID, txID, req); err != nil {
		return transaction.AckResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id":     requestID,
		"user_id":        userID,
		"transaction_id": id,
	}).Info("Transaction updated")

	return transaction.AckResponse{
		Acknowledged: true,
		InsertedID:   id,
	}, nil
}

func (s *transactionService) Delete(c context.Context, userID string, id string) (transaction.AckResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	ownerID, txID, err := parseScope(userID, id)
	if err != nil {
		return transaction.AckResponse{}, err
	}

	repo, err := s.transactionRepository.NewClient()
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return transaction.AckResponse{}, err
	}

	if err := repo.Transactions.Delete(c, ownerID, txID); err != nil {
		return transaction.AckResponse{}, err
	}

	s.log.WithFields(logrus.Fields{
		"request_id":     requestID,
		"user_id":        userID,
		"transaction_id": id,
	}).Info("Transaction deleted")

	return transaction.AckResponse{Acknowledged: true}, nil
}

func (s *transactionService) Get(c context.Context, userID string, id string) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(c)

	ownerID, txID, err := parseScope(userID, id)
	if err != nil {
		return entity.Transaction{}, err
	}

	repo, err := s.transactionRepository.NewClient()
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return entity.Transaction{}, err
	}

	return repo.Transactions.GetByID(c, ownerID, txID)
}

func (s *transactionService) List(c context.Context, userID string, q transaction.ListTransactionsQuery) (transaction.ListTransactionsResponse, error) {
	requestID := contextPkg.GetRequestID(c)

	ownerID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return transaction.ListTransactionsResponse{}, transaction.ErrInvalidUserID
	}

	page := q.Page
	if page < 1 {
		page = defaultPage
	}
	pageSize := q.PageSize
	if pageSize < 1 {
		pageSize = defaultPageSize
	}

	filter := transaction.ListFilter{
		Skip:  int64((page - 1) * pageSize),
		Limit: int64(pageSize),
	}
	if q.Type != "" {
		filter.Type = &q.Type
	}
	if len(q.Category) > 0 {
		filter.Category = q.Category
	}
	if q.CreatedAt != "" {
		createdAt, err := time.Parse(time.RFC3339, q.CreatedAt)
		if err != nil {
			return transaction.ListTransactionsResponse{}, transaction.ErrInvalidCreatedAt
		}
		filter.CreatedAt = &createdAt
	}

	repo, err := s.transactionRepository.NewClient()
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return transaction.ListTransactionsResponse{}, err
	}

	transactions, totalCount, err := repo.Transactions.List(c, ownerID, filter)
	if err != nil {
		return transaction.ListTransactionsResponse{}, err
	}

	return transaction.ListTransactionsResponse{
		Transactions: transactions,
		TotalCount:   totalCount,
		Page:         page,
		PageSize:     pageSize,
		TotalPages:   int(math.Ceil(float64(totalCount) / float64(pageSize))),
	}, nil
}

func parseScope(userID string, id string) (primitive.ObjectID, primitive.ObjectID, error) {
	ownerID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, transaction.ErrInvalidUserID
	}
	txID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, primitive.NilObjectID, transaction.ErrInvalidTransactionID
	}
	return ownerID, txID, nil
}
