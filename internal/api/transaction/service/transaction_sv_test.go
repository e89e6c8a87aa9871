package transactionService_test

import (
	"FinanceTracker/internal/api/transaction"
	transactionRepository "FinanceTracker/internal/api/transaction/repository"
	transactionService "FinanceTracker/internal/api/transaction/service"
	"FinanceTracker/internal/entity"
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeTransactionRepo struct {
	createFn  func(ctx context.Context, tx entity.Transaction) (string, error)
	updateFn  func(ctx context.Context, userID, id primitive.ObjectID, patch transaction.UpdateTransactionRequest) error
	deleteFn  func(ctx context.Context, userID, id primitive.ObjectID) error
	getByIDFn func(ctx context.Context, userID, id primitive.ObjectID) (entity.Transaction, error)
	listFn    func(ctx context.Context, userID primitive.ObjectID, filter transaction.ListFilter) ([]entity.Transaction, int64, error)
}

func (f *fakeTransactionRepo) Create(ctx context.Context, tx entity.Transaction) (string, error) {
	return f.createFn(ctx, tx)
}

func (f *fakeTransactionRepo) Update(ctx context.Context, userID, id primitive.ObjectID, patch transaction.UpdateTransactionRequest) error {
	return f.updateFn(ctx, userID, id, patch)
}

func (f *fakeTransactionRepo) Delete(ctx context.Context, userID, id primitive.ObjectID) error {
	return f.deleteFn(ctx, userID, id)
}

func (f *fakeTransactionRepo) GetByID(ctx context.Context, userID, id primitive.ObjectID) (entity.Transaction, error) {
	return f.getByIDFn(ctx, userID, id)
}

func (f *fakeTransactionRepo) List(ctx context.Context, userID primitive.ObjectID, filter transaction.ListFilter) ([]entity.Transaction, int64, error) {
	return f.listFn(ctx, userID, filter)
}

type fakeRepository struct {
	transactions *fakeTransactionRepo
}

func (f *fakeRepository) NewClient() (transactionRepository.Client, error) {
	return transactionRepository.Client{Transactions: f.transactions}, nil
}

func newService(repo *fakeTransactionRepo) transactionService.TransactionService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return transactionService.New(logger, &fakeRepository{transactions: repo})
}

func floatPtr(f float64) *float64 { return &f }

func strPtr(s string) *string { return &s }

func TestAddStampsBothTimestampsFromDate(t *testing.T) {
	ownerID := primitive.NewObjectID()
	date := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	insertedID := primitive.NewObjectID().Hex()

	var stored entity.Transaction
	svc := newService(&fakeTransactionRepo{
		createFn: func(ctx context.Context, tx entity.Transaction) (string, error) {
			stored = tx
			return insertedID, nil
		},
	})

	res, err := svc.Add(context.Background(), ownerID.Hex(), transaction.CreateTransactionRequest{
		Type:        "expense",
		Amount:      floatPtr(42.5),
		Category:    []string{"food", "lunch"},
		Date:        date,
		Description: "sushi",
	})
	require.NoError(t, err)

	assert.True(t, res.Acknowledged)
	assert.Equal(t, insertedID, res.InsertedID)

	assert.Equal(t, ownerID, stored.UserID)
	assert.Equal(t, entity.TransactionExpense, stored.Type)
	assert.Equal(t, 42.5, stored.Amount)
	assert.Equal(t, []string{"food", "lunch"}, stored.Category)
	assert.Equal(t, date, stored.CreatedAt)
	assert.Equal(t, date, stored.UpdatedAt)
	assert.Equal(t, "sushi", stored.Description)
}

func TestAddNilCategoryBecomesEmptyList(t *testing.T) {
	var stored entity.Transaction
	svc := newService(&fakeTransactionRepo{
		createFn: func(ctx context.Context, tx entity.Transaction) (string, error) {
			stored = tx
			return primitive.NewObjectID().Hex(), nil
		},
	})

	_, err := svc.Add(context.Background(), primitive.NewObjectID().Hex(), transaction.CreateTransactionRequest{
		Type:   "income",
		Amount: floatPtr(100),
		Date:   time.Now(),
	})
	require.NoError(t, err)
	assert.NotNil(t, stored.Category)
	assert.Empty(t, stored.Category)
}

func TestUpdateNotFoundPassesThrough(t *testing.T) {
	svc := newService(&fakeTransactionRepo{
		updateFn: func(ctx context.Context, userID, id primitive.ObjectID, patch transaction.UpdateTransactionRequest) error {
			return transaction.ErrTransactionNotFound
		},
	})

	_, err := svc.Update(context.Background(), primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex(),
		transaction.UpdateTransactionRequest{Amount: floatPtr(10)})
	assert.ErrorIs(t, err, transaction.ErrTransactionNotFound)
}

func TestUpdateEmptyPatchRefreshesTimestampOnly(t *testing.T) {
	id := primitive.NewObjectID().Hex()

	called := false
	var gotPatch transaction.UpdateTransactionRequest
	svc := newService(&fakeTransactionRepo{
		updateFn: func(ctx context.Context, userID, txID primitive.ObjectID, patch transaction.UpdateTransactionRequest) error {
			called = true
			gotPatch = patch
			return nil
		},
	})

	res, err := svc.Update(context.Background(), primitive.NewObjectID().Hex(), id,
		transaction.UpdateTransactionRequest{})
	require.NoError(t, err)

	assert.True(t, called)
	assert.Nil(t, gotPatch.Type)
	assert.Nil(t, gotPatch.Amount)
	assert.Nil(t, gotPatch.Category)
	assert.Nil(t, gotPatch.Description)

	assert.True(t, res.Acknowledged)
	assert.Equal(t, id, res.InsertedID)
}

func TestUpdateEmptyPatchHonorsNotFound(t *testing.T) {
	svc := newService(&fakeTransactionRepo{
		updateFn: func(ctx context.Context, userID, id primitive.ObjectID, patch transaction.UpdateTransactionRequest) error {
			return transaction.ErrTransactionNotFound
		},
	})

	_, err := svc.Update(context.Background(), primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex(),
		transaction.UpdateTransactionRequest{})
	assert.ErrorIs(t, err, transaction.ErrTransactionNotFound)
}

func TestUpdateEchoesID(t *testing.T) {
	id := primitive.NewObjectID().Hex()
	svc := newService(&fakeTransactionRepo{
		updateFn: func(ctx context.Context, userID, txID primitive.ObjectID, patch transaction.UpdateTransactionRequest) error {
			return nil
		},
	})

	res, err := svc.Update(context.Background(), primitive.NewObjectID().Hex(), id,
		transaction.UpdateTransactionRequest{Description: strPtr("updated")})
	require.NoError(t, err)
	assert.True(t, res.Acknowledged)
	assert.Equal(t, id, res.InsertedID)
}

func TestGetMalformedIDIsValidationError(t *testing.T) {
	svc := newService(&fakeTransactionRepo{})

	_, err := svc.Get(context.Background(), primitive.NewObjectID().Hex(), "not-hex")
	assert.ErrorIs(t, err, transaction.ErrInvalidTransactionID)
}

func TestMalformedOwnerIdentityIsUnauthorized(t *testing.T) {
	svc := newService(&fakeTransactionRepo{})

	_, err := svc.Get(context.Background(), "not-hex", primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, transaction.ErrInvalidUserID)

	_, err = svc.List(context.Background(), "not-hex", transaction.ListTransactionsQuery{})
	assert.ErrorIs(t, err, transaction.ErrInvalidUserID)

	_, err = svc.Add(context.Background(), "not-hex", transaction.CreateTransactionRequest{
		Type:   "income",
		Amount: floatPtr(1),
		Date:   time.Now(),
	})
	assert.ErrorIs(t, err, transaction.ErrInvalidUserID)

	_, err = svc.Delete(context.Background(), "not-hex", primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, transaction.ErrInvalidUserID)
}

func TestGetScopesQueryToOwner(t *testing.T) {
	ownerID := primitive.NewObjectID()
	txID := primitive.NewObjectID()

	var gotOwner, gotID primitive.ObjectID
	svc := newService(&fakeTransactionRepo{
		getByIDFn: func(ctx context.Context, userID, id primitive.ObjectID) (entity.Transaction, error) {
			gotOwner, gotID = userID, id
			return entity.Transaction{ID: id, UserID: userID}, nil
		},
	})

	_, err := svc.Get(context.Background(), ownerID.Hex(), txID.Hex())
	require.NoError(t, err)
	assert.Equal(t, ownerID, gotOwner)
	assert.Equal(t, txID, gotID)
}

func TestListAppliesDefaults(t *testing.T) {
	var gotFilter transaction.ListFilter
	svc := newService(&fakeTransactionRepo{
		listFn: func(ctx context.Context, userID primitive.ObjectID, filter transaction.ListFilter) ([]entity.Transaction, int64, error) {
			gotFilter = filter
			return []entity.Transaction{}, 0, nil
		},
	})

	res, err := svc.List(context.Background(), primitive.NewObjectID().Hex(), transaction.ListTransactionsQuery{})
	require.NoError(t, err)

	assert.Equal(t, int64(0), gotFilter.Skip)
	assert.Equal(t, int64(25), gotFilter.Limit)
	assert.Nil(t, gotFilter.Type)
	assert.Nil(t, gotFilter.CreatedAt)

	assert.Equal(t, 1, res.Page)
	assert.Equal(t, 25, res.PageSize)
	assert.Equal(t, int64(0), res.TotalCount)
	assert.Equal(t, 0, res.TotalPages)
	assert.Empty(t, res.Transactions)
}

func TestListSecondPageOfTwo(t *testing.T) {
	second := entity.Transaction{ID: primitive.NewObjectID(), Amount: 20}

	var gotFilter transaction.ListFilter
	svc := newService(&fakeTransactionRepo{
		listFn: func(ctx context.Context, userID primitive.ObjectID, filter transaction.ListFilter) ([]entity.Transaction, int64, error) {
			gotFilter = filter
			return []entity.Transaction{second}, 2, nil
		},
	})

	res, err := svc.List(context.Background(), primitive.NewObjectID().Hex(), transaction.ListTransactionsQuery{
		Page:     2,
		PageSize: 1,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), gotFilter.Skip)
	assert.Equal(t, int64(1), gotFilter.Limit)

	require.Len(t, res.Transactions, 1)
	assert.Equal(t, second.ID, res.Transactions[0].ID)
	assert.Equal(t, int64(2), res.TotalCount)
	assert.Equal(t, 2, res.Page)
	assert.Equal(t, 1, res.PageSize)
	assert.Equal(t, 2, res.TotalPages)
}

func TestListTotalPagesRoundsUp(t *testing.T) {
	svc := newService(&fakeTransactionRepo{
		listFn: func(ctx context.Context, userID primitive.ObjectID, filter transaction.ListFilter) ([]entity.Transaction, int64, error) {
			return []entity.Transaction{}, 101, nil
		},
	})

	res, err := svc.List(context.Background(), primitive.NewObjectID().Hex(), transaction.ListTransactionsQuery{
		PageSize: 25,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, res.TotalPages)
}

func TestListPassesFilters(t *testing.T) {
	var gotFilter transaction.ListFilter
	svc := newService(&fakeTransactionRepo{
		listFn: func(ctx context.Context, userID primitive.ObjectID, filter transaction.ListFilter) ([]entity.Transaction, int64, error) {
			gotFilter = filter
			return []entity.Transaction{}, 0, nil
		},
	})

	_, err := svc.List(context.Background(), primitive.NewObjectID().Hex(), transaction.ListTransactionsQuery{
		Type:      "income",
		Category:  []string{"salary"},
		CreatedAt: "2025-03-14T09:26:53Z",
	})
	require.NoError(t, err)

	require.NotNil(t, gotFilter.Type)
	assert.Equal(t, "income", *gotFilter.Type)
	assert.Equal(t, []string{"salary"}, gotFilter.Category)
	require.NotNil(t, gotFilter.CreatedAt)
	assert.Equal(t, time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC), gotFilter.CreatedAt.UTC())
}

func TestListInvalidCreatedAt(t *testing.T) {
	svc := newService(&fakeTransactionRepo{})

	_, err := svc.List(context.Background(), primitive.NewObjectID().Hex(), transaction.ListTransactionsQuery{
		CreatedAt: "14-03-2025",
	})
	assert.ErrorIs(t, err, transaction.ErrInvalidCreatedAt)
}

func TestDeleteNotFoundPassesThrough(t *testing.T) {
	svc := newService(&fakeTransactionRepo{
		deleteFn: func(ctx context.Context, userID, id primitive.ObjectID) error {
			return transaction.ErrTransactionNotFound
		},
	})

	_, err := svc.Delete(context.Background(), primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, transaction.ErrTransactionNotFound)
}
