package transactionRepository

import (
	"FinanceTracker/internal/api/transaction"
	"FinanceTracker/internal/entity"
	contextPkg "FinanceTracker/pkg/context"
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *transactionRepository) Create(c context.Context, tx entity.Transaction) (string, error) {
	requestID := contextPkg.GetRequestID(c)

	result, err := r.transactions.InsertOne(c, tx)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating transaction")
		return "", err
	}

	insertedID, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Error("Create unexpected inserted id type")
		return "", errors.New("unexpected inserted id type")
	}

	return insertedID.Hex(), nil
}

// Update applies a partial $set scoped to (id, userId). A transaction owned
// by another user matches nothing and reads as not found.
func (r *transactionRepository) Update(c context.Context, userID, id primitive.ObjectID, patch transaction.UpdateTransactionRequest) error {
	requestID := contextPkg.GetRequestID(c)

	set := bson.M{
		"updatedAt": time.Now(),
	}
	if patch.Type != nil {
		set["type"] = *patch.Type
	}
	if patch.Amount != nil {
		set["amount"] = *patch.Amount
	}
	if patch.Category != nil {
		set["category"] = patch.Category
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}

	result, err := r.transactions.UpdateOne(c,
		bson.M{"_id": id, "userId": userID},
		bson.M{"$set": set},
	)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Update execution err")
		return err
	}

	if result.MatchedCount == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Update matched no documents")
		return transaction.ErrTransactionNotFound
	}

	return nil
}

func (r *transactionRepository) Delete(c context.Context, userID, id primitive.ObjectID) error {
	requestID := contextPkg.GetRequestID(c)

	result, err := r.transactions.DeleteOne(c, bson.M{"_id": id, "userId": userID})
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Delete execution err")
		return err
	}

	if result.DeletedCount == 0 {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
		}).Warn("Delete matched no documents")
		return transaction.ErrTransactionNotFound
	}

	return nil
}

func (r *transactionRepository) GetByID(c context.Context, userID, id primitive.ObjectID) (entity.Transaction, error) {
	requestID := contextPkg.GetRequestID(c)

	var tx entity.Transaction
	if err := r.transactions.FindOne(c, bson.M{"_id": id, "userId": userID}).Decode(&tx); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Warn("GetByID no document found")
			return entity.Transaction{}, transaction.ErrTransactionNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetByID execution err")
		return entity.Transaction{}, err
	}

	return tx, nil
}

type facetResult struct {
	Metadata []struct {
		TotalCount int64 `bson:"totalCount"`
	} `bson:"metadata"`
	Data []entity.Transaction `bson:"data"`
}

// List pages through the caller's transactions ordered by creation time
// ascending. A single $facet aggregation yields the window and the total
// matching count together.
func (r *transactionRepository) List(c context.Context, userID primitive.ObjectID, filter transaction.ListFilter) ([]entity.Transaction, int64, error) {
	requestID := contextPkg.GetRequestID(c)

	match := bson.M{"userId": userID}
	if filter.Type != nil {
		match["type"] = *filter.Type
	}
	if len(filter.Category) > 0 {
		match["category"] = filter.Category
	}
	if filter.CreatedAt != nil {
		match["createdAt"] = *filter.CreatedAt
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: 1}}}},
		bson.D{{Key: "$facet", Value: bson.M{
			"metadata": bson.A{bson.M{"$count": "totalCount"}},
			"data":     bson.A{bson.M{"$skip": filter.Skip}, bson.M{"$limit": filter.Limit}},
		}}},
	}

	cursor, err := r.transactions.Aggregate(c, pipeline)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("List aggregation err")
		return nil, 0, err
	}
	defer cursor.Close(c)

	var results []facetResult
	if err := cursor.All(c, &results); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("List cursor decode err")
		return nil, 0, err
	}

	if len(results) == 0 {
		return []entity.Transaction{}, 0, nil
	}

	var totalCount int64
	if len(results[0].Metadata) > 0 {
		totalCount = results[0].Metadata[0].TotalCount
	}

	data := results[0].Data
	if data == nil {
		data = []entity.Transaction{}
	}

	return data, totalCount, nil
}
