package mongoDB

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const connectTimeout = 10 * time.Second

// New connects to the document store and returns the application database.
// The client is established once at startup and shared read-only afterwards.
func New(uri string, dbName string, log *logrus.Logger) (*mongo.Database, error) {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	log.Infof("Connected to MongoDB database %q", dbName)

	return client.Database(dbName), nil
}

func Disconnect(db *mongo.Database, log *logrus.Logger) {
	if db == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	if err := db.Client().Disconnect(ctx); err != nil {
		log.Errorf("Failed to close MongoDB connection: %v", err)
		return
	}

	log.Info("MongoDB connection closed")
}
