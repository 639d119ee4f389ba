package database

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnectToMongoDB attempts to connect to MongoDB with retries
func ConnectToMongoDB(ctx context.Context, uri string, maxAttempts int, retryInterval time.Duration) (*mongo.Client, error) {
	var client *mongo.Client
	var err error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		client, err = mongo.Connect(ctx, options.Client().ApplyURI(uri))
		if err == nil {
			err = client.Ping(ctx, nil)
			if err != nil {
				logrus.Error(err)
			} else {
				logrus.Info("Mongo connection success")
			}
			return client, nil
		}

		logrus.Warnf("Attempt %d to connect to MongoDB failed: %v", attempt, err)
		time.Sleep(retryInterval)
	}

	return nil, errors.Errorf("failed to connect to MongoDB after %d attempts", maxAttempts)
}
