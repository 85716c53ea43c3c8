package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"nexora.io/infrastructure/logger"
)

func (repo *MongoRepository[T]) preRequest() error {
	if repo.Model == nil {
		return errors.New("document store unavailable")
	}
	return nil
}

func (repo *MongoRepository[T]) CreateOne(ctx context.Context, payload T) (*T, error) {
	if err := repo.preRequest(); err != nil {
		return nil, err
	}
	parsed := payload.ParseModel().(*T)
	c, cancel := repo.contextWithTimeout(ctx)
	defer cancel()
	_, err := repo.Model.InsertOne(c, parsed)
	if err != nil {
		logger.Error("mongo error occured while running CreateOne", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return nil, err
	}
	return parsed, nil
}

func (repo *MongoRepository[T]) FindOneByFilter(filter map[string]interface{}, opts ...*options.FindOneOptions) (*T, error) {
	if err := repo.preRequest(); err != nil {
		return nil, err
	}
	c, cancel := repo.contextWithTimeout(context.Background())
	defer cancel()
	var result T
	err := repo.Model.FindOne(c, filter, opts...).Decode(&result)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		logger.Error("mongo error occured while running FindOneByFilter", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return nil, err
	}
	return &result, nil
}

func (repo *MongoRepository[T]) FindMany(filter map[string]interface{}, opts ...*options.FindOptions) (*[]T, error) {
	if err := repo.preRequest(); err != nil {
		return nil, err
	}
	c, cancel := repo.contextWithTimeout(context.Background())
	defer cancel()
	cursor, err := repo.Model.Find(c, filter, opts...)
	if err != nil {
		logger.Error("mongo error occured while running FindMany", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return nil, err
	}
	results := []T{}
	if err = cursor.All(c, &results); err != nil {
		logger.Error("mongo error occured while decoding FindMany results", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return nil, err
	}
	return &results, nil
}

func (repo *MongoRepository[T]) CountDocs(filter map[string]interface{}) (int64, error) {
	if err := repo.preRequest(); err != nil {
		return 0, err
	}
	c, cancel := repo.contextWithTimeout(context.Background())
	defer cancel()
	count, err := repo.Model.CountDocuments(c, filter)
	if err != nil {
		logger.Error("mongo error occured while running CountDocs", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		})
		return 0, err
	}
	return count, nil
}

func (repo *MongoRepository[T]) contextWithTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithTimeout(ctx, 15*time.Second)
}
