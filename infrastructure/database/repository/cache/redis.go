package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	redisClient "nexora.io/infrastructure/database/connection/cache"
	"nexora.io/infrastructure/logger"
)

type RedisRepository struct {
	Client *redis.Client
}

var Cache = RedisRepository{}

func (redisRepo *RedisRepository) preRequest() bool {
	if redisRepo.Client == nil {
		if redisClient.Client == nil {
			return false
		}
		redisRepo.Client = redisClient.Client
		logger.Info("redis repository initialisation complete")
	}
	return true
}

func (redisRepo *RedisRepository) CreateEntry(key string, payload interface{}, ttl time.Duration) bool {
	if !redisRepo.preRequest() {
		return false
	}
	ctx := context.Background()
	_, err := redisRepo.Client.Set(ctx, key, payload, ttl).Result()
	if err != nil {
		logger.Error("redis error occured while running CreateEntry", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		}, logger.LoggerOptions{
			Key:  "key",
			Data: key,
		})
		return false
	}
	return true
}

func (redisRepo *RedisRepository) FindOne(key string) *string {
	if !redisRepo.preRequest() {
		return nil
	}
	ctx := context.Background()

	result, err := redisRepo.Client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil
		}
		logger.Error("redis error occured while running FindOne", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		}, logger.LoggerOptions{
			Key:  "key",
			Data: key,
		})
		return nil
	}
	return &result
}

func (redisRepo *RedisRepository) DeleteOne(key string) bool {
	if !redisRepo.preRequest() {
		return false
	}
	ctx := context.Background()
	_, err := redisRepo.Client.Del(ctx, key).Result()
	if err != nil {
		logger.Error("redis error occured while running DeleteOne", logger.LoggerOptions{
			Key:  "error",
			Data: err,
		}, logger.LoggerOptions{
			Key:  "key",
			Data: key,
		})
		return false
	}
	return true
}
