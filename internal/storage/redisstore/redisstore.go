// Package redisstore реализует хранилище снимков коллекции участников в Redis:
// вся коллекция сериализуется в JSON и лежит одним значением под фиксированным ключом.
package redisstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/gymtrack/gymtrack/internal/config"
	"github.com/gymtrack/gymtrack/internal/models"
)

// Store инкапсулирует клиент Redis и ключ, под которым лежит коллекция.
type Store struct {
	Db  *redis.Client
	Key string
}

// InitServer подключается к Redis и проверяет соединение.
func InitServer(ctx context.Context, cfg config.RedisConnection, key string) (*Store, error) {
	const op = "redisstore.InitServer"
	db := redis.NewClient(&redis.Options{
		Addr:         cfg.AddressRedis,
		Password:     cfg.Password,
		DB:           cfg.DB,
		Username:     cfg.User,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.TimeoutRedis,
		WriteTimeout: cfg.TimeoutRedis,
	})

	if err := db.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Store{Db: db, Key: key}, nil
}

// LoadMembers читает коллекцию целиком. Отсутствие ключа означает пустую коллекцию.
func (s *Store) LoadMembers(ctx context.Context) ([]models.Member, error) {
	const op = "redisstore.LoadMembers"
	val, err := s.Db.Get(ctx, s.Key).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var result []models.Member
	if err := json.Unmarshal([]byte(val), &result); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return result, nil
}

// SaveMembers перезаписывает коллекцию целиком, без срока жизни ключа.
func (s *Store) SaveMembers(ctx context.Context, members []models.Member) error {
	const op = "redisstore.SaveMembers"
	jsonData, err := json.Marshal(members)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.Db.Set(ctx, s.Key, jsonData, 0).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
