package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

const moveKeyPrefix = "move:"

var ErrMoveNotFound = errors.New("move not found")

// MoveRepository caches search results by board key.
type MoveRepository interface {
	Save(ctx context.Context, boardKey string, result *entity.SearchResult) error
	GetByKey(ctx context.Context, boardKey string) (*entity.SearchResult, error)
	DeleteByKey(ctx context.Context, boardKey string) error
}

type dbMove struct {
	client *redis.Client
	ttl    time.Duration
}

// NewMoveRepository - ttl 0 keeps entries forever.
func NewMoveRepository(client *redis.Client, ttl time.Duration) MoveRepository {
	return &dbMove{
		client: client,
		ttl:    ttl,
	}
}

func (that *dbMove) Save(ctx context.Context, boardKey string, result *entity.SearchResult) error {
	resultJSON, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("could not marshal search result: %w", err)
	}

	err = that.client.Set(ctx, moveKeyPrefix+boardKey, resultJSON, that.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set move: %w", err)
	}

	return nil
}

func (that *dbMove) GetByKey(ctx context.Context, boardKey string) (*entity.SearchResult, error) {
	response, err := that.client.Get(ctx, moveKeyPrefix+boardKey).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrMoveNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get move by key: %w", err)
	}

	var result entity.SearchResult
	if err = json.Unmarshal([]byte(response), &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal search result: %w", err)
	}

	return &result, nil
}

func (that *dbMove) DeleteByKey(ctx context.Context, boardKey string) error {
	deleted, err := that.client.Del(ctx, moveKeyPrefix+boardKey).Result()
	if err != nil {
		return fmt.Errorf("failed to delete move by key: %w", err)
	}

	if deleted == 0 {
		return ErrMoveNotFound
	}

	return nil
}
