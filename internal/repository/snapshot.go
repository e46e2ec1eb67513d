package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-rooms/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-rooms/internal/entity"
)

const keyPrefix = "game:"

// SnapshotRepository stores one game snapshot per room name.
type SnapshotRepository interface {
	Get(ctx context.Context, room string) (*entity.Snapshot, error)
	Put(ctx context.Context, room string, snapshot *entity.Snapshot) error
	DeleteAll(ctx context.Context, room string) error
}

type redisSnapshot struct {
	client *redis.Client
}

func NewSnapshotRepository(client *redis.Client) SnapshotRepository {
	return &redisSnapshot{
		client: client,
	}
}

// Get - returns apperror.ErrSnapshotNotFound when the room has no stored game and
// apperror.ErrSnapshotCorrupt when the stored value is not a snapshot.
func (that *redisSnapshot) Get(ctx context.Context, room string) (*entity.Snapshot, error) {
	response, err := that.client.Get(ctx, keyPrefix+room).Result()
	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrSnapshotNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}

	var snapshot entity.Snapshot
	if err = json.Unmarshal([]byte(response), &snapshot); err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrSnapshotCorrupt, err)
	}

	return &snapshot, nil
}

func (that *redisSnapshot) Put(ctx context.Context, room string, snapshot *entity.Snapshot) error {
	snapshotJSON, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("could not marshal snapshot: %w", err)
	}

	if err = that.client.Set(ctx, keyPrefix+room, snapshotJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set snapshot: %w", err)
	}

	return nil
}

// DeleteAll - drops everything stored for the room. Deleting a missing room is not an error.
func (that *redisSnapshot) DeleteAll(ctx context.Context, room string) error {
	if err := that.client.Del(ctx, keyPrefix+room).Err(); err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}

	return nil
}
