package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/gw-purchase-transactions/internal/logger"
	"github.com/sbilibin2017/gw-purchase-transactions/internal/models"
)

// ErrCacheMiss is returned when a transaction is not cached.
var ErrCacheMiss = errors.New("transaction not found in cache")

// TransactionCacheRepository caches purchase transaction rows in Redis.
type TransactionCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration of cached rows, 0 keeps them
}

// NewTransactionCacheRepository creates a new cache repository with the given TTL.
func NewTransactionCacheRepository(client *redis.Client, expiration time.Duration) *TransactionCacheRepository {
	return &TransactionCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func transactionKey(id uuid.UUID) string {
	return fmt.Sprintf("purchase_transaction:%s", id)
}

// Get returns the cached row for id or ErrCacheMiss.
func (r *TransactionCacheRepository) Get(ctx context.Context, id uuid.UUID) (*models.TransactionDB, error) {
	key := transactionKey(id)

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		logger.Log.Infow("cache get",
			"key", key,
			"result", nil,
			"error", err,
		)
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var row models.TransactionDB
	if err := json.Unmarshal(val, &row); err != nil {
		logger.Log.Infow("cache decode",
			"key", key,
			"value", string(val),
			"result", nil,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow("cache get",
		"key", key,
		"result", row,
		"error", nil,
	)

	return &row, nil
}

// Set caches row under its id.
func (r *TransactionCacheRepository) Set(ctx context.Context, row models.TransactionDB) error {
	key := transactionKey(row.ID)

	data, err := json.Marshal(row)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("cache set",
		"key", key,
		"value", string(data),
		"result", "ok",
		"error", err,
	)

	return err
}
