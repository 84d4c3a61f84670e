package facades

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-purchase-transactions/internal/logger"
	"github.com/sbilibin2017/gw-purchase-transactions/internal/models"
	"github.com/sbilibin2017/gw-purchase-transactions/internal/repositories"
)

//go:generate mockgen -source=transaction_reader.go -destination=mock_transaction_reader.go -package=facades

// TransactionRowReader reads stored transaction rows.
type TransactionRowReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.TransactionDB, error)
}

// TransactionRowCache caches transaction rows.
type TransactionRowCache interface {
	Get(ctx context.Context, id uuid.UUID) (*models.TransactionDB, error)
	Set(ctx context.Context, row models.TransactionDB) error
}

// TransactionReaderFacade reads transactions through a cache. Transactions never
// change after creation, so a cached row is always current.
type TransactionReaderFacade struct {
	reader TransactionRowReader
	cache  TransactionRowCache
}

// NewTransactionReaderFacade creates a read-through facade. cache may be nil.
func NewTransactionReaderFacade(reader TransactionRowReader, cache TransactionRowCache) *TransactionReaderFacade {
	return &TransactionReaderFacade{reader: reader, cache: cache}
}

// GetByID returns the transaction with the given id, or nil when it does not exist.
func (f *TransactionReaderFacade) GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	if f.cache != nil {
		row, err := f.cache.Get(ctx, id)
		switch {
		case err == nil:
			txn, err := models.TransactionFromDB(*row)
			if err == nil {
				return txn, nil
			}
			// the entry is overwritten below with the stored row
			logger.Log.Warnw("invalid cached transaction", "id", id, "error", err)
		case !errors.Is(err, repositories.ErrCacheMiss):
			logger.Log.Warnw("transaction cache read failed", "id", id, "error", err)
		}
	}

	row, err := f.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to read transaction", "id", id, "error", err)
		return nil, err
	}
	if row == nil {
		return nil, nil
	}

	if f.cache != nil {
		if err := f.cache.Set(ctx, *row); err != nil {
			logger.Log.Warnw("failed to cache transaction", "id", id, "error", err)
		}
	}

	return models.TransactionFromDB(*row)
}
