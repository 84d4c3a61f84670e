package facades

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-purchase-transactions/internal/models"
	"github.com/sbilibin2017/gw-purchase-transactions/internal/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransactionReaderFacade_GetByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	row := &models.TransactionDB{
		ID:              id,
		Description:     "Conference ticket",
		TransactionDate: time.Date(2025, time.September, 30, 0, 0, 0, 0, time.UTC),
		Amount:          decimal.RequireFromString("250.00"),
		CreatedAt:       time.Date(2025, time.October, 1, 0, 0, 0, 0, time.UTC),
	}

	tests := []struct {
		name        string
		withCache   bool
		setup       func(reader *MockTransactionRowReader, cache *MockTransactionRowCache)
		expectFound bool
		expectedErr error
	}{
		{
			name:      "cache_hit",
			withCache: true,
			setup: func(reader *MockTransactionRowReader, cache *MockTransactionRowCache) {
				cache.EXPECT().Get(ctx, id).Return(row, nil)
			},
			expectFound: true,
		},
		{
			name:      "cache_miss_reads_db_and_fills_cache",
			withCache: true,
			setup: func(reader *MockTransactionRowReader, cache *MockTransactionRowCache) {
				cache.EXPECT().Get(ctx, id).Return(nil, repositories.ErrCacheMiss)
				reader.EXPECT().GetByID(ctx, id).Return(row, nil)
				cache.EXPECT().Set(ctx, *row).Return(nil)
			},
			expectFound: true,
		},
		{
			name:      "cache_failures_are_not_fatal",
			withCache: true,
			setup: func(reader *MockTransactionRowReader, cache *MockTransactionRowCache) {
				cache.EXPECT().Get(ctx, id).Return(nil, errors.New("redis down"))
				reader.EXPECT().GetByID(ctx, id).Return(row, nil)
				cache.EXPECT().Set(ctx, *row).Return(errors.New("redis down"))
			},
			expectFound: true,
		},
		{
			name:      "invalid_cached_row_is_replaced",
			withCache: true,
			setup: func(reader *MockTransactionRowReader, cache *MockTransactionRowCache) {
				corrupted := *row
				corrupted.Amount = decimal.Zero
				cache.EXPECT().Get(ctx, id).Return(&corrupted, nil)
				reader.EXPECT().GetByID(ctx, id).Return(row, nil)
				cache.EXPECT().Set(ctx, *row).Return(nil)
			},
			expectFound: true,
		},
		{
			name:      "not_found_is_not_cached",
			withCache: true,
			setup: func(reader *MockTransactionRowReader, cache *MockTransactionRowCache) {
				cache.EXPECT().Get(ctx, id).Return(nil, repositories.ErrCacheMiss)
				reader.EXPECT().GetByID(ctx, id).Return(nil, nil)
			},
		},
		{
			name:      "db_error",
			withCache: true,
			setup: func(reader *MockTransactionRowReader, cache *MockTransactionRowCache) {
				cache.EXPECT().Get(ctx, id).Return(nil, repositories.ErrCacheMiss)
				reader.EXPECT().GetByID(ctx, id).Return(nil, assert.AnError)
			},
			expectedErr: assert.AnError,
		},
		{
			name:      "without_cache",
			withCache: false,
			setup: func(reader *MockTransactionRowReader, cache *MockTransactionRowCache) {
				reader.EXPECT().GetByID(ctx, id).Return(row, nil)
			},
			expectFound: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			reader := NewMockTransactionRowReader(ctrl)
			cache := NewMockTransactionRowCache(ctrl)
			tt.setup(reader, cache)

			facade := NewTransactionReaderFacade(reader, cache)
			if !tt.withCache {
				facade = NewTransactionReaderFacade(reader, nil)
			}

			txn, err := facade.GetByID(ctx, id)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Nil(t, txn)
				return
			}

			assert.NoError(t, err)
			if !tt.expectFound {
				assert.Nil(t, txn)
				return
			}
			if assert.NotNil(t, txn) {
				assert.Equal(t, id, txn.ID())
				assert.Equal(t, "Conference ticket", txn.Description())
				assert.Equal(t, "250.00", txn.Amount().StringFixed(2))
			}
		})
	}
}
