package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-purchase-transactions/internal/logger"
	"github.com/sbilibin2017/gw-purchase-transactions/internal/models"
)

// TransactionWriteRepository stores purchase transactions.
type TransactionWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

// NewTransactionWriteRepository creates a write repository. When txGetter returns a
// transaction for the request context the insert joins it.
func NewTransactionWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *TransactionWriteRepository {
	return &TransactionWriteRepository{db: db, txGetter: txGetter}
}

// Save inserts a new purchase transaction row.
func (r *TransactionWriteRepository) Save(ctx context.Context, row models.TransactionDB) error {
	query := `
		INSERT INTO purchase_transactions (id, description, transaction_date, amount, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	args := []any{row.ID, row.Description, row.TransactionDate, row.Amount, row.CreatedAt}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	res, err := executor.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("sql query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

// TransactionReadRepository reads purchase transactions.
type TransactionReadRepository struct {
	db *sqlx.DB
}

func NewTransactionReadRepository(db *sqlx.DB) *TransactionReadRepository {
	return &TransactionReadRepository{db: db}
}

// GetByID returns the row with the given id, or nil when there is none.
func (r *TransactionReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.TransactionDB, error) {
	const query = `
		SELECT id, description, transaction_date, amount, created_at
		FROM purchase_transactions
		WHERE id = $1
	`

	var row models.TransactionDB
	err := r.db.GetContext(ctx, &row, query, id)

	logger.Log.Infow("sql query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", row,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &row, nil
}
