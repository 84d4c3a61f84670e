package models

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxDescriptionLength is the longest description accepted, counted in characters after trimming.
const MaxDescriptionLength = 50

// Transaction is a purchase recorded in the base currency. It is immutable:
// fields are set once by NewTransaction or TransactionFromDB and only read afterwards.
type Transaction struct {
	id              uuid.UUID
	description     string
	transactionDate time.Time
	amount          decimal.Decimal
}

// NewTransaction validates the input and builds a Transaction with a fresh identifier.
// The description is trimmed, the date reduced to a calendar date and the amount
// rounded half-to-even to AmountPlaces.
func NewTransaction(description string, transactionDate time.Time, amount decimal.Decimal) (*Transaction, error) {
	return newTransaction(uuid.New(), description, transactionDate, amount)
}

func newTransaction(id uuid.UUID, description string, transactionDate time.Time, amount decimal.Decimal) (*Transaction, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, NewValidationError(MsgDescriptionRequired)
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return nil, NewValidationError(MsgDescriptionTooLong)
	}

	if transactionDate.IsZero() {
		return nil, NewValidationError(MsgDateRequired)
	}

	if !amount.IsPositive() {
		return nil, NewValidationError(MsgAmountNotPositive)
	}

	return &Transaction{
		id:              id,
		description:     description,
		transactionDate: CalendarDate(transactionDate),
		amount:          RoundAmount(amount),
	}, nil
}

func (t *Transaction) ID() uuid.UUID              { return t.id }
func (t *Transaction) Description() string        { return t.description }
func (t *Transaction) TransactionDate() time.Time { return t.transactionDate }
func (t *Transaction) Amount() decimal.Decimal    { return t.amount }

// TransactionDB represents a purchase_transactions row in the database.
// It is also the cached representation of a transaction.
type TransactionDB struct {
	ID              uuid.UUID       `json:"id" db:"id"`                             // Primary key
	Description     string          `json:"description" db:"description"`           // Trimmed, at most 50 characters
	TransactionDate time.Time       `json:"transaction_date" db:"transaction_date"` // Calendar date of the purchase
	Amount          decimal.Decimal `json:"amount" db:"amount"`                     // Base currency amount, 2 fractional digits
	CreatedAt       time.Time       `json:"created_at" db:"created_at"`             // Row creation timestamp
}

// ToDB maps the transaction to its row representation.
func (t *Transaction) ToDB(createdAt time.Time) TransactionDB {
	return TransactionDB{
		ID:              t.id,
		Description:     t.description,
		TransactionDate: t.transactionDate,
		Amount:          t.amount,
		CreatedAt:       createdAt,
	}
}

// TransactionFromDB restores a Transaction from a stored row. The row goes through
// the same rules as NewTransaction, so a corrupted row surfaces as a ValidationError.
func TransactionFromDB(row TransactionDB) (*Transaction, error) {
	return newTransaction(row.ID, row.Description, row.TransactionDate, row.Amount)
}

// TransactionCreatedEvent is published once a transaction has been stored.
type TransactionCreatedEvent struct {
	TransactionID   string `json:"transaction_id"`
	Description     string `json:"description"`
	TransactionDate string `json:"transaction_date"`
	Amount          string `json:"amount"`
	Timestamp       int64  `json:"timestamp"` // Unix seconds of creation
}

// NewTransactionCreatedEvent builds the event payload for t.
func NewTransactionCreatedEvent(t *Transaction, createdAt time.Time) TransactionCreatedEvent {
	return TransactionCreatedEvent{
		TransactionID:   t.id.String(),
		Description:     t.description,
		TransactionDate: t.transactionDate.Format(DateLayout),
		Amount:          t.amount.StringFixed(AmountPlaces),
		Timestamp:       createdAt.Unix(),
	}
}
