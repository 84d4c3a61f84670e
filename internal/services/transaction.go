package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-purchase-transactions/internal/logger"
	"github.com/sbilibin2017/gw-purchase-transactions/internal/models"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=transaction.go -destination=mock_transaction.go -package=services

// TransactionWriter persists new transactions.
type TransactionWriter interface {
	Save(ctx context.Context, row models.TransactionDB) error // Inserts a transaction row
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// TransactionService records purchase transactions and publishes them to Kafka.
type TransactionService struct {
	writer      TransactionWriter
	kafkaWriter KafkaWriter
	afterCommit func(ctx context.Context, fn func())
	now         func() time.Time
}

// NewTransactionService creates a new TransactionService. kafkaWriter may be nil.
// afterCommit defers publishing until the surrounding database transaction has
// committed; nil publishes right after Save.
func NewTransactionService(
	writer TransactionWriter,
	kafkaWriter KafkaWriter,
	afterCommit func(ctx context.Context, fn func()),
) *TransactionService {
	return &TransactionService{
		writer:      writer,
		kafkaWriter: kafkaWriter,
		afterCommit: afterCommit,
		now:         time.Now,
	}
}

// Create validates and stores a purchase and returns its identifier.
// Invalid input is reported as a *models.ValidationError.
func (s *TransactionService) Create(
	ctx context.Context,
	description string,
	transactionDate time.Time,
	amount decimal.Decimal,
) (uuid.UUID, error) {
	txn, err := models.NewTransaction(description, transactionDate, amount)
	if err != nil {
		return uuid.Nil, err
	}

	createdAt := s.now().UTC()
	if err := s.writer.Save(ctx, txn.ToDB(createdAt)); err != nil {
		logger.Log.Errorw("failed to save transaction", "id", txn.ID(), "error", err)
		return uuid.Nil, err
	}

	event := models.NewTransactionCreatedEvent(txn, createdAt)
	if s.afterCommit == nil {
		s.publishTransaction(ctx, event)
	} else {
		s.afterCommit(ctx, func() { s.publishTransaction(ctx, event) })
	}

	return txn.ID(), nil
}

// publishTransaction publishes a created transaction to Kafka. Failures are logged only.
func (s *TransactionService) publishTransaction(ctx context.Context, event models.TransactionCreatedEvent) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "transaction_id", event.TransactionID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal transaction for Kafka", "transaction_id", event.TransactionID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.TransactionID),
		Value: data,
	}

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish transaction to Kafka", "transaction_id", event.TransactionID, "error", err)
	} else {
		logger.Log.Infow("Transaction published to Kafka", "transaction_id", event.TransactionID, "amount", event.Amount)
	}
}
