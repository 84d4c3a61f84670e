package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ConvertedPurchase is a transaction expressed in a target currency with the rate that was used.
type ConvertedPurchase struct {
	ID              uuid.UUID
	Description     string
	TransactionDate time.Time
	Amount          decimal.Decimal // base currency
	ExchangeRate    decimal.Decimal
	ConvertedAmount decimal.Decimal
	Country         string
	Currency        string
	RecordDate      time.Time // record date of ExchangeRate
}
