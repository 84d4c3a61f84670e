package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-purchase-transactions/internal/logger"
	"github.com/sbilibin2017/gw-purchase-transactions/internal/models"
)

//go:generate mockgen -source=conversion.go -destination=mock_conversion.go -package=services

var (
	// ErrInvalidArgument is returned when conversion parameters are malformed.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrRateUnavailable is returned when no usable exchange rate exists for the purchase.
	ErrRateUnavailable = errors.New("exchange rate unavailable")
)

// TransactionReader loads stored transactions.
type TransactionReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) // Returns nil when the transaction does not exist
}

// RateSource looks up historical exchange rates.
type RateSource interface {
	GetLatestRate(ctx context.Context, country, currency string, asOf time.Time) (*models.RateObservation, error) // Returns nil when no rate exists
}

// ConversionService converts stored purchases into a target currency.
// It holds no state between calls and is safe for concurrent use.
type ConversionService struct {
	transactions TransactionReader
	rates        RateSource
}

// NewConversionService creates a new ConversionService.
func NewConversionService(transactions TransactionReader, rates RateSource) *ConversionService {
	return &ConversionService{
		transactions: transactions,
		rates:        rates,
	}
}

// Convert expresses the purchase id in the currency of country/currency using the
// newest rate recorded within models.RateWindowMonths before the purchase date.
//
// An unknown id yields found == false and a nil error. Failures wrap
// ErrInvalidArgument or ErrRateUnavailable; any other error comes from the store.
func (s *ConversionService) Convert(
	ctx context.Context,
	id uuid.UUID,
	country, currency string,
) (result *models.ConvertedPurchase, found bool, err error) {
	country = strings.TrimSpace(country)
	currency = strings.TrimSpace(currency)
	if country == "" {
		return nil, false, fmt.Errorf("%w: country is required", ErrInvalidArgument)
	}
	if currency == "" {
		return nil, false, fmt.Errorf("%w: currency is required", ErrInvalidArgument)
	}

	txn, err := s.transactions.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to load transaction", "id", id, "error", err)
		return nil, false, err
	}
	if txn == nil {
		return nil, false, nil
	}

	windowStart, windowEnd := models.RateWindow(txn.TransactionDate())
	from := windowStart.Format(models.DateLayout)
	to := windowEnd.Format(models.DateLayout)

	rate, err := s.rates.GetLatestRate(ctx, country, currency, txn.TransactionDate())
	if err != nil {
		logger.Log.Errorw("exchange rate lookup failed",
			"country", country, "currency", currency, "from", from, "to", to, "error", err)
		// %v keeps the transport error out of the chain
		return nil, false, fmt.Errorf("%w: lookup for %s %s failed: %v", ErrRateUnavailable, country, currency, err)
	}
	if rate == nil {
		return nil, false, fmt.Errorf("%w: no rate for %s %s between %s and %s",
			ErrRateUnavailable, country, currency, from, to)
	}

	// the source filters by the same window; its answer is checked again here
	if !models.InRateWindow(rate.RecordDate, txn.TransactionDate()) {
		logger.Log.Warnw("rate source returned a rate outside the window",
			"country", country, "currency", currency, "record_date", rate.RecordDate, "from", from, "to", to)
		return nil, false, fmt.Errorf("%w: rate recorded on %s is out of the valid period %s to %s",
			ErrRateUnavailable, rate.RecordDate.Format(models.DateLayout), from, to)
	}
	if !rate.ExchangeRate.IsPositive() {
		return nil, false, fmt.Errorf("%w: rate %s for %s %s is not positive",
			ErrRateUnavailable, rate.ExchangeRate, country, currency)
	}

	return &models.ConvertedPurchase{
		ID:              txn.ID(),
		Description:     txn.Description(),
		TransactionDate: txn.TransactionDate(),
		Amount:          txn.Amount(),
		ExchangeRate:    rate.ExchangeRate,
		ConvertedAmount: models.RoundAmount(txn.Amount().Mul(rate.ExchangeRate)),
		Country:         rate.Country,
		Currency:        rate.Currency,
		RecordDate:      models.CalendarDate(rate.RecordDate),
	}, true, nil
}
