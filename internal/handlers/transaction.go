package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-purchase-transactions/internal/logger"
	"github.com/sbilibin2017/gw-purchase-transactions/internal/middlewares"
	"github.com/sbilibin2017/gw-purchase-transactions/internal/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=transaction.go -destination=mock_transaction.go -package=handlers

// TransactionCreator defines the interface that the service must implement.
type TransactionCreator interface {
	Create(ctx context.Context, description string, transactionDate time.Time, amount decimal.Decimal) (uuid.UUID, error)
}

// CreateTransactionRequest represents the JSON body for recording a purchase
// swagger:model CreateTransactionRequest
type CreateTransactionRequest struct {
	// Purchase description, at most 50 characters
	// required: true
	// default: Conference ticket
	Description string `json:"description"`

	// Purchase date, YYYY-MM-DD
	// required: true
	// default: 2025-09-30
	TransactionDate string `json:"transaction_date"`

	// Purchase amount in the base currency
	// required: true
	// default: 1000.00
	Amount decimal.Decimal `json:"amount" swaggertype:"number"`
}

// CreateTransactionResponse represents a successfully recorded purchase
// swagger:model CreateTransactionResponse
type CreateTransactionResponse struct {
	// Identifier of the new transaction
	ID string `json:"id"`
}

// NewCreateTransactionHandler returns an HTTP handler that records a purchase transaction.
// @Summary Record a purchase
// @Description Validates and stores a purchase made in the base currency. The amount is rounded half-to-even to 2 decimal places.
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body handlers.CreateTransactionRequest true "Purchase"
// @Success 201 {object} handlers.CreateTransactionResponse "Transaction created"
// @Header 201 {string} Location "Conversion URL of the new transaction"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 422 {object} handlers.ErrorResponse "Validation failed"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /transactions [post]
func NewCreateTransactionHandler(svc TransactionCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		reqID := middlewares.GetRequestIDFromContext(ctx)

		var req CreateTransactionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Log.Errorw("failed to decode create transaction request", "request_id", reqID, "error", err)
			writeError(w, http.StatusBadRequest, "Invalid request body", err.Error())
			return
		}

		transactionDate, err := parseTransactionDate(req.TransactionDate)
		if err != nil {
			logger.Log.Warnw("invalid transaction date", "request_id", reqID, "transaction_date", req.TransactionDate)
			writeError(w, http.StatusBadRequest, "Invalid transaction date", "expected format YYYY-MM-DD")
			return
		}

		id, err := svc.Create(ctx, req.Description, transactionDate, req.Amount)
		if err != nil {
			if models.IsValidationError(err) {
				logger.Log.Warnw("transaction rejected", "request_id", reqID, "error", err)
				writeError(w, http.StatusUnprocessableEntity, "Validation failed", err.Error())
				return
			}
			logger.Log.Errorw("failed to create transaction", "request_id", reqID, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error", "")
			return
		}

		w.Header().Set("Location", strings.TrimSuffix(r.URL.Path, "/")+"/"+id.String()+"/convert")
		writeJSON(w, http.StatusCreated, CreateTransactionResponse{ID: id.String()})
	}
}

// parseTransactionDate accepts YYYY-MM-DD or RFC 3339. An empty value yields the
// zero time, which transaction validation reports as a missing date.
func parseTransactionDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	if d, err := time.Parse(models.DateLayout, value); err == nil {
		return d, nil
	}
	return time.Parse(time.RFC3339, value)
}

// RegisterCreateTransactionHandler registers the route for recording purchases.
func RegisterCreateTransactionHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/transactions", h)
}
