package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-purchase-transactions/internal/logger"
	"github.com/sbilibin2017/gw-purchase-transactions/internal/middlewares"
	"github.com/sbilibin2017/gw-purchase-transactions/internal/models"
	"github.com/sbilibin2017/gw-purchase-transactions/internal/services"
)

//go:generate mockgen -source=convert.go -destination=mock_convert.go -package=handlers

// PurchaseConverter defines the interface that the service must implement.
type PurchaseConverter interface {
	Convert(ctx context.Context, id uuid.UUID, country, currency string) (*models.ConvertedPurchase, bool, error)
}

// ConvertTransactionResponse represents a purchase converted into a target currency
// swagger:model ConvertTransactionResponse
type ConvertTransactionResponse struct {
	ID              string      `json:"id"`
	Description     string      `json:"description"`
	TransactionDate string      `json:"transaction_date"`
	Amount          json.Number `json:"amount" swaggertype:"number"`
	ExchangeRate    json.Number `json:"exchange_rate" swaggertype:"number"`
	ConvertedAmount json.Number `json:"converted_amount" swaggertype:"number"`
	Country         string      `json:"country"`
	Currency        string      `json:"currency"`
	RecordDate      string      `json:"record_date"` // date of the rate used
}

func newConvertTransactionResponse(p *models.ConvertedPurchase) ConvertTransactionResponse {
	return ConvertTransactionResponse{
		ID:              p.ID.String(),
		Description:     p.Description,
		TransactionDate: p.TransactionDate.Format(models.DateLayout),
		Amount:          json.Number(p.Amount.StringFixed(models.AmountPlaces)),
		ExchangeRate:    json.Number(p.ExchangeRate.String()),
		ConvertedAmount: json.Number(p.ConvertedAmount.StringFixed(models.AmountPlaces)),
		Country:         p.Country,
		Currency:        p.Currency,
		RecordDate:      p.RecordDate.Format(models.DateLayout),
	}
}

// NewConvertTransactionHandler returns an HTTP handler that converts a stored purchase.
// @Summary Convert a purchase
// @Description Converts a purchase into the currency of the given country using the newest Treasury rate recorded within 6 months before the purchase date.
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Param country query string true "Country name" default(Brazil)
// @Param currency query string true "Currency name" default(Real)
// @Success 200 {object} handlers.ConvertTransactionResponse
// @Failure 400 {object} handlers.ErrorResponse "Invalid transaction id, country or currency"
// @Failure 404 {object} handlers.ErrorResponse "Transaction not found"
// @Failure 422 {object} handlers.ErrorResponse "No exchange rate within 6 months of the purchase"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /transactions/{id}/convert [get]
func NewConvertTransactionHandler(svc PurchaseConverter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		reqID := middlewares.GetRequestIDFromContext(ctx)

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			logger.Log.Warnw("invalid transaction id", "request_id", reqID, "id", chi.URLParam(r, "id"))
			writeError(w, http.StatusBadRequest, "Invalid transaction id", "")
			return
		}

		query := r.URL.Query()
		result, found, err := svc.Convert(ctx, id, query.Get("country"), query.Get("currency"))
		switch {
		case errors.Is(err, services.ErrInvalidArgument):
			writeError(w, http.StatusBadRequest, "Invalid country or currency", err.Error())
			return
		case errors.Is(err, services.ErrRateUnavailable):
			writeError(w, http.StatusUnprocessableEntity, "Purchase cannot be converted to the target currency", err.Error())
			return
		case err != nil:
			logger.Log.Errorw("failed to convert transaction", "request_id", reqID, "id", id, "error", err)
			writeError(w, http.StatusInternalServerError, "Internal server error", "")
			return
		case !found:
			writeError(w, http.StatusNotFound, "Transaction not found", "")
			return
		}

		writeJSON(w, http.StatusOK, newConvertTransactionResponse(result))
	}
}

// RegisterConvertTransactionHandler registers the route for converting purchases.
func RegisterConvertTransactionHandler(r chi.Router, h http.HandlerFunc) {
	r.Get("/transactions/{id}/convert", h)
}
