package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-purchase-transactions/internal/logger"
	"github.com/sbilibin2017/gw-purchase-transactions/internal/models"
	"github.com/shopspring/decimal"
)

const (
	// DefaultTreasuryBaseURL is the U.S. Treasury fiscal data API root.
	DefaultTreasuryBaseURL = "https://api.fiscaldata.treasury.gov/services/api/fiscal_service/"
	// DefaultTreasuryTimeout bounds a single rate lookup.
	DefaultTreasuryTimeout = 30 * time.Second

	ratesOfExchangeEndpoint = "v1/accounting/od/rates_of_exchange"
)

// TreasuryRatesFacade looks up historical exchange rates in the Treasury
// "Rates of Exchange" dataset.
type TreasuryRatesFacade struct {
	baseURL string
	client  *http.Client
}

// NewTreasuryRatesFacade creates a facade for baseURL; an empty baseURL selects
// DefaultTreasuryBaseURL and a non-positive timeout DefaultTreasuryTimeout.
func NewTreasuryRatesFacade(baseURL string, timeout time.Duration) *TreasuryRatesFacade {
	if baseURL == "" {
		baseURL = DefaultTreasuryBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	if timeout <= 0 {
		timeout = DefaultTreasuryTimeout
	}
	return &TreasuryRatesFacade{
		baseURL: baseURL,
		client:  &http.Client{Timeout: timeout},
	}
}

type treasuryResponse struct {
	Data []struct {
		Country      string `json:"country"`
		Currency     string `json:"currency"`
		ExchangeRate string `json:"exchange_rate"`
		RecordDate   string `json:"record_date"`
	} `json:"data"`
}

// GetLatestRate returns the newest observation for country/currency recorded no
// later than asOf and no earlier than models.RateWindowMonths before it. It returns
// nil, nil when the API has no such observation or answers with a non-2xx status.
func (f *TreasuryRatesFacade) GetLatestRate(
	ctx context.Context,
	country, currency string,
	asOf time.Time,
) (*models.RateObservation, error) {
	windowStart, windowEnd := models.RateWindow(asOf)

	query := url.Values{}
	query.Set("fields", "country,currency,exchange_rate,record_date")
	query.Set("filter", fmt.Sprintf(
		"country:eq:%s,currency:eq:%s,record_date:lte:%s,record_date:gte:%s",
		country, currency, windowEnd.Format(models.DateLayout), windowStart.Format(models.DateLayout),
	))
	query.Set("sort", "-record_date")
	query.Set("page[size]", "1")

	reqURL := f.baseURL + ratesOfExchangeEndpoint + "?" + query.Encode()
	logger.Log.Infow("querying exchange rate", "url", reqURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building treasury request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("treasury request failed", "url", reqURL, "error", err)
		return nil, fmt.Errorf("treasury request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		logger.Log.Warnw("treasury API returned non-success status", "status", resp.StatusCode)
		return nil, nil
	}

	var body treasuryResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		logger.Log.Errorw("failed to decode treasury response", "error", err)
		return nil, fmt.Errorf("decoding treasury response: %w", err)
	}

	if len(body.Data) == 0 {
		logger.Log.Infow("no exchange rate found",
			"country", country,
			"currency", currency,
			"from", windowStart.Format(models.DateLayout),
			"to", windowEnd.Format(models.DateLayout),
		)
		return nil, nil
	}

	item := body.Data[0]

	rate, err := decimal.NewFromString(item.ExchangeRate)
	if err != nil {
		return nil, fmt.Errorf("bad exchange_rate %q: %w", item.ExchangeRate, err)
	}
	if !rate.IsPositive() {
		return nil, fmt.Errorf("bad exchange_rate %q: must be positive", item.ExchangeRate)
	}

	recordDate, err := time.Parse(models.DateLayout, item.RecordDate)
	if err != nil {
		return nil, fmt.Errorf("bad record_date %q: %w", item.RecordDate, err)
	}

	return &models.RateObservation{
		Country:      item.Country,
		Currency:     item.Currency,
		ExchangeRate: rate,
		RecordDate:   recordDate,
	}, nil
}
