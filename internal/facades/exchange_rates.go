package facades

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/vkravets/budget-cloud/internal/logger"
)

// ExchangeRatesHTTPFacade fetches rate snapshots from a public
// exchange-rate API over plain HTTP GET.
type ExchangeRatesHTTPFacade struct {
	client  *http.Client
	baseURL string
}

// NewExchangeRatesHTTPFacade creates a facade for the given provider URL,
// e.g. "https://open.er-api.com/v6".
func NewExchangeRatesHTTPFacade(baseURL string, timeout time.Duration) *ExchangeRatesHTTPFacade {
	return &ExchangeRatesHTTPFacade{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}
}

// ratesResponse is the provider's wire shape. Anything beyond these
// fields is ignored.
type ratesResponse struct {
	Result   string             `json:"result"`
	BaseCode string             `json:"base_code"`
	Rates    map[string]float64 `json:"rates"`
}

// FetchRates fetches the full rate snapshot for the given base currency.
// Any failure (network error, non-200 status, malformed body, empty
// rates) is returned to the caller; the caller keeps its previous table.
func (f *ExchangeRatesHTTPFacade) FetchRates(ctx context.Context, base string) (map[string]float64, error) {
	url := fmt.Sprintf("%s/latest/%s", f.baseURL, base)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		logger.Log.Errorw("failed to fetch exchange rates", "url", url, "error", err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Log.Errorw("exchange rate provider returned non-success status", "url", url, "status", resp.StatusCode)
		return nil, fmt.Errorf("exchange rate provider returned status %d", resp.StatusCode)
	}

	var parsed ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		logger.Log.Errorw("failed to decode exchange rate response", "url", url, "error", err)
		return nil, fmt.Errorf("decode exchange rate response: %w", err)
	}

	if parsed.Result != "success" {
		return nil, fmt.Errorf("exchange rate provider reported result %q", parsed.Result)
	}
	if len(parsed.Rates) == 0 {
		return nil, fmt.Errorf("exchange rate response contains no rates")
	}
	if parsed.BaseCode != "" && parsed.BaseCode != base {
		return nil, fmt.Errorf("exchange rate response has base %s, want %s", parsed.BaseCode, base)
	}

	logger.Log.Infow("fetched exchange rates", "base", base, "currencies", len(parsed.Rates))
	return parsed.Rates, nil
}
