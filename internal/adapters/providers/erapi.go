package providers

import (
	"context"
	"fmt"
	"strings"

	"github.com/samirrijal/flyworld/internal/core/domain"
)

// ERAPI implements ports.ExchangeRateProvider with open.er-api.com.
type ERAPI struct {
	baseURL string
	http    *client
}

// NewERAPI creates an exchange rate provider rooted at baseURL.
func NewERAPI(baseURL string, opts Options) *ERAPI {
	return &ERAPI{baseURL: strings.TrimRight(baseURL, "/"), http: newClient("er-api", opts, nil)}
}

type erAPIResponse struct {
	Result string             `json:"result"`
	Rates  map[string]float64 `json:"rates"`
}

// USDRate returns how many units of currency one US dollar buys.
func (p *ERAPI) USDRate(ctx context.Context, currency string) (float64, error) {
	var resp erAPIResponse
	if err := p.http.getJSON(ctx, p.baseURL+"/v6/latest/USD", &resp); err != nil {
		return 0, err
	}
	if resp.Result != "success" || resp.Rates == nil {
		return 0, fmt.Errorf("er-api: %w: result %q", domain.ErrMalformedPayload, resp.Result)
	}

	r, ok := resp.Rates[strings.ToUpper(currency)]
	if !ok {
		return 0, fmt.Errorf("er-api: rate for %s: %w", currency, domain.ErrNotFound)
	}
	if r <= 0 {
		return 0, fmt.Errorf("er-api: %w: non-positive rate for %s", domain.ErrMalformedPayload, currency)
	}
	return r, nil
}
