package fx

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// isoNumeric maps the alphabetic currency codes the rate service speaks to
// the ISO 4217 numeric codes carried by card transactions.
var isoNumeric = map[string]string{
	"AUD": "036",
	"CAD": "124",
	"CNY": "156",
	"CZK": "203",
	"DKK": "208",
	"HKD": "344",
	"HUF": "348",
	"INR": "356",
	"JPY": "392",
	"KRW": "410",
	"MXN": "484",
	"NOK": "578",
	"NZD": "554",
	"PLN": "985",
	"RON": "946",
	"SEK": "752",
	"SGD": "702",
	"THB": "764",
	"TRY": "949",
	"USD": "840",
	"ZAR": "710",
	"GBP": "826",
	"EUR": "978",
	"CHF": "756",
}

// Client fetches live exchange rates from an external rate service. A fetch
// failure is not an error condition for callers: they receive an empty table
// and every foreign amount degrades to pass-through.
type Client struct {
	baseURL string
	client  *http.Client
	log     *zap.Logger
}

// NewClient initializes a rate client against the given service base URL.
func NewClient(baseURL string, timeout time.Duration, log *zap.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// latestResponse is the rate service's JSON shape: rates quoted from the
// requested base currency to each listed alphabetic code.
type latestResponse struct {
	Base  string             `json:"base"`
	Date  string             `json:"date"`
	Rates map[string]float64 `json:"rates"`
}

// FetchRates retrieves the current rate snapshot keyed by ISO numeric code,
// quoted as reporting-currency units per foreign unit. On any failure it
// logs a warning and returns an empty table.
func (c *Client) FetchRates(ctx context.Context) Table {
	rates, err := c.fetch(ctx)
	if err != nil {
		c.log.Warn("rate fetch failed, aggregates will use unconverted amounts", zap.Error(err))
		return Table{}
	}
	return rates
}

func (c *Client) fetch(ctx context.Context) (Table, error) {
	url := fmt.Sprintf("%s/latest?from=CHF", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var body latestResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	table := Table{}
	for alpha, rate := range body.Rates {
		numeric, ok := isoNumeric[alpha]
		if !ok || rate == 0 {
			continue
		}
		// The service quotes foreign units per CHF; the table stores the
		// inverse, CHF per foreign unit.
		table[numeric] = decimal.NewFromInt(1).Div(decimal.NewFromFloat(rate))
	}

	c.log.Debug("fetched exchange rates",
		zap.String("date", body.Date),
		zap.Int("currencies", len(table)),
	)
	return table, nil
}
