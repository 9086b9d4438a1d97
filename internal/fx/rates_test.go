package fx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func TestConvertReportingCurrencyIdentity(t *testing.T) {
	rates := Table{"978": decimal.NewFromFloat(0.95)}
	for _, amount := range []string{"0", "100", "-42.5", "0.01"} {
		x := decimal.RequireFromString(amount)
		got, converted := rates.Convert(x, ReportingCurrency)
		if !converted {
			t.Errorf("Convert(%s, CHF) reported unconverted", amount)
		}
		if !got.Equal(x) {
			t.Errorf("Convert(%s, CHF) = %s, want unchanged", amount, got)
		}
	}
}

func TestConvertWithRate(t *testing.T) {
	rates := Table{"978": decimal.NewFromFloat(0.95)}
	got, converted := rates.Convert(decimal.NewFromInt(50), "978")
	if !converted {
		t.Fatal("expected conversion with known rate")
	}
	want := decimal.RequireFromString("47.5")
	if !got.Equal(want) {
		t.Errorf("50 EUR = %s CHF, want %s", got, want)
	}
}

func TestConvertMissingRateFallsThrough(t *testing.T) {
	rates := Table{}
	amount := decimal.NewFromInt(50)
	got, converted := rates.Convert(amount, "840")
	if converted {
		t.Error("expected unconverted flag for missing rate")
	}
	if !got.Equal(amount) {
		t.Errorf("missing rate: got %s, want amount unchanged", got)
	}
}

func TestNormalizeMatchesConvert(t *testing.T) {
	rates := Table{"840": decimal.NewFromFloat(0.88)}
	amount := decimal.NewFromInt(10)
	if !rates.Normalize(amount, "840").Equal(decimal.RequireFromString("8.8")) {
		t.Error("Normalize should apply the table rate")
	}
	if !rates.Normalize(amount, "999").Equal(amount) {
		t.Error("Normalize should pass through unknown currencies")
	}
}

func TestFetchRatesInvertsQuotes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"base":"CHF","date":"2026-08-01","rates":{"EUR":2.0,"USD":0.5,"XXX":3.0}}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, zap.NewNop())
	rates := client.FetchRates(context.Background())

	// 2 EUR per CHF means 0.5 CHF per EUR.
	if got := rates["978"]; !got.Equal(decimal.RequireFromString("0.5")) {
		t.Errorf("EUR rate = %s, want 0.5", got)
	}
	if got := rates["840"]; !got.Equal(decimal.NewFromInt(2)) {
		t.Errorf("USD rate = %s, want 2", got)
	}
	if _, ok := rates["XXX"]; ok {
		t.Error("unknown alphabetic code should be dropped")
	}
}

func TestFetchRatesFailureYieldsEmptyTable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, zap.NewNop())
	rates := client.FetchRates(context.Background())
	if len(rates) != 0 {
		t.Errorf("expected empty table on failure, got %d rates", len(rates))
	}
}
