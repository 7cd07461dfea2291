package usecases_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/samirrijal/flyworld/internal/core/domain"
	"github.com/samirrijal/flyworld/internal/core/usecases"
)

var (
	lowCost  = domain.Airline{Key: "low-cost", PriceMultiplier: 0.8, SpeedKmh: 850}
	standard = domain.Airline{Key: "standard", PriceMultiplier: 1, SpeedKmh: 900}
	premium  = domain.Airline{Key: "premium", PriceMultiplier: 1.3, SpeedKmh: 950}
)

func TestPriceUSD(t *testing.T) {
	tests := []struct {
		name    string
		class   domain.FlightClass
		season  domain.Season
		airline domain.Airline
		want    string
	}{
		{"economic low standard", domain.ClassEconomic, domain.SeasonLow, standard, "150"},
		{"first class doubles", domain.ClassFirst, domain.SeasonLow, standard, "300"},
		{"high season adds half", domain.ClassEconomic, domain.SeasonHigh, standard, "225"},
		{"low-cost discount", domain.ClassEconomic, domain.SeasonLow, lowCost, "120"},
		{"everything premium", domain.ClassFirst, domain.SeasonHigh, premium, "585"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := usecases.PriceUSD(1000, tt.class, tt.season, tt.airline)
			if !got.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestCurrencyConvert(t *testing.T) {
	usd := decimal.NewFromInt(150)
	tests := map[string]string{
		"USD": "150",
		"EUR": "139.5",
		"GBP": "118.5",
		"CHF": "135",
		"JPY": "22500",
	}
	for code, want := range tests {
		c, err := usecases.LookupCurrency(code)
		if err != nil {
			t.Fatalf("%s: %v", code, err)
		}
		if got := c.Convert(usd); !got.Equal(decimal.RequireFromString(want)) {
			t.Errorf("%s: expected %s, got %s", code, want, got)
		}
	}

	if _, err := usecases.LookupCurrency("XYZ"); err == nil {
		t.Error("expected error for unsupported currency")
	}
}

func TestCurrencyConvert_RoundsToCents(t *testing.T) {
	c, _ := usecases.LookupCurrency("EUR")
	got := c.Convert(decimal.RequireFromString("10.555"))
	if !got.Equal(decimal.RequireFromString("9.82")) {
		t.Errorf("expected 9.82, got %s", got)
	}
}

func TestClassifyFlight(t *testing.T) {
	tests := []struct {
		km        float64
		wantType  domain.FlightType
		wantExtra time.Duration
	}{
		{0, domain.FlightDirect, 0},
		{4999.9, domain.FlightDirect, 0},
		{5000, domain.FlightStopover, 2 * time.Hour},
		{9999.9, domain.FlightStopover, 2 * time.Hour},
		{10000, domain.FlightManyStopovers, 4 * time.Hour},
		{19000, domain.FlightManyStopovers, 4 * time.Hour},
	}
	for _, tt := range tests {
		gotType, gotExtra := usecases.ClassifyFlight(tt.km)
		if gotType != tt.wantType || gotExtra != tt.wantExtra {
			t.Errorf("%.1f km: expected %s +%s, got %s +%s", tt.km, tt.wantType, tt.wantExtra, gotType, gotExtra)
		}
	}
}

func TestFlightDuration(t *testing.T) {
	tests := []struct {
		name        string
		km          float64
		airline     domain.Airline
		wantHours   int
		wantMinutes int
	}{
		{"one hour standard", 900, standard, 1, 0},
		{"hour and a half low-cost", 1275, lowCost, 1, 30},
		{"direct five hours", 4500, standard, 5, 0},
		{"stopover adds two hours", 9000, premium, 11, 28},
		{"many stopovers add four hours", 18000, standard, 24, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, h, m := usecases.FlightDuration(tt.km, tt.airline)
			if h != tt.wantHours || m != tt.wantMinutes {
				t.Errorf("expected %dh %dm, got %dh %dm", tt.wantHours, tt.wantMinutes, h, m)
			}
		})
	}
}
