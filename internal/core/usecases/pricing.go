package usecases

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/samirrijal/flyworld/internal/core/domain"
)

var (
	pricePerKm      = decimal.RequireFromString("0.15")
	firstClassRate  = decimal.NewFromInt(2)
	highSeasonRate  = decimal.RequireFromString("1.5")
	directMaxKm     = 5000.0
	stopoverMaxKm   = 10000.0
	stopoverExtra   = 2 * time.Hour
	manyStopsExtra  = 4 * time.Hour
	defaultCurrency = "USD"
)

// Currency is a display currency with its fixed rate against the dollar.
type Currency struct {
	Code   string
	Symbol string
	PerUSD decimal.Decimal
}

var currencies = map[string]Currency{
	"USD": {Code: "USD", Symbol: "$", PerUSD: decimal.NewFromInt(1)},
	"EUR": {Code: "EUR", Symbol: "€", PerUSD: decimal.RequireFromString("0.93")},
	"GBP": {Code: "GBP", Symbol: "£", PerUSD: decimal.RequireFromString("0.79")},
	"CHF": {Code: "CHF", Symbol: "Fr.", PerUSD: decimal.RequireFromString("0.90")},
	"JPY": {Code: "JPY", Symbol: "¥", PerUSD: decimal.NewFromInt(150)},
}

// SupportedCurrency reports whether code can be used for quotes.
func SupportedCurrency(code string) bool {
	_, ok := currencies[code]
	return ok
}

// LookupCurrency returns the display currency for code.
func LookupCurrency(code string) (Currency, error) {
	c, ok := currencies[code]
	if !ok {
		return Currency{}, domain.Invalid("unsupported currency %q", code)
	}
	return c, nil
}

// PriceUSD returns the fare in dollars for a distance, before rounding.
func PriceUSD(distanceKm float64, class domain.FlightClass, season domain.Season, airline domain.Airline) decimal.Decimal {
	price := decimal.NewFromFloat(distanceKm).Mul(pricePerKm)
	if class == domain.ClassFirst {
		price = price.Mul(firstClassRate)
	}
	if season == domain.SeasonHigh {
		price = price.Mul(highSeasonRate)
	}
	return price.Mul(decimal.NewFromFloat(airline.PriceMultiplier))
}

// Convert expresses a dollar amount in c, rounded to cents.
func (c Currency) Convert(usd decimal.Decimal) decimal.Decimal {
	return usd.Mul(c.PerUSD).Round(2)
}

// ClassifyFlight returns the flight type for a distance and the layover
// time it adds.
func ClassifyFlight(distanceKm float64) (domain.FlightType, time.Duration) {
	switch {
	case distanceKm < directMaxKm:
		return domain.FlightDirect, 0
	case distanceKm < stopoverMaxKm:
		return domain.FlightStopover, stopoverExtra
	default:
		return domain.FlightManyStopovers, manyStopsExtra
	}
}

// FlightDuration returns airborne time at the airline's cruise speed plus
// layovers, and the duration split into whole hours and truncated minutes.
func FlightDuration(distanceKm float64, airline domain.Airline) (total time.Duration, hours, minutes int) {
	_, extra := ClassifyFlight(distanceKm)
	h := distanceKm/airline.SpeedKmh + extra.Hours()

	hours = int(math.Floor(h))
	minutes = int((h - float64(hours)) * 60)
	total = time.Duration(h * float64(time.Hour))
	return total, hours, minutes
}
