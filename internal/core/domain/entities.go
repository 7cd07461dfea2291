package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FlightClass is the cabin class of a quote.
type FlightClass string

const (
	ClassEconomic FlightClass = "economic"
	ClassFirst    FlightClass = "first_class"
)

// Season is the travel season of a quote.
type Season string

const (
	SeasonLow  Season = "low"
	SeasonHigh Season = "high"
)

// FlightType classifies a flight by the number of stopovers its distance implies.
type FlightType string

const (
	FlightDirect        FlightType = "direct"
	FlightStopover      FlightType = "stopover"
	FlightManyStopovers FlightType = "many_stopovers"
)

// Distance and temperature units accepted in settings.
const (
	UnitKm         = "km"
	UnitMiles      = "miles"
	UnitCelsius    = "°C"
	UnitFahrenheit = "°F"
)

// Country is a selectable origin or destination.
type Country struct {
	Key      string   `json:"key"`
	Name     string   `json:"name"` // localized display name
	Location GeoPoint `json:"location"`
	Currency string   `json:"currency,omitempty"`
}

// Airline is a carrier tier with its pricing and cruise speed.
type Airline struct {
	Key             string            `json:"key"`
	Labels          map[string]string `json:"-"`
	PriceMultiplier float64           `json:"price_multiplier"`
	SpeedKmh        float64           `json:"speed_kmh"`
	MarkerIcon      string            `json:"marker_icon"`
}

// Label returns the airline name in lang, falling back to English.
func (a Airline) Label(lang string) string {
	if l, ok := a.Labels[lang]; ok {
		return l
	}
	if l, ok := a.Labels["en"]; ok {
		return l
	}
	return a.Key
}

// QuoteRequest holds the selections needed to price a flight.
type QuoteRequest struct {
	Origin       string      `json:"origin"`
	Destination  string      `json:"destination"`
	Class        FlightClass `json:"class"`
	Season       Season      `json:"season"`
	Airline      string      `json:"airline"`
	Currency     string      `json:"currency,omitempty"`      // overrides the session setting
	DistanceUnit string      `json:"distance_unit,omitempty"` // overrides the session setting
}

// Entry returns the history entry describing this request.
func (r QuoteRequest) Entry() SearchEntry {
	return SearchEntry{
		Origin:      r.Origin,
		Destination: r.Destination,
		Class:       r.Class,
		Season:      r.Season,
		Airline:     r.Airline,
	}
}

// FlightQuote is a computed price and duration for a flight.
type FlightQuote struct {
	Origin          Country         `json:"origin"`
	Destination     Country         `json:"destination"`
	Class           FlightClass     `json:"class"`
	Season          Season          `json:"season"`
	Airline         string          `json:"airline"`
	AirlineLabel    string          `json:"airline_label"`
	FlightType      FlightType      `json:"flight_type"`
	DistanceKm      float64         `json:"distance_km"`
	Distance        float64         `json:"distance"`
	DistanceUnit    string          `json:"distance_unit"` // "km" or "mi"
	Duration        time.Duration   `json:"-"`
	DurationHours   int             `json:"duration_hours"`
	DurationMinutes int             `json:"duration_minutes"`
	PriceUSD        decimal.Decimal `json:"price_usd"`
	Price           decimal.Decimal `json:"price"`
	Currency        string          `json:"currency"`
	CurrencySymbol  string          `json:"currency_symbol"`
	Summary         []string        `json:"summary"`
	Map             MapView         `json:"map"`
}

// MapView is everything a client needs to draw a quote on a map.
type MapView struct {
	Path       GreatCirclePath `json:"path"`
	Center     GeoPoint        `json:"center"`
	Zoom       float64         `json:"zoom"`
	Bounds     Bounds          `json:"bounds"`
	MarkerIcon string          `json:"marker_icon"`
}

// Settings are the per-session user preferences.
type Settings struct {
	SessionID       string    `json:"-"`
	Language        string    `json:"language"`
	Currency        string    `json:"currency"`
	DistanceUnit    string    `json:"distance_unit"`
	TemperatureUnit string    `json:"temperature_unit"`
	UpdatedAt       time.Time `json:"updated_at,omitempty"`
}

// DefaultSettings returns the preferences of a session that never saved any.
func DefaultSettings(sessionID string) Settings {
	return Settings{
		SessionID:       sessionID,
		Language:        "en",
		Currency:        "USD",
		DistanceUnit:    UnitKm,
		TemperatureUnit: UnitCelsius,
	}
}

// SettingsPatch is a partial settings update; nil fields are left untouched.
type SettingsPatch struct {
	Language        *string `json:"language,omitempty"`
	Currency        *string `json:"currency,omitempty"`
	DistanceUnit    *string `json:"distance_unit,omitempty"`
	TemperatureUnit *string `json:"temperature_unit,omitempty"`
}

// MaxHistory is the number of searches kept per session.
const MaxHistory = 10

// SearchEntry is one recorded search.
type SearchEntry struct {
	Origin      string      `json:"origin"`
	Destination string      `json:"destination"`
	Class       FlightClass `json:"class"`
	Season      Season      `json:"season"`
	Airline     string      `json:"airline"`
}

// Request rebuilds the quote request of a recorded search.
func (e SearchEntry) Request() QuoteRequest {
	return QuoteRequest{
		Origin:      e.Origin,
		Destination: e.Destination,
		Class:       e.Class,
		Season:      e.Season,
		Airline:     e.Airline,
	}
}

// SearchHistory is a session's searches, most recent first.
type SearchHistory []SearchEntry

// Push returns a new history with e at the front. An identical entry
// already present is moved rather than duplicated, and the result never
// exceeds MaxHistory entries.
func (h SearchHistory) Push(e SearchEntry) SearchHistory {
	out := make(SearchHistory, 0, MaxHistory)
	out = append(out, e)
	for _, existing := range h {
		if existing == e {
			continue
		}
		if len(out) == MaxHistory {
			break
		}
		out = append(out, existing)
	}
	return out
}

// Weather is a current-conditions observation.
type Weather struct {
	TemperatureC float64 `json:"temperature_c"`
	Code         int     `json:"weather_code"`
}

// LocalTime is the wall-clock time at a coordinate.
type LocalTime struct {
	Time     time.Time `json:"time"`
	TimeZone string    `json:"time_zone"`
}

// Place is a geocoded or points-of-interest result.
type Place struct {
	Name     string   `json:"name"`
	Location GeoPoint `json:"location"`
}

// Briefing is the destination trivia shown after a quote.
type Briefing struct {
	Destination Country              `json:"destination"`
	Weather     *WeatherReport       `json:"weather,omitempty"`
	LocalTime   string               `json:"local_time,omitempty"`
	TimeZone    string               `json:"time_zone,omitempty"`
	Exchange    *ExchangeInfo        `json:"exchange,omitempty"`
	Places      []string             `json:"places"`
	Tips        []string             `json:"tips"`
	Errors      map[string]PartError `json:"errors,omitempty"`
}

// WeatherReport is a weather observation converted to the session's unit.
type WeatherReport struct {
	Temperature float64 `json:"temperature"`
	Unit        string  `json:"unit"`
	Code        int     `json:"weather_code"`
	Description string  `json:"description"`
}

// ExchangeInfo relates a destination currency to the US dollar.
type ExchangeInfo struct {
	Currency   string  `json:"currency"`
	USDToLocal float64 `json:"usd_to_local"`
	LocalToUSD float64 `json:"local_to_usd"`
}

// PartError describes why one part of a briefing is missing.
type PartError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// FlightSearched is published after every successful quote.
type FlightSearched struct {
	SessionID  string      `json:"session_id"`
	Entry      SearchEntry `json:"entry"`
	DistanceKm float64     `json:"distance_km"`
	FlightType FlightType  `json:"flight_type"`
	SearchedAt time.Time   `json:"searched_at"`
}
