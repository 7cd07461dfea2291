package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/samirrijal/flyworld/internal/core/domain"
	"github.com/samirrijal/flyworld/internal/core/ports"
	"github.com/samirrijal/flyworld/internal/pkg/geospatial"
	"github.com/samirrijal/flyworld/internal/pkg/i18n"
)

const (
	// DefaultPathSteps is the number of segments of a drawn or animated path.
	DefaultPathSteps = 150
	// MaxPathSteps bounds client-requested path resolution.
	MaxPathSteps = 1000

	mapZoom = 2.5
)

// FlightService prices flights and builds the geometry to draw them.
type FlightService struct {
	catalog   ports.CountryCatalog
	settings  *SettingsService
	history   *HistoryService
	publisher ports.EventPublisher
	pathSteps int
	now       func() time.Time
}

// NewFlightService creates a new FlightService. history and publisher may be
// nil, in which case quotes are neither recorded nor announced.
func NewFlightService(
	catalog ports.CountryCatalog,
	settings *SettingsService,
	history *HistoryService,
	publisher ports.EventPublisher,
	pathSteps int,
) *FlightService {
	if pathSteps < 1 {
		pathSteps = DefaultPathSteps
	}
	return &FlightService{
		catalog:   catalog,
		settings:  settings,
		history:   history,
		publisher: publisher,
		pathSteps: pathSteps,
		now:       time.Now,
	}
}

// PathSteps returns the configured default path resolution.
func (s *FlightService) PathSteps() int { return s.pathSteps }

// Quote prices a flight with the session's preferences. A successful quote
// is recorded in the session history and published as a search event.
func (s *FlightService) Quote(ctx context.Context, sessionID string, req domain.QuoteRequest) (*domain.FlightQuote, error) {
	prefs := domain.DefaultSettings(sessionID)
	if sessionID != "" && s.settings != nil {
		p, err := s.settings.Get(ctx, sessionID)
		if err != nil {
			return nil, err
		}
		prefs = *p
	}

	q, err := s.compute(req, prefs)
	if err != nil {
		return nil, err
	}

	if sessionID != "" && s.history != nil {
		if _, err := s.history.Record(ctx, sessionID, req.Entry()); err != nil {
			slog.WarnContext(ctx, "record search history", "session", sessionID, "error", err)
		}
	}
	if s.publisher != nil {
		event := &domain.FlightSearched{
			SessionID:  sessionID,
			Entry:      req.Entry(),
			DistanceKm: q.DistanceKm,
			FlightType: q.FlightType,
			SearchedAt: s.now().UTC(),
		}
		if err := s.publisher.PublishFlightSearched(ctx, event); err != nil {
			slog.WarnContext(ctx, "publish flight searched", "destination", req.Destination, "error", err)
		}
	}
	return q, nil
}

// Replay re-quotes the search at position index of the session history.
func (s *FlightService) Replay(ctx context.Context, sessionID string, index int) (*domain.FlightQuote, error) {
	if s.history == nil {
		return nil, fmt.Errorf("history entry %d: %w", index, domain.ErrNotFound)
	}
	e, err := s.history.Entry(ctx, sessionID, index)
	if err != nil {
		return nil, err
	}
	return s.Quote(ctx, sessionID, e.Request())
}

// Distance returns the great-circle distance between two countries in km.
func (s *FlightService) Distance(from, to string) (float64, error) {
	a, b, err := s.endpoints(from, to, i18n.DefaultLanguage)
	if err != nil {
		return 0, err
	}
	return geospatial.DistanceKm(a.Location, b.Location), nil
}

// Path returns the great-circle path between two countries. steps of zero
// selects the configured default.
func (s *FlightService) Path(from, to string, steps int) (domain.GreatCirclePath, error) {
	steps, err := s.clampSteps(steps)
	if err != nil {
		return nil, err
	}
	a, b, err := s.endpoints(from, to, i18n.DefaultLanguage)
	if err != nil {
		return nil, err
	}
	return geospatial.Interpolate(a.Location, b.Location, steps), nil
}

func (s *FlightService) clampSteps(steps int) (int, error) {
	switch {
	case steps == 0:
		return s.pathSteps, nil
	case steps < 0 || steps > MaxPathSteps:
		return 0, domain.Invalid("steps must be between 1 and %d", MaxPathSteps)
	default:
		return steps, nil
	}
}

func (s *FlightService) endpoints(from, to, lang string) (domain.Country, domain.Country, error) {
	if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
		return domain.Country{}, domain.Country{}, domain.Invalid("origin and destination are required")
	}
	a, err := s.catalog.Get(from, lang)
	if err != nil {
		return domain.Country{}, domain.Country{}, err
	}
	b, err := s.catalog.Get(to, lang)
	if err != nil {
		return domain.Country{}, domain.Country{}, err
	}
	return a, b, nil
}

func (s *FlightService) compute(req domain.QuoteRequest, prefs domain.Settings) (*domain.FlightQuote, error) {
	if req.Origin == "" || req.Destination == "" || req.Class == "" || req.Season == "" || req.Airline == "" {
		return nil, domain.Invalid("%s", i18n.T(prefs.Language, "please"))
	}
	if req.Class != domain.ClassEconomic && req.Class != domain.ClassFirst {
		return nil, domain.Invalid("unknown class %q", req.Class)
	}
	if req.Season != domain.SeasonLow && req.Season != domain.SeasonHigh {
		return nil, domain.Invalid("unknown season %q", req.Season)
	}

	lang := prefs.Language
	origin, destination, err := s.endpoints(req.Origin, req.Destination, lang)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(origin.Key, destination.Key) {
		return nil, domain.Invalid("origin and destination must differ")
	}

	airline, err := s.catalog.Airline(req.Airline)
	if err != nil {
		return nil, domain.Invalid("unknown airline %q", req.Airline)
	}

	currencyCode := prefs.Currency
	if req.Currency != "" {
		currencyCode = strings.ToUpper(req.Currency)
	}
	currency, err := LookupCurrency(currencyCode)
	if err != nil {
		return nil, err
	}

	unit := prefs.DistanceUnit
	if req.DistanceUnit != "" {
		unit = req.DistanceUnit
	}
	if !validDistanceUnit(unit) {
		return nil, domain.Invalid("distance unit must be %q or %q", domain.UnitKm, domain.UnitMiles)
	}

	km := geospatial.DistanceKm(origin.Location, destination.Location)
	flightType, _ := ClassifyFlight(km)
	total, hours, minutes := FlightDuration(km, airline)
	priceUSD := PriceUSD(km, req.Class, req.Season, airline)

	distance, unitLabel := km, "km"
	if unit == domain.UnitMiles {
		distance, unitLabel = km*geospatial.KmToMiles, "mi"
	}

	path := geospatial.Interpolate(origin.Location, destination.Location, s.pathSteps)

	q := &domain.FlightQuote{
		Origin:          origin,
		Destination:     destination,
		Class:           req.Class,
		Season:          req.Season,
		Airline:         airline.Key,
		AirlineLabel:    airline.Label(lang),
		FlightType:      flightType,
		DistanceKm:      km,
		Distance:        distance,
		DistanceUnit:    unitLabel,
		Duration:        total,
		DurationHours:   hours,
		DurationMinutes: minutes,
		PriceUSD:        priceUSD.Round(2),
		Price:           currency.Convert(priceUSD),
		Currency:        currency.Code,
		CurrencySymbol:  currency.Symbol,
		Map: domain.MapView{
			Path:       path,
			Center:     geospatial.Midpoint(path),
			Zoom:       mapZoom,
			Bounds:     geospatial.PathBounds(path),
			MarkerIcon: airline.MarkerIcon,
		},
	}
	q.Summary = summary(lang, q)
	return q, nil
}

func flightTypeKey(t domain.FlightType) string {
	switch t {
	case domain.FlightStopover:
		return "flight_with_stopover"
	case domain.FlightManyStopovers:
		return "flight_with_many_stopovers"
	default:
		return "direct_flight"
	}
}

func summary(lang string, q *domain.FlightQuote) []string {
	return []string{
		i18n.Format(lang, "flight_from", map[string]string{
			"origin":      q.Origin.Name,
			"destination": q.Destination.Name,
		}),
		i18n.T(lang, flightTypeKey(q.FlightType)),
		i18n.T(lang, "airline") + ": " + q.AirlineLabel,
		i18n.Format(lang, "distance", map[string]string{
			"distance": i18n.Number(lang, q.Distance, 1) + " " + q.DistanceUnit,
		}),
		i18n.Format(lang, "estimated_duration", map[string]string{
			"hours":   strconv.Itoa(q.DurationHours),
			"minutes": strconv.Itoa(q.DurationMinutes),
		}),
		fmt.Sprintf("%s %s%s %s", i18n.T(lang, "estimated_price"), q.CurrencySymbol,
			i18n.Number(lang, q.Price.InexactFloat64(), 2), q.Currency),
	}
}
