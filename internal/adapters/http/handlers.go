package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/samirrijal/flyworld/internal/core/domain"
	"github.com/samirrijal/flyworld/internal/pkg/geospatial"
	"github.com/samirrijal/flyworld/internal/pkg/i18n"
	"github.com/samirrijal/flyworld/internal/pkg/metrics"
)

// maxQueryLen bounds free-text query parameters.
const maxQueryLen = 200

// AirlineView is an airline tier labelled in the caller's language.
type AirlineView struct {
	Key             string  `json:"key"`
	Label           string  `json:"label"`
	PriceMultiplier float64 `json:"price_multiplier"`
	SpeedKmh        float64 `json:"speed_kmh"`
	MarkerIcon      string  `json:"marker_icon"`
}

// DistanceResponse is the great-circle distance between two countries.
type DistanceResponse struct {
	From          string  `json:"from"`
	To            string  `json:"to"`
	DistanceKm    float64 `json:"distance_km"`
	DistanceMiles float64 `json:"distance_miles"`
}

// PathResponse is a drawable great-circle path.
type PathResponse struct {
	From     string                 `json:"from"`
	To       string                 `json:"to"`
	Steps    int                    `json:"steps"`
	Path     domain.GreatCirclePath `json:"path"`
	Bearings []float64              `json:"bearings"`
	Center   domain.GeoPoint        `json:"center"`
	Bounds   domain.Bounds          `json:"bounds"`
}

// language picks the response language: the lang query parameter, then the
// session setting, then English. A session-derived language makes the
// response private to that session.
func language(c *fiber.Ctx, deps *Dependencies) (string, error) {
	if lang := c.Query("lang"); lang != "" {
		if !i18n.IsSupported(lang) {
			return "", domain.Invalid("unsupported language %q", lang)
		}
		return lang, nil
	}
	if deps.Settings != nil {
		s, err := deps.Settings.Get(c.UserContext(), sessionID(c))
		if err != nil {
			return "", err
		}
		c.Set(fiber.HeaderCacheControl, "private, max-age=3600")
		c.Vary(HeaderSessionID)
		return s.Language, nil
	}
	return i18n.DefaultLanguage, nil
}

// ListCountriesHandler returns the selectable countries, localized and sorted.
func ListCountriesHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		lang, err := language(c, deps)
		if err != nil {
			return errFromDomain(c, err)
		}

		countries := deps.Countries.List(lang)
		pg := pageParams(c, len(countries))
		start, end := pg.window()

		SetLinkHeaders(c, pg)
		return c.JSON(PaginatedResponse{Data: countries[start:end], Pagination: pg})
	}
}

// GetCountryHandler returns a single country by key.
func GetCountryHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		lang, err := language(c, deps)
		if err != nil {
			return errFromDomain(c, err)
		}

		country, err := deps.Countries.Get(c.Params("key"), lang)
		if err != nil {
			return errFromDomain(c, err)
		}
		return c.JSON(country)
	}
}

// ListAirlinesHandler returns the airline tiers.
func ListAirlinesHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		lang, err := language(c, deps)
		if err != nil {
			return errFromDomain(c, err)
		}

		airlines := deps.Countries.Airlines()
		views := make([]AirlineView, len(airlines))
		for i, a := range airlines {
			views[i] = AirlineView{
				Key:             a.Key,
				Label:           a.Label(lang),
				PriceMultiplier: a.PriceMultiplier,
				SpeedKmh:        a.SpeedKmh,
				MarkerIcon:      a.MarkerIcon,
			}
		}
		return c.JSON(views)
	}
}

// DistanceHandler returns the distance between ?from and ?to.
func DistanceHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		from, to := c.Query("from"), c.Query("to")
		if from == "" || to == "" {
			return errBadRequest(c, "from and to are required")
		}

		km, err := deps.Flights.Distance(from, to)
		if err != nil {
			return errFromDomain(c, err)
		}
		return c.JSON(DistanceResponse{
			From:          from,
			To:            to,
			DistanceKm:    km,
			DistanceMiles: km * geospatial.KmToMiles,
		})
	}
}

// PathHandler returns the great-circle path between ?from and ?to with
// ?steps segments.
func PathHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		from, to := c.Query("from"), c.Query("to")
		if from == "" || to == "" {
			return errBadRequest(c, "from and to are required")
		}

		path, err := deps.Flights.Path(from, to, c.QueryInt("steps", 0))
		if err != nil {
			return errFromDomain(c, err)
		}

		bearings := geospatial.PathBearings(path)
		if bearings == nil {
			bearings = []float64{}
		}
		return c.JSON(PathResponse{
			From:     from,
			To:       to,
			Steps:    len(path) - 1,
			Path:     path,
			Bearings: bearings,
			Center:   geospatial.Midpoint(path),
			Bounds:   geospatial.PathBounds(path),
		})
	}
}

// QuoteHandler prices a flight for the session.
func QuoteHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req domain.QuoteRequest
		if err := c.BodyParser(&req); err != nil {
			return errBadRequest(c, "invalid request body")
		}

		q, err := deps.Flights.Quote(c.UserContext(), sessionID(c), req)
		if err != nil {
			return errFromDomain(c, err)
		}

		metrics.QuotesComputed.WithLabelValues(q.Airline, string(q.FlightType)).Inc()
		return c.JSON(q)
	}
}

// GetSettingsHandler returns the session preferences.
func GetSettingsHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		s, err := deps.Settings.Get(c.UserContext(), sessionID(c))
		if err != nil {
			return errFromDomain(c, err)
		}
		return c.JSON(s)
	}
}

// PatchSettingsHandler applies a partial settings update.
func PatchSettingsHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var patch domain.SettingsPatch
		if err := c.BodyParser(&patch); err != nil {
			return errBadRequest(c, "invalid request body")
		}

		s, err := deps.Settings.Update(c.UserContext(), sessionID(c), patch)
		if err != nil {
			return errFromDomain(c, err)
		}
		return c.JSON(s)
	}
}

// ListHistoryHandler returns the session's recent searches.
func ListHistoryHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		h, err := deps.History.List(c.UserContext(), sessionID(c))
		if err != nil {
			return errFromDomain(c, err)
		}
		return c.JSON(h)
	}
}

// ClearHistoryHandler forgets the session's searches.
func ClearHistoryHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := deps.History.Clear(c.UserContext(), sessionID(c)); err != nil {
			return errFromDomain(c, err)
		}
		return c.SendStatus(fiber.StatusNoContent)
	}
}

// ReplayHistoryHandler re-quotes the search at :index.
func ReplayHistoryHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		index, err := c.ParamsInt("index")
		if err != nil || index < 0 {
			return errBadRequest(c, "index must be a non-negative integer")
		}

		q, err := deps.Flights.Replay(c.UserContext(), sessionID(c), index)
		if err != nil {
			return errFromDomain(c, err)
		}

		metrics.QuotesComputed.WithLabelValues(q.Airline, string(q.FlightType)).Inc()
		return c.JSON(q)
	}
}

// BriefingHandler returns weather, local time, exchange rate, sights and
// tips for a destination. Parts that could not be fetched are listed in
// the errors field; the response is still 200.
func BriefingHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		b, err := deps.Briefings.Briefing(c.UserContext(), sessionID(c), c.Params("key"))
		if err != nil {
			return errFromDomain(c, err)
		}
		return c.JSON(b)
	}
}

// PlaceSearchHandler geocodes ?q.
func PlaceSearchHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		q := strings.TrimSpace(c.Query("q"))
		if q == "" {
			return errBadRequest(c, "q query parameter is required")
		}
		if len(q) > maxQueryLen {
			return errBadRequest(c, "query too long (max 200 characters)")
		}

		place, err := deps.Places.Search(c.UserContext(), q)
		if err != nil {
			return errFromDomain(c, err)
		}
		return c.JSON(place)
	}
}
