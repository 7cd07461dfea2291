package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"

	"github.com/samirrijal/flyworld/internal/core/domain"
	"github.com/samirrijal/flyworld/internal/pkg/i18n"
	"github.com/samirrijal/flyworld/internal/pkg/metrics"
)

const sessionCtxKey ctxKey = "session"

func sessionFromCtx(ctx context.Context) string {
	sid, _ := ctx.Value(sessionCtxKey).(string)
	return sid
}

// langArg reads an optional lang argument, defaulting to English.
func langArg(p graphql.ResolveParams) (string, error) {
	lang, _ := p.Args["lang"].(string)
	if lang == "" {
		return i18n.DefaultLanguage, nil
	}
	if !i18n.IsSupported(lang) {
		return "", domain.Invalid("unsupported language %q", lang)
	}
	return lang, nil
}

// buildSchema creates the GraphQL schema wired to our services.
func buildSchema(deps *Dependencies) (graphql.Schema, error) {
	geoPointType := graphql.NewObject(graphql.ObjectConfig{
		Name: "GeoPoint",
		Fields: graphql.Fields{
			"lat": &graphql.Field{Type: graphql.Float},
			"lon": &graphql.Field{Type: graphql.Float},
		},
	})

	countryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Country",
		Fields: graphql.Fields{
			"key":      &graphql.Field{Type: graphql.String},
			"name":     &graphql.Field{Type: graphql.String},
			"location": &graphql.Field{Type: geoPointType},
			"currency": &graphql.Field{Type: graphql.String},
		},
	})

	airlineType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Airline",
		Fields: graphql.Fields{
			"key":              &graphql.Field{Type: graphql.String},
			"label":            &graphql.Field{Type: graphql.String},
			"price_multiplier": &graphql.Field{Type: graphql.Float},
			"speed_kmh":        &graphql.Field{Type: graphql.Float},
			"marker_icon":      &graphql.Field{Type: graphql.String},
		},
	})

	quoteType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Quote",
		Fields: graphql.Fields{
			"origin":           &graphql.Field{Type: countryType},
			"destination":      &graphql.Field{Type: countryType},
			"class":            &graphql.Field{Type: graphql.String},
			"season":           &graphql.Field{Type: graphql.String},
			"airline":          &graphql.Field{Type: graphql.String},
			"airline_label":    &graphql.Field{Type: graphql.String},
			"flight_type":      &graphql.Field{Type: graphql.String},
			"distance_km":      &graphql.Field{Type: graphql.Float},
			"distance":         &graphql.Field{Type: graphql.Float},
			"distance_unit":    &graphql.Field{Type: graphql.String},
			"duration_hours":   &graphql.Field{Type: graphql.Int},
			"duration_minutes": &graphql.Field{Type: graphql.Int},
			"currency":         &graphql.Field{Type: graphql.String},
			"currency_symbol":  &graphql.Field{Type: graphql.String},
			"summary":          &graphql.Field{Type: graphql.NewList(graphql.String)},
			"price_usd": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*domain.FlightQuote).PriceUSD.StringFixed(2), nil
				},
			},
			"price": &graphql.Field{
				Type: graphql.String,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return p.Source.(*domain.FlightQuote).Price.StringFixed(2), nil
				},
			},
		},
	})

	langArgs := graphql.FieldConfigArgument{
		"lang": &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: i18n.DefaultLanguage},
	}

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"countries": &graphql.Field{
				Type:        graphql.NewList(countryType),
				Description: "List selectable countries sorted by localized name",
				Args:        langArgs,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					lang, err := langArg(p)
					if err != nil {
						return nil, err
					}
					return deps.Countries.List(lang), nil
				},
			},
			"country": &graphql.Field{
				Type:        countryType,
				Description: "Get a country by key",
				Args: graphql.FieldConfigArgument{
					"key":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"lang": &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: i18n.DefaultLanguage},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					lang, err := langArg(p)
					if err != nil {
						return nil, err
					}
					return deps.Countries.Get(p.Args["key"].(string), lang)
				},
			},
			"airlines": &graphql.Field{
				Type:        graphql.NewList(airlineType),
				Description: "List airline tiers",
				Args:        langArgs,
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					lang, err := langArg(p)
					if err != nil {
						return nil, err
					}
					var views []AirlineView
					for _, a := range deps.Countries.Airlines() {
						views = append(views, AirlineView{
							Key:             a.Key,
							Label:           a.Label(lang),
							PriceMultiplier: a.PriceMultiplier,
							SpeedKmh:        a.SpeedKmh,
							MarkerIcon:      a.MarkerIcon,
						})
					}
					return views, nil
				},
			},
			"distance": &graphql.Field{
				Type:        graphql.Float,
				Description: "Great-circle distance between two countries in km",
				Args: graphql.FieldConfigArgument{
					"from": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"to":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					return deps.Flights.Distance(p.Args["from"].(string), p.Args["to"].(string))
				},
			},
			"path": &graphql.Field{
				Type:        graphql.NewList(geoPointType),
				Description: "Great-circle path between two countries",
				Args: graphql.FieldConfigArgument{
					"from":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"to":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"steps": &graphql.ArgumentConfig{Type: graphql.Int, DefaultValue: 0},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					path, err := deps.Flights.Path(p.Args["from"].(string), p.Args["to"].(string), p.Args["steps"].(int))
					if err != nil {
						return nil, err
					}
					return []domain.GeoPoint(path), nil
				},
			},
		},
	})

	mutationType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"quote": &graphql.Field{
				Type:        quoteType,
				Description: "Price a flight and record it in the session history",
				Args: graphql.FieldConfigArgument{
					"origin":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"destination":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"class":         &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"season":        &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"airline":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"currency":      &graphql.ArgumentConfig{Type: graphql.String},
					"distance_unit": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					req := domain.QuoteRequest{
						Origin:      p.Args["origin"].(string),
						Destination: p.Args["destination"].(string),
						Class:       domain.FlightClass(p.Args["class"].(string)),
						Season:      domain.Season(p.Args["season"].(string)),
						Airline:     p.Args["airline"].(string),
					}
					req.Currency, _ = p.Args["currency"].(string)
					req.DistanceUnit, _ = p.Args["distance_unit"].(string)

					q, err := deps.Flights.Quote(p.Context, sessionFromCtx(p.Context), req)
					if err != nil {
						return nil, err
					}
					metrics.QuotesComputed.WithLabelValues(q.Airline, string(q.FlightType)).Inc()
					return q, nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    queryType,
		Mutation: mutationType,
	})
}

// GraphQLHandler serves the GraphQL endpoint.
func GraphQLHandler(deps *Dependencies) fiber.Handler {
	schema, err := buildSchema(deps)
	if err != nil {
		// This would be a programming error in the schema definition
		panic("graphql schema build: " + err.Error())
	}

	type gqlRequest struct {
		Query         string                 `json:"query"`
		OperationName string                 `json:"operationName"`
		Variables     map[string]interface{} `json:"variables"`
	}

	return func(c *fiber.Ctx) error {
		var req gqlRequest
		if err := c.BodyParser(&req); err != nil {
			return errBadRequest(c, "invalid request body")
		}

		ctx := context.WithValue(c.UserContext(), sessionCtxKey, sessionID(c))
		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			VariableValues: req.Variables,
			OperationName:  req.OperationName,
			Context:        ctx,
		})

		return c.JSON(result)
	}
}
