// Package catalog serves the static country and airline tables embedded in
// the binary.
package catalog

import (
	"embed"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/samirrijal/flyworld/internal/core/domain"
)

//go:embed data/countries.csv data/translations.json
var files embed.FS

// Catalog implements ports.CountryCatalog over in-memory tables.
type Catalog struct {
	countries    map[string]domain.Country // keyed by lower-cased key
	translations map[string]map[string]string
}

// Load parses the embedded country and translation tables.
func Load() (*Catalog, error) {
	f, err := files.Open("data/countries.csv")
	if err != nil {
		return nil, fmt.Errorf("open countries: %w", err)
	}
	defer f.Close()

	countries, err := ParseCountries(f)
	if err != nil {
		return nil, err
	}

	raw, err := files.ReadFile("data/translations.json")
	if err != nil {
		return nil, fmt.Errorf("open translations: %w", err)
	}
	var translations map[string]map[string]string
	if err := json.Unmarshal(raw, &translations); err != nil {
		return nil, fmt.Errorf("decode translations: %w", err)
	}

	return New(countries, translations), nil
}

// New builds a catalog from already parsed tables.
func New(countries []domain.Country, translations map[string]map[string]string) *Catalog {
	c := &Catalog{
		countries:    make(map[string]domain.Country, len(countries)),
		translations: translations,
	}
	for _, country := range countries {
		c.countries[strings.ToLower(country.Key)] = country
	}
	return c
}

// ParseCountries reads a country,lat,lon[,currency] CSV. Header names are
// normalized, and rows with the wrong column count or unparsable
// coordinates are skipped.
func ParseCountries(r io.Reader) ([]domain.Country, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.NewReplacer(`"`, "", ",", "", "\ufeff", "").Replace(h)
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"country", "lat", "lon"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("countries CSV is missing column %q", required)
		}
	}

	var out []domain.Country
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV: %w", err)
		}
		if len(record) != len(header) {
			continue
		}

		field := func(name string) string {
			if i, ok := cols[name]; ok {
				return strings.TrimSpace(record[i])
			}
			return ""
		}

		key := field("country")
		lat, errLat := strconv.ParseFloat(field("lat"), 64)
		lon, errLon := strconv.ParseFloat(field("lon"), 64)
		if key == "" || errLat != nil || errLon != nil {
			continue
		}

		out = append(out, domain.Country{
			Key:      key,
			Name:     key,
			Location: domain.GeoPoint{Lat: lat, Lon: lon},
			Currency: strings.ToUpper(field("currency")),
		})
	}
	return out, nil
}

// List returns every country with its name in lang, sorted by that name.
func (c *Catalog) List(lang string) []domain.Country {
	out := make([]domain.Country, 0, len(c.countries))
	for _, country := range c.countries {
		country.Name = c.name(country.Key, lang)
		out = append(out, country)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Get returns the country for key, matched case-insensitively.
func (c *Catalog) Get(key, lang string) (domain.Country, error) {
	country, ok := c.countries[strings.ToLower(strings.TrimSpace(key))]
	if !ok {
		return domain.Country{}, fmt.Errorf("country %q: %w", key, domain.ErrNotFound)
	}
	country.Name = c.name(country.Key, lang)
	return country, nil
}

// Airline returns the airline tier for key.
func (c *Catalog) Airline(key string) (domain.Airline, error) {
	for _, a := range airlines {
		if a.Key == key {
			return a, nil
		}
	}
	return domain.Airline{}, fmt.Errorf("airline %q: %w", key, domain.ErrNotFound)
}

// Airlines returns every airline tier.
func (c *Catalog) Airlines() []domain.Airline {
	out := make([]domain.Airline, len(airlines))
	copy(out, airlines)
	return out
}

func (c *Catalog) name(key, lang string) string {
	if n, ok := c.translations[lang][key]; ok {
		return n
	}
	return key
}
