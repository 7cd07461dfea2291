package usecases

import (
	"github.com/samirrijal/flyworld/internal/core/domain"
	"github.com/samirrijal/flyworld/internal/core/ports"
)

// CountryService exposes the selectable countries and airlines.
type CountryService struct {
	catalog ports.CountryCatalog
}

// NewCountryService creates a new CountryService.
func NewCountryService(catalog ports.CountryCatalog) *CountryService {
	return &CountryService{catalog: catalog}
}

// List returns every country named in lang, sorted by name.
func (s *CountryService) List(lang string) []domain.Country {
	return s.catalog.List(lang)
}

// Get returns a single country named in lang.
func (s *CountryService) Get(key, lang string) (domain.Country, error) {
	return s.catalog.Get(key, lang)
}

// Airlines returns every airline tier.
func (s *CountryService) Airlines() []domain.Airline {
	return s.catalog.Airlines()
}
