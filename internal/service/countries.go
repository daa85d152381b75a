package service

import (
	"context"
	"strings"

	"github.com/iliyamo/hbnb-api/internal/model"
	"github.com/iliyamo/hbnb-api/internal/repository"
)

func (s *Service) CreateCountry(ctx context.Context, a model.Attrs) (*model.Country, error) {
	c, err := model.NewCountry(a)
	return as[*model.Country](s.add(ctx, c, err))
}

func (s *Service) ListCountries(ctx context.Context) ([]*model.Country, error) {
	return all[*model.Country](ctx, s.store, model.KindCountry)
}

// GetCountryByCode looks a country up by its two-letter code, ignoring case.
func (s *Service) GetCountryByCode(ctx context.Context, code string) (*model.Country, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	found, err := findBy[*model.Country](ctx, s.store, model.KindCountry, "country_code", code)
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, &repository.NotFoundError{Kind: model.KindCountry, ID: code}
	}
	return found[0], nil
}

// UpdateCountry changes the country addressed by code.  The code itself is
// not updatable.
func (s *Service) UpdateCountry(ctx context.Context, code string, changes model.Attrs) (*model.Country, error) {
	c, err := s.GetCountryByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return as[*model.Country](s.update(ctx, model.KindCountry, c.ID, changes, CountryUpdatable))
}

// CountryCities lists the cities of the country addressed by code.
func (s *Service) CountryCities(ctx context.Context, code string) ([]*model.City, error) {
	c, err := s.GetCountryByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return findBy[*model.City](ctx, s.store, model.KindCity, "country_id", c.ID)
}
