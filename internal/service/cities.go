package service

import (
	"context"

	"github.com/iliyamo/hbnb-api/internal/model"
)

func (s *Service) CreateCity(ctx context.Context, a model.Attrs) (*model.City, error) {
	c, err := model.NewCity(a)
	return as[*model.City](s.add(ctx, c, err))
}

func (s *Service) GetCity(ctx context.Context, id string) (*model.City, error) {
	return get[*model.City](ctx, s.store, model.KindCity, id)
}

func (s *Service) ListCities(ctx context.Context) ([]*model.City, error) {
	return all[*model.City](ctx, s.store, model.KindCity)
}

func (s *Service) UpdateCity(ctx context.Context, id string, changes model.Attrs) (*model.City, error) {
	return as[*model.City](s.update(ctx, model.KindCity, id, changes, CityUpdatable))
}

func (s *Service) CityCountry(ctx context.Context, id string) (*model.Country, error) {
	c, err := s.GetCity(ctx, id)
	if err != nil {
		return nil, err
	}
	return get[*model.Country](ctx, s.store, model.KindCountry, c.CountryID)
}

func (s *Service) CityPlaces(ctx context.Context, id string) ([]*model.Place, error) {
	if _, err := s.GetCity(ctx, id); err != nil {
		return nil, err
	}
	return findBy[*model.Place](ctx, s.store, model.KindPlace, "city_id", id)
}
