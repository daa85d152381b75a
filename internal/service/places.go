package service

import (
	"context"

	"github.com/iliyamo/hbnb-api/internal/model"
)

func (s *Service) CreatePlace(ctx context.Context, a model.Attrs) (*model.Place, error) {
	p, err := model.NewPlace(a)
	return as[*model.Place](s.add(ctx, p, err))
}

func (s *Service) GetPlace(ctx context.Context, id string) (*model.Place, error) {
	return get[*model.Place](ctx, s.store, model.KindPlace, id)
}

func (s *Service) ListPlaces(ctx context.Context) ([]*model.Place, error) {
	return all[*model.Place](ctx, s.store, model.KindPlace)
}

func (s *Service) UpdatePlace(ctx context.Context, id string, changes model.Attrs) (*model.Place, error) {
	return as[*model.Place](s.update(ctx, model.KindPlace, id, changes, PlaceUpdatable))
}

// PlaceHost returns the user hosting the place.
func (s *Service) PlaceHost(ctx context.Context, id string) (*model.User, error) {
	p, err := s.GetPlace(ctx, id)
	if err != nil {
		return nil, err
	}
	return get[*model.User](ctx, s.store, model.KindUser, p.HostID)
}

func (s *Service) PlaceCity(ctx context.Context, id string) (*model.City, error) {
	p, err := s.GetPlace(ctx, id)
	if err != nil {
		return nil, err
	}
	return get[*model.City](ctx, s.store, model.KindCity, p.CityID)
}

func (s *Service) PlaceReviews(ctx context.Context, id string) ([]*model.Review, error) {
	if _, err := s.GetPlace(ctx, id); err != nil {
		return nil, err
	}
	return findBy[*model.Review](ctx, s.store, model.KindReview, "place_id", id)
}

// PlaceAmenities lists the amenities linked to the place, in link order.
func (s *Service) PlaceAmenities(ctx context.Context, id string) ([]*model.Amenity, error) {
	if _, err := s.GetPlace(ctx, id); err != nil {
		return nil, err
	}
	links, err := findBy[*model.PlaceAmenity](ctx, s.store, model.KindPlaceAmenity, "place_id", id)
	if err != nil {
		return nil, err
	}
	out := make([]*model.Amenity, 0, len(links))
	for _, l := range links {
		a, err := get[*model.Amenity](ctx, s.store, model.KindAmenity, l.AmenityID)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// AddPlaceAmenity links an existing amenity to an existing place.  Either
// side missing is a not-found error; an existing link is a conflict.
func (s *Service) AddPlaceAmenity(ctx context.Context, placeID, amenityID string) (*model.PlaceAmenity, error) {
	if _, err := s.GetPlace(ctx, placeID); err != nil {
		return nil, err
	}
	if _, err := s.GetAmenity(ctx, amenityID); err != nil {
		return nil, err
	}
	link, err := model.NewPlaceAmenity(model.Attrs{"place_id": placeID, "amenity_id": amenityID})
	return as[*model.PlaceAmenity](s.add(ctx, link, err))
}
