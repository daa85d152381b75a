package service

import (
	"context"

	"github.com/iliyamo/hbnb-api/internal/model"
)

func (s *Service) CreateAmenity(ctx context.Context, a model.Attrs) (*model.Amenity, error) {
	am, err := model.NewAmenity(a)
	return as[*model.Amenity](s.add(ctx, am, err))
}

func (s *Service) GetAmenity(ctx context.Context, id string) (*model.Amenity, error) {
	return get[*model.Amenity](ctx, s.store, model.KindAmenity, id)
}

func (s *Service) ListAmenities(ctx context.Context) ([]*model.Amenity, error) {
	return all[*model.Amenity](ctx, s.store, model.KindAmenity)
}

func (s *Service) UpdateAmenity(ctx context.Context, id string, changes model.Attrs) (*model.Amenity, error) {
	return as[*model.Amenity](s.update(ctx, model.KindAmenity, id, changes, AmenityUpdatable))
}

// AmenityPlaces lists the places offering the amenity, in link order.
func (s *Service) AmenityPlaces(ctx context.Context, id string) ([]*model.Place, error) {
	if _, err := s.GetAmenity(ctx, id); err != nil {
		return nil, err
	}
	links, err := findBy[*model.PlaceAmenity](ctx, s.store, model.KindPlaceAmenity, "amenity_id", id)
	if err != nil {
		return nil, err
	}
	out := make([]*model.Place, 0, len(links))
	for _, l := range links {
		p, err := get[*model.Place](ctx, s.store, model.KindPlace, l.PlaceID)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
