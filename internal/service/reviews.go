package service

import (
	"context"

	"github.com/iliyamo/hbnb-api/internal/model"
)

func (s *Service) CreateReview(ctx context.Context, a model.Attrs) (*model.Review, error) {
	r, err := model.NewReview(a)
	return as[*model.Review](s.add(ctx, r, err))
}

func (s *Service) GetReview(ctx context.Context, id string) (*model.Review, error) {
	return get[*model.Review](ctx, s.store, model.KindReview, id)
}

func (s *Service) ListReviews(ctx context.Context) ([]*model.Review, error) {
	return all[*model.Review](ctx, s.store, model.KindReview)
}

func (s *Service) UpdateReview(ctx context.Context, id string, changes model.Attrs) (*model.Review, error) {
	return as[*model.Review](s.update(ctx, model.KindReview, id, changes, ReviewUpdatable))
}

// ReviewUser returns the author of the review.
func (s *Service) ReviewUser(ctx context.Context, id string) (*model.User, error) {
	r, err := s.GetReview(ctx, id)
	if err != nil {
		return nil, err
	}
	return get[*model.User](ctx, s.store, model.KindUser, r.UserID)
}

func (s *Service) ReviewPlace(ctx context.Context, id string) (*model.Place, error) {
	r, err := s.GetReview(ctx, id)
	if err != nil {
		return nil, err
	}
	return get[*model.Place](ctx, s.store, model.KindPlace, r.PlaceID)
}
