package service

import (
	"context"

	"github.com/iliyamo/hbnb-api/internal/model"
)

func (s *Service) CreateUser(ctx context.Context, a model.Attrs) (*model.User, error) {
	u, err := model.NewUser(a, s.hash)
	return as[*model.User](s.add(ctx, u, err))
}

func (s *Service) GetUser(ctx context.Context, id string) (*model.User, error) {
	return get[*model.User](ctx, s.store, model.KindUser, id)
}

func (s *Service) ListUsers(ctx context.Context) ([]*model.User, error) {
	return all[*model.User](ctx, s.store, model.KindUser)
}

func (s *Service) UpdateUser(ctx context.Context, id string, changes model.Attrs) (*model.User, error) {
	return as[*model.User](s.update(ctx, model.KindUser, id, changes, UserUpdatable))
}

// UserPlaces lists the places hosted by the user.
func (s *Service) UserPlaces(ctx context.Context, id string) ([]*model.Place, error) {
	if _, err := s.GetUser(ctx, id); err != nil {
		return nil, err
	}
	return findBy[*model.Place](ctx, s.store, model.KindPlace, "host_id", id)
}

// UserReviews lists the reviews written by the user.
func (s *Service) UserReviews(ctx context.Context, id string) ([]*model.Review, error) {
	if _, err := s.GetUser(ctx, id); err != nil {
		return nil, err
	}
	return findBy[*model.Review](ctx, s.store, model.KindReview, "user_id", id)
}
