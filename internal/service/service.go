// Package service implements the entity operations exposed over HTTP.  It
// validates input through the model constructors, persists through whichever
// repository.Store it was given and publishes a change event after every
// successful write.
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/iliyamo/hbnb-api/internal/model"
	"github.com/iliyamo/hbnb-api/internal/queue"
	"github.com/iliyamo/hbnb-api/internal/repository"
)

// Fields each kind accepts on update.  Anything else in the request body is
// ignored.
var (
	UserUpdatable    = []string{"first_name", "last_name"}
	CountryUpdatable = []string{"name"}
	CityUpdatable    = []string{"name"}
	AmenityUpdatable = []string{"name"}
	PlaceUpdatable   = model.PlaceFields
	ReviewUpdatable  = []string{"comment", "rating"}
)

const publishTimeout = 3 * time.Second

// Service is safe for concurrent use; all shared state lives in the store.
type Service struct {
	store  repository.Store
	events queue.Publisher
	hash   model.PasswordHasher
	logger *slog.Logger
}

// New wires a Service.  A nil publisher disables events.
func New(store repository.Store, events queue.Publisher, hash model.PasswordHasher, logger *slog.Logger) *Service {
	if events == nil {
		events = queue.NopPublisher{}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, events: events, hash: hash, logger: logger}
}

// add persists a freshly constructed record.  err is the constructor error
// so call sites stay one line.
func (s *Service) add(ctx context.Context, e model.Entity, err error) (model.Entity, error) {
	if err != nil {
		return nil, err
	}
	saved, err := s.store.Add(ctx, e)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, queue.EventCreated, saved)
	return saved, nil
}

func (s *Service) update(ctx context.Context, kind model.Kind, id string, changes model.Attrs, allowed []string) (model.Entity, error) {
	saved, err := s.store.Update(ctx, kind, id, changes, allowed)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, queue.EventUpdated, saved)
	return saved, nil
}

// publish never fails the write it reports on.
func (s *Service) publish(ctx context.Context, typ string, e model.Entity) {
	_, at := e.Timestamps()
	ev := queue.EntityEvent{Type: typ, Kind: string(e.Kind()), ID: e.Key(), At: at}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()
	if err := s.events.Publish(ctx, ev); err != nil {
		s.logger.Warn("entity event not published", "type", typ, "kind", ev.Kind, "id", ev.ID, "error", err)
	}
}

func get[T model.Entity](ctx context.Context, store repository.Store, kind model.Kind, id string) (T, error) {
	var zero T
	e, err := store.Get(ctx, kind, id)
	if err != nil {
		return zero, err
	}
	return e.(T), nil
}

func all[T model.Entity](ctx context.Context, store repository.Store, kind model.Kind) ([]T, error) {
	es, err := store.All(ctx, kind)
	if err != nil {
		return nil, err
	}
	return cast[T](es), nil
}

func findBy[T model.Entity](ctx context.Context, store repository.Store, kind model.Kind, field, value string) ([]T, error) {
	es, err := store.FindBy(ctx, kind, field, value)
	if err != nil {
		return nil, err
	}
	return cast[T](es), nil
}

func cast[T model.Entity](es []model.Entity) []T {
	out := make([]T, 0, len(es))
	for _, e := range es {
		out = append(out, e.(T))
	}
	return out
}

func as[T model.Entity](e model.Entity, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	return e.(T), nil
}
