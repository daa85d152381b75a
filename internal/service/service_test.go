package service_test

import (
	"context"
	"errors"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/iliyamo/hbnb-api/internal/model"
	"github.com/iliyamo/hbnb-api/internal/queue"
	"github.com/iliyamo/hbnb-api/internal/repository"
	"github.com/iliyamo/hbnb-api/internal/service"
	"github.com/iliyamo/hbnb-api/internal/testutil/stubs"
	"github.com/iliyamo/hbnb-api/internal/utils"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []queue.EntityEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, ev queue.EntityEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return p.err
}

func (p *recordingPublisher) Events() []queue.EntityEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]queue.EntityEvent(nil), p.events...)
}

var _ = Describe("Service", func() {
	var (
		svc       *service.Service
		publisher *recordingPublisher
		ctx       context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		store, err := repository.NewFileStore("", nil)
		Expect(err).NotTo(HaveOccurred())
		publisher = &recordingPublisher{}
		svc = service.New(store, publisher, utils.Hasher(4), nil)
	})

	// seed builds country -> city -> place hosted by a user, plus an amenity.
	seed := func() (*model.Country, *model.City, *model.User, *model.Place, *model.Amenity) {
		country, err := svc.CreateCountry(ctx, stubs.NewCountryStub().With("country_code", "fr").Get())
		Expect(err).NotTo(HaveOccurred())
		city, err := svc.CreateCity(ctx, stubs.NewCityStub(country.ID).Get())
		Expect(err).NotTo(HaveOccurred())
		host, err := svc.CreateUser(ctx, stubs.NewUserStub().Get())
		Expect(err).NotTo(HaveOccurred())
		place, err := svc.CreatePlace(ctx, stubs.NewPlaceStub(city.ID, host.ID).Get())
		Expect(err).NotTo(HaveOccurred())
		amenity, err := svc.CreateAmenity(ctx, stubs.NewAmenityStub().Get())
		Expect(err).NotTo(HaveOccurred())
		return country, city, host, place, amenity
	}

	Context("when creating users", func() {
		It("stores a bcrypt hash of the password", func() {
			u, err := svc.CreateUser(ctx, stubs.NewUserStub().With("password", "hunter22").Get())

			Expect(err).NotTo(HaveOccurred())
			Expect(u.PasswordHash).NotTo(Equal("hunter22"))
			Expect(utils.VerifyPassword(u.PasswordHash, "hunter22")).To(BeTrue())
		})

		It("rejects a second user with the same email", func() {
			attrs := stubs.NewUserStub().With("email", "dup@example.com").Get()
			_, err := svc.CreateUser(ctx, attrs)
			Expect(err).NotTo(HaveOccurred())

			_, err = svc.CreateUser(ctx, stubs.NewUserStub().With("email", "DUP@example.com").Get())

			Expect(err).To(MatchError(repository.ErrConflict))
			users, err := svc.ListUsers(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(users).To(HaveLen(1))
		})

		It("ignores email changes on update", func() {
			u, err := svc.CreateUser(ctx, stubs.NewUserStub().Get())
			Expect(err).NotTo(HaveOccurred())

			updated, err := svc.UpdateUser(ctx, u.ID, model.Attrs{"first_name": "Grace", "email": "new@example.com"})

			Expect(err).NotTo(HaveOccurred())
			Expect(updated.FirstName).To(Equal("Grace"))
			Expect(updated.Email).To(Equal(u.Email))
		})
	})

	Context("when addressing countries by code", func() {
		It("finds a country regardless of case", func() {
			country, _, _, _, _ := seed()

			got, err := svc.GetCountryByCode(ctx, "Fr")

			Expect(err).NotTo(HaveOccurred())
			Expect(got.ID).To(Equal(country.ID))
		})

		It("reports an unknown code as not found", func() {
			_, err := svc.GetCountryByCode(ctx, "ZZ")

			Expect(err).To(MatchError(repository.ErrNotFound))
		})

		It("updates the name but never the code", func() {
			seed()

			got, err := svc.UpdateCountry(ctx, "FR", model.Attrs{"name": "France", "country_code": "DE"})

			Expect(err).NotTo(HaveOccurred())
			Expect(got.Name).To(Equal("France"))
			Expect(got.Code).To(Equal("FR"))
		})

		It("lists the cities of a country", func() {
			_, city, _, _, _ := seed()

			cities, err := svc.CountryCities(ctx, "fr")

			Expect(err).NotTo(HaveOccurred())
			Expect(cities).To(HaveLen(1))
			Expect(cities[0].ID).To(Equal(city.ID))
		})
	})

	Context("when traversing relations", func() {
		It("follows every foreign key of a place", func() {
			country, city, host, place, _ := seed()

			gotHost, err := svc.PlaceHost(ctx, place.ID)
			Expect(err).NotTo(HaveOccurred())
			gotCity, err := svc.PlaceCity(ctx, place.ID)
			Expect(err).NotTo(HaveOccurred())
			gotCountry, err := svc.CityCountry(ctx, city.ID)
			Expect(err).NotTo(HaveOccurred())
			cityPlaces, err := svc.CityPlaces(ctx, city.ID)
			Expect(err).NotTo(HaveOccurred())
			userPlaces, err := svc.UserPlaces(ctx, host.ID)
			Expect(err).NotTo(HaveOccurred())

			Expect(gotHost.ID).To(Equal(host.ID))
			Expect(gotCity.ID).To(Equal(city.ID))
			Expect(gotCountry.ID).To(Equal(country.ID))
			Expect(cityPlaces).To(HaveLen(1))
			Expect(userPlaces).To(HaveLen(1))
		})

		It("links reviews to their place and author", func() {
			_, _, host, place, _ := seed()
			guest, err := svc.CreateUser(ctx, stubs.NewUserStub().Get())
			Expect(err).NotTo(HaveOccurred())
			review, err := svc.CreateReview(ctx, stubs.NewReviewStub(place.ID, guest.ID).With("rating", 4.0).Get())
			Expect(err).NotTo(HaveOccurred())

			placeReviews, err := svc.PlaceReviews(ctx, place.ID)
			Expect(err).NotTo(HaveOccurred())
			guestReviews, err := svc.UserReviews(ctx, guest.ID)
			Expect(err).NotTo(HaveOccurred())
			hostReviews, err := svc.UserReviews(ctx, host.ID)
			Expect(err).NotTo(HaveOccurred())
			author, err := svc.ReviewUser(ctx, review.ID)
			Expect(err).NotTo(HaveOccurred())
			reviewed, err := svc.ReviewPlace(ctx, review.ID)
			Expect(err).NotTo(HaveOccurred())

			Expect(placeReviews).To(HaveLen(1))
			Expect(guestReviews).To(HaveLen(1))
			Expect(hostReviews).To(BeEmpty())
			Expect(author.ID).To(Equal(guest.ID))
			Expect(reviewed.ID).To(Equal(place.ID))
		})

		It("reports traversals from unknown records as not found", func() {
			_, err := svc.CityPlaces(ctx, "missing")
			Expect(err).To(MatchError(repository.ErrNotFound))
			_, err = svc.PlaceAmenities(ctx, "missing")
			Expect(err).To(MatchError(repository.ErrNotFound))
			_, err = svc.ReviewUser(ctx, "missing")
			Expect(err).To(MatchError(repository.ErrNotFound))
		})
	})

	Context("when linking amenities", func() {
		It("links once and lists both directions", func() {
			_, _, _, place, amenity := seed()

			_, err := svc.AddPlaceAmenity(ctx, place.ID, amenity.ID)
			Expect(err).NotTo(HaveOccurred())
			_, err = svc.AddPlaceAmenity(ctx, place.ID, amenity.ID)
			Expect(err).To(MatchError(repository.ErrConflict))

			amenities, err := svc.PlaceAmenities(ctx, place.ID)
			Expect(err).NotTo(HaveOccurred())
			places, err := svc.AmenityPlaces(ctx, amenity.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(amenities).To(HaveLen(1))
			Expect(amenities[0].ID).To(Equal(amenity.ID))
			Expect(places).To(HaveLen(1))
			Expect(places[0].ID).To(Equal(place.ID))
		})

		It("refuses to link a missing amenity", func() {
			_, _, _, place, _ := seed()

			_, err := svc.AddPlaceAmenity(ctx, place.ID, "missing")

			var nf *repository.NotFoundError
			Expect(errors.As(err, &nf)).To(BeTrue())
			Expect(nf.Kind).To(Equal(model.KindAmenity))
		})
	})

	Context("when publishing events", func() {
		It("publishes one event per successful write", func() {
			c, err := svc.CreateAmenity(ctx, stubs.NewAmenityStub().Get())
			Expect(err).NotTo(HaveOccurred())
			_, err = svc.UpdateAmenity(ctx, c.ID, model.Attrs{"name": "Sauna"})
			Expect(err).NotTo(HaveOccurred())
			_, err = svc.CreateAmenity(ctx, model.Attrs{"name": "B4d"})
			Expect(err).To(HaveOccurred())

			events := publisher.Events()
			Expect(events).To(HaveLen(2))
			Expect(events[0].ID).To(Equal(c.ID))
			Expect(events[0].Kind).To(Equal("Amenity"))
			Expect(events[0].Type).To(Equal(queue.EventCreated))
			Expect(events[1].ID).To(Equal(c.ID))
			Expect(events[1].Type).To(Equal(queue.EventUpdated))
		})

		It("does not fail the write when publishing fails", func() {
			publisher.err = errors.New("broker down")

			_, err := svc.CreateAmenity(ctx, stubs.NewAmenityStub().Get())

			Expect(err).NotTo(HaveOccurred())
		})
	})
})
