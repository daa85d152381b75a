package stubs

import (
	"maps"

	"github.com/brianvoe/gofakeit/v6"

	"github.com/iliyamo/hbnb-api/internal/model"
)

// AttrsStub builds request attributes for a model constructor.  Each With*
// call returns a modified copy.
type AttrsStub struct {
	attrs model.Attrs
}

func (s AttrsStub) With(field string, value any) AttrsStub {
	next := maps.Clone(s.attrs)
	next[field] = value
	return AttrsStub{attrs: next}
}

func (s AttrsStub) Without(field string) AttrsStub {
	next := maps.Clone(s.attrs)
	delete(next, field)
	return AttrsStub{attrs: next}
}

func (s AttrsStub) WithName(name string) AttrsStub { return s.With("name", name) }

func (s AttrsStub) Get() model.Attrs { return maps.Clone(s.attrs) }

// Name returns a random value accepted by the name validator.
func Name(prefix string) string {
	return prefix + " " + gofakeit.LetterN(10)
}

func NewUserStub() AttrsStub {
	return AttrsStub{attrs: model.Attrs{
		"first_name": Name("First"),
		"last_name":  Name("Last"),
		"email":      gofakeit.Email(),
		"password":   gofakeit.Password(true, true, true, false, false, 12),
	}}
}

func NewCountryStub() AttrsStub {
	return AttrsStub{attrs: model.Attrs{
		"name":         Name("Country"),
		"country_code": gofakeit.LetterN(2),
	}}
}

func NewCityStub(countryID string) AttrsStub {
	return AttrsStub{attrs: model.Attrs{
		"name":       Name("City"),
		"country_id": countryID,
	}}
}

func NewAmenityStub() AttrsStub {
	return AttrsStub{attrs: model.Attrs{"name": Name("Amenity")}}
}

func NewPlaceStub(cityID, hostID string) AttrsStub {
	return AttrsStub{attrs: model.Attrs{
		"city_id":             cityID,
		"host_id":             hostID,
		"name":                Name("Place"),
		"description":         gofakeit.Sentence(8),
		"address":             gofakeit.Street(),
		"number_of_rooms":     float64(gofakeit.Number(0, 8)),
		"number_of_bathrooms": float64(gofakeit.Number(0, 4)),
		"max_guests":          float64(gofakeit.Number(1, 12)),
		"price_per_night":     float64(gofakeit.Number(20, 500)),
		"latitude":            gofakeit.Latitude(),
		"longitude":           gofakeit.Longitude(),
	}}
}

func NewReviewStub(placeID, userID string) AttrsStub {
	return AttrsStub{attrs: model.Attrs{
		"place_id": placeID,
		"user_id":  userID,
		"comment":  "Lovely place with " + gofakeit.Word() + " and " + gofakeit.Word(),
		"rating":   float64(gofakeit.Number(0, 5)),
	}}
}
