package handler

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hbnb-api/internal/model"
)

// TimeLayout is the wire format of created_at and updated_at.
const TimeLayout = "2006-01-02T15:04:05.000000"

func stamp(t time.Time) string { return t.UTC().Format(TimeLayout) }

type recordResponse struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func toRecord(r model.Record) recordResponse {
	return recordResponse{ID: r.ID, CreatedAt: stamp(r.CreatedAt), UpdatedAt: stamp(r.UpdatedAt)}
}

// userResponse leaves the password hash out.
type userResponse struct {
	recordResponse
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

func toUser(u *model.User) userResponse {
	return userResponse{recordResponse: toRecord(u.Record), FirstName: u.FirstName, LastName: u.LastName, Email: u.Email}
}

type countryResponse struct {
	recordResponse
	Name        string `json:"name"`
	CountryCode string `json:"country_code"`
}

func toCountry(c *model.Country) countryResponse {
	return countryResponse{recordResponse: toRecord(c.Record), Name: c.Name, CountryCode: c.Code}
}

type cityResponse struct {
	recordResponse
	Name      string `json:"name"`
	CountryID string `json:"country_id"`
}

func toCity(c *model.City) cityResponse {
	return cityResponse{recordResponse: toRecord(c.Record), Name: c.Name, CountryID: c.CountryID}
}

type amenityResponse struct {
	recordResponse
	Name string `json:"name"`
}

func toAmenity(a *model.Amenity) amenityResponse {
	return amenityResponse{recordResponse: toRecord(a.Record), Name: a.Name}
}

type placeResponse struct {
	recordResponse
	CityID            string  `json:"city_id"`
	HostID            string  `json:"host_id"`
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	Address           string  `json:"address"`
	NumberOfRooms     int     `json:"number_of_rooms"`
	NumberOfBathrooms int     `json:"number_of_bathrooms"`
	MaxGuests         int     `json:"max_guests"`
	PricePerNight     int     `json:"price_per_night"`
	Latitude          float64 `json:"latitude"`
	Longitude         float64 `json:"longitude"`
}

func toPlace(p *model.Place) placeResponse {
	return placeResponse{
		recordResponse:    toRecord(p.Record),
		CityID:            p.CityID,
		HostID:            p.HostID,
		Name:              p.Name,
		Description:       p.Description,
		Address:           p.Address,
		NumberOfRooms:     p.NumberOfRooms,
		NumberOfBathrooms: p.NumberOfBathrooms,
		MaxGuests:         p.MaxGuests,
		PricePerNight:     p.PricePerNight,
		Latitude:          p.Latitude,
		Longitude:         p.Longitude,
	}
}

type reviewResponse struct {
	recordResponse
	PlaceID string `json:"place_id"`
	UserID  string `json:"user_id"`
	Comment string `json:"comment"`
	Rating  int    `json:"rating"`
}

func toReview(r *model.Review) reviewResponse {
	return reviewResponse{recordResponse: toRecord(r.Record), PlaceID: r.PlaceID, UserID: r.UserID, Comment: r.Comment, Rating: r.Rating}
}

type placeAmenityResponse struct {
	recordResponse
	PlaceID   string `json:"place_id"`
	AmenityID string `json:"amenity_id"`
}

func toPlaceAmenity(pa *model.PlaceAmenity) placeAmenityResponse {
	return placeAmenityResponse{recordResponse: toRecord(pa.Record), PlaceID: pa.PlaceID, AmenityID: pa.AmenityID}
}

// items wraps a list in the {"items": [...]} envelope.
func items[T, R any](xs []T, f func(T) R) echo.Map {
	out := make([]R, 0, len(xs))
	for _, x := range xs {
		out = append(out, f(x))
	}
	return echo.Map{"items": out}
}
