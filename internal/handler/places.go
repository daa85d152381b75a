package handler

import (
	"net/http" // http provides status code constants

	"github.com/labstack/echo/v4" // echo defines request context types
)

func (h *Handler) ListPlaces(c echo.Context) error {
	places, err := h.svc.ListPlaces(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, items(places, toPlace))
}

// CreatePlace handles POST /api/v1/places.  Every place field is required;
// city_id and host_id must name existing records.
func (h *Handler) CreatePlace(c echo.Context) error {
	attrs, err := readAttrs(c) // decode the JSON body
	if err != nil {
		return h.fail(c, err)
	}
	p, err := h.svc.CreatePlace(c.Request().Context(), attrs) // validate all eleven fields
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, toPlace(p))
}

func (h *Handler) GetPlace(c echo.Context) error {
	p, err := h.svc.GetPlace(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, toPlace(p))
}

func (h *Handler) UpdatePlace(c echo.Context) error {
	attrs, err := readAttrs(c)
	if err != nil {
		return h.fail(c, err)
	}
	p, err := h.svc.UpdatePlace(c.Request().Context(), c.Param("id"), attrs)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, toPlace(p))
}

// PlaceHost handles GET /api/v1/places/:id/user
func (h *Handler) PlaceHost(c echo.Context) error {
	u, err := h.svc.PlaceHost(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, toUser(u))
}

// PlaceCity handles GET /api/v1/places/:id/city
func (h *Handler) PlaceCity(c echo.Context) error {
	city, err := h.svc.PlaceCity(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, toCity(city))
}

// PlaceReviews handles GET /api/v1/places/:id/reviews
func (h *Handler) PlaceReviews(c echo.Context) error {
	reviews, err := h.svc.PlaceReviews(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, items(reviews, toReview))
}

// PlaceAmenities handles GET /api/v1/places/:id/amenities
func (h *Handler) PlaceAmenities(c echo.Context) error {
	amenities, err := h.svc.PlaceAmenities(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, items(amenities, toAmenity))
}

// AddPlaceAmenity handles POST /api/v1/places/:id/amenities/:amenity_id.  No
// body is read; the pair comes from the path.
func (h *Handler) AddPlaceAmenity(c echo.Context) error {
	link, err := h.svc.AddPlaceAmenity(c.Request().Context(), c.Param("id"), c.Param("amenity_id")) // 404 for either side missing, 409 if already linked
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, toPlaceAmenity(link))
}
