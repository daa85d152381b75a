package handler

import (
	"net/http" // http provides status code constants

	"github.com/labstack/echo/v4" // echo defines request context types
)

// ListUsers handles GET /api/v1/users and returns every user
func (h *Handler) ListUsers(c echo.Context) error {
	users, err := h.svc.ListUsers(c.Request().Context()) // load all users ordered by creation
	if err != nil {                                      // storage failures become 500
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, items(users, toUser)) // wrap the list in the items envelope
}

// CreateUser handles POST /api/v1/users
func (h *Handler) CreateUser(c echo.Context) error {
	attrs, err := readAttrs(c) // decode the JSON body into loose attributes
	if err != nil {            // malformed body or wrong content type
		return h.fail(c, err)
	}
	u, err := h.svc.CreateUser(c.Request().Context(), attrs) // validate, hash and persist
	if err != nil {                                          // validation (400) or duplicate email (409)
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, toUser(u)) // 201 with the stored user, no password
}

// GetUser handles GET /api/v1/users/:id
func (h *Handler) GetUser(c echo.Context) error {
	u, err := h.svc.GetUser(c.Request().Context(), c.Param("id")) // look the user up by id
	if err != nil {                                               // unknown id maps to 404
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, toUser(u))
}

// UpdateUser handles PUT/PATCH /api/v1/users/:id; only names change
func (h *Handler) UpdateUser(c echo.Context) error {
	attrs, err := readAttrs(c) // decode the JSON body
	if err != nil {
		return h.fail(c, err)
	}
	u, err := h.svc.UpdateUser(c.Request().Context(), c.Param("id"), attrs) // apply the whitelisted fields
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, toUser(u)) // return the updated representation
}

// UserPlaces handles GET /api/v1/users/:id/places
func (h *Handler) UserPlaces(c echo.Context) error {
	places, err := h.svc.UserPlaces(c.Request().Context(), c.Param("id")) // places hosted by the user
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, items(places, toPlace))
}

// UserReviews handles GET /api/v1/users/:id/reviews
func (h *Handler) UserReviews(c echo.Context) error {
	reviews, err := h.svc.UserReviews(c.Request().Context(), c.Param("id")) // reviews written by the user
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, items(reviews, toReview))
}
