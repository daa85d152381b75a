package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (h *Handler) ListAmenities(c echo.Context) error {
	amenities, err := h.svc.ListAmenities(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, items(amenities, toAmenity))
}

func (h *Handler) CreateAmenity(c echo.Context) error {
	attrs, err := readAttrs(c)
	if err != nil {
		return h.fail(c, err)
	}
	a, err := h.svc.CreateAmenity(c.Request().Context(), attrs)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, toAmenity(a))
}

func (h *Handler) GetAmenity(c echo.Context) error {
	a, err := h.svc.GetAmenity(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, toAmenity(a))
}

func (h *Handler) UpdateAmenity(c echo.Context) error {
	attrs, err := readAttrs(c)
	if err != nil {
		return h.fail(c, err)
	}
	a, err := h.svc.UpdateAmenity(c.Request().Context(), c.Param("id"), attrs)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, toAmenity(a))
}

// AmenityPlaces handles GET /api/v1/amenities/:id/places
func (h *Handler) AmenityPlaces(c echo.Context) error {
	places, err := h.svc.AmenityPlaces(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, items(places, toPlace))
}
