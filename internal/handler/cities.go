package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (h *Handler) ListCities(c echo.Context) error {
	cities, err := h.svc.ListCities(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, items(cities, toCity))
}

// CreateCity handles POST /api/v1/cities.  country_id must name an existing
// country.
func (h *Handler) CreateCity(c echo.Context) error {
	attrs, err := readAttrs(c)
	if err != nil {
		return h.fail(c, err)
	}
	city, err := h.svc.CreateCity(c.Request().Context(), attrs)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, toCity(city))
}

func (h *Handler) GetCity(c echo.Context) error {
	city, err := h.svc.GetCity(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, toCity(city))
}

func (h *Handler) UpdateCity(c echo.Context) error {
	attrs, err := readAttrs(c)
	if err != nil {
		return h.fail(c, err)
	}
	city, err := h.svc.UpdateCity(c.Request().Context(), c.Param("id"), attrs)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, toCity(city))
}

func (h *Handler) CityCountry(c echo.Context) error {
	country, err := h.svc.CityCountry(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, toCountry(country))
}

func (h *Handler) CityPlaces(c echo.Context) error {
	places, err := h.svc.CityPlaces(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, items(places, toPlace))
}
