package handler

import (
	"net/http" // http provides status code constants

	"github.com/labstack/echo/v4" // echo defines request context types
)

// Countries are addressed by their two-letter code rather than by id.

// ListCountries handles GET /api/v1/countries
func (h *Handler) ListCountries(c echo.Context) error {
	countries, err := h.svc.ListCountries(c.Request().Context()) // load every country
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, items(countries, toCountry))
}

// CreateCountry handles POST /api/v1/countries
func (h *Handler) CreateCountry(c echo.Context) error {
	attrs, err := readAttrs(c) // decode the JSON body
	if err != nil {
		return h.fail(c, err)
	}
	country, err := h.svc.CreateCountry(c.Request().Context(), attrs) // validate name and code, then persist
	if err != nil {                                                   // duplicate name or code yields 409
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, toCountry(country))
}

// GetCountry handles GET /api/v1/countries/:code
func (h *Handler) GetCountry(c echo.Context) error {
	country, err := h.svc.GetCountryByCode(c.Request().Context(), c.Param("code")) // case-insensitive code lookup
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, toCountry(country))
}

// UpdateCountry handles PUT/PATCH /api/v1/countries/:code; only the name changes
func (h *Handler) UpdateCountry(c echo.Context) error {
	attrs, err := readAttrs(c)
	if err != nil {
		return h.fail(c, err)
	}
	country, err := h.svc.UpdateCountry(c.Request().Context(), c.Param("code"), attrs)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, toCountry(country))
}

// CountryCities handles GET /api/v1/countries/:code/cities
func (h *Handler) CountryCities(c echo.Context) error {
	cities, err := h.svc.CountryCities(c.Request().Context(), c.Param("code"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, items(cities, toCity))
}
