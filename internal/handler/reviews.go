package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (h *Handler) ListReviews(c echo.Context) error {
	reviews, err := h.svc.ListReviews(c.Request().Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, items(reviews, toReview))
}

// CreateReview handles POST /api/v1/reviews.  rating must be a JSON integer
// between 0 and 5.
func (h *Handler) CreateReview(c echo.Context) error {
	attrs, err := readAttrs(c)
	if err != nil {
		return h.fail(c, err)
	}
	r, err := h.svc.CreateReview(c.Request().Context(), attrs)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusCreated, toReview(r))
}

func (h *Handler) GetReview(c echo.Context) error {
	r, err := h.svc.GetReview(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, toReview(r))
}

func (h *Handler) UpdateReview(c echo.Context) error {
	attrs, err := readAttrs(c)
	if err != nil {
		return h.fail(c, err)
	}
	r, err := h.svc.UpdateReview(c.Request().Context(), c.Param("id"), attrs)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, toReview(r))
}

func (h *Handler) ReviewUser(c echo.Context) error {
	u, err := h.svc.ReviewUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, toUser(u))
}

func (h *Handler) ReviewPlace(c echo.Context) error {
	p, err := h.svc.ReviewPlace(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(http.StatusOK, toPlace(p))
}
