package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hbnb-api/internal/model"
	"github.com/iliyamo/hbnb-api/internal/repository"
)

// fail maps a service error onto the JSON error envelope.
//
//	*model.ValidationError        400 with the validation message
//	*repository.NotFoundError     404 "<Kind> not found"
//	*repository.ConflictError     409 "<Kind> '<value>' already exists"
//	anything else                 500, logged
func (h *Handler) fail(c echo.Context, err error) error {
	var verr *model.ValidationError
	var nf *repository.NotFoundError
	var conflict *repository.ConflictError
	switch {
	case errors.As(err, &verr):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": verr.Message})
	case errors.As(err, &nf):
		return c.JSON(http.StatusNotFound, echo.Map{"error": fmt.Sprintf("%s not found", nf.Kind)})
	case errors.As(err, &conflict):
		return c.JSON(http.StatusConflict, echo.Map{"error": conflict.Error()})
	case errors.Is(err, repository.ErrConflict):
		return c.JSON(http.StatusConflict, echo.Map{"error": "record already exists"})
	}
	h.logger.Error("request failed",
		"method", c.Request().Method, "path", c.Request().URL.Path, "error", err)
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "unable to process request"})
}

// ErrorHandler renders errors returned by echo itself (unknown route, wrong
// method, recovered panic) in the same envelope as the handlers.
func ErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		code := http.StatusInternalServerError
		msg := "unable to process request"
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if m, ok := he.Message.(string); ok {
				msg = m
			} else {
				msg = http.StatusText(code)
			}
		}
		if code >= http.StatusInternalServerError {
			e.Logger.Error(err)
		}
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, echo.Map{"error": msg})
	}
}
