package handler

import (
	"encoding/json"
	"errors"
	"io"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hbnb-api/internal/model"
)

// errNotJSON is returned for a body that is not a JSON object or is sent
// with another content type.
var errNotJSON = &model.ValidationError{Message: "Not a JSON"}

// readAttrs decodes the request body into attributes for a model
// constructor or Patch.  Numbers arrive as float64; the model decides
// whether a value is an acceptable integer.  The body must hold exactly one
// JSON value; anything after it other than whitespace is rejected.
func readAttrs(c echo.Context) (model.Attrs, error) {
	ct := c.Request().Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(strings.ToLower(ct), echo.MIMEApplicationJSON) {
		return nil, errNotJSON
	}
	var attrs model.Attrs
	dec := json.NewDecoder(c.Request().Body)
	if err := dec.Decode(&attrs); err != nil {
		return nil, errNotJSON
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) { // trailing data
		return nil, errNotJSON
	}
	if attrs == nil { // a literal null decodes without error
		return nil, errNotJSON
	}
	return attrs, nil
}
