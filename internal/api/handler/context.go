package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ctxOperator extracts the operator name injected by the Auth middleware and
// fast-fails before any service call: an empty name means the middleware did
// not run, which is a wiring error, not a user error.
func ctxOperator(c echo.Context) (string, error) {
	operator, _ := c.Get("operator").(string)
	if operator == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return operator, nil
}
