package handler // handler defines http handlers

import (
    "context"
    "strconv"
    "time"

    "github.com/labstack/echo/v4"
)

// dbTimeout bounds every store call made from a handler so no request
// blocks indefinitely on the database.
const dbTimeout = 5 * time.Second

// reqCtx derives a bounded context from the request.  Callers must defer
// the returned cancel.
func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
    return context.WithTimeout(c.Request().Context(), dbTimeout)
}

// pathID parses a numeric path parameter.  Zero and non-numeric values are
// both reported as invalid.
func pathID(c echo.Context, name string) (uint64, bool) {
    id, err := strconv.ParseUint(c.Param(name), 10, 64)
    if err != nil || id == 0 {
        return 0, false
    }
    return id, true
}

// page reads the optional 1-based ?page query parameter, defaulting to 1.
func page(c echo.Context) int {
    if n, err := strconv.Atoi(c.QueryParam("page")); err == nil && n > 0 {
        return n
    }
    return 1
}
