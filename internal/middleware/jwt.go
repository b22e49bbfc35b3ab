package middleware // declare the middleware package; contains reusable HTTP middleware functions

import (
    "net/http" // HTTP status codes for responses
    "strings"  // string utilities for prefix checking and trimming

    "github.com/labstack/echo/v4" // Echo framework used for defining middleware and handlers

    "github.com/docusmart/docusmart-server/internal/utils"
)

// Context keys under which the authorization gate stores the authenticated
// principal.  Downstream handlers read them via UserID(c) and Role(c).
const (
    ctxUserID = "user_id"
    ctxRole   = "role"
)

// BearerAuth returns an Echo middleware that validates a Bearer session token
// and injects the authenticated principal into the request context.  The
// provided secret must match the one used when issuing tokens.  A missing
// token and a failed verification are distinct failures (401 vs 403), but the
// verification failure itself is opaque: expired and forged tokens produce
// the same response.
func BearerAuth(secret string) echo.MiddlewareFunc {
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            auth := c.Request().Header.Get("Authorization")
            if !strings.HasPrefix(auth, "Bearer ") {
                return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing bearer token"})
            }
            raw := strings.TrimPrefix(auth, "Bearer ")

            claims, err := utils.VerifyAccessToken(secret, raw)
            if err != nil {
                return c.JSON(http.StatusForbidden, echo.Map{"error": "invalid or expired token"})
            }

            c.Set(ctxUserID, claims.UserID)
            c.Set(ctxRole, claims.Role)
            return next(c)
        }
    }
}

// UserID returns the authenticated user's id stored by BearerAuth, or 0 when
// the request carries no authenticated principal.
func UserID(c echo.Context) uint64 {
    if v, ok := c.Get(ctxUserID).(uint64); ok {
        return v
    }
    return 0
}

// Role returns the authenticated user's role, or "" when unauthenticated.
func Role(c echo.Context) string {
    if v, ok := c.Get(ctxRole).(string); ok {
        return v
    }
    return ""
}
