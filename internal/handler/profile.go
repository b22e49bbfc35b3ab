package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/docusmart/docusmart-server/internal/middleware"
    "github.com/docusmart/docusmart-server/internal/repository"
)

// ProfileHandler serves the authenticated user's profile and preference
// updates.  The acting user id always comes from the verified token, never
// from the request.
type ProfileHandler struct {
    Profiles *repository.ProfileRepo
}

func NewProfileHandler(p *repository.ProfileRepo) *ProfileHandler {
    return &ProfileHandler{Profiles: p}
}

type preferencesReq struct {
    Preferences []string `json:"preferences"`
}

// GetProfile returns id, name, email and the ordered preference labels.
// 404 when the token's user id no longer resolves to a row.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
    ctx, cancel := reqCtx(c)
    defer cancel()

    p, err := h.Profiles.GetProfile(ctx, middleware.UserID(c))
    if err != nil {
        if err == repository.ErrNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
        }
        c.Logger().Errorf("profile: fetch: %v", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, p)
}

// UpdatePreferences replaces the caller's preference set wholesale.  An
// empty or missing list clears all preferences.  The replace runs in one
// transaction, so a failure can never leave the user with a half-written
// set; it surfaces here as a 500.
func (h *ProfileHandler) UpdatePreferences(c echo.Context) error {
    var req preferencesReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }

    ctx, cancel := reqCtx(c)
    defer cancel()

    if err := h.Profiles.ReplacePreferences(ctx, middleware.UserID(c), req.Preferences); err != nil {
        c.Logger().Errorf("profile: replace preferences: %v", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save preferences failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{"message": "preferences saved"})
}
