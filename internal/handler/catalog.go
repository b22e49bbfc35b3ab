// This file defines handlers for the public catalog: genre reference data,
// documentary detail and per-user recommendations.  Public reads always
// filter on the active flag; the admin equivalents live in
// admin_documentaries.go and never share these code paths.

package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/docusmart/docusmart-server/internal/middleware"
    "github.com/docusmart/docusmart-server/internal/repository"
)

// CatalogHandler aggregates the repositories backing catalog reads.
type CatalogHandler struct {
    Genres        *repository.GenreRepo
    Documentaries *repository.DocumentaryRepo
}

func NewCatalogHandler(g *repository.GenreRepo, d *repository.DocumentaryRepo) *CatalogHandler {
    return &CatalogHandler{Genres: g, Documentaries: d}
}

// ListGenres returns every genre label, for the preference picker.
func (h *CatalogHandler) ListGenres(c echo.Context) error {
    ctx, cancel := reqCtx(c)
    defer cancel()

    genres, err := h.Genres.ListAll(ctx)
    if err != nil {
        c.Logger().Errorf("catalog: list genres: %v", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    labels := make([]string, 0, len(genres))
    for _, g := range genres {
        labels = append(labels, g.Label)
    }
    return c.JSON(http.StatusOK, echo.Map{"items": labels})
}

// GetDocumentary returns the public detail view of one active documentary.
// Inactive and absent ids are both 404.
func (h *CatalogHandler) GetDocumentary(c echo.Context) error {
    id, ok := pathID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }

    ctx, cancel := reqCtx(c)
    defer cancel()

    det, err := h.Documentaries.GetDetail(ctx, id)
    if err != nil {
        if err == repository.ErrNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "documentary not found"})
        }
        c.Logger().Errorf("catalog: detail %d: %v", id, err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, det)
}

// Recommendations returns at most 10 suggestions for the authenticated
// user: active documentaries in preferred genres, minus everything already
// watched.
func (h *CatalogHandler) Recommendations(c echo.Context) error {
    ctx, cancel := reqCtx(c)
    defer cancel()

    items, err := h.Documentaries.Recommendations(ctx, middleware.UserID(c))
    if err != nil {
        c.Logger().Errorf("catalog: recommendations: %v", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items})
}
