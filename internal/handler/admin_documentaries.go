package handler

import (
    "net/http"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/docusmart/docusmart-server/internal/repository"
)

// adminDocumentary is the moderation listing row, status included.
type adminDocumentary struct {
    ID          uint64    `json:"id"`
    Title       string    `json:"title"`
    Genre       string    `json:"genre"`
    DurationMin uint32    `json:"duration_min"`
    PublishedAt time.Time `json:"published_at"`
    Active      bool      `json:"active"`
}

// ListDocumentaries returns all documentaries with their active status,
// hidden ones included, paginated.
func (h *AdminHandler) ListDocumentaries(c echo.Context) error {
    ctx, cancel := reqCtx(c)
    defer cancel()

    docs, err := h.Documentaries.ListAllAdmin(ctx, page(c))
    if err != nil {
        c.Logger().Errorf("admin: list documentaries: %v", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    out := make([]adminDocumentary, 0, len(docs))
    for _, d := range docs {
        out = append(out, adminDocumentary{
            ID: d.ID, Title: d.Title, Genre: d.Genre,
            DurationMin: d.DurationMin, PublishedAt: d.PublishedAt, Active: d.IsActive,
        })
    }
    return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// ActivateDocumentary makes a documentary visible to public reads.
func (h *AdminHandler) ActivateDocumentary(c echo.Context) error {
    return h.setDocumentaryActive(c, true)
}

// InactivateDocumentary hides a documentary from public reads while keeping
// the row for admin visibility.
func (h *AdminHandler) InactivateDocumentary(c echo.Context) error {
    return h.setDocumentaryActive(c, false)
}

func (h *AdminHandler) setDocumentaryActive(c echo.Context, active bool) error {
    id, ok := pathID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }

    ctx, cancel := reqCtx(c)
    defer cancel()

    if err := h.Documentaries.SetActive(ctx, id, active); err != nil {
        if err == repository.ErrNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "documentary not found"})
        }
        c.Logger().Errorf("admin: set documentary %d active=%v: %v", id, active, err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{"message": "documentary status changed"})
}
