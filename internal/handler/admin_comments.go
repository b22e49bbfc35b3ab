package handler

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/docusmart/docusmart-server/internal/repository"
)

// ListComments returns every comment, hidden ones included, paginated.
func (h *AdminHandler) ListComments(c echo.Context) error {
    ctx, cancel := reqCtx(c)
    defer cancel()

    comments, err := h.Comments.ListAllAdmin(ctx, page(c))
    if err != nil {
        c.Logger().Errorf("admin: list comments: %v", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    type item struct {
        ID            uint64 `json:"id"`
        UserID        uint64 `json:"user_id"`
        DocumentaryID uint64 `json:"documentary_id"`
        Text          string `json:"text"`
        Active        bool   `json:"active"`
    }
    out := make([]item, 0, len(comments))
    for _, cm := range comments {
        out = append(out, item{
            ID: cm.ID, UserID: cm.UserID, DocumentaryID: cm.DocumentaryID,
            Text: cm.Text, Active: cm.IsActive,
        })
    }
    return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// SetCommentStatus soft-moderates a comment: inactive comments disappear
// from the public listing but stay visible here.
func (h *AdminHandler) SetCommentStatus(c echo.Context) error {
    id, ok := pathID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    var req statusReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    active, ok := parseStatus(req.Status)
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "status must be active or inactive"})
    }

    ctx, cancel := reqCtx(c)
    defer cancel()

    if err := h.Comments.SetActive(ctx, id, active); err != nil {
        if err == repository.ErrNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "comment not found"})
        }
        c.Logger().Errorf("admin: set comment %d status: %v", id, err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{"message": "comment status changed"})
}
