package handler

import (
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/docusmart/docusmart-server/internal/middleware"
    "github.com/docusmart/docusmart-server/internal/repository"
)

// CommentHandler serves comment creation and the public comment listing.
type CommentHandler struct {
    Comments *repository.CommentRepo
}

func NewCommentHandler(r *repository.CommentRepo) *CommentHandler {
    return &CommentHandler{Comments: r}
}

type commentReq struct {
    DocumentaryID uint64 `json:"documentary_id"`
    Text          string `json:"text"`
}

// Create adds a comment authored by the token's user.  Text is trimmed and
// must be non-empty; whitespace-only submissions are rejected before any
// row is written.
func (h *CommentHandler) Create(c echo.Context) error {
    var req commentReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.Text = strings.TrimSpace(req.Text)
    if req.Text == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "text required"})
    }
    if req.DocumentaryID == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "documentary_id required"})
    }

    ctx, cancel := reqCtx(c)
    defer cancel()

    id, err := h.Comments.Create(ctx, middleware.UserID(c), req.DocumentaryID, req.Text)
    if err != nil {
        c.Logger().Errorf("comment: create: %v", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create comment failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{"message": "comment added", "id": id})
}

// ListByDocumentary returns the visible comments for a documentary, newest
// first.  Accepts the id under either :id (nested route) or :documentalId
// (legacy flat route).
func (h *CommentHandler) ListByDocumentary(c echo.Context) error {
    name := "id"
    if c.Param(name) == "" {
        name = "documentalId"
    }
    id, ok := pathID(c, name)
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }

    ctx, cancel := reqCtx(c)
    defer cancel()

    items, err := h.Comments.ListActiveByDocumentary(ctx, id, page(c))
    if err != nil {
        c.Logger().Errorf("comment: list for %d: %v", id, err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    return c.JSON(http.StatusOK, echo.Map{"items": items})
}
