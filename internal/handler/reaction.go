package handler

import (
    "net/http"
    "strings"

    "github.com/labstack/echo/v4"

    "github.com/docusmart/docusmart-server/internal/middleware"
    "github.com/docusmart/docusmart-server/internal/repository"
)

// ReactionHandler serves reaction upsert/fetch/delete and view recording.
// Every operation acts on behalf of the token's user; documentary ids come
// from the request, user ids never do.
type ReactionHandler struct {
    Reactions *repository.ReactionRepo
    Views     *repository.ViewHistoryRepo
}

func NewReactionHandler(r *repository.ReactionRepo, v *repository.ViewHistoryRepo) *ReactionHandler {
    return &ReactionHandler{Reactions: r, Views: v}
}

type reactionReq struct {
    DocumentaryID uint64 `json:"documentary_id"`
    Kind          string `json:"kind"`
}

type viewReq struct {
    DocumentaryID uint64 `json:"documentary_id"`
}

// Upsert writes the caller's reaction; a repeat submission for the same
// documentary overwrites the kind and refreshes the timestamp.
func (h *ReactionHandler) Upsert(c echo.Context) error {
    var req reactionReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.Kind = strings.TrimSpace(req.Kind)
    if req.DocumentaryID == 0 || req.Kind == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "documentary_id/kind required"})
    }

    ctx, cancel := reqCtx(c)
    defer cancel()

    if err := h.Reactions.Upsert(ctx, middleware.UserID(c), req.DocumentaryID, req.Kind); err != nil {
        c.Logger().Errorf("reaction: upsert: %v", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save reaction failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{"message": "reaction saved"})
}

// Get returns the caller's current reaction kind for a documentary, or a
// null kind when none exists.
func (h *ReactionHandler) Get(c echo.Context) error {
    id, ok := pathID(c, "documentalId")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }

    ctx, cancel := reqCtx(c)
    defer cancel()

    re, err := h.Reactions.Get(ctx, middleware.UserID(c), id)
    if err != nil {
        c.Logger().Errorf("reaction: get: %v", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    if re == nil {
        return c.JSON(http.StatusOK, echo.Map{"kind": nil})
    }
    return c.JSON(http.StatusOK, echo.Map{"kind": re.Kind, "updated_at": re.UpdatedAt})
}

// Delete removes the caller's reaction for a documentary entirely.
func (h *ReactionHandler) Delete(c echo.Context) error {
    id, ok := pathID(c, "documentalId")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }

    ctx, cancel := reqCtx(c)
    defer cancel()

    if err := h.Reactions.Delete(ctx, middleware.UserID(c), id); err != nil {
        c.Logger().Errorf("reaction: delete: %v", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete reaction failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{"message": "reaction deleted"})
}

// RecordView marks a documentary as watched by the caller.  Watched items
// drop out of future recommendations; re-watching is idempotent.
func (h *ReactionHandler) RecordView(c echo.Context) error {
    var req viewReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    if req.DocumentaryID == 0 {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "documentary_id required"})
    }

    ctx, cancel := reqCtx(c)
    defer cancel()

    if err := h.Views.Record(ctx, middleware.UserID(c), req.DocumentaryID); err != nil {
        c.Logger().Errorf("view: record: %v", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "record view failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{"message": "view recorded"})
}
