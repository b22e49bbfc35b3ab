package handler

import (
    "net/http"
    "strings"
    "time"

    "github.com/labstack/echo/v4"

    "github.com/docusmart/docusmart-server/internal/model"
    "github.com/docusmart/docusmart-server/internal/repository"
)

// adminUser is the user listing row.  The password hash never leaves the
// repository layer.
type adminUser struct {
    ID        uint64    `json:"id"`
    Name      string    `json:"name"`
    Email     string    `json:"email"`
    Role      string    `json:"role"`
    Active    bool      `json:"active"`
    CreatedAt time.Time `json:"created_at"`
}

type adminUserUpdateReq struct {
    Name string `json:"name"`
    Role string `json:"role"`
}

// ListUsers returns every user, active and deactivated, paginated.
func (h *AdminHandler) ListUsers(c echo.Context) error {
    ctx, cancel := reqCtx(c)
    defer cancel()

    users, err := h.Users.ListAll(ctx, page(c))
    if err != nil {
        c.Logger().Errorf("admin: list users: %v", err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
    }
    out := make([]adminUser, 0, len(users))
    for _, u := range users {
        out = append(out, adminUser{
            ID: u.ID, Name: u.Name, Email: u.Email,
            Role: u.Role, Active: u.IsActive, CreatedAt: u.CreatedAt,
        })
    }
    return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// SetUserStatus toggles a user's active flag.  Accounts are never deleted,
// only deactivated; a deactivated account can no longer log in.
func (h *AdminHandler) SetUserStatus(c echo.Context) error {
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

    if err := h.Users.SetActive(ctx, id, active); err != nil {
        if err == repository.ErrNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
        }
        c.Logger().Errorf("admin: set user %d status: %v", id, err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{"message": "user status changed", "status": req.Status})
}

// UpdateUser edits a user's display name and role.  Both fields are
// required and the role must be one of the two known values.
func (h *AdminHandler) UpdateUser(c echo.Context) error {
    id, ok := pathID(c, "id")
    if !ok {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
    }
    var req adminUserUpdateReq
    if err := c.Bind(&req); err != nil {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
    }
    req.Name = strings.TrimSpace(req.Name)
    if req.Name == "" {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "name required"})
    }
    if req.Role != model.RoleAdmin && req.Role != model.RoleStandard {
        return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid role"})
    }

    ctx, cancel := reqCtx(c)
    defer cancel()

    if err := h.Users.UpdateProfile(ctx, id, req.Name, req.Role); err != nil {
        if err == repository.ErrNotFound {
            return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
        }
        c.Logger().Errorf("admin: update user %d: %v", id, err)
        return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
    }
    return c.JSON(http.StatusOK, echo.Map{"message": "user updated"})
}
