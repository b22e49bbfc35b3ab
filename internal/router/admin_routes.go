package router

import (
    "github.com/labstack/echo/v4"

    "github.com/docusmart/docusmart-server/internal/handler"
    "github.com/docusmart/docusmart-server/internal/middleware"
    "github.com/docusmart/docusmart-server/internal/model"
)

// RegisterAdmin registers the moderation surface.  The bearer gate and the
// admin role check are attached to the group itself so every /admin route
// is gated uniformly; no individual route can be registered without them.
func RegisterAdmin(e *echo.Echo, h *handler.AdminHandler, jwtSecret string) {
    g := e.Group(
        "/admin",
        middleware.BearerAuth(jwtSecret),
        middleware.RequireRole(model.RoleAdmin),
    )

    g.GET("/documentales", h.ListDocumentaries)
    g.PUT("/documentales/:id/activar", h.ActivateDocumentary)
    g.PUT("/documentales/:id/inactivar", h.InactivateDocumentary)

    g.GET("/usuarios", h.ListUsers)
    g.PUT("/usuarios/:id/estado", h.SetUserStatus)
    g.PUT("/usuarios/:id", h.UpdateUser)

    g.GET("/comentarios", h.ListComments)
    g.PUT("/comentarios/:id/estado", h.SetCommentStatus)
}
