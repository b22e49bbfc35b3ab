// This file declares the handler shared by every /admin route.  The role
// gate is applied uniformly at the router group; no admin endpoint opts out
// of it.  Admin listings are unfiltered by active status: moderation needs
// to see hidden rows.

package handler

import (
    "github.com/docusmart/docusmart-server/internal/repository"
)

// AdminHandler bundles the repositories behind the moderation surface.
type AdminHandler struct {
    Users         *repository.UserRepo
    Documentaries *repository.DocumentaryRepo
    Comments      *repository.CommentRepo
}

// NewAdminHandler constructs an AdminHandler and panics if any dependency
// is nil.
func NewAdminHandler(u *repository.UserRepo, d *repository.DocumentaryRepo, cm *repository.CommentRepo) *AdminHandler {
    if u == nil || d == nil || cm == nil {
        panic("nil repository passed to NewAdminHandler")
    }
    return &AdminHandler{Users: u, Documentaries: d, Comments: cm}
}

// statusReq carries the moderation status toggle.  Only the two literal
// values are accepted; anything else is a validation error.
type statusReq struct {
    Status string `json:"status"`
}

// parseStatus maps "active"/"inactive" onto the soft-deactivation flag.
func parseStatus(s string) (active, ok bool) {
    switch s {
    case "active":
        return true, true
    case "inactive":
        return false, true
    }
    return false, false
}
