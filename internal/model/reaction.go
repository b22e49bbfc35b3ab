package model

import "time"

// Reaction mirrors the `reactions` table.  At most one row exists per
// (user, documentary) pair; a new submission overwrites the prior kind and
// refreshes UpdatedAt (upsert, not insert-only).
type Reaction struct {
    UserID        uint64    // reactions.user_id
    DocumentaryID uint64    // reactions.documentary_id
    Kind          string    // reactions.kind (e.g. "like", "dislike", "favorite")
    UpdatedAt     time.Time // reactions.updated_at
}

// ViewRecord mirrors the `view_history` table.  Rows are written when a user
// watches a documentary and serve only as a negative filter for
// recommendations.
type ViewRecord struct {
    UserID        uint64    // view_history.user_id
    DocumentaryID uint64    // view_history.documentary_id
    ViewedAt      time.Time // view_history.viewed_at
}
