package repository

import (
    "context"
    "database/sql"
)

// ViewHistoryRepo records which documentaries a user has watched.  The rows
// exist solely as a negative filter for recommendations.
type ViewHistoryRepo struct{ DB *sql.DB }

func NewViewHistoryRepo(db *sql.DB) *ViewHistoryRepo { return &ViewHistoryRepo{DB: db} }

// Record marks a documentary as viewed by the user.  Re-watching is
// idempotent: the unique (user_id, documentary_id) key plus INSERT IGNORE
// keeps a single row per pair.
func (r *ViewHistoryRepo) Record(ctx context.Context, userID, documentaryID uint64) error {
    _, err := r.DB.ExecContext(ctx,
        "INSERT IGNORE INTO view_history (user_id, documentary_id) VALUES (?,?)",
        userID, documentaryID)
    return err
}
