package repository

import (
    "context"
    "database/sql"

    "github.com/docusmart/docusmart-server/internal/model"
)

// ReactionRepo maintains at most one reaction per (user, documentary) pair.
type ReactionRepo struct{ DB *sql.DB }

func NewReactionRepo(db *sql.DB) *ReactionRepo { return &ReactionRepo{DB: db} }

// Upsert writes the user's reaction to a documentary.  The unique key on
// (user_id, documentary_id) turns a repeat submission into an overwrite of
// the kind and a refresh of updated_at.
func (r *ReactionRepo) Upsert(ctx context.Context, userID, documentaryID uint64, kind string) error {
    _, err := r.DB.ExecContext(ctx,
        `INSERT INTO reactions (user_id, documentary_id, kind, updated_at)
         VALUES (?,?,?,UTC_TIMESTAMP())
         ON DUPLICATE KEY UPDATE kind = VALUES(kind), updated_at = UTC_TIMESTAMP()`,
        userID, documentaryID, kind)
    return err
}

// Get returns the user's current reaction for a documentary, or nil when
// none exists.
func (r *ReactionRepo) Get(ctx context.Context, userID, documentaryID uint64) (*model.Reaction, error) {
    var re model.Reaction
    err := r.DB.QueryRowContext(ctx,
        "SELECT user_id, documentary_id, kind, updated_at FROM reactions WHERE user_id=? AND documentary_id=? LIMIT 1",
        userID, documentaryID).Scan(&re.UserID, &re.DocumentaryID, &re.Kind, &re.UpdatedAt)
    if err == sql.ErrNoRows {
        return nil, nil
    }
    if err != nil {
        return nil, err
    }
    return &re, nil
}

// Delete removes the reaction row entirely.  Deleting a reaction that does
// not exist is a no-op.
func (r *ReactionRepo) Delete(ctx context.Context, userID, documentaryID uint64) error {
    _, err := r.DB.ExecContext(ctx,
        "DELETE FROM reactions WHERE user_id=? AND documentary_id=?",
        userID, documentaryID)
    return err
}
