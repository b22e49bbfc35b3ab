package repository

import (
    "context"
    "database/sql"
    "time"

    "github.com/docusmart/docusmart-server/internal/model"
)

// CommentRepo stores and lists documentary comments.  Text validation
// (non-empty after trimming) happens at the handler boundary; by the time a
// comment reaches this repo it is well formed.
type CommentRepo struct{ DB *sql.DB }

func NewCommentRepo(db *sql.DB) *CommentRepo { return &CommentRepo{DB: db} }

// CommentView is the public listing row: the comment with its author's
// display name instead of the raw user id.
type CommentView struct {
    ID        uint64    `json:"id"`
    Author    string    `json:"author"`
    Text      string    `json:"text"`
    CreatedAt time.Time `json:"created_at"`
}

// Create inserts a comment and returns its id.
func (r *CommentRepo) Create(ctx context.Context, userID, documentaryID uint64, text string) (uint64, error) {
    res, err := r.DB.ExecContext(ctx,
        "INSERT INTO comments (user_id, documentary_id, text) VALUES (?,?,?)",
        userID, documentaryID, text)
    if err != nil {
        return 0, err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return 0, err
    }
    return uint64(id), nil
}

// ListActiveByDocumentary returns the visible comments for a documentary,
// newest first, paginated.
func (r *CommentRepo) ListActiveByDocumentary(ctx context.Context, documentaryID uint64, page int) ([]CommentView, error) {
    const q = `
        SELECT c.id, u.name, c.text, c.created_at
        FROM comments c
        JOIN users u ON u.id = c.user_id
        WHERE c.documentary_id = ? AND c.is_active = 1
        ORDER BY c.created_at DESC, c.id DESC
        LIMIT ? OFFSET ?`
    rows, err := r.DB.QueryContext(ctx, q, documentaryID, defaultPageSize, pageOffset(page))
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    out := []CommentView{}
    for rows.Next() {
        var cv CommentView
        if err := rows.Scan(&cv.ID, &cv.Author, &cv.Text, &cv.CreatedAt); err != nil {
            return nil, err
        }
        out = append(out, cv)
    }
    return out, rows.Err()
}

// ListAllAdmin returns every comment, hidden ones included, for moderation.
func (r *CommentRepo) ListAllAdmin(ctx context.Context, page int) ([]model.Comment, error) {
    const q = `
        SELECT id, user_id, documentary_id, text, is_active, created_at
        FROM comments
        ORDER BY created_at DESC, id DESC
        LIMIT ? OFFSET ?`
    rows, err := r.DB.QueryContext(ctx, q, defaultPageSize, pageOffset(page))
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    var out []model.Comment
    for rows.Next() {
        var cm model.Comment
        if err := rows.Scan(&cm.ID, &cm.UserID, &cm.DocumentaryID, &cm.Text, &cm.IsActive, &cm.CreatedAt); err != nil {
            return nil, err
        }
        out = append(out, cm)
    }
    return out, rows.Err()
}

// SetActive soft-moderates a comment.
func (r *CommentRepo) SetActive(ctx context.Context, id uint64, active bool) error {
    res, err := r.DB.ExecContext(ctx,
        "UPDATE comments SET is_active=? WHERE id=?", active, id)
    if err != nil {
        return err
    }
    return mustExist(ctx, r.DB, res, "comments", id)
}
