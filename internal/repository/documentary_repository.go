package repository

import (
    "context"
    "database/sql"
    "time"

    "github.com/docusmart/docusmart-server/internal/model"
)

// DocumentaryRepo serves catalog reads.  Public and admin read paths are
// distinct methods sharing the relation but differing in the active-flag
// predicate; they are never one function behind a flag.
type DocumentaryRepo struct{ DB *sql.DB }

func NewDocumentaryRepo(db *sql.DB) *DocumentaryRepo { return &DocumentaryRepo{DB: db} }

// DocumentaryDetail is the public detail view: the documentary joined to its
// genre plus the optional video and image assets.
type DocumentaryDetail struct {
    ID          uint64    `json:"id"`
    Title       string    `json:"title"`
    Description string    `json:"description"`
    DurationMin uint32    `json:"duration_min"`
    PublishedAt time.Time `json:"published_at"`
    Genre       string    `json:"genre"`
    VideoURL    *string   `json:"video_url,omitempty"`
    ImageURL    *string   `json:"image_url,omitempty"`
}

// Recommendation is one catalog suggestion with a representative image.
type Recommendation struct {
    ID       uint64  `json:"id"`
    Title    string  `json:"title"`
    Genre    string  `json:"genre"`
    ImageURL *string `json:"image_url,omitempty"`
}

// AdminDocumentary is the moderation view, carrying the active flag the
// public detail never exposes.
type AdminDocumentary struct {
    model.Documentary
    Genre string
}

// GetDetail fetches one active documentary with its genre label and optional
// assets.  Absent and inactive rows are both ErrNotFound.
func (r *DocumentaryRepo) GetDetail(ctx context.Context, id uint64) (DocumentaryDetail, error) {
    const q = `
        SELECT d.id, d.title, d.description, d.duration_min, d.published_at, g.label,
               (SELECT MIN(v.url) FROM videos v WHERE v.documentary_id = d.id),
               (SELECT MIN(i.url) FROM images i WHERE i.documentary_id = d.id)
        FROM documentaries d
        JOIN genres g ON g.id = d.genre_id
        WHERE d.id = ? AND d.is_active = 1
        LIMIT 1`
    var det DocumentaryDetail
    var video, image sql.NullString
    err := r.DB.QueryRowContext(ctx, q, id).Scan(
        &det.ID, &det.Title, &det.Description, &det.DurationMin, &det.PublishedAt,
        &det.Genre, &video, &image)
    if err == sql.ErrNoRows {
        return DocumentaryDetail{}, ErrNotFound
    }
    if err != nil {
        return DocumentaryDetail{}, err
    }
    if video.Valid {
        det.VideoURL = &video.String
    }
    if image.Valid {
        det.ImageURL = &image.String
    }
    return det, nil
}

// Recommendations returns up to 10 active documentaries in the user's
// preferred genres, excluding everything in the user's view history.
// Deduplicated by documentary id with one representative image; ordered by
// id ascending so the result is deterministic under no concurrent writes.
func (r *DocumentaryRepo) Recommendations(ctx context.Context, userID uint64) ([]Recommendation, error) {
    const q = `
        SELECT DISTINCT d.id, d.title, g.label,
               (SELECT MIN(i.url) FROM images i WHERE i.documentary_id = d.id)
        FROM documentaries d
        JOIN genres g ON g.id = d.genre_id
        JOIN preferences p ON p.genre_id = d.genre_id AND p.user_id = ?
        WHERE d.is_active = 1
          AND d.id NOT IN (SELECT vh.documentary_id FROM view_history vh WHERE vh.user_id = ?)
        ORDER BY d.id ASC
        LIMIT 10`
    rows, err := r.DB.QueryContext(ctx, q, userID, userID)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    out := []Recommendation{}
    for rows.Next() {
        var rec Recommendation
        var image sql.NullString
        if err := rows.Scan(&rec.ID, &rec.Title, &rec.Genre, &image); err != nil {
            return nil, err
        }
        if image.Valid {
            rec.ImageURL = &image.String
        }
        out = append(out, rec)
    }
    return out, rows.Err()
}

// ListAllAdmin returns documentaries regardless of active status for the
// moderation surface, paginated.
func (r *DocumentaryRepo) ListAllAdmin(ctx context.Context, page int) ([]AdminDocumentary, error) {
    const q = `
        SELECT d.id, d.title, d.description, d.duration_min, d.published_at,
               d.genre_id, d.is_active, g.label
        FROM documentaries d
        JOIN genres g ON g.id = d.genre_id
        ORDER BY d.id DESC
        LIMIT ? OFFSET ?`
    rows, err := r.DB.QueryContext(ctx, q, defaultPageSize, pageOffset(page))
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    var out []AdminDocumentary
    for rows.Next() {
        var d AdminDocumentary
        if err := rows.Scan(&d.ID, &d.Title, &d.Description, &d.DurationMin,
            &d.PublishedAt, &d.GenreID, &d.IsActive, &d.Genre); err != nil {
            return nil, err
        }
        out = append(out, d)
    }
    return out, rows.Err()
}

// SetActive flips a documentary's visibility flag.
func (r *DocumentaryRepo) SetActive(ctx context.Context, id uint64, active bool) error {
    res, err := r.DB.ExecContext(ctx,
        "UPDATE documentaries SET is_active=? WHERE id=?", active, id)
    if err != nil {
        return err
    }
    return mustExist(ctx, r.DB, res, "documentaries", id)
}
