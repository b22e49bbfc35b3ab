package repository

import (
    "context"
    "database/sql"
    "strings"
)

// ProfileRepo serves the profile read (user joined through preferences to
// genres) and the wholesale preference replace.
type ProfileRepo struct{ DB *sql.DB }

func NewProfileRepo(db *sql.DB) *ProfileRepo { return &ProfileRepo{DB: db} }

// Profile is the aggregated profile row: the user plus the ordered set of
// preferred genre labels (empty, never nil, when the user has none).
type Profile struct {
    ID          uint64   `json:"id"`
    Name        string   `json:"name"`
    Email       string   `json:"email"`
    Preferences []string `json:"preferences"`
}

// GetProfile fetches the profile for a verified user id.  Returns
// ErrNotFound when the id no longer resolves to a row (for example the
// account was removed between token issuance and this call).
func (r *ProfileRepo) GetProfile(ctx context.Context, userID uint64) (Profile, error) {
    const q = `
        SELECT u.id, u.name, u.email,
               GROUP_CONCAT(g.label ORDER BY g.label SEPARATOR ',') AS prefs
        FROM users u
        LEFT JOIN preferences p ON p.user_id = u.id
        LEFT JOIN genres g ON g.id = p.genre_id
        WHERE u.id = ?
        GROUP BY u.id, u.name, u.email`
    var p Profile
    var prefs sql.NullString
    err := r.DB.QueryRowContext(ctx, q, userID).Scan(&p.ID, &p.Name, &p.Email, &prefs)
    if err == sql.ErrNoRows {
        return Profile{}, ErrNotFound
    }
    if err != nil {
        return Profile{}, err
    }
    p.Preferences = []string{}
    if prefs.Valid && prefs.String != "" {
        p.Preferences = strings.Split(prefs.String, ",")
    }
    return p, nil
}

// ReplacePreferences swaps the user's preference set for the submitted genre
// labels as one transaction: delete, resolve labels to genre ids, bulk
// insert.  A failure at any step rolls the whole unit back, so a concurrent
// profile read never observes the emptied set.  Unknown labels are dropped;
// duplicate labels collapse to one row.  An empty set leaves no rows.
func (r *ProfileRepo) ReplacePreferences(ctx context.Context, userID uint64, labels []string) error {
    tx, err := r.DB.BeginTx(ctx, nil)
    if err != nil {
        return err
    }
    defer func() { _ = tx.Rollback() }()

    if _, err := tx.ExecContext(ctx, "DELETE FROM preferences WHERE user_id = ?", userID); err != nil {
        return err
    }

    labels = dedupTrimmed(labels)
    if len(labels) > 0 {
        ids, err := genreIDsByLabelTx(ctx, tx, labels)
        if err != nil {
            return err
        }
        if len(ids) > 0 {
            query := "INSERT INTO preferences (user_id, genre_id) VALUES "
            args := make([]interface{}, 0, len(ids)*2)
            for i, gid := range ids {
                if i > 0 {
                    query += ","
                }
                query += "(?, ?)"
                args = append(args, userID, gid)
            }
            if _, err := tx.ExecContext(ctx, query, args...); err != nil {
                return err
            }
        }
    }
    return tx.Commit()
}

// genreIDsByLabelTx resolves genre labels to ids inside the replace
// transaction.  Labels with no matching genre are silently skipped.
func genreIDsByLabelTx(ctx context.Context, tx *sql.Tx, labels []string) ([]uint64, error) {
    query := "SELECT id FROM genres WHERE label IN (" + placeholders(len(labels)) + ")"
    args := make([]interface{}, len(labels))
    for i, l := range labels {
        args[i] = l
    }
    rows, err := tx.QueryContext(ctx, query, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    var ids []uint64
    for rows.Next() {
        var id uint64
        if err := rows.Scan(&id); err != nil {
            return nil, err
        }
        ids = append(ids, id)
    }
    return ids, rows.Err()
}

func placeholders(n int) string {
    return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

func dedupTrimmed(in []string) []string {
    seen := make(map[string]bool, len(in))
    out := make([]string, 0, len(in))
    for _, s := range in {
        s = strings.TrimSpace(s)
        if s == "" || seen[s] {
            continue
        }
        seen[s] = true
        out = append(out, s)
    }
    return out
}
