package repository

import (
    "context"
    "database/sql"

    "github.com/docusmart/docusmart-server/internal/model"
)

// GenreRepo reads the genre reference data.
type GenreRepo struct{ DB *sql.DB }

func NewGenreRepo(db *sql.DB) *GenreRepo { return &GenreRepo{DB: db} }

// ListAll returns every genre ordered by label.
func (r *GenreRepo) ListAll(ctx context.Context) ([]model.Genre, error) {
    rows, err := r.DB.QueryContext(ctx, "SELECT id, label FROM genres ORDER BY label ASC")
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    var out []model.Genre
    for rows.Next() {
        var g model.Genre
        if err := rows.Scan(&g.ID, &g.Label); err != nil {
            return nil, err
        }
        out = append(out, g)
    }
    return out, rows.Err()
}
