package model

import "time"

// Genre is reference data: a row in the `genres` table mapping an id to a
// unique label.  User preferences reference genres by id.
type Genre struct {
    ID    uint64 // genres.id
    Label string // genres.label
}

// Documentary mirrors the `documentaries` table.  IsActive gates visibility
// to non-admin consumers: public read paths always filter on it, admin
// listings never do.
type Documentary struct {
    ID          uint64    // documentaries.id
    Title       string    // documentaries.title
    Description string    // documentaries.description
    DurationMin uint32    // documentaries.duration_min
    PublishedAt time.Time // documentaries.published_at
    GenreID     uint64    // documentaries.genre_id
    IsActive    bool      // documentaries.is_active
}
