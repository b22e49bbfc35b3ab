package model

import "time"

// Comment mirrors the `comments` table.  Text is stored trimmed and is
// never empty; moderation hides a comment by clearing IsActive rather than
// deleting the row.
type Comment struct {
    ID            uint64    // comments.id
    UserID        uint64    // comments.user_id (author)
    DocumentaryID uint64    // comments.documentary_id
    Text          string    // comments.text
    IsActive      bool      // comments.is_active
    CreatedAt     time.Time // comments.created_at
}
