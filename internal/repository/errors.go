// Package repository defines error types that are reused across multiple
// repositories.  These sentinel values let handlers distinguish failure
// scenarios without inspecting driver errors: ErrNotFound maps to HTTP 404,
// ErrEmailExists (declared in user_repository.go) maps to HTTP 409.
package repository

import "errors"

// ErrNotFound is returned when an entity does not exist or is inactive on a
// public read path.  Handlers translate this into an HTTP 404 response.
var ErrNotFound = errors.New("not found")

// defaultPageSize caps every paginated listing.  The original service
// returned unbounded result sets; all list queries here clamp to this.
const defaultPageSize = 100

// pageOffset converts a 1-based page number into a LIMIT offset.  Page
// values below 1 are treated as the first page.
func pageOffset(page int) int {
    if page < 1 {
        page = 1
    }
    return (page - 1) * defaultPageSize
}
