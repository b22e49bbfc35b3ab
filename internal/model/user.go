package model

import "time"

// User represents an application user record as stored in the `users`
// table.  Each field corresponds to a column in the database.  The json
// tags are omitted here because these structs are used internally by the
// repository layer; handlers define separate response types with the
// appropriate JSON tags, and the password hash must never appear in any
// of them.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Name         – display name.
//  Email        – unique email address (unique across active and inactive rows).
//  PasswordHash – bcrypt hashed password.
//  Role         – "admin" or "standard" (default standard).
//  IsActive     – whether the account is active; users are soft-deactivated, never deleted.
//  CreatedAt    – registration timestamp.
//  UpdatedAt    – timestamp of last update.
type User struct {
    ID           uint64    // users.id
    Name         string    // users.name
    Email        string    // users.email
    PasswordHash string    // users.password_hash
    Role         string    // users.role
    IsActive     bool      // users.is_active
    CreatedAt    time.Time // users.created_at
    UpdatedAt    time.Time // users.updated_at
}

// Roles a user may hold.  RoleStandard is assigned at registration; only an
// admin can promote another user.
const (
    RoleAdmin    = "admin"
    RoleStandard = "standard"
)
