package utils // package utils provides helper functions for token creation and hashing

import (
    "errors"
    "time"

    "github.com/golang-jwt/jwt/v5" // JWT library for creating and parsing signed tokens
)

// AccessToken represents a signed HS256 session token along with its expiry.
// Access tokens are short-lived and carried in the Authorization header when
// calling protected endpoints.  They are stateless: validity is purely
// signature plus expiry, with no server-side revocation list.
type AccessToken struct {
    Token string    // the serialized JWT string
    Exp   time.Time // the UTC expiration time
}

// Claims is the decoded content of a verified session token: who the caller
// is and which role they hold.
type Claims struct {
    UserID uint64 // subject (sub) claim
    Role   string // role claim ("admin" or "standard")
}

// ErrInvalidToken is returned by VerifyAccessToken for every verification
// failure.  A forged signature and an expired token are deliberately
// indistinguishable to callers.
var ErrInvalidToken = errors.New("invalid token")

// NewAccessToken builds and signs an HS256 JWT for a user.  It takes the
// signing secret, the user ID, the user's role, and a TTL in minutes.  The
// JWT includes standard claims: subject (sub), role, expiration (exp) and
// issued at (iat).
func NewAccessToken(secret string, userID uint64, role string, ttlMin int) (AccessToken, error) {
    now := time.Now().UTC()
    exp := now.Add(time.Duration(ttlMin) * time.Minute)
    claims := jwt.MapClaims{
        "sub":  userID,
        "role": role,
        "exp":  exp.Unix(),
        "iat":  now.Unix(),
    }
    t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
    signed, err := t.SignedString([]byte(secret))
    if err != nil {
        return AccessToken{}, err
    }
    return AccessToken{Token: signed, Exp: exp}, nil
}

// VerifyAccessToken parses and validates a raw token string.  It enforces the
// HMAC signing method, checks the signature and expiry, and extracts the
// subject and role claims.  Any failure collapses into ErrInvalidToken so the
// response shape never reveals why verification failed.
func VerifyAccessToken(secret, raw string) (Claims, error) {
    tok, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
        if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
            return nil, ErrInvalidToken
        }
        return []byte(secret), nil
    })
    if err != nil || !tok.Valid {
        return Claims{}, ErrInvalidToken
    }
    mc, ok := tok.Claims.(jwt.MapClaims)
    if !ok {
        return Claims{}, ErrInvalidToken
    }
    var c Claims
    // Numeric JSON claims decode as float64.
    sub, ok := mc["sub"].(float64)
    if !ok || sub <= 0 {
        return Claims{}, ErrInvalidToken
    }
    c.UserID = uint64(sub)
    role, ok := mc["role"].(string)
    if !ok || role == "" {
        return Claims{}, ErrInvalidToken
    }
    c.Role = role
    return c, nil
}
