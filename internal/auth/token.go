// Package auth holds the credential primitives of the wall: password hashing
// and the session token codec. Both are stateless; nothing here touches
// storage or the network.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/wildwall/wall-api/internal/core/domain"
)

// CookieName is the session cookie holding the signed token.
const CookieName = "token"

// Claims is the signed payload of a session token.
type Claims struct {
	UserID   int         `json:"userId"`
	RoleCode domain.Role `json:"roleCode"`
	jwt.RegisteredClaims
}

// Codec signs and verifies session tokens (HS256). Tokens are stateless:
// expiry is embedded in the token itself and nothing is stored server-side,
// so there is no revocation list.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec returns a Codec signing with secret. Tokens live for ttl; the
// session cookie Max-Age is derived from the same value, keeping a single
// source of truth for session lifetime. A non-positive ttl defaults to 1h.
func NewCodec(secret string, ttl time.Duration) *Codec {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// TTL returns the token lifetime.
func (c *Codec) TTL() time.Duration { return c.ttl }

// Sign issues a token embedding the identity plus issued-at and expiry
// timestamps. Returns domain.ErrMissingSecret when no secret is configured.
func (c *Codec) Sign(ident domain.Identity) (string, error) {
	if len(c.secret) == 0 {
		return "", domain.ErrMissingSecret
	}

	now := time.Now()
	claims := Claims{
		UserID:   ident.UserID,
		RoleCode: ident.RoleCode,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
}

// Verify checks signature and expiry and returns the embedded identity.
// An expired token is reported as domain.ErrTokenExpired; every other parse
// or signature failure as domain.ErrTokenInvalid — the distinction drives the
// "session expired" versus generic 401 responses.
func (c *Codec) Verify(token string) (domain.Identity, error) {
	if len(c.secret) == 0 {
		return domain.Identity{}, domain.ErrMissingSecret
	}

	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Identity{}, domain.ErrTokenExpired
		}
		return domain.Identity{}, domain.ErrTokenInvalid
	}
	if !tkn.Valid {
		return domain.Identity{}, domain.ErrTokenInvalid
	}

	return domain.Identity{UserID: claims.UserID, RoleCode: claims.RoleCode}, nil
}
