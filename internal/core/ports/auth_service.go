package ports

import (
	"context"
	"time"

	"github.com/wildwall/wall-api/internal/core/domain"
)

// LoginResult carries the signed session token plus the public account fields
// echoed back to the client. TTL is the token lifetime; the route layer
// derives the cookie Max-Age from it so the cookie can never outlive the token.
type LoginResult struct {
	Token    string
	TTL      time.Duration
	UserID   int
	Username string
	RoleCode domain.Role
}

// AuthService authenticates credentials and issues session tokens.
// Logout has no service-side counterpart: sessions are stateless, so logging
// out is purely the route layer expiring the cookie.
type AuthService interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
}

// LoginLimiter throttles repeated login attempts for one account.
// Implementations are expected to fail open on infrastructure errors.
type LoginLimiter interface {
	Allow(ctx context.Context, username string) (bool, error)
}
