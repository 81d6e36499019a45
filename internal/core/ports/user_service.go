package ports

import (
	"context"

	"github.com/wildwall/wall-api/internal/core/domain"
)

// UserSummary is the trimmed account view returned by the admin listing.
type UserSummary struct {
	UserID   int
	Username string
	Role     string
}

// UserService defines account management use cases. List, UpdateRole and
// Delete are admin-only and gated by the route layer's policy middleware;
// Get additionally allows self-lookup and checks the policy itself.
type UserService interface {
	// Register creates a new wilder account. Every self-registered user
	// starts at the lowest privilege tier.
	Register(ctx context.Context, username, password string) (*domain.User, error)
	List(ctx context.Context) ([]UserSummary, error)
	Get(ctx context.Context, ident domain.Identity, id int) (*domain.User, error)
	UpdateRole(ctx context.Context, id int, roleName string) error
	Delete(ctx context.Context, id int) error
}
