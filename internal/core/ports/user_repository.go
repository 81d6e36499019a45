package ports

import (
	"context"

	"github.com/wildwall/wall-api/internal/core/domain"
)

// UserRepository defines persistence operations for wall accounts.
// Implementations return domain.ErrUserNotFound / domain.ErrUserExists for
// the corresponding conditions.
type UserRepository interface {
	FindAll(ctx context.Context) ([]*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	UpdateRole(ctx context.Context, id int, role domain.Role) error
	Delete(ctx context.Context, id int) error
}
