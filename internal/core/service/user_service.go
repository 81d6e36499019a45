package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/wildwall/wall-api/internal/auth"
	"github.com/wildwall/wall-api/internal/core/domain"
	"github.com/wildwall/wall-api/internal/core/ports"
)

// UserService implements account management. Admin-only operations (List,
// UpdateRole, Delete) are gated by the policy middleware on their routes;
// Get evaluates the policy itself because it also allows self-lookup.
type UserService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

// Register creates a new account at the lowest privilege tier.
func (s *UserService) Register(ctx context.Context, username, password string) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	created, err := s.users.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: hash,
		RoleCode:     domain.RoleWilder,
	})
	if err != nil {
		if !errors.Is(err, domain.ErrUserExists) {
			s.logger.Error().Err(err).Str("username", username).Msg("failed to create user")
		}
		return nil, err
	}

	s.logger.Info().Str("username", username).Int("user_id", created.ID).Msg("user registered")
	return created, nil
}

func (s *UserService) List(ctx context.Context) ([]ports.UserSummary, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]ports.UserSummary, len(users))
	for i, u := range users {
		summaries[i] = ports.UserSummary{
			UserID:   u.ID,
			Username: u.Username,
			Role:     u.RoleName(),
		}
	}
	return summaries, nil
}

// Get returns one account. Admins may look up anyone, everyone else only
// themselves. The existence check runs first so a 404 never turns into a 403.
func (s *UserService) Get(ctx context.Context, ident domain.Identity, id int) (*domain.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !domain.Allowed(ident, domain.ActionUserGet, user.ID) {
		return nil, domain.ErrForbidden
	}
	return user, nil
}

// UpdateRole moves an account to the named role tier.
func (s *UserService) UpdateRole(ctx context.Context, id int, roleName string) error {
	role, ok := domain.RoleByName(roleName)
	if !ok {
		return domain.ErrInvalidRole
	}

	if _, err := s.users.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.users.UpdateRole(ctx, id, role); err != nil {
		return err
	}

	s.logger.Info().Int("user_id", id).Str("role", roleName).Msg("user role updated")
	return nil
}

func (s *UserService) Delete(ctx context.Context, id int) error {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		return err
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int("user_id", id).Msg("user deleted")
	return nil
}
