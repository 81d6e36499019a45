package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/wildwall/wall-api/internal/auth"
	"github.com/wildwall/wall-api/internal/core/domain"
	"github.com/wildwall/wall-api/internal/core/ports"
)

// AuthService implements login against the credential store.
type AuthService struct {
	users   ports.UserRepository
	codec   *auth.Codec
	limiter ports.LoginLimiter // nil when throttling is not configured
	logger  zerolog.Logger
}

func NewAuthService(users ports.UserRepository, codec *auth.Codec, limiter ports.LoginLimiter, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, codec: codec, limiter: limiter, logger: logger}
}

// Login verifies the credentials and issues a signed session token. Unknown
// usernames and wrong passwords are both reported as
// domain.ErrInvalidCredentials so the caller cannot probe which factor failed;
// the real reason is only logged.
func (s *AuthService) Login(ctx context.Context, username, password string) (*ports.LoginResult, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		allowed, err := s.limiter.Allow(ctx, username)
		if err != nil {
			// Fail open: a broken limiter must not lock everyone out.
			s.logger.Warn().Err(err).Msg("login limiter unavailable")
		} else if !allowed {
			s.logger.Info().Str("username", username).Msg("login throttled")
			return nil, domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.logger.Info().Str("username", username).Msg("login failed: unknown user")
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		s.logger.Info().Str("username", username).Msg("login failed: wrong password")
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.codec.Sign(domain.Identity{UserID: user.ID, RoleCode: user.RoleCode})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("username", username).Int("user_id", user.ID).Msg("login succeeded")

	return &ports.LoginResult{
		Token:    token,
		TTL:      s.codec.TTL(),
		UserID:   user.ID,
		Username: user.Username,
		RoleCode: user.RoleCode,
	}, nil
}
