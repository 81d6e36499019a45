package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/wildwall/wall-api/internal/core/domain"
	"github.com/wildwall/wall-api/internal/core/ports"
)

// PostService implements the wall use cases. Every mutation resolves the post
// first — a missing post is a 404 regardless of who asks — and only then
// evaluates the policy against the post's owner.
type PostService struct {
	posts  ports.PostRepository
	logger zerolog.Logger
}

func NewPostService(posts ports.PostRepository, logger zerolog.Logger) *PostService {
	return &PostService{posts: posts, logger: logger}
}

func (s *PostService) ListActive(ctx context.Context) ([]*domain.Post, error) {
	return s.posts.FindByStatus(ctx, domain.PostActive)
}

func (s *PostService) ListArchived(ctx context.Context) ([]*domain.Post, error) {
	return s.posts.FindByStatus(ctx, domain.PostArchived)
}

func (s *PostService) Get(ctx context.Context, id int) (*domain.Post, error) {
	return s.posts.FindByID(ctx, id)
}

// Create pins a new note to the wall, owned by the caller.
func (s *PostService) Create(ctx context.Context, ident domain.Identity, in ports.CreatePostInput) (*domain.Post, error) {
	post := &domain.Post{
		Text:      in.Text,
		Color:     domain.NormalizeColor(in.Color),
		Status:    domain.PostActive,
		UserID:    ident.UserID,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.posts.Create(ctx, post)
	if err != nil {
		s.logger.Error().Err(err).Int("user_id", ident.UserID).Msg("failed to create post")
		return nil, err
	}

	s.logger.Info().Int("post_id", created.ID).Int("user_id", ident.UserID).Msg("post created")
	return created, nil
}

// Edit rewrites a note's text and color. Owner only: elevated roles may
// moderate posts away but never rewrite someone else's words.
func (s *PostService) Edit(ctx context.Context, ident domain.Identity, id int, in ports.UpdatePostInput) (*domain.Post, error) {
	post, err := s.authorize(ctx, ident, domain.ActionPostEdit, id)
	if err != nil {
		return nil, err
	}

	if err := s.posts.Update(ctx, id, in.Text, domain.NormalizeColor(in.Color)); err != nil {
		return nil, err
	}

	s.logger.Info().Int("post_id", id).Int("user_id", ident.UserID).Msg("post edited")
	return s.posts.FindByID(ctx, post.ID)
}

// Archive moves a note off the active wall. Owner, delegate or admin.
func (s *PostService) Archive(ctx context.Context, ident domain.Identity, id int) error {
	if _, err := s.authorize(ctx, ident, domain.ActionPostArchive, id); err != nil {
		return err
	}

	if err := s.posts.SetStatus(ctx, id, domain.PostArchived); err != nil {
		return err
	}

	s.logger.Info().Int("post_id", id).Int("user_id", ident.UserID).Msg("post archived")
	return nil
}

// Delete removes a note permanently. Owner, delegate or admin.
func (s *PostService) Delete(ctx context.Context, ident domain.Identity, id int) error {
	if _, err := s.authorize(ctx, ident, domain.ActionPostDelete, id); err != nil {
		return err
	}

	if err := s.posts.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int("post_id", id).Int("user_id", ident.UserID).Msg("post deleted")
	return nil
}

// authorize resolves the post and checks the policy, in that order. The
// not-found check must come first so policy is never evaluated against a
// nonexistent post's owner.
func (s *PostService) authorize(ctx context.Context, ident domain.Identity, action domain.Action, id int) (*domain.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !domain.Allowed(ident, action, post.UserID) {
		s.logger.Info().
			Int("post_id", id).
			Int("user_id", ident.UserID).
			Str("role", string(ident.RoleCode)).
			Str("action", string(action)).
			Msg("authorization denied")
		return nil, domain.ErrForbidden
	}

	return post, nil
}
