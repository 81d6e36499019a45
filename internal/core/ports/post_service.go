package ports

import (
	"context"

	"github.com/wildwall/wall-api/internal/core/domain"
)

// CreatePostInput carries the data needed to pin a new note to the wall.
// The owner always comes from the caller's identity, never from the payload.
type CreatePostInput struct {
	Text  string
	Color string
}

// UpdatePostInput carries the editable fields of an existing note.
type UpdatePostInput struct {
	Text  string
	Color string
}

// PostService defines use-case operations for wall posts. Mutations take the
// caller's Identity and enforce the ownership/role policy; a missing post is
// always reported as domain.ErrPostNotFound before any policy evaluation.
type PostService interface {
	ListActive(ctx context.Context) ([]*domain.Post, error)
	ListArchived(ctx context.Context) ([]*domain.Post, error)
	Get(ctx context.Context, id int) (*domain.Post, error)
	Create(ctx context.Context, ident domain.Identity, in CreatePostInput) (*domain.Post, error)
	Edit(ctx context.Context, ident domain.Identity, id int, in UpdatePostInput) (*domain.Post, error)
	Archive(ctx context.Context, ident domain.Identity, id int) error
	Delete(ctx context.Context, ident domain.Identity, id int) error
}
