package ports

import (
	"context"

	"github.com/wildwall/wall-api/internal/core/domain"
)

// PostRepository defines persistence operations for sticky notes.
// Implementations return domain.ErrPostNotFound when the target id is absent.
type PostRepository interface {
	FindByStatus(ctx context.Context, status domain.PostStatus) ([]*domain.Post, error)
	FindByID(ctx context.Context, id int) (*domain.Post, error)
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	// Update rewrites the note text and color and refreshes the post date.
	Update(ctx context.Context, id int, text, color string) error
	SetStatus(ctx context.Context, id int, status domain.PostStatus) error
	Delete(ctx context.Context, id int) error
}
