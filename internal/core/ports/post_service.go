package ports

import (
	"context"

	"github.com/supernova-club/community-api/internal/core/domain"
)

// CreatePostInput carries the new-post form fields.
type CreatePostInput struct {
	Title    string
	Body     string
	AuthorID string
}

type PostService interface {
	Create(ctx context.Context, in CreatePostInput) (*domain.Post, error)
	// Feed returns all posts, newest first.
	Feed(ctx context.Context) ([]*domain.Post, error)
}
