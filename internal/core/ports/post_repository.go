package ports

import (
	"context"

	"github.com/supernova-club/community-api/internal/core/domain"
)

// PostRepository defines persistence operations for news posts.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) error
	// List returns all posts, newest first.
	List(ctx context.Context) ([]*domain.Post, error)
}
