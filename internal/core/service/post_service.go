package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/supernova-club/community-api/internal/core/domain"
	"github.com/supernova-club/community-api/internal/core/ports"
)

// PostService handles the news feed.
type PostService struct {
	posts ports.PostRepository
	log   zerolog.Logger
}

func NewPostService(posts ports.PostRepository, log zerolog.Logger) *PostService {
	return &PostService{posts: posts, log: log}
}

func (s *PostService) Create(ctx context.Context, in ports.CreatePostInput) (*domain.Post, error) {
	if in.Title == "" || in.Body == "" {
		return nil, domain.ErrInvalidInput
	}

	post := &domain.Post{
		Title:     in.Title,
		Body:      in.Body,
		AuthorID:  in.AuthorID,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.posts.Create(ctx, post); err != nil {
		s.log.Error().Err(err).Str("title", in.Title).Msg("failed to create post")
		return nil, err
	}

	s.log.Info().Str("title", post.Title).Str("author_id", post.AuthorID).Msg("post created")
	return post, nil
}

func (s *PostService) Feed(ctx context.Context) ([]*domain.Post, error) {
	return s.posts.List(ctx)
}
