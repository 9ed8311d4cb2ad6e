package service

import (
	"context"
	"fmt"
	"strings"

	"buddystream/internal/model"
	"buddystream/internal/repository"
)

// PostService handles stream reads and writes.
type PostService struct {
	posts repository.PostRepository
}

func NewPostService(posts repository.PostRepository) *PostService {
	return &PostService{posts: posts}
}

// Create adds a post to the user's stream.
func (s *PostService) Create(ctx context.Context, userID int64, req model.CreatePostRequest) (*model.Post, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, model.ErrPostContentRequired
	}
	if len(content) > model.MaxPostContentLength {
		return nil, model.ErrPostContentTooLong
	}

	post, err := s.posts.Create(ctx, userID, content)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}

	return post, nil
}

// Stream returns the user's own posts plus their friends' posts, newest
// first.
func (s *PostService) Stream(ctx context.Context, userID int64) ([]model.Post, error) {
	posts, err := s.posts.GetStreamForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load stream: %w", err)
	}
	return posts, nil
}
