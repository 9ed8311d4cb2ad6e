package service

import (
	"context"
	"fmt"
	"strings"

	"buddystream/internal/model"
	"buddystream/internal/repository"
)

// CommentService handles comments on posts.
type CommentService struct {
	comments repository.CommentRepository
	posts    repository.PostRepository
}

func NewCommentService(comments repository.CommentRepository, posts repository.PostRepository) *CommentService {
	return &CommentService{
		comments: comments,
		posts:    posts,
	}
}

// Create adds a comment to an existing post.
func (s *CommentService) Create(ctx context.Context, postID, userID int64, req model.CreateCommentRequest) (*model.Comment, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return nil, model.ErrCommentContentRequired
	}
	if len(content) > model.MaxCommentLength {
		return nil, model.ErrCommentContentTooLong
	}

	exists, err := s.posts.Exists(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("check post: %w", err)
	}
	if !exists {
		return nil, model.ErrPostNotFound
	}

	comment, err := s.comments.Create(ctx, postID, userID, content)
	if err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	return comment, nil
}

// PostWithComments returns the post and its comments, newest first.
func (s *CommentService) PostWithComments(ctx context.Context, postID int64) (*model.Post, []model.Comment, error) {
	post, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, nil, err
	}

	comments, err := s.comments.GetByPostID(ctx, postID)
	if err != nil {
		return nil, nil, fmt.Errorf("load comments: %w", err)
	}

	return post, comments, nil
}
