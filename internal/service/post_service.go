package service

import (
	"context"
	"errors"

	"social-backend/internal/domain"
	"social-backend/internal/repository"
)

// ErrPostNotFound indicates the requested post does not exist.
var ErrPostNotFound = errors.New("post not found")

// PostService coordinates post level operations backed by the repository.
type PostService interface {
	Create(ctx context.Context, authorID int64, content string, imageURL *string) (*domain.Post, error)
	List(ctx context.Context) ([]domain.Post, error)
	Get(ctx context.Context, id int64) (*domain.Post, error)
	Replace(ctx context.Context, id, authorID int64, content string, imageURL *string) (*domain.Post, error)
	Delete(ctx context.Context, id int64) error
}

type postService struct {
	posts repository.PostRepository
}

func NewPostService(posts repository.PostRepository) PostService {
	return &postService{posts: posts}
}

func (s *postService) Create(ctx context.Context, authorID int64, content string, imageURL *string) (*domain.Post, error) {
	if content == "" {
		return nil, errors.New("content is required")
	}

	post := &domain.Post{
		AuthorID: authorID,
		Content:  content,
		ImageURL: imageURL,
	}

	if _, err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *postService) List(ctx context.Context) ([]domain.Post, error) {
	return s.posts.List(ctx)
}

func (s *postService) Get(ctx context.Context, id int64) (*domain.Post, error) {
	post, err := s.posts.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

func (s *postService) Replace(ctx context.Context, id, authorID int64, content string, imageURL *string) (*domain.Post, error) {
	post := &domain.Post{
		ID:       id,
		AuthorID: authorID,
		Content:  content,
		ImageURL: imageURL,
	}

	if err := s.posts.Replace(ctx, post); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return post, nil
}

func (s *postService) Delete(ctx context.Context, id int64) error {
	if err := s.posts.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrPostNotFound
		}
		return err
	}
	return nil
}
