package repository

import (
	"context"

	"social-backend/internal/domain"
)

// PostRepository exposes persistence operations for Post entities.
type PostRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, post *domain.Post) (int64, error)
	List(ctx context.Context) ([]domain.Post, error)
	Get(ctx context.Context, id int64) (*domain.Post, error)
	Replace(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id int64) error
}
