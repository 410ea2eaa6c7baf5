package repository

import (
	"context"

	"social-backend/internal/domain"
)

// UserRepository defines persistence operations for User entities.
type UserRepository interface {
	Init(ctx context.Context) error
	Create(ctx context.Context, user *domain.User) (int64, error)
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	Replace(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int64) error
}
