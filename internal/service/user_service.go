package service

import (
	"context"
	"errors"
	"strings"

	"social-backend/internal/domain"
	"social-backend/internal/repository"
)

var (
	// ErrUserNotFound indicates the requested user does not exist.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists is returned when a username or email is already taken.
	ErrUserExists = errors.New("user already exists")
)

// UserService describes user lifecycle operations.
type UserService interface {
	Create(ctx context.Context, username, email, password string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	Replace(ctx context.Context, id int64, username, email, password string) (*domain.User, error)
	Delete(ctx context.Context, id int64) error
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{users: users}
}

func (s *userService) Create(ctx context.Context, username, email, password string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" {
		return nil, errors.New("username is required")
	}
	if email == "" {
		return nil, errors.New("email is required")
	}

	user := &domain.User{
		Username: username,
		Email:    email,
		Password: password,
	}

	if _, err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	return sanitizeUser(user), nil
}

func (s *userService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].Password = ""
	}
	return users, nil
}

func (s *userService) Get(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return sanitizeUser(user), nil
}

// Replace overwrites the row without checking it exists first; the
// response echoes the submitted fields either way.
func (s *userService) Replace(ctx context.Context, id int64, username, email, password string) (*domain.User, error) {
	user := &domain.User{
		ID:       id,
		Username: strings.TrimSpace(username),
		Email:    strings.TrimSpace(email),
		Password: password,
	}

	if err := s.users.Replace(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	return sanitizeUser(user), nil
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}

func sanitizeUser(user *domain.User) *domain.User {
	if user == nil {
		return nil
	}
	return &domain.User{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}
