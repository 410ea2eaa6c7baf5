package storage

import (
	"context"
	"errors"
	"io"
)

// ErrMissingCredentials indicates object storage credentials were not provided.
var ErrMissingCredentials = errors.New("object storage credentials are missing")

// Service uploads user images to remote object storage.
type Service interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) error
	PublicURL(key string) string
}
