package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPublicURL(t *testing.T) {
	svc := NewS3Service(nil, "images", "https://cdn.example.com/")
	require.Equal(t, "https://cdn.example.com/a.png", svc.PublicURL("a.png"))

	svc = NewS3Service(nil, "images", "https://cdn.example.com")
	require.Equal(t, "https://cdn.example.com/a.png", svc.PublicURL("a.png"))
}

func TestNewR2Service_MissingCredentials(t *testing.T) {
	ctx := context.Background()
	base := R2Config{
		AccessKey:     "ak",
		SecretKey:     "sk",
		AccountID:     "acct123",
		Bucket:        "images",
		PublicBaseURL: "https://cdn.example.com",
	}

	cfg := base
	cfg.AccessKey = ""
	_, err := NewR2Service(ctx, cfg)
	require.ErrorIs(t, err, ErrMissingCredentials)

	cfg = base
	cfg.SecretKey = "   "
	_, err = NewR2Service(ctx, cfg)
	require.ErrorIs(t, err, ErrMissingCredentials)
}

func TestNewR2Service_MissingBucket(t *testing.T) {
	_, err := NewR2Service(context.Background(), R2Config{
		AccessKey: "ak",
		SecretKey: "sk",
		AccountID: "acct123",
	})
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrMissingCredentials)
}
