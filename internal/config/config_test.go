package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SOCIAL_DATABASE_PATH", "data/test.db")
	t.Setenv("SOCIAL_AI_APIKEY", "sk-test")
	t.Setenv("SOCIAL_STORAGE_ACCESSKEY", "ak")
	t.Setenv("SOCIAL_STORAGE_SECRETKEY", "sk")
	t.Setenv("SOCIAL_STORAGE_ACCOUNTID", "acct123")
	t.Setenv("SOCIAL_STORAGE_BUCKET", "images")
	t.Setenv("SOCIAL_STORAGE_PUBLICBASEURL", "https://cdn.example.com")
}

func TestLoad(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "0.0.0.0:8080", cfg.Server.Addr)
	require.Equal(t, "data/test.db", cfg.Database.Path)
	require.Equal(t, "https://openrouter.ai/api/v1", cfg.AI.BaseURL)
	require.Equal(t, "sk-test", cfg.AI.APIKey)
	require.Equal(t, "google/gemini-pro", cfg.AI.Model)
	require.Equal(t, "acct123", cfg.Storage.AccountID)
	require.Equal(t, "images", cfg.Storage.Bucket)
	require.Equal(t, "https://cdn.example.com", cfg.Storage.PublicBaseURL)
}

func TestLoad_MissingRequired(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SOCIAL_AI_APIKEY", "")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "ai.apikey")
}

func TestLoad_MissingDatabase(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SOCIAL_DATABASE_PATH", "")

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "database.path")
}
