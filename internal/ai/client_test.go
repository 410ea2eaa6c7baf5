package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGeneratePostDraft(t *testing.T) {
	var gotReq chatCompletionRequest
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/chat/completions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "Launching product X today!"}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{
		BaseURL: srv.URL + "/",
		APIKey:  "test-key",
		Model:   "google/gemini-pro",
	})

	draft, err := client.GeneratePostDraft(context.Background(), "launch of product X", 200)
	require.NoError(t, err)
	require.Equal(t, "Launching product X today!", draft)

	require.Equal(t, "Bearer test-key", gotAuth)
	require.Equal(t, "google/gemini-pro", gotReq.Model)
	require.Len(t, gotReq.Messages, 2)
	require.Equal(t, "system", gotReq.Messages[0].Role)
	require.Equal(t, "user", gotReq.Messages[1].Role)
	require.Contains(t, gotReq.Messages[1].Content, "launch of product X")
	require.Contains(t, gotReq.Messages[1].Content, "under 200 characters")
}

func TestGeneratePostDraft_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error": "model overloaded"}`, http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL, APIKey: "k", Model: "m"})

	_, err := client.GeneratePostDraft(context.Background(), "anything", 100)
	require.Error(t, err)
	require.Contains(t, err.Error(), "status 503")
	require.Contains(t, err.Error(), "model overloaded")
}

func TestGeneratePostDraft_NoChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices": []}`))
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL, APIKey: "k", Model: "m"})

	_, err := client.GeneratePostDraft(context.Background(), "anything", 100)
	require.Error(t, err)
	require.Contains(t, err.Error(), "no choices")
}
