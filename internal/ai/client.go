package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultHTTPTimeout = 60 * time.Second

	systemInstruction = "You are a helpful assistant for drafting social media posts. Be concise and engaging."
	userInstruction   = "Draft a social media post based on this idea: %s. Keep it under %d characters. Start directly with the post content, no conversational filler."
)

// DraftGenerator produces AI-written post drafts.
type DraftGenerator interface {
	GeneratePostDraft(ctx context.Context, prompt string, maxLength int) (string, error)
}

// ClientConfig contains configuration for Client.
type ClientConfig struct {
	// BaseURL is the chat-completion API root, e.g. https://openrouter.ai/api/v1.
	BaseURL string

	// APIKey is the bearer token sent with every request.
	APIKey string

	// Model is the model identifier to request completions from.
	Model string

	// HTTPClient is an optional custom HTTP client.
	HTTPClient *http.Client
}

// Client calls an OpenAI-compatible chat-completion API.
type Client struct {
	config     ClientConfig
	httpClient *http.Client
}

func NewClient(config ClientConfig) *Client {
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: defaultHTTPTimeout}
	}
	config.BaseURL = strings.TrimSuffix(config.BaseURL, "/")

	return &Client{
		config:     config,
		httpClient: httpClient,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// GeneratePostDraft forwards the prompt to the completion API and
// returns the first choice's text verbatim. maxLength is advisory
// only; it is embedded in the user message, never enforced on the
// returned draft.
func (c *Client) GeneratePostDraft(ctx context.Context, prompt string, maxLength int) (string, error) {
	payload := chatCompletionRequest{
		Model: c.config.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemInstruction},
			{Role: "user", Content: fmt.Sprintf(userInstruction, prompt, maxLength)},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal completion request: %w", err)
	}

	reqURL := c.config.BaseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create completion request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.config.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("completion failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", fmt.Errorf("decode completion response: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("completion returned no choices")
	}

	return completion.Choices[0].Message.Content, nil
}

var _ DraftGenerator = (*Client)(nil)
