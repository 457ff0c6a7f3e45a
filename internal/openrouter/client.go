// Package openrouter talks to the OpenRouter API for chat completions and
// embeddings, and normalizes the untrusted model output into typed results.
// Model responses are treated as hostile input: possibly fenced, malformed,
// or truncated mid-JSON.
package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	defaultBaseURL        = "https://openrouter.ai/api/v1"
	defaultModel          = "mistralai/devstral-2512:free"
	defaultEmbeddingModel = "openai/text-embedding-3-small"

	// Chat completions can take a while on free-tier models.
	requestTimeout = 60 * time.Second
)

// Config holds the connection settings for one OpenRouter client.
type Config struct {
	APIKey         string
	BaseURL        string
	Model          string
	EmbeddingModel string
	// SiteURL and SiteName populate OpenRouter's optional ranking headers.
	SiteURL  string
	SiteName string
}

// Client is a thin HTTP client for the OpenRouter chat and embedding
// endpoints. It is safe for concurrent use.
type Client struct {
	cfg  Config
	http *http.Client
	log  *zap.Logger
}

// NewClient creates a Client from config, filling in API defaults for any
// empty fields except the API key.
func NewClient(cfg Config, log *zap.Logger) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openrouter API key is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.EmbeddingModel == "" {
		cfg.EmbeddingModel = defaultEmbeddingModel
	}

	return &Client{
		cfg:  cfg,
		http: &http.Client{Timeout: requestTimeout},
		log:  log,
	}, nil
}

// Model returns the configured chat model identifier.
func (c *Client) Model() string {
	return c.cfg.Model
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type embeddingRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

type embeddingResponse struct {
	Data []struct {
		Embedding []float64 `json:"embedding"`
	} `json:"data"`
}

// ChatCompletion sends a system+user message pair and returns the raw
// content of the first choice. The content is not cleaned or parsed here.
func (c *Client) ChatCompletion(ctx context.Context, systemPrompt, userPrompt string, temperature float64, maxTokens int) (string, error) {
	req := chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}

	var resp chatResponse
	if err := c.post(ctx, "/chat/completions", req, &resp); err != nil {
		return "", &UpstreamError{Op: "chat completion", Cause: err}
	}
	if len(resp.Choices) == 0 {
		return "", &UpstreamError{Op: "chat completion", Cause: fmt.Errorf("response contains no choices")}
	}

	content := resp.Choices[0].Message.Content
	c.log.Debug("chat completion received", zap.Int("content_length", len(content)))
	return content, nil
}

// Embed returns the embedding vector for one text.
func (c *Client) Embed(ctx context.Context, text string) ([]float64, error) {
	req := embeddingRequest{
		Model: c.cfg.EmbeddingModel,
		Input: text,
	}

	var resp embeddingResponse
	if err := c.post(ctx, "/embeddings", req, &resp); err != nil {
		return nil, &UpstreamError{Op: "embedding", Cause: err}
	}
	if len(resp.Data) == 0 {
		return nil, &UpstreamError{Op: "embedding", Cause: fmt.Errorf("response contains no data")}
	}

	return resp.Data[0].Embedding, nil
}

func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.SiteURL != "" {
		req.Header.Set("HTTP-Referer", c.cfg.SiteURL)
	}
	if c.cfg.SiteName != "" {
		req.Header.Set("X-Title", c.cfg.SiteName)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &StatusError{StatusCode: resp.StatusCode, Body: string(data)}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
