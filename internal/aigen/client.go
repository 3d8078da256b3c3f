package aigen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hagwonlab/academy-api/internal/config"
)

// Client talks to the text-generation API used for platform content drafts
// and AI-assisted homework grading.
type Client struct {
	apiKey       string
	baseURL      string
	generatePath string
	model        string
	httpClient   *http.Client
	log          *slog.Logger
}

type GenerateOptions struct {
	Instruction string
	Prompt      string
	MaxTokens   int
}

func NewClient(cfg config.Config, log *slog.Logger) *Client {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}

	return &Client{
		apiKey:       cfg.AIGenAPIKey,
		baseURL:      strings.TrimRight(cfg.AIGenBaseURL, "/"),
		generatePath: cfg.AIGenGeneratePath,
		model:        cfg.AIGenModel,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Generate produces a single completion for the given instruction and prompt.
func (c *Client) Generate(ctx context.Context, opts GenerateOptions) (string, error) {
	if strings.TrimSpace(opts.Prompt) == "" {
		return "", fmt.Errorf("prompt is required")
	}

	base, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base URL: %w", err)
	}
	endpoint, err := url.Parse(c.generatePath)
	if err != nil {
		return "", fmt.Errorf("parse endpoint: %w", err)
	}
	fullURL := base.ResolveReference(endpoint).String()

	payload := map[string]any{
		"model":       c.model,
		"instruction": opts.Instruction,
		"prompt":      opts.Prompt,
	}
	if opts.MaxTokens > 0 {
		payload["max_tokens"] = opts.MaxTokens
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fullURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("post aigen: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode >= 300 {
		if c.log != nil {
			c.log.Error("aigen request failed", "status", resp.StatusCode, "url", fullURL, "body", truncateBody(rawBody))
		}
		return "", fmt.Errorf("aigen error: status=%d body=%s", resp.StatusCode, truncateBody(rawBody))
	}

	var genResp struct {
		Code int    `json:"code"`
		Msg  string `json:"msg"`
		Data struct {
			Text string `json:"text"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rawBody, &genResp); err != nil {
		return "", fmt.Errorf("decode response: %w (body=%s)", err, truncateBody(rawBody))
	}
	if genResp.Code != 200 {
		return "", fmt.Errorf("generation failed: code=%d msg=%s", genResp.Code, genResp.Msg)
	}
	if strings.TrimSpace(genResp.Data.Text) == "" {
		return "", fmt.Errorf("empty text in response")
	}

	return genResp.Data.Text, nil
}

func truncateBody(body []byte) string {
	const limit = 512
	s := strings.TrimSpace(string(body))
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "…"
}
