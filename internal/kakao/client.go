package kakao

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hagwonlab/academy-api/internal/config"
)

// Client sends SMS and KakaoTalk channel messages through the provider's
// signed HTTP API. Failures are terminal for the request; there is no retry.
type Client struct {
	apiKey     string
	apiSecret  string
	baseURL    string
	sendPath   string
	httpClient *http.Client
	log        *slog.Logger
	now        func() time.Time
}

type SendOptions struct {
	Recipient  string
	Body       string
	ChannelKey string
	Sender     string
	Kakao      bool
}

type SendResult struct {
	MessageID string
	Status    string
}

func NewClient(cfg config.Config, log *slog.Logger) *Client {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		apiKey:    cfg.KakaoAPIKey,
		apiSecret: cfg.KakaoAPISecret,
		baseURL:   strings.TrimRight(cfg.KakaoBaseURL, "/"),
		sendPath:  cfg.KakaoSendPath,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
		now: time.Now,
	}
}

// Send delivers one message. Kakao messages fall back to SMS on the provider
// side when the recipient has not added the channel; the provider reports the
// delivered kind in the status field.
func (c *Client) Send(ctx context.Context, opts SendOptions) (*SendResult, error) {
	if strings.TrimSpace(opts.Recipient) == "" {
		return nil, fmt.Errorf("recipient is required")
	}
	if strings.TrimSpace(opts.Body) == "" {
		return nil, fmt.Errorf("message body is required")
	}

	kind := "sms"
	if opts.Kakao {
		kind = "kakao"
		if opts.ChannelKey == "" {
			return nil, fmt.Errorf("channel key is required for kakao messages")
		}
	}

	payload := map[string]any{
		"type":      kind,
		"to":        opts.Recipient,
		"text":      opts.Body,
		"from":      opts.Sender,
		"channelId": opts.ChannelKey,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}

	base, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base URL: %w", err)
	}
	endpoint, err := url.Parse(c.sendPath)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint: %w", err)
	}
	fullURL := base.ResolveReference(endpoint).String()

	timestamp := strconv.FormatInt(c.now().Unix(), 10)
	signature := Sign(c.apiSecret, timestamp, http.MethodPost, endpoint.Path, body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fullURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("X-Timestamp", timestamp)
	req.Header.Set("X-Signature", signature)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("post message: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode >= 300 {
		if c.log != nil {
			c.log.Error("message send failed", "status", resp.StatusCode, "url", fullURL, "body", truncateBody(rawBody))
		}
		return nil, fmt.Errorf("message api error: status=%d body=%s", resp.StatusCode, truncateBody(rawBody))
	}

	var sendResp struct {
		Success   bool   `json:"success"`
		MessageID string `json:"messageId"`
		Status    string `json:"status"`
		Error     string `json:"error"`
	}
	if err := json.Unmarshal(rawBody, &sendResp); err != nil {
		return nil, fmt.Errorf("decode response: %w (body=%s)", err, truncateBody(rawBody))
	}
	if !sendResp.Success {
		return nil, fmt.Errorf("message rejected: %s", sendResp.Error)
	}

	status := sendResp.Status
	if status == "" {
		status = "SENT"
	}
	return &SendResult{MessageID: sendResp.MessageID, Status: status}, nil
}

// Sign computes the request signature: hex HMAC-SHA256 over
// timestamp + method + path + body with the API secret as key.
func Sign(secret, timestamp, method, path string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(timestamp))
	mac.Write([]byte(method))
	mac.Write([]byte(path))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func truncateBody(body []byte) string {
	const limit = 512
	s := strings.TrimSpace(string(body))
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "…"
}
