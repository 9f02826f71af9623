package yandex

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"yatranslator/internal/domain"

	"go.uber.org/zap"
)

// Client calls the Yandex Translate v1.5 JSON API
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *zap.Logger
}

// NewClient creates a translation client
func NewClient(httpClient *http.Client, baseURL, apiKey string, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		apiKey:     apiKey,
		logger:     logger,
	}
}

type translateResponse struct {
	Code    int      `json:"code"`
	Message string   `json:"message"`
	Lang    string   `json:"lang"`
	Text    []string `json:"text"`
}

// Translate sends a single translation request.
// A non-OK provider status is returned as *domain.ProviderError.
func (c *Client) Translate(ctx context.Context, text string, direction domain.Direction) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid translate url: %w", err)
	}
	q := u.Query()
	q.Set("key", c.apiKey)
	q.Set("text", text)
	q.Set("lang", direction.String())
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build translate request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("translate request failed: %w", err)
	}
	defer resp.Body.Close()

	// Yandex reports failures in the body together with a matching HTTP status
	var body translateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode translate response (http %d): %w", resp.StatusCode, err)
	}

	c.logger.Info("Translate response",
		zap.String("direction", direction.String()),
		zap.Int("code", body.Code),
		zap.String("lang", body.Lang),
		zap.Int("segments", len(body.Text)),
	)

	if body.Code != domain.StatusOK {
		return "", &domain.ProviderError{Code: body.Code, Message: body.Message}
	}
	if len(body.Text) == 0 {
		return "", domain.ErrEmptyTranslation
	}

	return body.Text[0], nil
}
