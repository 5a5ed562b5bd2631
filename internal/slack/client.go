// Package slack posts Herald's digests and leaderboards to Slack.
package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

const postMessageURL = "https://slack.com/api/chat.postMessage"

// Client posts Block Kit messages.
//
//go:generate mockgen -destination=../../mocks/mock_slack_client.go -package=mocks -mock_names=Client=MockSlackClient . Client
type Client interface {
	PostMessage(ctx context.Context, channel string, blocks []Block) error
}

type httpClient struct {
	token      string
	apiURL     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient builds a Slack Web API client using a bot token.
func NewClient(token string, logger *slog.Logger) Client {
	return &httpClient{
		token:  token,
		apiURL: postMessageURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

// PostMessage calls chat.postMessage. Slack reports API errors inside a 200
// response, so the ok flag is checked as well as the HTTP status.
func (c *httpClient) PostMessage(ctx context.Context, channel string, blocks []Block) error {
	payload := map[string]any{
		"channel": channel,
		"blocks":  blocks,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal slack payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build slack request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json; charset=utf-8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post to slack channel %s: %w", channel, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("post to slack channel %s: unexpected status %s", channel, resp.Status)
	}

	var parsed struct {
		OK    bool   `json:"ok"`
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return fmt.Errorf("decode slack response: %w", err)
	}
	if !parsed.OK {
		return fmt.Errorf("slack rejected message for channel %s: %s", channel, parsed.Error)
	}

	c.logger.Info("posted slack message", "channel", channel, "blocks", len(blocks))
	return nil
}
