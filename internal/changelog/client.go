// Package changelog talks to the changelog service that hosts Herald's
// published release notes.
package changelog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/relforge/herald/internal/core"
)

// Client is the slice of the changelog service API Herald uses. Entries are
// read to find the last published timestamp and written as drafts for a
// human to publish.
//
//go:generate mockgen -destination=../../mocks/mock_changelog_client.go -package=mocks -mock_names=Client=MockChangelogClient . Client
type Client interface {
	ListEntries(ctx context.Context, limit int) ([]core.ChangelogEntry, error)
	CreateDraft(ctx context.Context, title, markdown string, category core.Category) (string, error)
}

type httpClient struct {
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *slog.Logger
}

// NewClient builds a changelog-service client. The service follows the
// Canny convention: every call is a POST with the apiKey in the JSON body.
func NewClient(baseURL, apiKey string, logger *slog.Logger) Client {
	return &httpClient{
		baseURL: baseURL,
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
}

type listEntriesResponse struct {
	Entries []struct {
		ID        string    `json:"id"`
		Title     string    `json:"title"`
		Markdown  string    `json:"markdownDetails"`
		CreatedAt time.Time `json:"created"`
	} `json:"entries"`
}

// ListEntries returns the most recent entries, newest first.
func (c *httpClient) ListEntries(ctx context.Context, limit int) ([]core.ChangelogEntry, error) {
	payload := map[string]any{
		"apiKey": c.apiKey,
		"limit":  limit,
	}

	var parsed listEntriesResponse
	if err := c.post(ctx, "/entries/list", payload, &parsed); err != nil {
		return nil, fmt.Errorf("list changelog entries: %w", err)
	}

	entries := make([]core.ChangelogEntry, 0, len(parsed.Entries))
	for _, e := range parsed.Entries {
		entries = append(entries, core.ChangelogEntry{
			ID:        e.ID,
			Title:     e.Title,
			Markdown:  e.Markdown,
			CreatedAt: e.CreatedAt,
		})
	}
	return entries, nil
}

// CreateDraft creates an unpublished entry and returns its id.
func (c *httpClient) CreateDraft(ctx context.Context, title, markdown string, category core.Category) (string, error) {
	payload := map[string]any{
		"apiKey":          c.apiKey,
		"title":           title,
		"markdownDetails": markdown,
		"type":            string(category),
		"published":       false,
	}

	var parsed struct {
		ID string `json:"id"`
	}
	if err := c.post(ctx, "/entries/create", payload, &parsed); err != nil {
		return "", fmt.Errorf("create changelog draft %q: %w", title, err)
	}

	c.logger.Info("created changelog draft", "id", parsed.ID, "title", title, "category", category)
	return parsed.ID, nil
}

func (c *httpClient) post(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %s", resp.Status)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
