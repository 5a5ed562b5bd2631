// Package rehost copies GitHub attachment binaries to the public CDN so
// changelog entries and slides never reference token-gated URLs.
package rehost

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// CDN uploads bytes under a caller-chosen name and returns a stable public
// URL.
//
//go:generate mockgen -destination=../../mocks/mock_cdn.go -package=mocks . CDN
type CDN interface {
	Upload(ctx context.Context, name, contentType string, data []byte) (string, error)
}

type httpCDN struct {
	uploadURL  string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPCDN builds a CDN client against an upload endpoint that accepts
// a raw PUT of the object body and answers with a JSON {"url": ...}.
func NewHTTPCDN(uploadURL, apiKey string, logger *slog.Logger) CDN {
	return &httpCDN{
		uploadURL: uploadURL,
		apiKey:    apiKey,
		httpClient: &http.Client{
			Timeout: 2 * time.Minute,
		},
		logger: logger,
	}
}

func (c *httpCDN) Upload(ctx context.Context, name, contentType string, data []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, c.uploadURL+"/"+name, bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("upload %s: unexpected status %s", name, resp.Status)
	}

	var parsed struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode upload response for %s: %w", name, err)
	}
	if parsed.URL == "" {
		return "", fmt.Errorf("upload %s: response carried no url", name)
	}

	c.logger.Debug("uploaded asset", "name", name, "bytes", len(data))
	return parsed.URL, nil
}
