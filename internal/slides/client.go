package slides

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"
)

// Service creates presentations from a Deck.
//
//go:generate mockgen -destination=../../mocks/mock_slides_service.go -package=mocks -mock_names=Service=MockSlidesService . Service
type Service interface {
	CreateDeck(ctx context.Context, deck *Deck) (string, error)
}

type httpService struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewHTTPService builds a slides-service client. The service accepts the
// deck payload in one POST and returns the presentation URL.
func NewHTTPService(baseURL, apiKey string, logger *slog.Logger) Service {
	return &httpService{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 2 * time.Minute,
		},
		logger: logger,
	}
}

func (s *httpService) CreateDeck(ctx context.Context, deck *Deck) (string, error) {
	body, err := json.Marshal(deck)
	if err != nil {
		return "", fmt.Errorf("marshal deck: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/v1/presentations", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build deck request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("create deck %q: %w", deck.Title, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("create deck %q: unexpected status %s", deck.Title, resp.Status)
	}

	var parsed struct {
		URL string `json:"url"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode deck response: %w", err)
	}

	s.logger.Info("created slide deck", "title", deck.Title, "slides", len(deck.Slides), "url", parsed.URL)
	return parsed.URL, nil
}
