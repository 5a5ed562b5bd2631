// Package llm provides the language-model summarization and classification
// used by Herald's publishing pipelines.
package llm

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/sevigo/goframe/llms"
	"github.com/sevigo/goframe/llms/gemini"
	"github.com/sevigo/goframe/llms/ollama"

	"github.com/relforge/herald/internal/config"
	"github.com/relforge/herald/internal/core"
)

const generateTimeout = 2 * time.Minute

// Summarizer turns raw GitHub data into publishable text.
type Summarizer interface {
	// SummarizeEntry writes a customer-facing summary for one merged PR.
	SummarizeEntry(ctx context.Context, pr *core.MergedPR) (string, error)
	// ClassifyCategory assigns a changelog category to a summarized change.
	// Unparseable model output falls back to CategoryOther.
	ClassifyCategory(ctx context.Context, title, summary string) (core.Category, error)
	// DigestWeek condenses a week of activity into Slack-ready bullets.
	DigestWeek(ctx context.Context, prs []core.MergedPR, issues []core.ClosedIssue) (string, error)
	// SlideBullets condenses highlight strings into slide-sized bullets,
	// preserving order and count.
	SlideBullets(ctx context.Context, items []string) ([]string, error)
}

type summarizer struct {
	model     llms.Model
	promptMgr *PromptManager
	provider  ModelProvider
	logger    *slog.Logger
}

// NewSummarizer wires a Summarizer on top of a goframe model.
func NewSummarizer(model llms.Model, promptMgr *PromptManager, provider string, logger *slog.Logger) Summarizer {
	return &summarizer{
		model:     model,
		promptMgr: promptMgr,
		provider:  ModelProvider(provider),
		logger:    logger,
	}
}

// newLLMHTTPClient creates an HTTP client with longer timeouts for local
// model servers, which can take a while on first token.
func newLLMHTTPClient() *http.Client {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   30 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		MaxConnsPerHost:     10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   5 * time.Minute,
	}
}

// CreateModel creates the appropriate LLM client based on the configured
// provider.
func CreateModel(ctx context.Context, cfg *config.Config, logger *slog.Logger) (llms.Model, error) {
	switch cfg.LLMProvider {
	case "gemini":
		logger.Info("using Gemini LLM provider", "model", cfg.GeneratorModelName)
		if cfg.GeminiAPIKey == "" {
			return nil, fmt.Errorf("GEMINI_API_KEY is not set in environment for gemini provider")
		}
		return gemini.New(ctx,
			gemini.WithModel(cfg.GeneratorModelName),
			gemini.WithAPIKey(cfg.GeminiAPIKey),
		)

	case "ollama":
		logger.Info("using Ollama LLM provider", "model", cfg.GeneratorModelName, "host", cfg.OllamaHost)
		return ollama.New(
			ollama.WithServerURL(cfg.OllamaHost),
			ollama.WithHTTPClient(newLLMHTTPClient()),
			ollama.WithModel(cfg.GeneratorModelName),
			ollama.WithLogger(logger),
		)

	default:
		return nil, fmt.Errorf("unsupported LLM provider: %q", cfg.LLMProvider)
	}
}

func (s *summarizer) SummarizeEntry(ctx context.Context, pr *core.MergedPR) (string, error) {
	prompt, err := s.promptMgr.Render(EntrySummaryPrompt, s.provider, map[string]any{
		"Title":   pr.Title,
		"Body":    pr.Body,
		"Commits": pr.Commits,
	})
	if err != nil {
		return "", err
	}

	resp, err := s.generateWithTimeout(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("summarize PR #%d: %w", pr.Number, err)
	}
	return strings.TrimSpace(stripMarkdownFence(resp)), nil
}

func (s *summarizer) ClassifyCategory(ctx context.Context, title, summary string) (core.Category, error) {
	prompt, err := s.promptMgr.Render(CategoryPrompt, s.provider, map[string]any{
		"Title":      title,
		"Summary":    summary,
		"Categories": core.Categories,
	})
	if err != nil {
		return core.CategoryOther, err
	}

	resp, err := s.generateWithTimeout(ctx, prompt)
	if err != nil {
		return core.CategoryOther, fmt.Errorf("classify %q: %w", title, err)
	}

	category, ok := normalizeCategory(resp)
	if !ok {
		s.logger.Warn("could not parse category from model output, falling back",
			"title", title, "output", firstLine(resp))
		return core.CategoryOther, nil
	}
	return category, nil
}

func (s *summarizer) DigestWeek(ctx context.Context, prs []core.MergedPR, issues []core.ClosedIssue) (string, error) {
	prompt, err := s.promptMgr.Render(DigestPrompt, s.provider, map[string]any{
		"PRs":    prs,
		"Issues": issues,
	})
	if err != nil {
		return "", err
	}

	resp, err := s.generateWithTimeout(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("generate weekly digest: %w", err)
	}
	return strings.TrimSpace(stripMarkdownFence(resp)), nil
}

func (s *summarizer) SlideBullets(ctx context.Context, items []string) ([]string, error) {
	if len(items) == 0 {
		return nil, nil
	}

	prompt, err := s.promptMgr.Render(SlideBulletsPrompt, s.provider, map[string]any{
		"Items": items,
	})
	if err != nil {
		return nil, err
	}

	resp, err := s.generateWithTimeout(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("condense slide bullets: %w", err)
	}

	bullets := parseBulletLines(resp)
	if len(bullets) != len(items) {
		// Count drift means the model merged or invented lines; the raw
		// titles are safer than misaligned bullets.
		s.logger.Warn("bullet count mismatch from model, using raw items",
			"want", len(items), "got", len(bullets))
		return items, nil
	}
	return bullets, nil
}

// generateWithTimeout wraps LLM generation with a hard timeout.
func (s *summarizer) generateWithTimeout(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, generateTimeout)
	defer cancel()

	type result struct {
		resp string
		err  error
	}
	resultCh := make(chan result, 1)

	go func() {
		resp, err := llms.GenerateFromSinglePrompt(ctx, s.model, prompt)
		select {
		case resultCh <- result{resp, err}:
		case <-ctx.Done():
		}
	}()

	select {
	case res := <-resultCh:
		return res.resp, res.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
