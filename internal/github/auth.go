// Package github provides functionality for interacting with the GitHub API.
package github

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/bradleyfalzon/ghinstallation/v2"
	"github.com/google/go-github/v73/github"
	"golang.org/x/oauth2"

	"github.com/relforge/herald/internal/config"
)

// CreateInstallationClient creates a GitHub client authenticated as a
// specific App installation. It returns the client and the raw installation
// token; the token is reused for the GraphQL project lookups.
func CreateInstallationClient(ctx context.Context, cfg *config.Config, logger *slog.Logger) (Client, string, error) {
	logger.Info("creating GitHub installation client", "installation_id", cfg.GitHubInstallationID)

	privateKey, err := os.ReadFile(cfg.GitHubPrivateKeyPath)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read private key from %s: %w", cfg.GitHubPrivateKeyPath, err)
	}

	// The apps transport talks to the GitHub App API to mint installation tokens.
	appTransport, err := ghinstallation.NewAppsTransport(http.DefaultTransport, cfg.GitHubAppID, privateKey)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create GitHub App transport: %w", err)
	}
	appClient := github.NewClient(&http.Client{Transport: appTransport})

	token, _, err := appClient.Apps.CreateInstallationToken(ctx, cfg.GitHubInstallationID, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create installation token for installation ID %d: %w", cfg.GitHubInstallationID, err)
	}
	if token.GetToken() == "" {
		return nil, "", fmt.Errorf("received an empty installation token")
	}
	logger.Info("created installation token", "installation_id", cfg.GitHubInstallationID, "expires_at", token.GetExpiresAt())

	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token.GetToken()})
	tc := oauth2.NewClient(ctx, ts)

	return NewClient(github.NewClient(tc), tc, logger), token.GetToken(), nil
}

// CreateClient picks the auth mode from configuration: a GitHub App
// installation when an App ID is configured, a PAT otherwise. The returned
// token is whichever credential ended up in use.
func CreateClient(ctx context.Context, cfg *config.Config, logger *slog.Logger) (Client, string, error) {
	if cfg.GitHubAppID != 0 {
		return CreateInstallationClient(ctx, cfg, logger)
	}
	if cfg.GitHubToken == "" {
		return nil, "", fmt.Errorf("either GITHUB_TOKEN or GITHUB_APP_ID must be set")
	}
	return NewPATClient(ctx, cfg.GitHubToken, logger), cfg.GitHubToken, nil
}
