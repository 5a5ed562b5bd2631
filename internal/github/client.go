// Package github provides functionality for interacting with the GitHub API.
package github

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/go-github/v73/github"
	"golang.org/x/oauth2"

	"github.com/relforge/herald/internal/core"
)

// maxAssetBytes caps attachment downloads. GitHub user-content videos can be
// large; anything past this is skipped rather than rehosted.
const maxAssetBytes = 64 << 20

// Client defines the set of read operations Herald needs from the GitHub
// API: merged pull requests, closed issues, commits, and attachment bytes.
//
//go:generate mockgen -destination=../../mocks/mock_github_client.go -package=mocks . Client
type Client interface {
	ListMergedPRs(ctx context.Context, owner, repo string, since time.Time) ([]core.MergedPR, error)
	ListClosedIssues(ctx context.Context, owner, repo string, since time.Time) ([]core.ClosedIssue, error)
	ListPRCommitSubjects(ctx context.Context, owner, repo string, number int) ([]string, error)
	DownloadAsset(ctx context.Context, url string) ([]byte, error)
}

type gitHubClient struct {
	client     *github.Client
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient wraps the official go-github client to provide a focused,
// testable interface for Herald's GitHub operations. The http client is
// used for raw attachment downloads and must carry the same credentials.
func NewClient(client *github.Client, httpClient *http.Client, logger *slog.Logger) Client {
	return &gitHubClient{client: client, httpClient: httpClient, logger: logger}
}

// NewPATClient creates a GitHub client authenticated with a Personal Access
// Token (PAT). Scheduled runs in CI typically use this path.
func NewPATClient(ctx context.Context, token string, logger *slog.Logger) Client {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)
	return &gitHubClient{client: github.NewClient(tc), httpClient: tc, logger: logger}
}

// ListMergedPRs finds pull requests merged on or after since. The search API
// returns issue records, so each hit is followed by a PullRequests.Get to
// pick up additions, deletions, and the merge commit list. A failed per-PR
// lookup is logged and the PR is kept with the data the search provided.
func (g *gitHubClient) ListMergedPRs(ctx context.Context, owner, repo string, since time.Time) ([]core.MergedPR, error) {
	query := fmt.Sprintf("repo:%s/%s is:pr is:merged merged:>=%s", owner, repo, since.UTC().Format("2006-01-02"))
	opts := &github.SearchOptions{
		Sort:        "created",
		Order:       "asc",
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var all []core.MergedPR
	for {
		result, resp, err := g.client.Search.Issues(ctx, query, opts)
		if err != nil {
			g.logger.Error("failed to search merged pull requests", "owner", owner, "repo", repo, "error", err)
			return nil, err
		}

		for _, issue := range result.Issues {
			pr := core.MergedPR{
				Number: issue.GetNumber(),
				Title:  issue.GetTitle(),
				Body:   issue.GetBody(),
				Author: issue.GetUser().GetLogin(),
			}
			for _, l := range issue.Labels {
				pr.Labels = append(pr.Labels, l.GetName())
			}

			full, _, err := g.client.PullRequests.Get(ctx, owner, repo, issue.GetNumber())
			if err != nil {
				g.logger.Warn("failed to fetch pull request details, keeping search data",
					"owner", owner, "repo", repo, "pr", issue.GetNumber(), "error", err)
				pr.MergedAt = issue.GetClosedAt().Time
			} else {
				pr.MergedAt = full.GetMergedAt().Time
				pr.Additions = full.GetAdditions()
				pr.Deletions = full.GetDeletions()
			}

			// The merged:>= qualifier is date-granular; drop anything
			// merged earlier on the boundary day.
			if pr.MergedAt.Before(since) {
				continue
			}
			all = append(all, pr)
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return all, nil
}

// ListClosedIssues retrieves issues closed on or after since, excluding pull
// requests. It handles pagination automatically; the GitHub API returns a
// maximum of 100 records per page.
func (g *gitHubClient) ListClosedIssues(ctx context.Context, owner, repo string, since time.Time) ([]core.ClosedIssue, error) {
	opts := &github.IssueListByRepoOptions{
		State:       "closed",
		Since:       since,
		Sort:        "updated",
		Direction:   "asc",
		ListOptions: github.ListOptions{PerPage: 100},
	}

	var all []core.ClosedIssue
	for {
		issues, resp, err := g.client.Issues.ListByRepo(ctx, owner, repo, opts)
		if err != nil {
			g.logger.Error("failed to list closed issues", "owner", owner, "repo", repo, "error", err)
			return nil, err
		}

		for _, issue := range issues {
			if issue.IsPullRequest() {
				continue
			}
			closedAt := issue.GetClosedAt().Time
			if closedAt.Before(since) {
				continue
			}
			all = append(all, core.ClosedIssue{
				Number:   issue.GetNumber(),
				Title:    issue.GetTitle(),
				Body:     issue.GetBody(),
				Author:   issue.GetUser().GetLogin(),
				ClosedAt: closedAt,
			})
		}

		if resp.NextPage == 0 {
			break
		}
		opts.ListOptions.Page = resp.NextPage
	}

	return all, nil
}

// ListPRCommitSubjects returns the subject line of every commit on a pull
// request, in commit order. Subjects feed the entry summarizer; a PR body is
// often empty while the commits say what actually changed.
func (g *gitHubClient) ListPRCommitSubjects(ctx context.Context, owner, repo string, number int) ([]string, error) {
	var subjects []string
	opts := &github.ListOptions{PerPage: 100}

	for {
		commits, resp, err := g.client.PullRequests.ListCommits(ctx, owner, repo, number, opts)
		if err != nil {
			g.logger.Error("failed to list commits for pull request", "owner", owner, "repo", repo, "pr", number, "error", err)
			return nil, err
		}
		for _, c := range commits {
			msg := c.GetCommit().GetMessage()
			if i := strings.IndexByte(msg, '\n'); i >= 0 {
				msg = msg[:i]
			}
			if msg = strings.TrimSpace(msg); msg != "" {
				subjects = append(subjects, msg)
			}
		}
		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return subjects, nil
}

// DownloadAsset fetches the raw bytes of a user-content attachment. The
// request goes through the authenticated http client because private
// attachment URLs require the token.
func (g *gitHubClient) DownloadAsset(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build asset request: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch asset %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("fetch asset %s: unexpected status %s", url, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxAssetBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read asset %s: %w", url, err)
	}
	if len(data) > maxAssetBytes {
		return nil, fmt.Errorf("asset %s exceeds %d bytes", url, maxAssetBytes)
	}
	return data, nil
}
