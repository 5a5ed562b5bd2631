package github

import (
	"context"
	"log/slog"

	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"
)

// ProjectData is the subset of org project-board fields Herald reads for a
// closed issue.
type ProjectData struct {
	Status string
	Size   int
}

// ProjectLookup resolves project-board fields per issue via the GraphQL API.
// The v3 REST API does not expose ProjectV2 fields, hence the separate client.
type ProjectLookup interface {
	IssueProjectData(ctx context.Context, owner, repo string, number int) (*ProjectData, error)
}

type projectLookup struct {
	client *githubv4.Client
	logger *slog.Logger
}

// NewProjectLookup builds a GraphQL project-board reader using the same
// token as the REST client.
func NewProjectLookup(ctx context.Context, token string, logger *slog.Logger) ProjectLookup {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	tc := oauth2.NewClient(ctx, ts)
	return &projectLookup{client: githubv4.NewClient(tc), logger: logger}
}

// IssueProjectData fetches the Status and Size fields of the first project
// the issue belongs to. Issues outside any project return zero values.
func (p *projectLookup) IssueProjectData(ctx context.Context, owner, repo string, number int) (*ProjectData, error) {
	var query struct {
		Repository struct {
			Issue struct {
				ProjectItems struct {
					Nodes []struct {
						Status struct {
							SingleSelect struct {
								Name githubv4.String
							} `graphql:"... on ProjectV2ItemFieldSingleSelectValue"`
						} `graphql:"status: fieldValueByName(name: \"Status\")"`
						Size struct {
							NumberValue struct {
								Number githubv4.Float
							} `graphql:"... on ProjectV2ItemFieldNumberValue"`
						} `graphql:"size: fieldValueByName(name: \"Size\")"`
					}
				} `graphql:"projectItems(first: 5)"`
			} `graphql:"issue(number: $number)"`
		} `graphql:"repository(owner: $owner, name: $name)"`
	}

	variables := map[string]any{
		"owner":  githubv4.String(owner),
		"name":   githubv4.String(repo),
		"number": githubv4.Int(number), //nolint:gosec // issue numbers fit int32
	}

	if err := p.client.Query(ctx, &query, variables); err != nil {
		p.logger.Warn("project data lookup failed", "owner", owner, "repo", repo, "issue", number, "error", err)
		return nil, err
	}

	data := &ProjectData{}
	for _, node := range query.Repository.Issue.ProjectItems.Nodes {
		if name := string(node.Status.SingleSelect.Name); name != "" {
			data.Status = name
		}
		if n := float64(node.Size.NumberValue.Number); n > 0 {
			data.Size = int(n)
		}
	}
	return data, nil
}
