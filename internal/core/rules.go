package core

// Rules holds per-org publishing rules loaded from an optional .herald.yml.
// Everything has a default so the file can be absent or partial.
type Rules struct {
	// ExcludeAuthors are logins whose PRs and issues are skipped entirely,
	// typically bots.
	ExcludeAuthors []string `yaml:"exclude_authors"`

	// CategoryLabels maps a repository label to a changelog category,
	// overriding the language-model classification when present.
	CategoryLabels map[string]string `yaml:"category_labels"`

	// SkipLabels marks PRs that never reach the changelog.
	SkipLabels []string `yaml:"skip_labels"`

	// ChannelOverrides maps a task name to a Slack channel, overriding
	// SLACK_CHANNEL for that task.
	ChannelOverrides map[string]string `yaml:"channel_overrides"`
}

// DefaultRules returns the rules used when no .herald.yml is present.
func DefaultRules() *Rules {
	return &Rules{
		ExcludeAuthors: []string{"dependabot[bot]", "github-actions[bot]"},
		SkipLabels:     []string{"internal", "no-changelog"},
		CategoryLabels: map[string]string{
			"bug":         string(CategoryFix),
			"enhancement": string(CategoryImprovement),
			"feature":     string(CategoryFeature),
		},
	}
}

// AuthorExcluded reports whether a login is filtered out by the rules.
func (r *Rules) AuthorExcluded(login string) bool {
	for _, a := range r.ExcludeAuthors {
		if a == login {
			return true
		}
	}
	return false
}

// LabelCategory resolves a label override, returning ok=false when no label
// matches.
func (r *Rules) LabelCategory(labels []string) (Category, bool) {
	for _, l := range labels {
		if c, ok := r.CategoryLabels[l]; ok {
			return Category(c), true
		}
	}
	return "", false
}

// SkipByLabel reports whether any label excludes the item from publishing.
func (r *Rules) SkipByLabel(labels []string) bool {
	for _, l := range labels {
		for _, s := range r.SkipLabels {
			if l == s {
				return true
			}
		}
	}
	return false
}

// ChannelFor resolves the Slack channel for a task, falling back to def.
func (r *Rules) ChannelFor(task TaskName, def string) string {
	if r.ChannelOverrides != nil {
		if ch, ok := r.ChannelOverrides[string(task)]; ok && ch != "" {
			return ch
		}
	}
	return def
}
