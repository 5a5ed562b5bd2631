package tasks

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/relforge/herald/internal/core"
	"github.com/relforge/herald/mocks"
)

var pngBytes = []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0, 0, 0, 0}

func TestChangelogTaskDraftsEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	gh := mocks.NewMockClient(ctrl)
	cl := mocks.NewMockChangelogClient(ctrl)
	cdn := mocks.NewMockCDN(ctrl)

	lastEntry := day(2025, time.June, 1)
	assetURL := "https://github.com/user-attachments/assets/abc-123"

	cl.EXPECT().ListEntries(gomock.Any(), 1).Return([]core.ChangelogEntry{
		{ID: "e1", Title: "Previous entry", CreatedAt: lastEntry},
	}, nil)

	gh.EXPECT().ListMergedPRs(gomock.Any(), "relforge", "product", lastEntry).Return([]core.MergedPR{
		{Number: 41, Title: "Add dark mode", Body: "Screenshot: " + assetURL, Author: "ada"},
		{Number: 42, Title: "Bump deps", Author: "dependabot[bot]"},
		{Number: 43, Title: "Fix login redirect", Author: "grace", Labels: []string{"bug"}},
	}, nil)

	gh.EXPECT().DownloadAsset(gomock.Any(), assetURL).Return(pngBytes, nil)
	cdn.EXPECT().Upload(gomock.Any(), gomock.Any(), "image/png", pngBytes).
		Return("https://cdn.example.com/abc.png", nil)

	// The bot PR never reaches drafting, so only the two human PRs get a
	// commit listing.
	gh.EXPECT().ListPRCommitSubjects(gomock.Any(), "relforge", "product", 41).
		Return([]string{"Add dark theme palette", "Wire theme toggle"}, nil)
	gh.EXPECT().ListPRCommitSubjects(gomock.Any(), "relforge", "product", 43).
		Return([]string{"Fix redirect loop after login"}, nil)

	var draftedTitles []string
	var categories []core.Category
	cl.EXPECT().CreateDraft(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, title, markdown string, category core.Category) (string, error) {
			draftedTitles = append(draftedTitles, title)
			categories = append(categories, category)
			if title == "Add dark mode" {
				assert.Contains(t, markdown, "https://cdn.example.com/abc.png")
				assert.NotContains(t, markdown, "user-attachments")
			}
			return "id-" + title, nil
		}).Times(2)

	deps := testDeps(gh)
	task := NewChangelogTask(deps, cl, cdn)
	err := task.Run(context.Background(), &core.TaskEvent{Task: core.TaskChangelog, Now: day(2025, time.June, 8)})

	require.NoError(t, err)
	// The bot PR is excluded by rules; the two human PRs are drafted.
	assert.Equal(t, []string{"Add dark mode", "Fix login redirect"}, draftedTitles)
	// "bug" label overrides classification; the other goes through the model.
	assert.Equal(t, []core.Category{core.CategoryImprovement, core.CategoryFix}, categories)

	// Commit subjects reach the summarizer alongside the PR body.
	sum := deps.Summarizer.(*fakeSummarizer)
	assert.Equal(t, []string{"Add dark theme palette", "Wire theme toggle"}, sum.commitsSeen[41])
}

func TestChangelogTaskSkipsFailingPR(t *testing.T) {
	ctrl := gomock.NewController(t)
	gh := mocks.NewMockClient(ctrl)
	cl := mocks.NewMockChangelogClient(ctrl)
	cdn := mocks.NewMockCDN(ctrl)

	cl.EXPECT().ListEntries(gomock.Any(), 1).Return(nil, nil)
	gh.EXPECT().ListMergedPRs(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]core.MergedPR{
		{Number: 1, Title: "Broken one", Author: "ada"},
		{Number: 2, Title: "Good one", Author: "grace"},
	}, nil)
	gh.EXPECT().ListPRCommitSubjects(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	cl.EXPECT().CreateDraft(gomock.Any(), "Good one", gomock.Any(), gomock.Any()).Return("id", nil)

	deps := testDeps(gh)
	deps.Summarizer = &fakeSummarizer{summarizeErr: map[int]error{1: fmt.Errorf("model unavailable")}}

	task := NewChangelogTask(deps, cl, cdn)
	err := task.Run(context.Background(), &core.TaskEvent{Task: core.TaskChangelog, Now: day(2025, time.June, 8)})

	assert.NoError(t, err, "one failing PR must not fail the run")
}

func TestChangelogTaskFailsWhenNothingDrafts(t *testing.T) {
	ctrl := gomock.NewController(t)
	gh := mocks.NewMockClient(ctrl)
	cl := mocks.NewMockChangelogClient(ctrl)
	cdn := mocks.NewMockCDN(ctrl)

	cl.EXPECT().ListEntries(gomock.Any(), 1).Return(nil, nil)
	gh.EXPECT().ListMergedPRs(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]core.MergedPR{
		{Number: 1, Title: "Broken", Author: "ada"},
	}, nil)
	gh.EXPECT().ListPRCommitSubjects(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	deps := testDeps(gh)
	deps.Summarizer = &fakeSummarizer{summarizeErr: map[int]error{1: fmt.Errorf("model unavailable")}}

	task := NewChangelogTask(deps, cl, cdn)
	err := task.Run(context.Background(), &core.TaskEvent{Task: core.TaskChangelog, Now: day(2025, time.June, 8)})
	assert.Error(t, err)
}

func TestChangelogTaskDraftsWhenCommitListingFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	gh := mocks.NewMockClient(ctrl)
	cl := mocks.NewMockChangelogClient(ctrl)
	cdn := mocks.NewMockCDN(ctrl)

	cl.EXPECT().ListEntries(gomock.Any(), 1).Return(nil, nil)
	gh.EXPECT().ListMergedPRs(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]core.MergedPR{
		{Number: 7, Title: "Faster search", Author: "ada"},
	}, nil)
	gh.EXPECT().ListPRCommitSubjects(gomock.Any(), "relforge", "product", 7).
		Return(nil, fmt.Errorf("rate limited"))
	cl.EXPECT().CreateDraft(gomock.Any(), "Faster search", gomock.Any(), gomock.Any()).Return("id", nil)

	deps := testDeps(gh)
	task := NewChangelogTask(deps, cl, cdn)
	err := task.Run(context.Background(), &core.TaskEvent{Task: core.TaskChangelog, Now: day(2025, time.June, 8)})

	require.NoError(t, err, "a failed commit listing must not skip the PR")
	sum := deps.Summarizer.(*fakeSummarizer)
	assert.Empty(t, sum.commitsSeen[7])
}

func TestChangelogTaskNoNewPRs(t *testing.T) {
	ctrl := gomock.NewController(t)
	gh := mocks.NewMockClient(ctrl)
	cl := mocks.NewMockChangelogClient(ctrl)
	cdn := mocks.NewMockCDN(ctrl)

	cl.EXPECT().ListEntries(gomock.Any(), 1).Return(nil, nil)
	gh.EXPECT().ListMergedPRs(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	task := NewChangelogTask(testDeps(gh), cl, cdn)
	err := task.Run(context.Background(), &core.TaskEvent{Task: core.TaskChangelog, Now: day(2025, time.June, 8)})
	assert.NoError(t, err)
}

func TestChangelogTaskWindowAnchorsOnLastEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	gh := mocks.NewMockClient(ctrl)
	cl := mocks.NewMockChangelogClient(ctrl)
	cdn := mocks.NewMockCDN(ctrl)

	now := day(2025, time.June, 8)

	// Without entries the window defaults to two weeks back.
	cl.EXPECT().ListEntries(gomock.Any(), 1).Return(nil, nil)
	gh.EXPECT().ListMergedPRs(gomock.Any(), "relforge", "product", now.Add(-defaultChangelogWindow)).Return(nil, nil)

	task := NewChangelogTask(testDeps(gh), cl, cdn)
	require.NoError(t, task.Run(context.Background(), &core.TaskEvent{Task: core.TaskChangelog, Now: now}))
}
