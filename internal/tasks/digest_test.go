package tasks

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/relforge/herald/internal/core"
	"github.com/relforge/herald/internal/slack"
	"github.com/relforge/herald/mocks"
)

func TestDigestTaskPostsWeeklySummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	gh := mocks.NewMockClient(ctrl)
	sl := mocks.NewMockSlackClient(ctrl)

	now := day(2025, time.June, 8)
	since := now.Add(-digestWindow)

	gh.EXPECT().ListMergedPRs(gomock.Any(), "relforge", "product", since).Return([]core.MergedPR{
		{Number: 1, Title: "Ship search", Author: "ada"},
	}, nil)
	gh.EXPECT().ListClosedIssues(gomock.Any(), "relforge", "product", since).Return([]core.ClosedIssue{
		{Number: 7, Title: "Crash on login", Author: "grace"},
	}, nil)

	var posted []slack.Block
	sl.EXPECT().PostMessage(gomock.Any(), "#shipped", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, blocks []slack.Block) error {
			posted = blocks
			return nil
		})

	deps := testDeps(gh)
	deps.Projects = &fakeProjects{size: 3}

	task := NewDigestTask(deps, sl)
	require.NoError(t, task.Run(context.Background(), &core.TaskEvent{Task: core.TaskDigest, Now: now}))

	require.Len(t, posted, 4)
	assert.Equal(t, "header", posted[0].Type)
	assert.Contains(t, posted[1].Text.Text, "1 PRs and 1 issues")
	assert.Contains(t, posted[3].Text.Text, "1 PRs merged, 1 issues closed")
}

func TestDigestTaskQuietWeekIsNoOp(t *testing.T) {
	ctrl := gomock.NewController(t)
	gh := mocks.NewMockClient(ctrl)
	sl := mocks.NewMockSlackClient(ctrl)

	gh.EXPECT().ListMergedPRs(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	gh.EXPECT().ListClosedIssues(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	task := NewDigestTask(testDeps(gh), sl)
	err := task.Run(context.Background(), &core.TaskEvent{Task: core.TaskDigest, Now: day(2025, time.June, 8)})
	assert.NoError(t, err, "a quiet week exits successfully without posting")
}

func TestDigestTaskChannelOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	gh := mocks.NewMockClient(ctrl)
	sl := mocks.NewMockSlackClient(ctrl)

	gh.EXPECT().ListMergedPRs(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]core.MergedPR{
		{Number: 1, Title: "Something", Author: "ada"},
	}, nil)
	gh.EXPECT().ListClosedIssues(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	sl.EXPECT().PostMessage(gomock.Any(), "#digest-only", gomock.Any()).Return(nil)

	deps := testDeps(gh)
	deps.Rules.ChannelOverrides = map[string]string{"digest": "#digest-only"}

	task := NewDigestTask(deps, sl)
	require.NoError(t, task.Run(context.Background(), &core.TaskEvent{Task: core.TaskDigest, Now: day(2025, time.June, 8)}))
}

func TestDigestTaskProjectLookupFailureSkipsItem(t *testing.T) {
	ctrl := gomock.NewController(t)
	gh := mocks.NewMockClient(ctrl)
	sl := mocks.NewMockSlackClient(ctrl)

	gh.EXPECT().ListMergedPRs(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	gh.EXPECT().ListClosedIssues(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return([]core.ClosedIssue{
		{Number: 1, Title: "With board data", Author: "ada"},
		{Number: 2, Title: "Board lookup fails", Author: "grace"},
	}, nil)
	sl.EXPECT().PostMessage(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	deps := testDeps(gh)
	deps.Projects = &fakeProjects{size: 5, fail: map[int]bool{2: true}}

	task := NewDigestTask(deps, sl)
	err := task.Run(context.Background(), &core.TaskEvent{Task: core.TaskDigest, Now: day(2025, time.June, 8)})
	assert.NoError(t, err, "one failing project lookup must not fail the run")
}
