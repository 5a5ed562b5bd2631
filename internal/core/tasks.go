package core

import (
	"context"
	"fmt"
	"time"
)

// TaskName identifies one of Herald's automation pipelines.
type TaskName string

const (
	TaskChangelog TaskName = "changelog"
	TaskDigest    TaskName = "digest"
	TaskSlides    TaskName = "slides"
	TaskAuthors   TaskName = "authors"
)

// KnownTasks lists every runnable pipeline.
var KnownTasks = []TaskName{TaskChangelog, TaskDigest, TaskSlides, TaskAuthors}

// ParseTaskName validates a task name coming from the CLI or the dispatch
// endpoint.
func ParseTaskName(s string) (TaskName, error) {
	for _, t := range KnownTasks {
		if string(t) == s {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown task %q", s)
}

// TaskEvent carries everything a task needs for one invocation.
type TaskEvent struct {
	Task TaskName

	// Now is the logical "today" of the run. Tasks use it for windows and
	// the cycle gate instead of calling time.Now themselves, which keeps
	// the pipelines testable.
	Now time.Time

	// Trigger records where the run came from ("cli", "dispatch").
	Trigger string
}

// Task is a single runnable pipeline. Each run is stateless apart from an
// in-memory cache that dies with the invocation.
type Task interface {
	Run(ctx context.Context, event *TaskEvent) error
}

// TaskDispatcher accepts task events and queues them for execution. It
// decouples the dispatch server from task execution; Dispatch returns an
// error when the queue is full so the caller can surface backpressure.
type TaskDispatcher interface {
	Dispatch(ctx context.Context, event *TaskEvent) error
}
