// Package jobs queues task runs for the dispatch server.
package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/relforge/herald/internal/core"
)

// Dispatcher implements core.TaskDispatcher with a single worker goroutine.
// One worker is deliberate: every pipeline is a linear sequence of API
// calls, and overlapping runs would race on the destination services
// (duplicate drafts, double posts).
type Dispatcher struct {
	registry map[core.TaskName]core.Task
	queue    chan *core.TaskEvent
	wg       sync.WaitGroup
	logger   *slog.Logger
}

// NewDispatcher initializes a dispatcher over a task registry and starts
// its worker.
func NewDispatcher(registry map[core.TaskName]core.Task, logger *slog.Logger) *Dispatcher {
	d := &Dispatcher{
		registry: registry,
		queue:    make(chan *core.TaskEvent, 16),
		logger:   logger,
	}
	d.wg.Add(1)
	go d.work()
	return d
}

// work processes events from the queue until it's closed.
func (d *Dispatcher) work() {
	defer d.wg.Done()
	d.logger.Info("starting task worker")

	for event := range d.queue {
		d.process(event)
	}

	d.logger.Info("shutting down task worker")
}

func (d *Dispatcher) process(event *core.TaskEvent) {
	task, ok := d.registry[event.Task]
	if !ok {
		d.logger.Error("no task registered", "task", event.Task)
		return
	}

	d.logger.Info("running task", "task", event.Task, "trigger", event.Trigger)
	if err := task.Run(context.Background(), event); err != nil {
		d.logger.Error("task failed", "task", event.Task, "error", err)
		return
	}
	d.logger.Info("task finished", "task", event.Task)
}

// Dispatch queues a task event for the worker.
func (d *Dispatcher) Dispatch(_ context.Context, event *core.TaskEvent) error {
	if _, ok := d.registry[event.Task]; !ok {
		return fmt.Errorf("no task registered for %q", event.Task)
	}

	select {
	case d.queue <- event:
		d.logger.Info("queued task", "task", event.Task, "trigger", event.Trigger)
		return nil
	default:
		return fmt.Errorf("task queue is full, cannot accept %q", event.Task)
	}
}

// Stop drains the queue and waits for the worker to finish.
func (d *Dispatcher) Stop() {
	d.logger.Info("stopping dispatcher and waiting for tasks to finish")
	close(d.queue)
	d.wg.Wait()
	d.logger.Info("all queued tasks have finished")
}
