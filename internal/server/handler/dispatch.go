// Package handler provides HTTP handlers for the dispatch server.
package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/relforge/herald/internal/core"
)

// DispatchHandler accepts manual task-dispatch requests, the HTTP
// equivalent of running a CLI subcommand by hand.
type DispatchHandler struct {
	dispatcher core.TaskDispatcher
	logger     *slog.Logger
}

// NewDispatchHandler creates a dispatch handler over the task dispatcher.
func NewDispatchHandler(dispatcher core.TaskDispatcher, logger *slog.Logger) *DispatchHandler {
	return &DispatchHandler{dispatcher: dispatcher, logger: logger}
}

// Handle queues the named task. The body is ignored; everything a task
// needs comes from configuration, matching the zero-argument CLI contract.
func (h *DispatchHandler) Handle(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	task, err := core.ParseTaskName(name)
	if err != nil {
		h.logger.Warn("rejecting dispatch request", "task", name, "error", err)
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	event := &core.TaskEvent{
		Task:    task,
		Now:     time.Now().UTC(),
		Trigger: "dispatch",
	}

	if err := h.dispatcher.Dispatch(r.Context(), event); err != nil {
		h.logger.Error("failed to dispatch task", "task", task, "error", err)
		http.Error(w, "Failed to queue task", http.StatusServiceUnavailable)
		return
	}

	h.logger.Info("task dispatched", "task", task)
	w.WriteHeader(http.StatusAccepted)
	_, _ = fmt.Fprintf(w, "Task %s accepted", task)
}
