package server

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/relforge/herald/internal/core"
)

type nopDispatcher struct{}

func (nopDispatcher) Dispatch(_ context.Context, _ *core.TaskEvent) error { return nil }

// A shutdown signal can arrive before the listener goroutine gets going.
// Stopping first must be safe, and a subsequent Start must return cleanly
// instead of serving.
func TestServerStopBeforeStart(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	s := NewServer("0", nopDispatcher{}, logger)

	require.NoError(t, s.Stop())
	require.NoError(t, s.Start())
}
