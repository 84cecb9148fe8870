package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/splita/splita-api/internal/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueue_RunsTasksAndReportsOutcomeToHook(t *testing.T) {
	var mu sync.Mutex
	outcomes := map[string]error{}

	queue := NewQueue(log.NewLoggerWithJSONOutput(), &QueueConfig{
		Workers: 1,
		Depth:   8,
		Hook: func(task Task, err error) {
			mu.Lock()
			outcomes[task.Name] = err
			mu.Unlock()
		},
	})

	taskErr := errors.New("provider down")

	require.True(t, queue.Enqueue(Task{Name: "ok-task", Run: func(ctx context.Context) error { return nil }}))
	require.True(t, queue.Enqueue(Task{Name: "bad-task", Run: func(ctx context.Context) error { return taskErr }}))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, queue.Close(ctx))

	mu.Lock()
	defer mu.Unlock()
	assert.NoError(t, outcomes["ok-task"])
	assert.ErrorIs(t, outcomes["bad-task"], taskErr)
}

func TestQueue_EnqueueAfterCloseIsDropped(t *testing.T) {
	queue := NewQueue(log.NewLoggerWithJSONOutput(), &QueueConfig{Workers: 1, Depth: 1})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, queue.Close(ctx))

	assert.False(t, queue.Enqueue(Task{Name: "late", Run: func(ctx context.Context) error { return nil }}))
}

func TestQueue_FullQueueDropsInsteadOfBlocking(t *testing.T) {
	block := make(chan struct{})

	queue := NewQueue(log.NewLoggerWithJSONOutput(), &QueueConfig{Workers: 1, Depth: 1})

	// First task occupies the worker, second fills the buffer.
	queue.Enqueue(Task{Name: "busy", Run: func(ctx context.Context) error { <-block; return nil }})

	// Give the worker a moment to pick up the first task.
	time.Sleep(50 * time.Millisecond)

	queue.Enqueue(Task{Name: "buffered", Run: func(ctx context.Context) error { return nil }})

	dropped := !queue.Enqueue(Task{Name: "overflow", Run: func(ctx context.Context) error { return nil }})
	assert.True(t, dropped)

	close(block)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, queue.Close(ctx))
}
