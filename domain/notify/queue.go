package notify

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/splita/splita-api/internal/log"
)

// Task is one unit of background notification work.
type Task struct {
	Name string
	Run  func(ctx context.Context) error
}

// Hook observes the outcome of every executed task. It exists so that the
// fire-and-forget path stays observable instead of silently discarding
// failures.
type Hook func(task Task, err error)

// Queue executes notification tasks on background workers, decoupled from the
// request/response cycle. Enqueueing never blocks: when the queue is full the
// task is dropped, logged, and counted. There is no retry of failed tasks.
type Queue struct {
	logger  *log.Logger
	tasks   chan Task
	hook    Hook
	wg      sync.WaitGroup
	timeout time.Duration

	mu     sync.Mutex
	closed bool

	dispatched *prometheus.CounterVec
}

type QueueConfig struct {
	Workers     int
	Depth       int
	TaskTimeout time.Duration
	Hook        Hook
	// Registerer receives the dispatch counters; nil disables metrics.
	Registerer prometheus.Registerer
}

func NewQueue(logger *log.Logger, cfg *QueueConfig) *Queue {
	if cfg == nil {
		cfg = &QueueConfig{}
	}

	workers := cfg.Workers
	if workers <= 0 {
		workers = 2
	}
	depth := cfg.Depth
	if depth <= 0 {
		depth = 64
	}
	timeout := cfg.TaskTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	q := &Queue{
		logger:  logger,
		tasks:   make(chan Task, depth),
		hook:    cfg.Hook,
		timeout: timeout,
		dispatched: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "notification_tasks_total",
				Help: "Notification tasks by outcome.",
			},
			[]string{"task", "outcome"},
		),
	}

	if cfg.Registerer != nil {
		cfg.Registerer.MustRegister(q.dispatched)
	}

	for i := 0; i < workers; i++ {
		q.wg.Add(1)
		go q.worker()
	}

	logger.Info("Notification queue started", "workers", workers, "depth", depth)
	return q
}

// Enqueue submits a task without blocking. It reports false when the task was
// dropped because the queue is full or already closed.
func (q *Queue) Enqueue(task Task) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		q.logger.Warn("Notification task dropped: queue closed", "task", task.Name)
		q.dispatched.WithLabelValues(task.Name, "dropped").Inc()
		return false
	}

	select {
	case q.tasks <- task:
		return true
	default:
		q.logger.Warn("Notification task dropped: queue full", "task", task.Name)
		q.dispatched.WithLabelValues(task.Name, "dropped").Inc()
		return false
	}
}

func (q *Queue) worker() {
	defer q.wg.Done()

	for task := range q.tasks {
		ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
		err := task.Run(ctx)
		cancel()

		if err != nil {
			q.logger.Error("Notification task failed", "task", task.Name, "error", err)
			q.dispatched.WithLabelValues(task.Name, "error").Inc()
		} else {
			q.dispatched.WithLabelValues(task.Name, "ok").Inc()
		}

		if q.hook != nil {
			q.hook(task, err)
		}
	}
}

// Close stops accepting tasks and waits for in-flight ones until ctx expires.
func (q *Queue) Close(ctx context.Context) error {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return nil
	}
	q.closed = true
	close(q.tasks)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() {
		q.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		q.logger.Info("Notification queue drained")
		return nil
	case <-ctx.Done():
		q.logger.Warn("Notification queue shutdown timed out with tasks in flight")
		return ctx.Err()
	}
}
