// Package tasks is a small in-process task queue with a worker pool.
// Callers enqueue a named task and get back an opaque handle they can poll
// for status and the task's string result; execution happens asynchronously
// on whichever worker picks the task up.
package tasks

import (
	"context"
	"sync"

	"github.com/avoronov/itemkeeper/internal/common"
	"github.com/avoronov/itemkeeper/internal/logging"
	"github.com/google/uuid"
)

// Task names known to the queue.
const (
	TaskSyncItem = "sync_item"
	TaskSyncAll  = "sync_all"
)

type Status string

const (
	StatusPending Status = "pending"
	StatusRunning Status = "running"
	StatusSuccess Status = "success"
	StatusFailure Status = "failure"
)

// Args carries the arguments of a queued task. Only the fields relevant to
// the task's handler are set.
type Args struct {
	ItemID    int64
	BatchSize int
}

// Handler executes a task and returns its human-readable result.
type Handler func(ctx context.Context, args Args) (string, error)

// Result is the observable outcome of a task. Result holds the handler's
// message on success and the error text on failure; it is empty while the
// task has not finished.
type Result struct {
	Status Status
	Result string
}

type task struct {
	id   string
	name string
	args Args
}

// Queue dispatches named tasks to registered handlers via a buffered
// channel consumed by Run's workers. Completed task states are kept in
// memory for later polling.
type Queue struct {
	logger   logging.Logger
	handlers map[string]Handler
	ch       chan task

	stateMu sync.RWMutex
	states  map[string]*Result

	// closeMu guards closed and the channel lifecycle: Enqueue sends while
	// holding the read side, so Close can never close the channel under a
	// blocked sender.
	closeMu sync.RWMutex
	closed  bool

	wg sync.WaitGroup
}

func NewQueue(capacity int, logger logging.Logger) *Queue {
	return &Queue{
		logger:   logger.With("module", "task_queue"),
		handlers: make(map[string]Handler),
		ch:       make(chan task, capacity),
		states:   make(map[string]*Result),
	}
}

// Register binds a handler to a task name. Handlers must be registered
// before Run is called; registration is not synchronized with dispatch.
func (q *Queue) Register(name string, h Handler) {
	q.handlers[name] = h
}

// Enqueue submits a named task and returns its handle. The task is recorded
// as pending before it becomes visible to workers. Blocks when the queue
// buffer is full.
func (q *Queue) Enqueue(name string, args Args) (string, error) {

	if _, ok := q.handlers[name]; !ok {
		return "", common.ErrorUnknownTask
	}

	q.closeMu.RLock()
	defer q.closeMu.RUnlock()

	if q.closed {
		return "", common.ErrorQueueClosed
	}

	id := uuid.NewString()

	q.stateMu.Lock()
	q.states[id] = &Result{Status: StatusPending}
	q.stateMu.Unlock()

	q.ch <- task{id: id, name: name, args: args}
	return id, nil
}

// Status reports the current state of the task with the given handle.
func (q *Queue) Status(id string) (Result, bool) {
	q.stateMu.RLock()
	defer q.stateMu.RUnlock()

	st, ok := q.states[id]
	if !ok {
		return Result{}, false
	}
	return *st, true
}

// Run starts n workers consuming the queue. It returns immediately; the
// workers stop when ctx is cancelled or the queue is closed.
func (q *Queue) Run(ctx context.Context, n int) {
	for i := 0; i < n; i++ {
		q.wg.Add(1)
		go q.worker(ctx)
	}
}

// Close stops accepting new tasks and waits for the workers to drain the
// queue and exit.
func (q *Queue) Close() {
	q.closeMu.Lock()
	if q.closed {
		q.closeMu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.closeMu.Unlock()

	q.wg.Wait()
}

func (q *Queue) worker(ctx context.Context) {
	defer q.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case t, ok := <-q.ch:
			if !ok {
				return
			}
			q.execute(ctx, t)
		}
	}
}

func (q *Queue) execute(ctx context.Context, t task) {

	q.setStatus(t.id, StatusRunning, "")

	handler := q.handlers[t.name]

	result, err := handler(ctx, t.args)
	if err != nil {
		q.logger.Error(ctx, "task failed", "task", t.name, "task_id", t.id, "error", err.Error())
		q.setStatus(t.id, StatusFailure, err.Error())
		return
	}

	q.logger.Info(ctx, "task finished", "task", t.name, "task_id", t.id)
	q.setStatus(t.id, StatusSuccess, result)
}

func (q *Queue) setStatus(id string, status Status, result string) {
	q.stateMu.Lock()
	defer q.stateMu.Unlock()

	if st, ok := q.states[id]; ok {
		st.Status = status
		st.Result = result
	}
}
