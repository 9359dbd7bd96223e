// Package queue provides the durable task queue and worker pool.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/creatorloop/looper/ent"
	"github.com/creatorloop/looper/ent/task"
)

// Sentinel errors for queue operations.
var (
	// ErrNoTasksAvailable indicates no claimable tasks are in the queue.
	ErrNoTasksAvailable = errors.New("no tasks available")

	// ErrAtCapacity indicates the global concurrent task limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// TaskExecutor is the interface for task processing.
//
// The executor owns the ENTIRE campaign workflow internally:
//   - Executes all stages sequentially, resuming past completed ones
//   - If a stage fails, the task stops immediately
//   - Writes stage artifacts and progress PROGRESSIVELY, not at the end
//
// The worker only handles: claiming, heartbeat, retry scheduling, and the
// terminal task status update. Finalize runs after the worker has decided
// whether the task will be retried, so the campaign moves to a failed
// state only when no retry is coming.
type TaskExecutor interface {
	Execute(ctx context.Context, t *ent.Task) *ExecutionResult
	Finalize(ctx context.Context, t *ent.Task, result *ExecutionResult, willRetry bool)
}

// ExecutionResult is lightweight, just the terminal state. All stage
// artifacts were already committed by the executor during processing.
type ExecutionResult struct {
	Status      task.Status            // success, failure, revoked
	Result      map[string]interface{} // payload surfaced on the task row
	FailedStage string                 // stage name when failed
	Retryable   bool                   // failure may be retried with backoff
	Error       error                  // error details when failed/revoked
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy        bool           `json:"is_healthy"`
	DBReachable      bool           `json:"db_reachable"`
	DBError          string         `json:"db_error,omitempty"`
	PodID            string         `json:"pod_id"`
	ActiveWorkers    int            `json:"active_workers"`
	TotalWorkers     int            `json:"total_workers"`
	ActiveTasks      int            `json:"active_tasks"`
	MaxConcurrent    int            `json:"max_concurrent"`
	QueueDepth       int            `json:"queue_depth"`
	WorkerStats      []WorkerHealth `json:"worker_stats"`
	LastOrphanScan   time.Time      `json:"last_orphan_scan"`
	OrphansRecovered int            `json:"orphans_recovered"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID             string    `json:"id"`
	Status         string    `json:"status"` // "idle" or "working"
	CurrentTaskID  string    `json:"current_task_id,omitempty"`
	TasksProcessed int       `json:"tasks_processed"`
	LastActivity   time.Time `json:"last_activity"`
}
