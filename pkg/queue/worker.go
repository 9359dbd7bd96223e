package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/creatorloop/looper/ent"
	"github.com/creatorloop/looper/ent/task"
	"github.com/creatorloop/looper/pkg/config"
	"github.com/creatorloop/looper/pkg/events"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that polls for and processes tasks.
type Worker struct {
	id        string
	podID     string
	client    *ent.Client
	config    *config.QueueConfig
	executor  TaskExecutor
	publisher *events.Publisher
	pool      TaskRegistry
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	// Health tracking
	mu             sync.RWMutex
	status         WorkerStatus
	currentTaskID  string
	tasksProcessed int
	lastActivity   time.Time
}

// TaskRegistry is the subset of WorkerPool used by Worker for task registration.
type TaskRegistry interface {
	RegisterTask(taskID string, cancel context.CancelFunc)
	UnregisterTask(taskID string)
}

// NewWorker creates a new queue worker.
// publisher may be nil (progress broadcast disabled).
func NewWorker(id, podID string, client *ent.Client, cfg *config.QueueConfig, executor TaskExecutor, pool TaskRegistry, publisher *events.Publisher) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		client:       client,
		config:       cfg,
		executor:     executor,
		publisher:    publisher,
		pool:         pool,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:             w.id,
		Status:         string(w.status),
		CurrentTaskID:  w.currentTaskID,
		TasksProcessed: w.tasksProcessed,
		LastActivity:   w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoTasksAvailable) || errors.Is(err, ErrAtCapacity) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing task", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess checks capacity, claims a task, and processes it.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	// 1. Check global capacity (best-effort; racy with concurrent workers but
	//    bounded by WorkerCount and mitigated by poll jitter).
	activeCount, err := w.client.Task.Query().
		Where(task.StatusEQ(task.StatusStarted)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("checking active tasks: %w", err)
	}
	if activeCount >= w.config.MaxConcurrentTasks {
		return ErrAtCapacity
	}

	// 2. Claim next task
	t, err := w.claimNextTask(ctx)
	if err != nil {
		return err
	}

	log := slog.With("task_id", t.ID, "kind", t.Kind, "worker_id", w.id)
	log.Info("Task claimed", "attempt", t.Attempt)

	w.publishProgress(ctx, t, task.StatusStarted, t.Progress, "started")

	w.setStatus(WorkerStatusWorking, t.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	// 3. Create task context with hard timeout
	taskCtx, cancelTask := context.WithTimeout(ctx, w.config.TaskTimeout)
	defer cancelTask()

	// 4. Register cancel function for API-triggered cancellation
	w.pool.RegisterTask(t.ID, cancelTask)
	defer w.pool.UnregisterTask(t.ID)

	// 5. Start heartbeat and the soft-timeout warning
	heartbeatCtx, cancelHeartbeat := context.WithCancel(taskCtx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, t.ID)
	go w.warnSoftTimeout(heartbeatCtx, t.ID)

	// 6. Execute task
	result := w.executor.Execute(taskCtx, t)

	// 6a. Nil-guard: synthesize a safe result if executor returned nil
	if result == nil {
		switch {
		case errors.Is(taskCtx.Err(), context.DeadlineExceeded):
			result = &ExecutionResult{
				Status:    task.StatusFailure,
				Retryable: true,
				Error:     fmt.Errorf("task timed out after %v", w.config.TaskTimeout),
			}
		case errors.Is(taskCtx.Err(), context.Canceled):
			result = &ExecutionResult{
				Status: task.StatusRevoked,
				Error:  context.Canceled,
			}
		default:
			result = &ExecutionResult{
				Status: task.StatusFailure,
				Error:  fmt.Errorf("executor returned nil result"),
			}
		}
	}

	// 7. Handle timeout
	if result.Status == "" && errors.Is(taskCtx.Err(), context.DeadlineExceeded) {
		result = &ExecutionResult{
			Status:    task.StatusFailure,
			Retryable: true,
			Error:     fmt.Errorf("task timed out after %v", w.config.TaskTimeout),
		}
	}

	// 8. Handle cancellation
	if result.Status == "" && errors.Is(taskCtx.Err(), context.Canceled) {
		result = &ExecutionResult{
			Status: task.StatusRevoked,
			Error:  context.Canceled,
		}
	}

	// 9. Stop heartbeat
	cancelHeartbeat()

	willRetry := w.shouldRetry(t, result)

	// 10. Update terminal status (use background context — task ctx may be cancelled)
	terminal, err := w.updateTaskTerminalStatus(context.Background(), t, result, willRetry)
	if err != nil {
		log.Error("Failed to update task terminal status", "error", err)
		return err
	}

	// 10a. Resolve the owning campaign now that the retry decision is known
	w.executor.Finalize(context.Background(), t, result, willRetry)

	// 10b. Publish terminal task status event
	w.publishProgress(context.Background(), t, terminal.Status, terminal.Progress, terminal.Message)

	w.mu.Lock()
	w.tasksProcessed++
	w.mu.Unlock()

	log.Info("Task processing complete", "status", terminal.Status, "will_retry", willRetry)
	return nil
}

// claimNextTask atomically claims the next due task using FOR UPDATE SKIP LOCKED.
// Pending rows and retry rows whose backoff has elapsed are both claimable.
func (w *Worker) claimNextTask(ctx context.Context) (*ent.Task, error) {
	tx, err := w.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// SELECT ... FOR UPDATE SKIP LOCKED
	// Order by created_at for FIFO processing
	t, err := tx.Task.Query().
		Where(
			task.Or(
				task.StatusEQ(task.StatusPending),
				task.And(
					task.StatusEQ(task.StatusRetry),
					task.NotBeforeLTE(time.Now()),
				),
			),
		).
		Order(ent.Asc(task.FieldCreatedAt)).
		Limit(1).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNoTasksAvailable
		}
		return nil, fmt.Errorf("failed to query pending task: %w", err)
	}

	// Claim: set started, pod_id, started_at, last_interaction_at, attempt
	now := time.Now()
	t, err = t.Update().
		SetStatus(task.StatusStarted).
		SetPodID(w.podID).
		SetStartedAt(now).
		SetLastInteractionAt(now).
		SetAttempt(t.Attempt + 1).
		ClearNotBefore().
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim task: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}

	return t, nil
}

// runHeartbeat periodically updates last_interaction_at for orphan detection.
func (w *Worker) runHeartbeat(ctx context.Context, taskID string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.client.Task.UpdateOneID(taskID).
				SetLastInteractionAt(time.Now()).
				Exec(ctx); err != nil {
				slog.Warn("Heartbeat update failed", "task_id", taskID, "error", err)
			}
		}
	}
}

// warnSoftTimeout logs once when the soft limit passes so operators see
// slow tasks before the hard timeout kills them.
func (w *Worker) warnSoftTimeout(ctx context.Context, taskID string) {
	select {
	case <-ctx.Done():
	case <-time.After(w.config.TaskSoftTimeout):
		slog.Warn("Task passed soft timeout",
			"task_id", taskID,
			"soft_timeout", w.config.TaskSoftTimeout,
			"hard_timeout", w.config.TaskTimeout)
	}
}

// shouldRetry decides whether a failed task gets another attempt.
// analyze_previous_campaigns is fire-and-forget and never retried.
func (w *Worker) shouldRetry(t *ent.Task, result *ExecutionResult) bool {
	if result.Status != task.StatusFailure || !result.Retryable {
		return false
	}
	if t.Kind == task.KindAnalyzePreviousCampaigns {
		return false
	}
	return t.Attempt < t.MaxAttempts
}

// updateTaskTerminalStatus writes the final task status, or schedules the
// retry row with exponential backoff.
func (w *Worker) updateTaskTerminalStatus(ctx context.Context, t *ent.Task, result *ExecutionResult, willRetry bool) (*ent.Task, error) {
	if willRetry {
		backoff := time.Duration(math.Pow(2, float64(t.Attempt))) * time.Second
		update := w.client.Task.UpdateOneID(t.ID).
			SetStatus(task.StatusRetry).
			SetNotBefore(time.Now().Add(backoff))
		if result.Error != nil {
			update = update.SetErrorMessage(result.Error.Error())
		}
		return update.Save(ctx)
	}

	update := w.client.Task.UpdateOneID(t.ID).
		SetStatus(result.Status).
		SetCompletedAt(time.Now())

	if result.Status == task.StatusSuccess {
		update = update.SetProgress(100)
	}
	if result.Result != nil {
		update = update.SetResult(result.Result)
	}
	if result.Error != nil {
		update = update.SetErrorMessage(result.Error.Error())
	}

	return update.Save(ctx)
}

// publishProgress broadcasts a task status event. Non-blocking: errors are logged.
func (w *Worker) publishProgress(ctx context.Context, t *ent.Task, status task.Status, progress int, message string) {
	if w.publisher == nil {
		return
	}
	campaignID := ""
	if t.CampaignID != nil {
		campaignID = *t.CampaignID
	}
	if err := w.publisher.PublishTaskProgress(ctx, events.TaskProgressPayload{
		TaskID:     t.ID,
		CampaignID: campaignID,
		State:      status,
		Progress:   progress,
		Message:    message,
	}); err != nil {
		slog.Warn("Failed to publish task status",
			"task_id", t.ID, "status", status, "error", err)
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, taskID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentTaskID = taskID
	w.lastActivity = time.Now()
}
