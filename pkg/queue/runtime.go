package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/creatorloop/looper/ent"
	"github.com/creatorloop/looper/ent/campaign"
	"github.com/creatorloop/looper/ent/task"
	"github.com/creatorloop/looper/pkg/models"
	"github.com/creatorloop/looper/pkg/services"
)

// Campaign phases recorded on enqueue; a retry after failure re-runs the
// phase the campaign last attempted.
const (
	PhaseWorkflow = "workflow"
	PhaseOutcome  = "outcome"
)

// Runtime is the enqueue/status/cancel surface of the task queue. The
// broker is the tasks table itself: a row is accepted once its insert
// commits, and the campaign binding commits in the same transaction, so a
// worker can never claim a task whose campaign is still unbound.
type Runtime struct {
	client *ent.Client
	pool   *WorkerPool
}

// NewRuntime creates a new Runtime.
// pool may be nil (enqueue-only usage in tests); Cancel then only revokes
// queued tasks.
func NewRuntime(client *ent.Client, pool *WorkerPool) *Runtime {
	return &Runtime{client: client, pool: pool}
}

// EnqueueWorkflow accepts a run_campaign_workflow task for a campaign and
// moves it to processing. The transition pre-check makes concurrent
// enqueues on the same campaign lose deterministically.
func (r *Runtime) EnqueueWorkflow(ctx context.Context, userID, campaignID string) (*ent.Task, error) {
	return r.enqueueBound(ctx, userID, campaignID, task.KindRunCampaignWorkflow,
		services.ActionEnqueueWorkflow, PhaseWorkflow, nil)
}

// EnqueueOutcome accepts an analyze_campaign_outcome task carrying the
// user-reported metrics and moves the campaign to generating_report.
func (r *Runtime) EnqueueOutcome(ctx context.Context, userID, campaignID string, actualMetrics map[string]interface{}) (*ent.Task, error) {
	args := map[string]interface{}{}
	if actualMetrics != nil {
		args["actual_metrics"] = actualMetrics
	}
	return r.enqueueBound(ctx, userID, campaignID, task.KindAnalyzeCampaignOutcome,
		services.ActionCompleteWithMetric, PhaseOutcome, args)
}

// EnqueueAnalyzePrevious accepts an analyze_previous_campaigns task. It
// references the campaign receiving the insights but never touches the
// campaign state machine, and is never retried.
func (r *Runtime) EnqueueAnalyzePrevious(ctx context.Context, userID, campaignID string) (*ent.Task, error) {
	create := r.client.Task.Create().
		SetID(uuid.New().String()).
		SetKind(task.KindAnalyzePreviousCampaigns).
		SetUserID(userID).
		SetMaxAttempts(1)
	if campaignID != "" {
		create.SetCampaignID(campaignID)
	}
	t, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue task: %w", err)
	}
	return t, nil
}

// enqueueBound inserts the task row and rebinds the campaign in one
// transaction.
func (r *Runtime) enqueueBound(ctx context.Context, userID, campaignID string, kind task.Kind, action services.CampaignAction, phase string, args map[string]interface{}) (*ent.Task, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	c, err := tx.Campaign.Get(ctx, campaignID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}
	if c.UserID != userID {
		return nil, services.ErrForbidden
	}

	if args == nil {
		args = map[string]interface{}{}
	}
	t, err := tx.Task.Create().
		SetID(uuid.New().String()).
		SetKind(kind).
		SetCampaignID(campaignID).
		SetUserID(userID).
		SetArgs(args).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to enqueue task: %w", err)
	}

	// Binding a new task supersedes any prior one. An invalid transition
	// rolls the task row back with the rest of the transaction.
	if err := services.BindCampaignTask(ctx, tx, campaignID, t.ID, action, phase); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit enqueue: %w", err)
	}
	return t, nil
}

// Status returns the polling payload for a task, enforcing ownership.
func (r *Runtime) Status(ctx context.Context, userID, taskID string) (*models.TaskStatus, error) {
	t, err := r.client.Task.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, services.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if t.UserID != nil && *t.UserID != userID {
		return nil, services.ErrForbidden
	}

	status := &models.TaskStatus{
		TaskID:     t.ID,
		State:      string(t.Status),
		Progress:   t.Progress,
		Message:    t.Message,
		Result:     t.Result,
		Error:      t.ErrorMessage,
		CampaignID: t.CampaignID,
	}
	if t.Status == task.StatusSuccess && t.CampaignID != nil {
		status.RedirectURL = "/campaigns/" + *t.CampaignID
	}
	return status, nil
}

// Cancel revokes a task cooperatively. A queued (pending/retry) task is
// revoked directly and its campaign released; a running task is signalled
// through the pool and finishes through the worker's terminal path. Tasks
// already terminal cannot be cancelled.
func (r *Runtime) Cancel(ctx context.Context, userID, taskID string) error {
	t, err := r.client.Task.Get(ctx, taskID)
	if err != nil {
		if ent.IsNotFound(err) {
			return services.ErrNotFound
		}
		return fmt.Errorf("failed to get task: %w", err)
	}
	if t.UserID != nil && *t.UserID != userID {
		return services.ErrForbidden
	}

	switch t.Status {
	case task.StatusPending, task.StatusRetry:
		return r.revokeQueued(ctx, t)
	case task.StatusStarted:
		if r.pool != nil && r.pool.CancelTask(t.ID) {
			return nil
		}
		// Running on another pod; its worker notices the revocation marker
		// is absent, so the best this pod can do is report it.
		slog.Warn("Cancel requested for task running on another pod", "task_id", t.ID)
		return services.ErrNotCancellable
	default:
		return services.ErrNotCancellable
	}
}

// revokeQueued flips a not-yet-claimed task to revoked and releases the
// campaign with the cancelled marker.
func (r *Runtime) revokeQueued(ctx context.Context, t *ent.Task) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	n, err := tx.Task.Update().
		Where(
			task.IDEQ(t.ID),
			task.StatusIn(task.StatusPending, task.StatusRetry),
		).
		SetStatus(task.StatusRevoked).
		SetErrorMessage("cancelled").
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to revoke task: %w", err)
	}
	if n == 0 {
		// A worker claimed it between the read and this update.
		return services.ErrNotCancellable
	}

	if t.CampaignID != nil {
		c, err := tx.Campaign.Get(ctx, *t.CampaignID)
		if err == nil && c.TaskID != nil && *c.TaskID == t.ID {
			plan := c.CampaignPlan
			if plan == nil {
				plan = map[string]interface{}{}
			}
			plan["error"] = "cancelled"
			err := tx.Campaign.UpdateOne(c).
				SetStatus(campaign.StatusProcessingFailed).
				ClearTaskID().
				SetCampaignPlan(plan).
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to release cancelled campaign: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit revocation: %w", err)
	}
	return nil
}
