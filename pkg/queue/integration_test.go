package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creatorloop/looper/ent"
	"github.com/creatorloop/looper/ent/campaign"
	"github.com/creatorloop/looper/ent/task"
	"github.com/creatorloop/looper/pkg/services"
	testdb "github.com/creatorloop/looper/test/database"
)

// recordingExecutor is a deterministic TaskExecutor for queue tests.
type recordingExecutor struct {
	mu        sync.Mutex
	result    *ExecutionResult
	executed  []string
	finalized []string
	willRetry []bool
}

func (e *recordingExecutor) Execute(_ context.Context, t *ent.Task) *ExecutionResult {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.executed = append(e.executed, t.ID)
	return e.result
}

func (e *recordingExecutor) Finalize(_ context.Context, t *ent.Task, _ *ExecutionResult, willRetry bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.finalized = append(e.finalized, t.ID)
	e.willRetry = append(e.willRetry, willRetry)
}

func (e *recordingExecutor) executedCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.executed)
}

func seedUserAndCampaign(t *testing.T, client *ent.Client, status campaign.Status) (*ent.User, *ent.Campaign) {
	t.Helper()
	ctx := context.Background()
	u, err := client.User.Create().
		SetID(uuid.New().String()).
		SetEmail(uuid.New().String() + "@example.com").
		Save(ctx)
	require.NoError(t, err)
	c, err := client.Campaign.Create().
		SetID(uuid.New().String()).
		SetUserID(u.ID).
		SetStatus(status).
		Save(ctx)
	require.NoError(t, err)
	return u, c
}

func TestRuntime_EnqueueWorkflow(t *testing.T) {
	client := testdb.NewTestClient(t)
	runtime := NewRuntime(client.Client, nil)
	ctx := context.Background()

	u, c := seedUserAndCampaign(t, client.Client, campaign.StatusReadyToStart)

	tk, err := runtime.EnqueueWorkflow(ctx, u.ID, c.ID)
	require.NoError(t, err)
	assert.Equal(t, task.KindRunCampaignWorkflow, tk.Kind)
	assert.Equal(t, task.StatusPending, tk.Status)

	c, err = client.Campaign.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, campaign.StatusProcessing, c.Status)
	require.NotNil(t, c.TaskID)
	assert.Equal(t, tk.ID, *c.TaskID)
	require.NotNil(t, c.LastAttemptedPhase)
	assert.Equal(t, PhaseWorkflow, *c.LastAttemptedPhase)

	t.Run("concurrent enqueue loses", func(t *testing.T) {
		_, err := runtime.EnqueueWorkflow(ctx, u.ID, c.ID)
		assert.ErrorIs(t, err, services.ErrInvalidStateTransition)
	})

	t.Run("ownership enforced", func(t *testing.T) {
		other, _ := seedUserAndCampaign(t, client.Client, campaign.StatusReadyToStart)
		_, err := runtime.EnqueueWorkflow(ctx, other.ID, c.ID)
		assert.ErrorIs(t, err, services.ErrForbidden)
	})
}

func TestRuntime_EnqueueOutcome(t *testing.T) {
	client := testdb.NewTestClient(t)
	runtime := NewRuntime(client.Client, nil)
	ctx := context.Background()

	u, c := seedUserAndCampaign(t, client.Client, campaign.StatusInProgress)

	tk, err := runtime.EnqueueOutcome(ctx, u.ID, c.ID, map[string]interface{}{"views": float64(500)})
	require.NoError(t, err)
	assert.Equal(t, task.KindAnalyzeCampaignOutcome, tk.Kind)
	metrics := tk.Args["actual_metrics"].(map[string]interface{})
	assert.Equal(t, float64(500), metrics["views"])

	c, err = client.Campaign.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, campaign.StatusGeneratingReport, c.Status)
	require.NotNil(t, c.LastAttemptedPhase)
	assert.Equal(t, PhaseOutcome, *c.LastAttemptedPhase)
}

func TestWorker_ClaimAndRetryCycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	runtime := NewRuntime(client.Client, nil)
	w := NewWorker("w-1", "pod-1", client.Client, testQueueConfig(), nil, nil, nil)
	ctx := context.Background()

	u, c := seedUserAndCampaign(t, client.Client, campaign.StatusReadyToStart)
	tk, err := runtime.EnqueueWorkflow(ctx, u.ID, c.ID)
	require.NoError(t, err)

	t.Run("claim marks started and increments attempt", func(t *testing.T) {
		claimed, err := w.claimNextTask(ctx)
		require.NoError(t, err)
		assert.Equal(t, tk.ID, claimed.ID)
		assert.Equal(t, task.StatusStarted, claimed.Status)
		assert.Equal(t, 1, claimed.Attempt)
		require.NotNil(t, claimed.PodID)
		assert.Equal(t, "pod-1", *claimed.PodID)
		assert.NotNil(t, claimed.LastInteractionAt)
	})

	t.Run("claimed task is not claimable again", func(t *testing.T) {
		_, err := w.claimNextTask(ctx)
		assert.ErrorIs(t, err, ErrNoTasksAvailable)
	})

	t.Run("retryable failure schedules backoff", func(t *testing.T) {
		claimed, err := client.Task.Get(ctx, tk.ID)
		require.NoError(t, err)

		result := &ExecutionResult{
			Status:    task.StatusFailure,
			Retryable: true,
			Error:     errors.New("transient upstream error"),
		}
		require.True(t, w.shouldRetry(claimed, result))

		updated, err := w.updateTaskTerminalStatus(ctx, claimed, result, true)
		require.NoError(t, err)
		assert.Equal(t, task.StatusRetry, updated.Status)
		require.NotNil(t, updated.NotBefore)
		assert.True(t, updated.NotBefore.After(time.Now().Add(time.Second)), "backoff is 2^attempt seconds")
		assert.Nil(t, updated.CompletedAt)
	})

	t.Run("retry row is claimable once due", func(t *testing.T) {
		// Backoff has not elapsed yet.
		_, err := w.claimNextTask(ctx)
		assert.ErrorIs(t, err, ErrNoTasksAvailable)

		err = client.Task.UpdateOneID(tk.ID).
			SetNotBefore(time.Now().Add(-time.Second)).
			Exec(ctx)
		require.NoError(t, err)

		claimed, err := w.claimNextTask(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, claimed.Attempt)
		assert.Nil(t, claimed.NotBefore)
	})

	t.Run("final failure is terminal", func(t *testing.T) {
		claimed, err := client.Task.Get(ctx, tk.ID)
		require.NoError(t, err)

		result := &ExecutionResult{
			Status: task.StatusFailure,
			Error:  errors.New("stage planner failed"),
		}
		updated, err := w.updateTaskTerminalStatus(ctx, claimed, result, false)
		require.NoError(t, err)
		assert.Equal(t, task.StatusFailure, updated.Status)
		assert.NotNil(t, updated.CompletedAt)
		require.NotNil(t, updated.ErrorMessage)
		assert.Equal(t, "stage planner failed", *updated.ErrorMessage)
	})
}

func TestWorkerPool_ProcessesTaskEndToEnd(t *testing.T) {
	client := testdb.NewTestClient(t)
	runtime := NewRuntime(client.Client, nil)
	ctx := context.Background()

	executor := &recordingExecutor{
		result: &ExecutionResult{
			Status: task.StatusSuccess,
			Result: map[string]interface{}{"stages": float64(6)},
		},
	}

	cfg := testQueueConfig()
	cfg.WorkerCount = 2
	cfg.PollInterval = 50 * time.Millisecond
	cfg.PollIntervalJitter = 10 * time.Millisecond

	pool := NewWorkerPool("pod-e2e", client.Client, cfg, executor, nil)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	u, c := seedUserAndCampaign(t, client.Client, campaign.StatusReadyToStart)
	tk, err := runtime.EnqueueWorkflow(ctx, u.ID, c.ID)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		got, err := client.Task.Get(ctx, tk.ID)
		return err == nil && got.Status == task.StatusSuccess
	}, 10*time.Second, 50*time.Millisecond, "task should reach success")

	got, err := client.Task.Get(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, got.Progress)
	assert.Equal(t, float64(6), got.Result["stages"])
	assert.NotNil(t, got.CompletedAt)

	assert.Equal(t, 1, executor.executedCount())
	executor.mu.Lock()
	defer executor.mu.Unlock()
	require.Len(t, executor.willRetry, 1)
	assert.False(t, executor.willRetry[0])
}

func TestRuntime_CancelPendingTask(t *testing.T) {
	client := testdb.NewTestClient(t)
	runtime := NewRuntime(client.Client, nil)
	ctx := context.Background()

	u, c := seedUserAndCampaign(t, client.Client, campaign.StatusReadyToStart)
	tk, err := runtime.EnqueueWorkflow(ctx, u.ID, c.ID)
	require.NoError(t, err)

	require.NoError(t, runtime.Cancel(ctx, u.ID, tk.ID))

	got, err := client.Task.Get(ctx, tk.ID)
	require.NoError(t, err)
	assert.Equal(t, task.StatusRevoked, got.Status)

	c, err = client.Campaign.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, campaign.StatusProcessingFailed, c.Status)
	assert.Nil(t, c.TaskID)
	assert.Equal(t, "cancelled", c.CampaignPlan["error"])

	t.Run("terminal task is not cancellable", func(t *testing.T) {
		err := runtime.Cancel(ctx, u.ID, tk.ID)
		assert.ErrorIs(t, err, services.ErrNotCancellable)
	})
}

func TestRuntime_Status(t *testing.T) {
	client := testdb.NewTestClient(t)
	runtime := NewRuntime(client.Client, nil)
	ctx := context.Background()

	u, c := seedUserAndCampaign(t, client.Client, campaign.StatusReadyToStart)
	tk, err := runtime.EnqueueWorkflow(ctx, u.ID, c.ID)
	require.NoError(t, err)

	t.Run("pending payload", func(t *testing.T) {
		st, err := runtime.Status(ctx, u.ID, tk.ID)
		require.NoError(t, err)
		assert.Equal(t, "pending", st.State)
		assert.Equal(t, 0, st.Progress)
		assert.Nil(t, st.Error)
		require.NotNil(t, st.CampaignID)
		assert.Equal(t, c.ID, *st.CampaignID)
		assert.Empty(t, st.RedirectURL)
	})

	t.Run("success payload carries redirect", func(t *testing.T) {
		err := client.Task.UpdateOneID(tk.ID).
			SetStatus(task.StatusSuccess).
			SetProgress(100).
			Exec(ctx)
		require.NoError(t, err)

		st, err := runtime.Status(ctx, u.ID, tk.ID)
		require.NoError(t, err)
		assert.Equal(t, "success", st.State)
		assert.Equal(t, "/campaigns/"+c.ID, st.RedirectURL)
	})

	t.Run("ownership enforced", func(t *testing.T) {
		stranger, _ := seedUserAndCampaign(t, client.Client, campaign.StatusReadyToStart)
		_, err := runtime.Status(ctx, stranger.ID, tk.ID)
		assert.ErrorIs(t, err, services.ErrForbidden)
	})
}

func TestOrphanRecovery(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	stale := time.Now().Add(-time.Hour)

	t.Run("orphan with attempts left is requeued", func(t *testing.T) {
		u, c := seedUserAndCampaign(t, client.Client, campaign.StatusProcessing)
		tk, err := client.Task.Create().
			SetID(uuid.New().String()).
			SetKind(task.KindRunCampaignWorkflow).
			SetCampaignID(c.ID).
			SetUserID(u.ID).
			SetStatus(task.StatusStarted).
			SetAttempt(1).
			SetPodID("dead-pod").
			SetLastInteractionAt(stale).
			Save(ctx)
		require.NoError(t, err)

		pool := NewWorkerPool("pod-live", client.Client, testQueueConfig(), nil, nil)
		require.NoError(t, pool.detectAndRecoverOrphans(ctx))

		got, err := client.Task.Get(ctx, tk.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusRetry, got.Status)
		assert.NotNil(t, got.NotBefore)
		assert.Nil(t, got.PodID)
	})

	t.Run("orphan with attempts exhausted fails and releases campaign", func(t *testing.T) {
		u, c := seedUserAndCampaign(t, client.Client, campaign.StatusProcessing)
		tk, err := client.Task.Create().
			SetID(uuid.New().String()).
			SetKind(task.KindRunCampaignWorkflow).
			SetCampaignID(c.ID).
			SetUserID(u.ID).
			SetStatus(task.StatusStarted).
			SetAttempt(3).
			SetPodID("dead-pod").
			SetLastInteractionAt(stale).
			Save(ctx)
		require.NoError(t, err)
		require.NoError(t, client.Campaign.UpdateOneID(c.ID).SetTaskID(tk.ID).Exec(ctx))

		pool := NewWorkerPool("pod-live", client.Client, testQueueConfig(), nil, nil)
		require.NoError(t, pool.detectAndRecoverOrphans(ctx))

		got, err := client.Task.Get(ctx, tk.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusFailure, got.Status)

		c, err = client.Campaign.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, campaign.StatusProcessingFailed, c.Status)
		assert.Nil(t, c.TaskID)
	})

	t.Run("startup cleanup requeues this pod's tasks", func(t *testing.T) {
		u, c := seedUserAndCampaign(t, client.Client, campaign.StatusProcessing)
		tk, err := client.Task.Create().
			SetID(uuid.New().String()).
			SetKind(task.KindRunCampaignWorkflow).
			SetCampaignID(c.ID).
			SetUserID(u.ID).
			SetStatus(task.StatusStarted).
			SetAttempt(1).
			SetPodID("pod-restarting").
			SetLastInteractionAt(time.Now()).
			Save(ctx)
		require.NoError(t, err)

		require.NoError(t, CleanupStartupOrphans(ctx, client.Client, "pod-restarting"))

		got, err := client.Task.Get(ctx, tk.ID)
		require.NoError(t, err)
		assert.Equal(t, task.StatusRetry, got.Status)
	})
}
