package queue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/creatorloop/looper/ent"
	"github.com/creatorloop/looper/ent/task"
	"github.com/creatorloop/looper/pkg/config"
)

func testQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             5,
		MaxConcurrentTasks:      5,
		PollInterval:            1 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		TaskTimeout:             10 * time.Minute,
		TaskSoftTimeout:         9 * time.Minute,
		HeartbeatInterval:       30 * time.Second,
		GracefulShutdownTimeout: 10 * time.Minute,
		OrphanDetectionInterval: 5 * time.Minute,
		OrphanThreshold:         5 * time.Minute,
	}
}

func TestWorkerPollInterval(t *testing.T) {
	cfg := testQueueConfig()
	w := NewWorker("test-worker", "test-pod", nil, cfg, nil, nil, nil)

	// Poll interval should be within [base - jitter, base + jitter]
	for i := 0; i < 100; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, 500*time.Millisecond, "poll interval below minimum")
		assert.LessOrEqual(t, d, 1500*time.Millisecond, "poll interval above maximum")
	}
}

func TestWorkerPollIntervalNoJitter(t *testing.T) {
	cfg := testQueueConfig()
	cfg.PollIntervalJitter = 0
	w := NewWorker("test-worker", "test-pod", nil, cfg, nil, nil, nil)

	for i := 0; i < 10; i++ {
		d := w.pollInterval()
		assert.Equal(t, 1*time.Second, d, "poll interval should equal base when jitter is 0")
	}
}

func TestWorkerHealth(t *testing.T) {
	cfg := testQueueConfig()
	w := NewWorker("worker-1", "pod-1", nil, cfg, nil, nil, nil)

	h := w.Health()
	assert.Equal(t, "worker-1", h.ID)
	assert.Equal(t, "idle", h.Status)
	assert.Equal(t, "", h.CurrentTaskID)
	assert.Equal(t, 0, h.TasksProcessed)

	// Simulate working state
	w.setStatus(WorkerStatusWorking, "task-abc")
	h = w.Health()
	assert.Equal(t, "working", h.Status)
	assert.Equal(t, "task-abc", h.CurrentTaskID)

	// Back to idle
	w.setStatus(WorkerStatusIdle, "")
	h = w.Health()
	assert.Equal(t, "idle", h.Status)
	assert.Equal(t, "", h.CurrentTaskID)
}

func TestWorkerShouldRetry(t *testing.T) {
	cfg := testQueueConfig()
	w := NewWorker("worker-1", "pod-1", nil, cfg, nil, nil, nil)

	workflowTask := func(attempt int) *ent.Task {
		return &ent.Task{Kind: task.KindRunCampaignWorkflow, Attempt: attempt, MaxAttempts: 3}
	}

	tests := []struct {
		name   string
		task   *ent.Task
		result *ExecutionResult
		want   bool
	}{
		{
			name:   "retryable failure with attempts left",
			task:   workflowTask(1),
			result: &ExecutionResult{Status: task.StatusFailure, Retryable: true},
			want:   true,
		},
		{
			name:   "attempts exhausted",
			task:   workflowTask(3),
			result: &ExecutionResult{Status: task.StatusFailure, Retryable: true},
			want:   false,
		},
		{
			name:   "non-retryable failure",
			task:   workflowTask(1),
			result: &ExecutionResult{Status: task.StatusFailure, Retryable: false},
			want:   false,
		},
		{
			name:   "success never retries",
			task:   workflowTask(1),
			result: &ExecutionResult{Status: task.StatusSuccess, Retryable: true},
			want:   false,
		},
		{
			name:   "revoked never retries",
			task:   workflowTask(1),
			result: &ExecutionResult{Status: task.StatusRevoked, Retryable: true},
			want:   false,
		},
		{
			name:   "analyze_previous_campaigns never retries",
			task:   &ent.Task{Kind: task.KindAnalyzePreviousCampaigns, Attempt: 1, MaxAttempts: 3},
			result: &ExecutionResult{Status: task.StatusFailure, Retryable: true},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, w.shouldRetry(tt.task, tt.result))
		})
	}
}
