package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/creatorloop/looper/ent"
	"github.com/creatorloop/looper/ent/campaign"
	"github.com/creatorloop/looper/ent/task"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for orphaned tasks.
// All pods run this independently — operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.detectAndRecoverOrphans(ctx); err != nil {
				slog.Error("Orphan detection failed", "error", err)
			}
		}
	}
}

// detectAndRecoverOrphans finds started tasks with stale heartbeats and
// requeues them for redelivery, or fails them when attempts are exhausted.
func (p *WorkerPool) detectAndRecoverOrphans(ctx context.Context) error {
	threshold := time.Now().Add(-p.config.OrphanThreshold)

	orphans, err := p.client.Task.Query().
		Where(
			task.StatusEQ(task.StatusStarted),
			task.LastInteractionAtNotNil(),
			task.LastInteractionAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query orphaned tasks: %w", err)
	}

	if len(orphans) == 0 {
		p.orphans.mu.Lock()
		p.orphans.lastOrphanScan = time.Now()
		p.orphans.mu.Unlock()
		return nil
	}

	slog.Warn("Detected orphaned tasks", "count", len(orphans))

	recovered := 0
	for _, t := range orphans {
		reason := orphanReason(t, "no heartbeat")
		if err := recoverOrphanedTask(ctx, p.client, t, reason); err != nil {
			slog.Error("Failed to recover orphaned task",
				"task_id", t.ID,
				"error", err)
			continue
		}
		recovered++
	}

	p.orphans.mu.Lock()
	p.orphans.lastOrphanScan = time.Now()
	p.orphans.orphansRecovered += recovered
	p.orphans.mu.Unlock()

	return nil
}

// CleanupStartupOrphans performs a one-time cleanup of tasks owned by this pod
// that were started when the pod previously crashed.
// Called once during startup, before the worker pool begins processing.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, podID string) error {
	orphans, err := client.Task.Query().
		Where(
			task.StatusEQ(task.StatusStarted),
			task.PodIDEQ(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}

	if len(orphans) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(orphans))

	for _, t := range orphans {
		reason := orphanReason(t, "pod restarted")
		if err := recoverOrphanedTask(ctx, client, t, reason); err != nil {
			slog.Error("Failed to recover startup orphan",
				"task_id", t.ID,
				"error", err)
			continue
		}
		slog.Info("Startup orphan recovered", "task_id", t.ID)
	}

	return nil
}

// recoverOrphanedTask requeues a task whose worker disappeared. Attempts
// already consumed stand; once they are exhausted the task fails and the
// owning campaign moves to processing_failed.
func recoverOrphanedTask(ctx context.Context, client *ent.Client, t *ent.Task, reason string) error {
	retriable := t.Kind != task.KindAnalyzePreviousCampaigns && t.Attempt < t.MaxAttempts

	if retriable {
		err := t.Update().
			SetStatus(task.StatusRetry).
			SetNotBefore(time.Now()).
			SetErrorMessage(reason).
			ClearPodID().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("failed to requeue orphaned task: %w", err)
		}
		slog.Warn("Orphaned task requeued", "task_id", t.ID, "reason", reason)
		return nil
	}

	err := t.Update().
		SetStatus(task.StatusFailure).
		SetCompletedAt(time.Now()).
		SetErrorMessage(reason).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to fail orphaned task: %w", err)
	}

	// Release the owning campaign so the user can retry.
	if t.CampaignID != nil {
		err := client.Campaign.Update().
			Where(
				campaign.IDEQ(*t.CampaignID),
				campaign.TaskIDEQ(t.ID),
				campaign.StatusIn(campaign.StatusProcessing, campaign.StatusGeneratingReport),
			).
			SetStatus(campaign.StatusProcessingFailed).
			ClearTaskID().
			Exec(ctx)
		if err != nil {
			slog.Error("Failed to release campaign of orphaned task",
				"task_id", t.ID, "campaign_id", *t.CampaignID, "error", err)
		}
	}

	slog.Warn("Orphaned task failed, attempts exhausted", "task_id", t.ID, "reason", reason)
	return nil
}

func orphanReason(t *ent.Task, cause string) string {
	podID := "unknown"
	if t.PodID != nil {
		podID = *t.PodID
	}
	lastHeartbeat := "unknown"
	if t.LastInteractionAt != nil {
		lastHeartbeat = t.LastInteractionAt.Format(time.RFC3339)
	}
	return fmt.Sprintf("Orphaned: %s (pod %s, last heartbeat %s)", cause, podID, lastHeartbeat)
}
