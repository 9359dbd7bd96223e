// Package orchestrator runs campaign tasks: the six-stage workflow, the
// outcome analysis, and the best-effort previous-campaign enrichment.
// Every stage persists its artifact before progress is reported, so a
// crash never claims work the store cannot substantiate.
package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/creatorloop/looper/ent"
	"github.com/creatorloop/looper/ent/campaign"
	"github.com/creatorloop/looper/ent/task"
	"github.com/creatorloop/looper/pkg/enrich"
	"github.com/creatorloop/looper/pkg/events"
	"github.com/creatorloop/looper/pkg/platform"
	"github.com/creatorloop/looper/pkg/queue"
	"github.com/creatorloop/looper/pkg/reasoning"
	"github.com/creatorloop/looper/pkg/services"
)

// Pipeline stage names, recorded on the campaign when a stage fails.
const (
	StageContext   = "context"
	StageStrategy  = "strategy"
	StageForensics = "forensics"
	StagePlanner   = "planner"
	StageContent   = "content"
	StageOutcome   = "outcome"
)

// Progress checkpoints written at stage boundaries.
const (
	progressContext   = 16
	progressStrategy  = 33
	progressForensics = 50
	progressPlanner   = 66
)

// stageError carries the failing stage name and whether another attempt
// could succeed.
type stageError struct {
	stage     string
	retryable bool
	err       error
}

func (e *stageError) Error() string { return fmt.Sprintf("stage %s: %v", e.stage, e.err) }
func (e *stageError) Unwrap() error { return e.err }

func failStage(stage string, retryable bool, err error) *stageError {
	return &stageError{stage: stage, retryable: retryable, err: err}
}

// Executor implements the task executor contract for all three task
// kinds. Enrichers may be nil (disabled); the publisher may be nil
// (progress broadcast disabled).
type Executor struct {
	client    *ent.Client
	campaigns *services.CampaignService
	profiles  *services.ProfileService
	content   *services.ContentService
	learnings *services.LearningService
	reasoner  reasoning.Service
	youtube   *platform.YouTubeClient
	twitter   *platform.TwitterClient
	image     *enrich.ImageClient
	seo       *enrich.SEOClient
	publisher *events.Publisher
	logger    *slog.Logger
}

// NewExecutor wires the executor from its collaborators.
func NewExecutor(
	client *ent.Client,
	campaigns *services.CampaignService,
	profiles *services.ProfileService,
	content *services.ContentService,
	learnings *services.LearningService,
	reasoner reasoning.Service,
	youtube *platform.YouTubeClient,
	twitter *platform.TwitterClient,
	image *enrich.ImageClient,
	seo *enrich.SEOClient,
	publisher *events.Publisher,
) *Executor {
	return &Executor{
		client:    client,
		campaigns: campaigns,
		profiles:  profiles,
		content:   content,
		learnings: learnings,
		reasoner:  reasoner,
		youtube:   youtube,
		twitter:   twitter,
		image:     image,
		seo:       seo,
		publisher: publisher,
		logger:    slog.With("component", "orchestrator"),
	}
}

var _ queue.TaskExecutor = (*Executor)(nil)

// Execute dispatches on the task kind.
func (e *Executor) Execute(ctx context.Context, t *ent.Task) *queue.ExecutionResult {
	switch t.Kind {
	case task.KindRunCampaignWorkflow:
		return e.runWorkflow(ctx, t)
	case task.KindAnalyzeCampaignOutcome:
		return e.runOutcome(ctx, t)
	case task.KindAnalyzePreviousCampaigns:
		return e.runAnalyzePrevious(ctx, t)
	default:
		return &queue.ExecutionResult{
			Status: task.StatusFailure,
			Error:  fmt.Errorf("unknown task kind %q", t.Kind),
		}
	}
}

// Finalize resolves the owning campaign once the runtime's retry decision
// is known. While a retry is scheduled the campaign keeps its in-flight
// status so the binding survives until the attempt that settles it.
func (e *Executor) Finalize(ctx context.Context, t *ent.Task, result *queue.ExecutionResult, willRetry bool) {
	if willRetry || t.CampaignID == nil {
		return
	}
	if result.Result != nil {
		if skipped, _ := result.Result["skipped"].(bool); skipped {
			// Another worker settled the campaign; this task only observed it.
			return
		}
	}
	campaignID := *t.CampaignID
	log := e.logger.With("task_id", t.ID, "campaign_id", campaignID)

	var err error
	switch {
	case result.Status == task.StatusRevoked:
		err = e.markCancelled(ctx, campaignID, t.ID)
	case result.Status == task.StatusSuccess && t.Kind == task.KindRunCampaignWorkflow:
		err = e.campaigns.ResolveWorkflowSuccess(ctx, campaignID)
	case result.Status == task.StatusFailure && t.Kind == task.KindRunCampaignWorkflow:
		err = e.campaigns.ResolveWorkflowFailure(ctx, campaignID, result.FailedStage)
	case result.Status == task.StatusFailure && t.Kind == task.KindAnalyzeCampaignOutcome:
		err = e.campaigns.ResolveOutcomeFailure(ctx, campaignID, result.FailedStage)
	default:
		// Outcome success commits its own transition; analyze_previous
		// never owns the campaign state.
		return
	}
	if err != nil {
		// Another worker may have settled the campaign already.
		if errors.Is(err, services.ErrInvalidStateTransition) || errors.Is(err, services.ErrNotFound) {
			log.Warn("Campaign already resolved elsewhere", "status", result.Status, "error", err)
			return
		}
		log.Error("Failed to resolve campaign after task", "status", result.Status, "error", err)
	}
}

// markCancelled releases a campaign whose running task was revoked. The
// task-binding guard makes the write a no-op when a newer task owns the
// campaign.
func (e *Executor) markCancelled(ctx context.Context, campaignID, taskID string) error {
	c, err := e.client.Campaign.Get(ctx, campaignID)
	if err != nil {
		if ent.IsNotFound(err) {
			return services.ErrNotFound
		}
		return fmt.Errorf("failed to get campaign: %w", err)
	}
	if c.TaskID == nil || *c.TaskID != taskID {
		return nil
	}

	plan := c.CampaignPlan
	if plan == nil {
		plan = map[string]interface{}{}
	}
	plan["error"] = "cancelled"

	err = e.client.Campaign.Update().
		Where(
			campaign.IDEQ(campaignID),
			campaign.TaskIDEQ(taskID),
			campaign.StatusIn(campaign.StatusProcessing, campaign.StatusGeneratingReport),
		).
		SetStatus(campaign.StatusProcessingFailed).
		SetCampaignPlan(plan).
		ClearTaskID().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark campaign cancelled: %w", err)
	}
	return nil
}

// checkpoint persists progress onto the task row and broadcasts it.
// Called only after the stage's artifacts are committed.
func (e *Executor) checkpoint(ctx context.Context, t *ent.Task, progress int, message string) {
	err := e.client.Task.UpdateOneID(t.ID).
		SetProgress(progress).
		SetMessage(message).
		SetLastInteractionAt(time.Now()).
		Exec(ctx)
	if err != nil {
		e.logger.Warn("Failed to write progress checkpoint",
			"task_id", t.ID, "progress", progress, "error", err)
	}

	if e.publisher == nil {
		return
	}
	campaignID := ""
	if t.CampaignID != nil {
		campaignID = *t.CampaignID
	}
	err = e.publisher.PublishTaskProgress(ctx, events.TaskProgressPayload{
		TaskID:     t.ID,
		CampaignID: campaignID,
		State:      task.StatusStarted,
		Progress:   progress,
		Message:    message,
	})
	if err != nil {
		e.logger.Warn("Failed to publish progress", "task_id", t.ID, "error", err)
	}
}

// resultFor translates a stage error into the runtime's result shape,
// honoring cooperative cancellation.
func resultFor(ctx context.Context, err *stageError) *queue.ExecutionResult {
	if errors.Is(ctx.Err(), context.Canceled) {
		return &queue.ExecutionResult{
			Status:      task.StatusRevoked,
			FailedStage: err.stage,
			Error:       context.Canceled,
		}
	}
	retryable := err.retryable
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		retryable = true
	}
	return &queue.ExecutionResult{
		Status:      task.StatusFailure,
		FailedStage: err.stage,
		Retryable:   retryable,
		Error:       err,
	}
}
