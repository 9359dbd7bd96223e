package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/creatorloop/looper/ent"
	"github.com/creatorloop/looper/ent/campaign"
	"github.com/creatorloop/looper/ent/task"
	"github.com/creatorloop/looper/pkg/models"
	"github.com/creatorloop/looper/pkg/queue"
	"github.com/creatorloop/looper/pkg/reasoning"
	"github.com/creatorloop/looper/pkg/services"
)

// maxInsightItems caps each aggregated array on learning_insights.
const maxInsightItems = 10

// runOutcome executes the outcome-analysis stage: compare the plan against
// reported metrics, write the report, and capture the learning memory.
// The report, the memory, and the completed transition commit in one
// transaction.
func (e *Executor) runOutcome(ctx context.Context, t *ent.Task) *queue.ExecutionResult {
	if t.CampaignID == nil {
		return &queue.ExecutionResult{
			Status: task.StatusFailure,
			Error:  fmt.Errorf("outcome task %s has no campaign", t.ID),
		}
	}
	log := e.logger.With("task_id", t.ID, "campaign_id", *t.CampaignID)

	c, err := e.client.Campaign.Get(ctx, *t.CampaignID)
	if err != nil {
		if ent.IsNotFound(err) {
			return &queue.ExecutionResult{
				Status: task.StatusFailure,
				Error:  fmt.Errorf("campaign %s not found", *t.CampaignID),
			}
		}
		return &queue.ExecutionResult{
			Status:    task.StatusFailure,
			Retryable: true,
			Error:     fmt.Errorf("failed to load campaign: %w", err),
		}
	}

	if c.Status != campaign.StatusGeneratingReport || c.TaskID == nil || *c.TaskID != t.ID {
		log.Info("Campaign no longer owned by this task, exiting", "status", c.Status)
		return &queue.ExecutionResult{
			Status: task.StatusSuccess,
			Result: map[string]interface{}{"skipped": true},
		}
	}

	goal, err := e.campaigns.Goal(c)
	if err != nil {
		return resultFor(ctx, failStage(StageOutcome, false, err))
	}

	actualMetrics, _ := t.Args["actual_metrics"].(map[string]interface{})

	dailyExecution, err := e.content.ExecutionMetrics(ctx, c.ID)
	if err != nil {
		return resultFor(ctx, failStage(StageOutcome, true, err))
	}

	report, err := e.reasoner.AnalyzeOutcome(ctx, reasoning.OutcomeInput{
		Goal:           *goal,
		CampaignPlan:   c.CampaignPlan,
		ActualMetrics:  actualMetrics,
		DailyExecution: dailyExecution,
	})
	if err != nil {
		return resultFor(ctx, failStage(StageOutcome, true, err))
	}

	raw, err := models.ToMap(report)
	if err != nil {
		return resultFor(ctx, failStage(StageOutcome, false, fmt.Errorf("failed to encode report: %w", err)))
	}

	if serr := e.completeWithReport(ctx, c, goal, report, raw); serr != nil {
		return resultFor(ctx, serr)
	}

	log.Info("Outcome analysis completed")
	return &queue.ExecutionResult{
		Status: task.StatusSuccess,
		Result: raw,
	}
}

// completeWithReport commits the report, the learning memory, and the
// completed transition atomically.
func (e *Executor) completeWithReport(ctx context.Context, c *ent.Campaign, goal *models.CampaignGoal, report *models.OutcomeReport, raw map[string]interface{}) *stageError {
	next, err := services.NextStatus(c.Status, services.ActionOutcomeOK)
	if err != nil {
		return failStage(StageOutcome, false, err)
	}

	tx, err := e.client.Tx(ctx)
	if err != nil {
		return failStage(StageOutcome, true, fmt.Errorf("failed to start transaction: %w", err))
	}
	defer func() { _ = tx.Rollback() }()

	err = tx.Campaign.UpdateOneID(c.ID).
		SetOutcomeReport(raw).
		SetStatus(next).
		SetCompletedAt(time.Now()).
		ClearTaskID().
		Exec(ctx)
	if err != nil {
		return failStage(StageOutcome, true, fmt.Errorf("failed to complete campaign: %w", err))
	}

	if _, err := e.learnings.WriteFromOutcome(ctx, tx, c, goal, report); err != nil {
		return failStage(StageOutcome, true, err)
	}

	if err := tx.Commit(); err != nil {
		return failStage(StageOutcome, true, fmt.Errorf("failed to commit outcome: %w", err))
	}
	return nil
}

// runAnalyzePrevious aggregates the user's past learning memories into the
// campaign's learning_insights. Best-effort enrichment: it never blocks
// the campaign and is never retried.
func (e *Executor) runAnalyzePrevious(ctx context.Context, t *ent.Task) *queue.ExecutionResult {
	if t.UserID == nil {
		return &queue.ExecutionResult{
			Status: task.StatusFailure,
			Error:  fmt.Errorf("analysis task %s has no user", t.ID),
		}
	}

	memories, err := e.learnings.ListForUser(ctx, *t.UserID)
	if err != nil {
		return &queue.ExecutionResult{
			Status: task.StatusFailure,
			Error:  err,
		}
	}

	insights := aggregateInsights(memories)

	if t.CampaignID != nil {
		err := e.client.Campaign.UpdateOneID(*t.CampaignID).
			SetLearningInsights(insights).
			Exec(ctx)
		if err != nil {
			return &queue.ExecutionResult{
				Status: task.StatusFailure,
				Error:  fmt.Errorf("failed to store learning insights: %w", err),
			}
		}
	}

	return &queue.ExecutionResult{
		Status: task.StatusSuccess,
		Result: map[string]interface{}{"campaigns_analyzed": len(memories)},
	}
}

// aggregateInsights merges past memories into the lessons-learned shape,
// deduplicated and newest-first.
func aggregateInsights(memories []*ent.LearningMemory) map[string]interface{} {
	var worked, failed, recommendations []string
	for _, m := range memories {
		worked = appendUnique(worked, m.WhatWorked)
		failed = appendUnique(failed, m.WhatFailed)
		recommendations = appendUnique(recommendations, m.Recommendations)
	}
	return map[string]interface{}{
		"campaigns_analyzed": len(memories),
		"what_worked":        capItems(worked),
		"what_failed":        capItems(failed),
		"recommendations":    capItems(recommendations),
	}
}

func appendUnique(dst, src []string) []string {
	for _, s := range src {
		if s != "" && !contains(dst, s) {
			dst = append(dst, s)
		}
	}
	return dst
}

func capItems(items []string) []string {
	if items == nil {
		return []string{}
	}
	if len(items) > maxInsightItems {
		return items[:maxInsightItems]
	}
	return items
}
