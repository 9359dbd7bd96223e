package orchestrator

import (
	"context"
	"fmt"

	"github.com/creatorloop/looper/ent"
	"github.com/creatorloop/looper/ent/campaign"
	"github.com/creatorloop/looper/ent/task"
	"github.com/creatorloop/looper/pkg/models"
	"github.com/creatorloop/looper/pkg/queue"
	"github.com/creatorloop/looper/pkg/reasoning"
	"github.com/creatorloop/looper/pkg/services"
)

// shortCampaignWarning is attached (not errored) when the goal duration
// gives the strategy too little room to measure anything.
const shortCampaignWarning = "campaign shorter than 7 days: results may not be statistically meaningful"

// workflowState carries the decoded campaign inputs between stages. The
// campaign pointer is refreshed after each stage write so resume checks
// always see committed artifacts.
type workflowState struct {
	c          *ent.Campaign
	goal       *models.CampaignGoal
	onboarding models.OnboardingData
	learnings  []models.LearningRecord
}

// runWorkflow executes the content-campaign pipeline: context, strategy,
// forensics, planner, content. Each stage is idempotent and skipped when
// its artifact already exists, so a retried task resumes at the first
// incomplete stage.
func (e *Executor) runWorkflow(ctx context.Context, t *ent.Task) *queue.ExecutionResult {
	if t.CampaignID == nil {
		return &queue.ExecutionResult{
			Status: task.StatusFailure,
			Error:  fmt.Errorf("workflow task %s has no campaign", t.ID),
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

	// Re-check on dequeue: another worker (or a newer task) may own the
	// campaign by now.
	if c.Status != campaign.StatusProcessing || c.TaskID == nil || *c.TaskID != t.ID {
		log.Info("Campaign no longer owned by this task, exiting",
			"status", c.Status)
		return &queue.ExecutionResult{
			Status: task.StatusSuccess,
			Result: map[string]interface{}{"skipped": true},
		}
	}

	state, serr := e.loadWorkflowState(ctx, c)
	if serr != nil {
		return resultFor(ctx, serr)
	}

	stages := []func(context.Context, *ent.Task, *workflowState) *stageError{
		e.stageContext,
		e.stageStrategy,
		e.stageForensics,
		e.stagePlanner,
		e.stageContent,
	}
	for _, stage := range stages {
		if err := stage(ctx, t, state); err != nil {
			log.Error("Workflow stage failed",
				"stage", err.stage, "retryable", err.retryable, "error", err.err)
			return resultFor(ctx, err)
		}
	}

	log.Info("Workflow completed", "duration_days", state.goal.DurationDays)
	return &queue.ExecutionResult{
		Status: task.StatusSuccess,
		Result: map[string]interface{}{
			"duration_days": state.goal.DurationDays,
			"platforms":     state.goal.Platforms,
		},
	}
}

// loadWorkflowState decodes the goal, toggles, and past learnings. Goal
// problems are permanent: retrying cannot repair onboarding data.
func (e *Executor) loadWorkflowState(ctx context.Context, c *ent.Campaign) (*workflowState, *stageError) {
	goal, err := e.campaigns.Goal(c)
	if err != nil {
		return nil, failStage(StageContext, false, err)
	}

	var onboarding models.OnboardingData
	if err := models.FromMap(c.OnboardingData, &onboarding); err != nil {
		return nil, failStage(StageContext, false, fmt.Errorf("malformed onboarding data: %w", err))
	}

	filter := services.LearningFilter{GoalType: goal.GoalType}
	if niche, ok := c.ProfileSnapshot["niche"].(string); ok {
		filter.Niche = niche
	}
	if len(goal.Platforms) == 1 {
		filter.Platform = goal.Platforms[0]
	}

	return &workflowState{
		c:          c,
		goal:       goal,
		onboarding: onboarding,
		learnings:  e.learnings.Retrieve(ctx, c.UserID, filter),
	}, nil
}

// stageContext derives the creator context from the profile snapshot and
// mirrors it onto the profile for future campaigns.
func (e *Executor) stageContext(ctx context.Context, t *ent.Task, s *workflowState) *stageError {
	if len(s.c.AgentContext) > 0 {
		return nil
	}

	out, err := e.reasoner.AnalyzeContext(ctx, reasoning.ContextInput{
		UserID:          s.c.UserID,
		ProfileSnapshot: s.c.ProfileSnapshot,
	})
	if err != nil {
		return failStage(StageContext, true, err)
	}

	c, err := s.c.Update().
		SetAgentContext(out.AgentContext).
		Save(ctx)
	if err != nil {
		return failStage(StageContext, true, fmt.Errorf("failed to persist agent context: %w", err))
	}
	s.c = c

	if err := e.profiles.SaveAgentContext(ctx, s.c.UserID, out.AgentContext, out.RecommendedFrequency); err != nil {
		e.logger.Warn("Failed to mirror agent context onto profile",
			"campaign_id", s.c.ID, "error", err)
	}

	e.checkpoint(ctx, t, progressContext, "context analyzed")
	return nil
}

// stageStrategy develops the campaign hypothesis. Short campaigns get the
// reality-check warning attached here, once.
func (e *Executor) stageStrategy(ctx context.Context, t *ent.Task, s *workflowState) *stageError {
	if done := len(s.c.StrategyOutput) > 0 && s.c.StrategyOutput["error"] == nil; done {
		return nil
	}

	out, err := e.reasoner.DevelopStrategy(ctx, reasoning.StrategyInput{
		Goal:          *s.goal,
		AgentContext:  s.c.AgentContext,
		PastLearnings: s.learnings,
	})
	if err != nil {
		return failStage(StageStrategy, true, err)
	}

	update := s.c.Update()
	if s.goal.DurationDays < 7 {
		out.RealityCheck = shortCampaignWarning
		if !contains(s.c.ContentWarnings, shortCampaignWarning) {
			update.SetContentWarnings(append(s.c.ContentWarnings, shortCampaignWarning))
		}
	}

	raw, err := models.ToMap(out)
	if err != nil {
		return failStage(StageStrategy, false, fmt.Errorf("failed to encode strategy: %w", err))
	}

	c, err := update.SetStrategyOutput(raw).Save(ctx)
	if err != nil {
		return failStage(StageStrategy, true, fmt.Errorf("failed to persist strategy: %w", err))
	}
	s.c = c

	e.checkpoint(ctx, t, progressStrategy, "strategy developed")
	return nil
}

// stagePlanner turns the strategy and forensics into the day-by-day plan.
func (e *Executor) stagePlanner(ctx context.Context, t *ent.Task, s *workflowState) *stageError {
	if planHasDayOne(s.c.CampaignPlan) {
		return nil
	}

	var strategy models.StrategyOutput
	if err := models.FromMap(s.c.StrategyOutput, &strategy); err != nil {
		return failStage(StagePlanner, false, fmt.Errorf("malformed strategy output: %w", err))
	}

	plan, err := e.reasoner.PlanCampaign(ctx, reasoning.PlanInput{
		Goal:          *s.goal,
		Strategy:      strategy,
		Forensics:     s.c.ForensicsOutput,
		Intensity:     s.goal.Intensity,
		PastLearnings: s.learnings,
	})
	if err != nil {
		return failStage(StagePlanner, true, err)
	}
	if !dayPlanPresent(plan.Day1) {
		return failStage(StagePlanner, true, fmt.Errorf("planner produced no day 1"))
	}

	raw, err := models.ToMap(plan)
	if err != nil {
		return failStage(StagePlanner, false, fmt.Errorf("failed to encode plan: %w", err))
	}

	c, err := s.c.Update().SetCampaignPlan(raw).Save(ctx)
	if err != nil {
		return failStage(StagePlanner, true, fmt.Errorf("failed to persist plan: %w", err))
	}
	s.c = c

	e.checkpoint(ctx, t, progressPlanner, "campaign planned")
	return nil
}

// stageContent generates and persists one DailyContent row per requested
// platform per day, in day order. Days that already have rows for every
// platform are skipped, so a retried task resumes at the first incomplete
// day. Enrichers are best-effort.
func (e *Executor) stageContent(ctx context.Context, t *ent.Task, s *workflowState) *stageError {
	var plan models.CampaignPlan
	if err := models.FromMap(s.c.CampaignPlan, &plan); err != nil {
		return failStage(StageContent, false, fmt.Errorf("malformed campaign plan: %w", err))
	}

	done := map[string]map[int]bool{}
	for _, p := range s.goal.Platforms {
		days, err := e.content.ContentDays(ctx, s.c.ID, p)
		if err != nil {
			return failStage(StageContent, true, err)
		}
		done[p] = days
	}

	total := s.goal.DurationDays
	for day := 1; day <= total; day++ {
		if allPlatformsDone(done, s.goal.Platforms, day) {
			continue
		}

		draft, err := e.reasoner.GenerateDailyContent(ctx, reasoning.ContentInput{
			DayPlan:         plan.DayN(day),
			ProfileSnapshot: s.c.ProfileSnapshot,
			DayNumber:       day,
			DurationDays:    total,
			Intensity:       s.goal.Intensity,
			GoalType:        s.goal.GoalType,
		})
		if err != nil {
			return failStage(StageContent, true, fmt.Errorf("day %d: %w", day, err))
		}

		e.enrichDraft(ctx, s, draft)

		for _, p := range s.goal.Platforms {
			if done[p][day] {
				continue
			}
			if _, err := e.content.UpsertDailyContent(ctx, s.c.ID, day, p, contentInputFor(p, draft)); err != nil {
				return failStage(StageContent, true, fmt.Errorf("day %d %s: %w", day, p, err))
			}
		}

		e.checkpoint(ctx, t, contentProgress(day, total),
			fmt.Sprintf("day %d of %d content generated", day, total))
	}

	return nil
}

// enrichDraft applies the optional image and SEO enrichers in place.
// Failures degrade the draft, never the stage.
func (e *Executor) enrichDraft(ctx context.Context, s *workflowState, draft *reasoning.ContentDraft) {
	if s.onboarding.ImageGenerationEnabled && e.image != nil && draft.Title != "" {
		url, err := e.image.GenerateThumbnail(ctx, draft.Title, draft.YouTubeScript)
		if err != nil {
			e.logger.Warn("Thumbnail generation failed",
				"campaign_id", s.c.ID, "error", err)
		} else if url != "" {
			if draft.ThumbnailURLs == nil {
				draft.ThumbnailURLs = map[string]string{}
			}
			draft.ThumbnailURLs["generated"] = url
		}
	}

	if s.onboarding.SEOOptimizationEnabled && e.seo != nil && draft.Title != "" {
		res, err := e.seo.Optimize(ctx, draft.Title, draft.SEOTags)
		if err != nil {
			e.logger.Warn("SEO optimization failed",
				"campaign_id", s.c.ID, "error", err)
		} else {
			if res.Title != "" {
				draft.Title = res.Title
			}
			if len(res.Tags) > 0 {
				draft.SEOTags = res.Tags
			}
		}
	}
}

// contentInputFor maps the shared draft onto a platform's row shape.
func contentInputFor(platformName string, draft *reasoning.ContentDraft) services.DailyContentInput {
	in := services.DailyContentInput{
		Title:     draft.Title,
		Reasoning: draft.Reasoning,
	}
	switch platformName {
	case models.PlatformYouTube:
		in.Script = draft.YouTubeScript
		in.SEOTags = draft.SEOTags
		in.CTA = draft.CTA
		in.ThumbnailURLs = draft.ThumbnailURLs
	case models.PlatformTwitter:
		in.Tweet = draft.Tweet
		in.Thread = draft.Thread
	}
	return in
}

// contentProgress spreads the content stage over the 66..100 range.
func contentProgress(day, total int) int {
	if total <= 0 {
		return progressPlanner
	}
	p := progressPlanner + (100-progressPlanner)*day/total
	if p > 100 {
		p = 100
	}
	return p
}

func allPlatformsDone(done map[string]map[int]bool, platforms []string, day int) bool {
	for _, p := range platforms {
		if !done[p][day] {
			return false
		}
	}
	return true
}

func planHasDayOne(raw map[string]interface{}) bool {
	day1, ok := raw["day_1"].(map[string]interface{})
	if !ok {
		return false
	}
	for _, v := range day1 {
		if s, ok := v.(string); ok && s != "" {
			return true
		}
	}
	return false
}

func dayPlanPresent(dp models.DayPlan) bool {
	return dp.YouTube != "" || dp.Twitter != ""
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
