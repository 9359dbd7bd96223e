package reasoning

import (
	"context"
	"fmt"

	"github.com/creatorloop/looper/pkg/models"
)

// StubService is a deterministic in-process Service implementation for
// tests and local development without the sidecar. Outputs are derived
// purely from inputs, so repeated stage runs are reproducible.
//
// Err, when set, is returned by every operation. FailOn limits the
// failure to a single operation name (e.g. "PlanCampaign").
type StubService struct {
	Err    error
	FailOn string

	// Calls records operation names in invocation order.
	Calls []string
}

var _ Service = (*StubService)(nil)

func (s *StubService) fail(op string) error {
	s.Calls = append(s.Calls, op)
	if s.Err != nil && (s.FailOn == "" || s.FailOn == op) {
		return s.Err
	}
	return nil
}

// AnalyzeContext returns a minimal context derived from the snapshot.
func (s *StubService) AnalyzeContext(_ context.Context, in ContextInput) (*ContextOutput, error) {
	if err := s.fail("AnalyzeContext"); err != nil {
		return nil, err
	}
	niche, _ := in.ProfileSnapshot["niche"].(string)
	return &ContextOutput{
		AgentContext: map[string]interface{}{
			"niche_summary": "creator in " + niche,
			"derived_from":  "profile_snapshot",
		},
		RecommendedFrequency: "3x_per_week",
	}, nil
}

// DevelopStrategy returns a hypothesis built from the goal.
func (s *StubService) DevelopStrategy(_ context.Context, in StrategyInput) (*models.StrategyOutput, error) {
	if err := s.fail("DevelopStrategy"); err != nil {
		return nil, err
	}
	out := &models.StrategyOutput{
		Hypothesis:      fmt.Sprintf("Consistent posting will achieve %q", in.Goal.GoalAim),
		PlatformFocus:   in.Goal.Platforms,
		ExperimentFocus: []string{"hooks", "titles"},
	}
	if len(in.PastLearnings) > 0 {
		out.ExperimentFocus = append(out.ExperimentFocus, "apply_past_learnings")
	}
	return out, nil
}

// AnalyzeCompetitors summarizes cohort sizes as patterns.
func (s *StubService) AnalyzeCompetitors(_ context.Context, in CompetitorsInput) (*models.PlatformForensics, error) {
	if err := s.fail("AnalyzeCompetitors"); err != nil {
		return nil, err
	}
	return &models.PlatformForensics{
		Platform:           in.Platform,
		PatternsThatWorked: []string{fmt.Sprintf("%d high performers analyzed", len(in.HighPerforming))},
		PatternsThatFailed: []string{fmt.Sprintf("%d low performers analyzed", len(in.LowPerforming))},
		TransferableRules:  []string{"strong hook in first 10 seconds"},
	}, nil
}

// PlanCampaign fills every requested day with a deterministic action.
func (s *StubService) PlanCampaign(_ context.Context, in PlanInput) (*models.CampaignPlan, error) {
	if err := s.fail("PlanCampaign"); err != nil {
		return nil, err
	}
	plan := &models.CampaignPlan{
		ExtraDays:     map[int]models.DayPlan{},
		Hypothesis:    in.Strategy.Hypothesis,
		PlatformFocus: in.Goal.Platforms,
	}
	for day := 1; day <= in.Goal.DurationDays; day++ {
		dp := models.DayPlan{}
		for _, platform := range in.Goal.Platforms {
			action := fmt.Sprintf("day %d: post on %s", day, platform)
			switch platform {
			case models.PlatformYouTube:
				dp.YouTube = action
			case models.PlatformTwitter:
				dp.Twitter = action
			}
		}
		plan.SetDayN(day, dp)
	}
	return plan, nil
}

// GenerateDailyContent returns per-day content derived from the day plan.
func (s *StubService) GenerateDailyContent(_ context.Context, in ContentInput) (*ContentDraft, error) {
	if err := s.fail("GenerateDailyContent"); err != nil {
		return nil, err
	}
	draft := &ContentDraft{
		Title:     fmt.Sprintf("Day %d of %d", in.DayNumber, in.DurationDays),
		SEOTags:   []string{in.GoalType, in.Intensity},
		CTA:       "subscribe for more",
		Reasoning: "stub content",
	}
	if in.DayPlan.YouTube != "" {
		draft.YouTubeScript = "script for: " + in.DayPlan.YouTube
	}
	if in.DayPlan.Twitter != "" {
		draft.Tweet = "tweet for: " + in.DayPlan.Twitter
	}
	return draft, nil
}

// AnalyzeOutcome returns a fixed-shape report echoing the metrics.
func (s *StubService) AnalyzeOutcome(_ context.Context, in OutcomeInput) (*models.OutcomeReport, error) {
	if err := s.fail("AnalyzeOutcome"); err != nil {
		return nil, err
	}
	return &models.OutcomeReport{
		GoalVsResult:            map[string]interface{}{"goal": in.Goal.GoalAim, "achieved": true},
		WhatWorked:              []string{"consistent posting"},
		WhatFailed:              []string{"low weekend engagement"},
		NextCampaignSuggestions: []string{"post earlier in the day"},
		ActualMetrics:           in.ActualMetrics,
	}, nil
}
