package reasoning

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/creatorloop/looper/pkg/config"
	"github.com/creatorloop/looper/pkg/models"
	reasoningv1 "github.com/creatorloop/looper/proto"
)

// GRPCClient implements Service by calling the reasoning sidecar via gRPC.
type GRPCClient struct {
	conn        *grpc.ClientConn
	client      reasoningv1.ReasoningServiceClient
	callTimeout time.Duration
}

// NewGRPCClient creates a new gRPC reasoning client.
// grpc.NewClient dials lazily; the actual connection happens on first RPC.
func NewGRPCClient(cfg *config.ReasoningConfig) (*GRPCClient, error) {
	conn, err := grpc.NewClient(cfg.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to reasoning service at %s: %w", cfg.Addr, err)
	}
	return &GRPCClient{
		conn:        conn,
		client:      reasoningv1.NewReasoningServiceClient(conn),
		callTimeout: cfg.CallTimeout,
	}, nil
}

// Close releases the gRPC connection.
func (c *GRPCClient) Close() error {
	return c.conn.Close()
}

// AnalyzeContext derives the creator's agent context from the profile snapshot.
func (c *GRPCClient) AnalyzeContext(ctx context.Context, in ContextInput) (*ContextOutput, error) {
	snapshot, err := toProtoStruct(in.ProfileSnapshot)
	if err != nil {
		return nil, err
	}

	callCtx, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()

	resp, err := c.client.AnalyzeContext(callCtx, &reasoningv1.AnalyzeContextRequest{
		UserId:          in.UserID,
		ProfileSnapshot: snapshot,
	})
	if err != nil {
		return nil, fmt.Errorf("gRPC AnalyzeContext call failed: %w", err)
	}

	return &ContextOutput{
		AgentContext:         fromProtoStruct(resp.AgentContext),
		RecommendedFrequency: resp.RecommendedFrequency,
	}, nil
}

// DevelopStrategy produces the campaign hypothesis and focus areas.
func (c *GRPCClient) DevelopStrategy(ctx context.Context, in StrategyInput) (*models.StrategyOutput, error) {
	goal, err := goalStruct(in.Goal)
	if err != nil {
		return nil, err
	}
	agentContext, err := toProtoStruct(in.AgentContext)
	if err != nil {
		return nil, err
	}

	callCtx, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()

	resp, err := c.client.DevelopStrategy(callCtx, &reasoningv1.DevelopStrategyRequest{
		Goal:          goal,
		AgentContext:  agentContext,
		PastLearnings: toProtoLearnings(in.PastLearnings),
	})
	if err != nil {
		return nil, fmt.Errorf("gRPC DevelopStrategy call failed: %w", err)
	}

	return &models.StrategyOutput{
		Hypothesis:      resp.Hypothesis,
		PlatformFocus:   resp.PlatformFocus,
		ExperimentFocus: resp.ExperimentFocus,
		RealityCheck:    resp.RealityCheck,
	}, nil
}

// AnalyzeCompetitors turns classified cohorts into transferable patterns.
func (c *GRPCClient) AnalyzeCompetitors(ctx context.Context, in CompetitorsInput) (*models.PlatformForensics, error) {
	high, err := toProtoItems(in.HighPerforming)
	if err != nil {
		return nil, err
	}
	low, err := toProtoItems(in.LowPerforming)
	if err != nil {
		return nil, err
	}

	callCtx, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()

	resp, err := c.client.AnalyzeCompetitors(callCtx, &reasoningv1.AnalyzeCompetitorsRequest{
		Platform:       in.Platform,
		HighPerforming: high,
		LowPerforming:  low,
	})
	if err != nil {
		return nil, fmt.Errorf("gRPC AnalyzeCompetitors call failed: %w", err)
	}

	return &models.PlatformForensics{
		Platform:           in.Platform,
		PatternsThatWorked: resp.PatternsThatWorked,
		PatternsThatFailed: resp.PatternsThatFailed,
		TransferableRules:  resp.TransferableRules,
	}, nil
}

// PlanCampaign produces the day-by-day plan.
func (c *GRPCClient) PlanCampaign(ctx context.Context, in PlanInput) (*models.CampaignPlan, error) {
	goal, err := goalStruct(in.Goal)
	if err != nil {
		return nil, err
	}
	forensics, err := toProtoStruct(in.Forensics)
	if err != nil {
		return nil, err
	}

	callCtx, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()

	resp, err := c.client.PlanCampaign(callCtx, &reasoningv1.PlanCampaignRequest{
		Goal: goal,
		Strategy: &reasoningv1.DevelopStrategyResponse{
			Hypothesis:      in.Strategy.Hypothesis,
			PlatformFocus:   in.Strategy.PlatformFocus,
			ExperimentFocus: in.Strategy.ExperimentFocus,
			RealityCheck:    in.Strategy.RealityCheck,
		},
		Forensics:     forensics,
		Intensity:     in.Intensity,
		PastLearnings: toProtoLearnings(in.PastLearnings),
	})
	if err != nil {
		return nil, fmt.Errorf("gRPC PlanCampaign call failed: %w", err)
	}

	plan := &models.CampaignPlan{
		Day1:      fromProtoDayPlan(resp.Day_1),
		Day2:      fromProtoDayPlan(resp.Day_2),
		Day3:      fromProtoDayPlan(resp.Day_3),
		ExtraDays: map[int]models.DayPlan{},
	}
	for day, dp := range resp.ExtraDays {
		plan.ExtraDays[int(day)] = fromProtoDayPlan(dp)
	}
	return plan, nil
}

// GenerateDailyContent produces one day's content draft.
func (c *GRPCClient) GenerateDailyContent(ctx context.Context, in ContentInput) (*ContentDraft, error) {
	snapshot, err := toProtoStruct(in.ProfileSnapshot)
	if err != nil {
		return nil, err
	}

	callCtx, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()

	resp, err := c.client.GenerateDailyContent(callCtx, &reasoningv1.GenerateDailyContentRequest{
		DayPlan: &reasoningv1.DayPlan{
			Youtube: in.DayPlan.YouTube,
			Twitter: in.DayPlan.Twitter,
		},
		ProfileSnapshot: snapshot,
		DayNumber:       int32(in.DayNumber),
		DurationDays:    int32(in.DurationDays),
		Intensity:       in.Intensity,
		GoalType:        in.GoalType,
	})
	if err != nil {
		return nil, fmt.Errorf("gRPC GenerateDailyContent call failed: %w", err)
	}

	return &ContentDraft{
		YouTubeScript: resp.YoutubeScript,
		Title:         resp.Title,
		SEOTags:       resp.SeoTags,
		CTA:           resp.Cta,
		Tweet:         resp.Tweet,
		Thread:        resp.Thread,
		Reasoning:     resp.Reasoning,
	}, nil
}

// AnalyzeOutcome produces the end-of-campaign report.
func (c *GRPCClient) AnalyzeOutcome(ctx context.Context, in OutcomeInput) (*models.OutcomeReport, error) {
	goal, err := goalStruct(in.Goal)
	if err != nil {
		return nil, err
	}
	plan, err := toProtoStruct(in.CampaignPlan)
	if err != nil {
		return nil, err
	}
	metrics, err := toProtoStruct(in.ActualMetrics)
	if err != nil {
		return nil, err
	}
	execution, err := toProtoStruct(in.DailyExecution)
	if err != nil {
		return nil, err
	}

	callCtx, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()

	resp, err := c.client.AnalyzeOutcome(callCtx, &reasoningv1.AnalyzeOutcomeRequest{
		Goal:           goal,
		CampaignPlan:   plan,
		ActualMetrics:  metrics,
		DailyExecution: execution,
	})
	if err != nil {
		return nil, fmt.Errorf("gRPC AnalyzeOutcome call failed: %w", err)
	}

	return &models.OutcomeReport{
		GoalVsResult:            fromProtoStruct(resp.GoalVsResult),
		WhatWorked:              resp.WhatWorked,
		WhatFailed:              resp.WhatFailed,
		NextCampaignSuggestions: resp.NextCampaignSuggestions,
		ActualMetrics:           in.ActualMetrics,
	}, nil
}

// ────────────────────────────────────────────────────────────
// Proto conversion helpers
// ────────────────────────────────────────────────────────────

func toProtoStruct(m map[string]interface{}) (*structpb.Struct, error) {
	if m == nil {
		m = map[string]interface{}{}
	}
	s, err := structpb.NewStruct(m)
	if err != nil {
		return nil, fmt.Errorf("failed to convert map to proto struct: %w", err)
	}
	return s, nil
}

func fromProtoStruct(s *structpb.Struct) map[string]interface{} {
	if s == nil {
		return map[string]interface{}{}
	}
	return s.AsMap()
}

func goalStruct(goal models.CampaignGoal) (*structpb.Struct, error) {
	m, err := models.ToMap(goal)
	if err != nil {
		return nil, err
	}
	return toProtoStruct(m)
}

func toProtoItems(items []map[string]interface{}) ([]*reasoningv1.CompetitorItem, error) {
	out := make([]*reasoningv1.CompetitorItem, len(items))
	for i, item := range items {
		fields, err := toProtoStruct(item)
		if err != nil {
			return nil, err
		}
		out[i] = &reasoningv1.CompetitorItem{Fields: fields}
	}
	return out, nil
}

func toProtoLearnings(learnings []models.LearningRecord) []*reasoningv1.LearningRecord {
	if len(learnings) == 0 {
		return nil
	}
	out := make([]*reasoningv1.LearningRecord, len(learnings))
	for i, l := range learnings {
		out[i] = &reasoningv1.LearningRecord{
			GoalType:               l.GoalType,
			Platform:               l.Platform,
			Niche:                  l.Niche,
			CampaignDurationDays:   int32(l.CampaignDurationDays),
			PostingFrequency:       l.PostingFrequency,
			WhatWorked:             l.WhatWorked,
			WhatFailed:             l.WhatFailed,
			Recommendations:        l.Recommendations,
			GoalAchievementSummary: l.GoalAchievementSummary,
		}
	}
	return out
}

func fromProtoDayPlan(dp *reasoningv1.DayPlan) models.DayPlan {
	if dp == nil {
		return models.DayPlan{}
	}
	return models.DayPlan{
		YouTube: dp.Youtube,
		Twitter: dp.Twitter,
	}
}
