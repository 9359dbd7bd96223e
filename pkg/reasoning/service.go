// Package reasoning defines the boundary to the reasoning sidecar: six
// typed operations, one per pipeline stage. Implementations are
// replaceable; orchestrator tests inject the deterministic stub.
package reasoning

import (
	"context"

	"github.com/creatorloop/looper/pkg/models"
)

// ContextInput feeds the context-analysis stage.
type ContextInput struct {
	UserID          string
	ProfileSnapshot map[string]interface{}
}

// ContextOutput is the derived creator context.
type ContextOutput struct {
	AgentContext         map[string]interface{}
	RecommendedFrequency string
}

// StrategyInput feeds the strategy stage.
type StrategyInput struct {
	Goal          models.CampaignGoal
	AgentContext  map[string]interface{}
	PastLearnings []models.LearningRecord
}

// CompetitorsInput feeds one per-platform forensics call with the
// pre-classified cohorts.
type CompetitorsInput struct {
	Platform       string
	HighPerforming []map[string]interface{}
	LowPerforming  []map[string]interface{}
}

// PlanInput feeds the planner stage.
type PlanInput struct {
	Goal          models.CampaignGoal
	Strategy      models.StrategyOutput
	Forensics     map[string]interface{}
	Intensity     string
	PastLearnings []models.LearningRecord
}

// ContentInput feeds one day of the content stage.
type ContentInput struct {
	DayPlan         models.DayPlan
	ProfileSnapshot map[string]interface{}
	DayNumber       int
	DurationDays    int
	Intensity       string
	GoalType        string
}

// ContentDraft is the generated content for one day. ThumbnailURLs is
// empty until the image enricher fills it.
type ContentDraft struct {
	YouTubeScript string
	Title         string
	SEOTags       []string
	CTA           string
	Tweet         string
	Thread        []string
	ThumbnailURLs map[string]string
	Reasoning     string
}

// OutcomeInput feeds the outcome-analysis stage.
type OutcomeInput struct {
	Goal           models.CampaignGoal
	CampaignPlan   map[string]interface{}
	ActualMetrics  map[string]interface{}
	DailyExecution map[string]interface{}
}

// Service is the six-operation reasoning contract.
type Service interface {
	AnalyzeContext(ctx context.Context, in ContextInput) (*ContextOutput, error)
	DevelopStrategy(ctx context.Context, in StrategyInput) (*models.StrategyOutput, error)
	AnalyzeCompetitors(ctx context.Context, in CompetitorsInput) (*models.PlatformForensics, error)
	PlanCampaign(ctx context.Context, in PlanInput) (*models.CampaignPlan, error)
	GenerateDailyContent(ctx context.Context, in ContentInput) (*ContentDraft, error)
	AnalyzeOutcome(ctx context.Context, in OutcomeInput) (*models.OutcomeReport, error)
}
