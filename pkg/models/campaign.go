// Package models contains the typed shapes stored in JSONB columns and
// exchanged between the API, services, and orchestrator layers.
package models

// Campaign goal intensities accepted by onboarding validation.
const (
	IntensityLight    = "light"
	IntensityModerate = "moderate"
	IntensityIntense  = "intense"
)

// Duration bounds for a campaign goal.
const (
	MinDurationDays = 3
	MaxDurationDays = 30
)

// CampaignGoal is the goal block inside onboarding_data.
type CampaignGoal struct {
	GoalAim      string                 `json:"goal_aim"`
	GoalType     string                 `json:"goal_type"`
	Platforms    []string               `json:"platforms"`
	DurationDays int                    `json:"duration_days"`
	Intensity    string                 `json:"intensity"`
	Metrics      map[string]interface{} `json:"metrics,omitempty"`
}

// AgentToggles controls which optional stages and enrichers run.
// Strategy, Planner and Content are required stages; their toggles are
// accepted on the wire but always treated as on.
type AgentToggles struct {
	RunForensics bool `json:"run_forensics"`
	RunStrategy  bool `json:"run_strategy"`
	RunPlanner   bool `json:"run_planner"`
	RunContent   bool `json:"run_content"`
}

// OnboardingData is the full onboarding payload merged onto a campaign.
type OnboardingData struct {
	Goal                   *CampaignGoal       `json:"goal,omitempty"`
	Competitors            map[string][]string `json:"competitors,omitempty"`
	AgentToggles           *AgentToggles       `json:"agent_toggles,omitempty"`
	ImageGenerationEnabled bool                `json:"image_generation_enabled"`
	SEOOptimizationEnabled bool                `json:"seo_optimization_enabled"`
}

// DayPlan is the per-day platform-scoped action produced by the Planner.
type DayPlan struct {
	YouTube string `json:"youtube,omitempty"`
	Twitter string `json:"twitter,omitempty"`
}

// CampaignPlan is the campaign_plan JSONB shape.
// extra_days is keyed by integer day number (4..30), serialized as strings.
type CampaignPlan struct {
	Day1          DayPlan         `json:"day_1"`
	Day2          DayPlan         `json:"day_2"`
	Day3          DayPlan         `json:"day_3"`
	ExtraDays     map[int]DayPlan `json:"extra_days"`
	Hypothesis    string          `json:"hypothesis,omitempty"`
	PlatformFocus []string        `json:"platform_focus,omitempty"`
	Error         string          `json:"error,omitempty"`
}

// DayN returns the plan for a 1-based day number.
func (p *CampaignPlan) DayN(day int) DayPlan {
	switch day {
	case 1:
		return p.Day1
	case 2:
		return p.Day2
	case 3:
		return p.Day3
	default:
		return p.ExtraDays[day]
	}
}

// SetDayN stores the plan for a 1-based day number.
func (p *CampaignPlan) SetDayN(day int, plan DayPlan) {
	switch day {
	case 1:
		p.Day1 = plan
	case 2:
		p.Day2 = plan
	case 3:
		p.Day3 = plan
	default:
		if p.ExtraDays == nil {
			p.ExtraDays = map[int]DayPlan{}
		}
		p.ExtraDays[day] = plan
	}
}

// StrategyOutput is the strategy_output JSONB shape.
type StrategyOutput struct {
	Hypothesis      string   `json:"hypothesis"`
	PlatformFocus   []string `json:"platform_focus"`
	ExperimentFocus []string `json:"experiment_focus"`
	RealityCheck    string   `json:"reality_check,omitempty"`
	Error           string   `json:"error,omitempty"`
}

// PlatformForensics is one platform's entry in forensics_output.
type PlatformForensics struct {
	Platform           string   `json:"platform"`
	PatternsThatWorked []string `json:"patterns_that_worked"`
	PatternsThatFailed []string `json:"patterns_that_failed"`
	TransferableRules  []string `json:"transferable_rules"`
}

// OutcomeReport is the outcome_report JSONB shape.
type OutcomeReport struct {
	GoalVsResult            map[string]interface{} `json:"goal_vs_result"`
	WhatWorked              []string               `json:"what_worked"`
	WhatFailed              []string               `json:"what_failed"`
	NextCampaignSuggestions []string               `json:"next_campaign_suggestions"`
	ActualMetrics           map[string]interface{} `json:"actual_metrics"`
}

// LearningRecord is a retrieved learning memory passed into the Strategy
// and Planner stages.
type LearningRecord struct {
	MemoryID               string   `json:"memory_id"`
	GoalType               string   `json:"goal_type"`
	Platform               string   `json:"platform"`
	Niche                  string   `json:"niche"`
	CampaignDurationDays   int      `json:"campaign_duration_days"`
	PostingFrequency       string   `json:"posting_frequency,omitempty"`
	WhatWorked             []string `json:"what_worked"`
	WhatFailed             []string `json:"what_failed"`
	Recommendations        []string `json:"recommendations"`
	GoalAchievementSummary string   `json:"goal_achievement_summary,omitempty"`
}
