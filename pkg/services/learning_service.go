package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/creatorloop/looper/ent"
	"github.com/creatorloop/looper/ent/learningmemory"
	"github.com/creatorloop/looper/pkg/models"
)

// maxRetrievedLearnings caps how many past-campaign records feed a new
// campaign's strategy.
const maxRetrievedLearnings = 3

// LearningFilter narrows retrieval to comparable past campaigns. Empty
// fields match everything.
type LearningFilter struct {
	GoalType string
	Platform string
	Niche    string
}

// LearningService writes and retrieves cross-campaign learning records.
type LearningService struct {
	client *ent.Client
	logger *slog.Logger
}

// NewLearningService creates a new LearningService
func NewLearningService(client *ent.Client, logger *slog.Logger) *LearningService {
	return &LearningService{
		client: client,
		logger: logger.With("component", "learning_service"),
	}
}

// WriteFromOutcome persists one learning record extracted from a finished
// campaign's outcome report. It runs on the caller's transaction so the
// record lands atomically with the campaign's completion.
func (s *LearningService) WriteFromOutcome(ctx context.Context, tx *ent.Tx, c *ent.Campaign, goal *models.CampaignGoal, report *models.OutcomeReport) (*ent.LearningMemory, error) {
	platform := ""
	if len(goal.Platforms) > 0 {
		platform = goal.Platforms[0]
	}
	niche, _ := c.ProfileSnapshot["niche"].(string)
	summary, _ := report.GoalVsResult["summary"].(string)

	lm, err := tx.LearningMemory.Create().
		SetID(uuid.New().String()).
		SetUserID(c.UserID).
		SetCampaignID(c.ID).
		SetGoalType(goal.GoalType).
		SetPlatform(platform).
		SetNiche(niche).
		SetCampaignDurationDays(goal.DurationDays).
		SetPostingFrequency(goal.Intensity).
		SetWhatWorked(emptyIfNil(report.WhatWorked)).
		SetWhatFailed(emptyIfNil(report.WhatFailed)).
		SetRecommendations(emptyIfNil(report.NextCampaignSuggestions)).
		SetGoalAchievementSummary(summary).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to write learning memory: %w", err)
	}
	return lm, nil
}

// Retrieve returns up to three of the user's most recent learning records
// matching the filter. Retrieval is advisory: query failures degrade to an
// empty result instead of blocking the campaign.
func (s *LearningService) Retrieve(ctx context.Context, userID string, filter LearningFilter) []models.LearningRecord {
	q := s.client.LearningMemory.Query().
		Where(learningmemory.UserIDEQ(userID))
	if filter.GoalType != "" {
		q = q.Where(learningmemory.GoalTypeEQ(filter.GoalType))
	}
	if filter.Platform != "" {
		q = q.Where(learningmemory.PlatformEQ(filter.Platform))
	}
	if filter.Niche != "" {
		q = q.Where(learningmemory.NicheEQ(filter.Niche))
	}

	rows, err := q.
		Order(ent.Desc(learningmemory.FieldCreatedAt)).
		Limit(maxRetrievedLearnings).
		All(ctx)
	if err != nil {
		s.logger.Warn("Learning retrieval failed, proceeding without memory",
			"user_id", userID, "error", err)
		return nil
	}

	records := make([]models.LearningRecord, 0, len(rows))
	for _, lm := range rows {
		records = append(records, models.LearningRecord{
			MemoryID:               lm.ID,
			GoalType:               lm.GoalType,
			Platform:               lm.Platform,
			Niche:                  lm.Niche,
			CampaignDurationDays:   lm.CampaignDurationDays,
			PostingFrequency:       lm.PostingFrequency,
			WhatWorked:             lm.WhatWorked,
			WhatFailed:             lm.WhatFailed,
			Recommendations:        lm.Recommendations,
			GoalAchievementSummary: lm.GoalAchievementSummary,
		})
	}
	return records
}

// ListForUser returns every learning record for a user, newest first.
func (s *LearningService) ListForUser(ctx context.Context, userID string) ([]*ent.LearningMemory, error) {
	rows, err := s.client.LearningMemory.Query().
		Where(learningmemory.UserIDEQ(userID)).
		Order(ent.Desc(learningmemory.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list learning memories: %w", err)
	}
	return rows, nil
}

func emptyIfNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
