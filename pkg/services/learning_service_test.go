package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creatorloop/looper/ent"
	"github.com/creatorloop/looper/ent/campaign"
	"github.com/creatorloop/looper/pkg/models"
	testdb "github.com/creatorloop/looper/test/database"
)

func seedMemory(t *testing.T, client *ent.Client, userID, goalType, platform, niche string, createdAt time.Time) *ent.LearningMemory {
	t.Helper()
	u := createTestUser(t, client)
	c := createTestCampaign(t, client, u.ID, campaign.StatusCompleted)
	lm, err := client.LearningMemory.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetCampaignID(c.ID).
		SetGoalType(goalType).
		SetPlatform(platform).
		SetNiche(niche).
		SetCampaignDurationDays(7).
		SetWhatWorked([]string{"short hooks"}).
		SetWhatFailed([]string{"long intros"}).
		SetRecommendations([]string{"post daily"}).
		SetCreatedAt(createdAt).
		Save(context.Background())
	require.NoError(t, err)
	return lm
}

func TestLearningService_Retrieve(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewLearningService(client.Client, testLogger())
	ctx := context.Background()

	owner := createTestUser(t, client.Client)
	base := time.Now().Add(-time.Hour)
	for i := 0; i < 5; i++ {
		seedMemory(t, client.Client, owner.ID, "subscribers", "youtube", "golang", base.Add(time.Duration(i)*time.Minute))
	}
	seedMemory(t, client.Client, owner.ID, "views", "twitter", "cooking", base.Add(10*time.Minute))

	t.Run("caps at three newest", func(t *testing.T) {
		records := service.Retrieve(ctx, owner.ID, LearningFilter{})
		require.Len(t, records, 3)
		// Newest first: the cross-filter memory leads.
		assert.Equal(t, "views", records[0].GoalType)
	})

	t.Run("filters narrow the match", func(t *testing.T) {
		records := service.Retrieve(ctx, owner.ID, LearningFilter{
			GoalType: "subscribers",
			Platform: "youtube",
			Niche:    "golang",
		})
		require.Len(t, records, 3)
		for _, r := range records {
			assert.Equal(t, "subscribers", r.GoalType)
			assert.Equal(t, "youtube", r.Platform)
		}
	})

	t.Run("no match returns empty", func(t *testing.T) {
		records := service.Retrieve(ctx, owner.ID, LearningFilter{Niche: "chess"})
		assert.Empty(t, records)
	})

	t.Run("other users are invisible", func(t *testing.T) {
		stranger := createTestUser(t, client.Client)
		records := service.Retrieve(ctx, stranger.ID, LearningFilter{})
		assert.Empty(t, records)
	})
}

func TestLearningService_WriteFromOutcome(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewLearningService(client.Client, testLogger())
	ctx := context.Background()

	u := createTestUser(t, client.Client)
	c := createTestCampaign(t, client.Client, u.ID, campaign.StatusGeneratingReport)

	goal := &models.CampaignGoal{
		GoalAim:      "grow subscribers",
		GoalType:     "subscribers",
		Platforms:    []string{"youtube"},
		DurationDays: 7,
		Intensity:    "moderate",
	}
	report := &models.OutcomeReport{
		GoalVsResult:            map[string]interface{}{"summary": "hit 80% of target"},
		WhatWorked:              []string{"tutorial format"},
		WhatFailed:              []string{"late posting"},
		NextCampaignSuggestions: []string{"morning slots"},
	}

	tx, err := client.Tx(ctx)
	require.NoError(t, err)
	lm, err := service.WriteFromOutcome(ctx, tx, c, goal, report)
	require.NoError(t, err)
	require.NoError(t, tx.Commit())

	assert.Equal(t, u.ID, lm.UserID)
	assert.Equal(t, c.ID, lm.CampaignID)
	assert.Equal(t, "subscribers", lm.GoalType)
	assert.Equal(t, "youtube", lm.Platform)
	assert.Equal(t, "golang", lm.Niche)
	assert.Equal(t, 7, lm.CampaignDurationDays)
	assert.Equal(t, []string{"tutorial format"}, lm.WhatWorked)
	assert.Equal(t, "hit 80% of target", lm.GoalAchievementSummary)

	records := service.Retrieve(ctx, u.ID, LearningFilter{})
	require.Len(t, records, 1)
	assert.Equal(t, lm.ID, records[0].MemoryID)
}
