package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creatorloop/looper/ent/campaign"
	"github.com/creatorloop/looper/ent/dailycontent"
	"github.com/creatorloop/looper/pkg/models"
	testdb "github.com/creatorloop/looper/test/database"
)

func TestContentService_UpsertDailyContent(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewContentService(client.Client)
	ctx := context.Background()

	u := createTestUser(t, client.Client)
	c := createTestCampaign(t, client.Client, u.ID, campaign.StatusProcessing)

	t.Run("creates then replaces on same key", func(t *testing.T) {
		dc, err := service.UpsertDailyContent(ctx, c.ID, 1, models.PlatformYouTube, DailyContentInput{
			Script: "first draft",
			Title:  "Day one",
		})
		require.NoError(t, err)
		assert.Equal(t, "first draft", dc.Script)

		dc2, err := service.UpsertDailyContent(ctx, c.ID, 1, models.PlatformYouTube, DailyContentInput{
			Script:  "second draft",
			Title:   "Day one, revised",
			SEOTags: []string{"go", "testing"},
		})
		require.NoError(t, err)
		assert.Equal(t, dc.ID, dc2.ID, "upsert reuses the row for the key")
		assert.Equal(t, "second draft", dc2.Script)
		assert.Equal(t, []string{"go", "testing"}, dc2.SeoTags)

		count, err := client.DailyContent.Query().
			Where(dailycontent.CampaignIDEQ(c.ID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("same day different platform is a separate row", func(t *testing.T) {
		_, err := service.UpsertDailyContent(ctx, c.ID, 1, models.PlatformTwitter, DailyContentInput{
			Tweet:  "short take",
			Thread: []string{"1/2", "2/2"},
		})
		require.NoError(t, err)

		count, err := client.DailyContent.Query().
			Where(dailycontent.CampaignIDEQ(c.ID), dailycontent.DayNumberEQ(1)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, count)
	})

	t.Run("validates inputs", func(t *testing.T) {
		_, err := service.UpsertDailyContent(ctx, c.ID, 0, models.PlatformYouTube, DailyContentInput{})
		assert.True(t, IsValidationError(err))

		_, err = service.UpsertDailyContent(ctx, c.ID, 31, models.PlatformYouTube, DailyContentInput{})
		assert.True(t, IsValidationError(err))

		_, err = service.UpsertDailyContent(ctx, c.ID, 1, "tiktok", DailyContentInput{})
		assert.True(t, IsValidationError(err))
	})

	t.Run("deleted campaign surfaces the constraint error", func(t *testing.T) {
		gone := createTestCampaign(t, client.Client, u.ID, campaign.StatusProcessing)
		require.NoError(t, client.Campaign.DeleteOneID(gone.ID).Exec(ctx))

		_, err := service.UpsertDailyContent(ctx, gone.ID, 1, models.PlatformYouTube, DailyContentInput{
			Script: "orphaned",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create daily content")

		_, err = service.ConfirmDay(ctx, gone.ID, 1, ConfirmDayInput{
			Platform: models.PlatformYouTube,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create daily execution")
	})
}

func TestContentService_ContentDays(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewContentService(client.Client)
	ctx := context.Background()

	u := createTestUser(t, client.Client)
	c := createTestCampaign(t, client.Client, u.ID, campaign.StatusProcessing)

	for _, day := range []int{1, 2, 4} {
		_, err := service.UpsertDailyContent(ctx, c.ID, day, models.PlatformYouTube, DailyContentInput{Script: "s"})
		require.NoError(t, err)
	}
	_, err := service.UpsertDailyContent(ctx, c.ID, 3, models.PlatformTwitter, DailyContentInput{Tweet: "t"})
	require.NoError(t, err)

	days, err := service.ContentDays(ctx, c.ID, models.PlatformYouTube)
	require.NoError(t, err)
	assert.Equal(t, map[int]bool{1: true, 2: true, 4: true}, days)
}

func TestContentService_ConfirmDay(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewContentService(client.Client)
	ctx := context.Background()

	u := createTestUser(t, client.Client)
	c := createTestCampaign(t, client.Client, u.ID, campaign.StatusInProgress)

	t.Run("records confirmation with metrics", func(t *testing.T) {
		de, err := service.ConfirmDay(ctx, c.ID, 1, ConfirmDayInput{
			Platform:          models.PlatformYouTube,
			PostedToYouTube:   true,
			EngagementMetrics: map[string]interface{}{"views": float64(120)},
		})
		require.NoError(t, err)
		assert.True(t, de.PostedToYoutube)
		assert.False(t, de.PostedToTwitter)
		require.NotNil(t, de.ExecutedAt)
		assert.Equal(t, float64(120), de.EngagementMetrics["views"])
	})

	t.Run("re-confirmation overwrites", func(t *testing.T) {
		de, err := service.ConfirmDay(ctx, c.ID, 1, ConfirmDayInput{
			Platform:          models.PlatformYouTube,
			PostedToYouTube:   true,
			EngagementMetrics: map[string]interface{}{"views": float64(300)},
		})
		require.NoError(t, err)
		assert.Equal(t, float64(300), de.EngagementMetrics["views"])
	})

	t.Run("rejects unknown platform", func(t *testing.T) {
		_, err := service.ConfirmDay(ctx, c.ID, 1, ConfirmDayInput{Platform: "tiktok"})
		assert.True(t, IsValidationError(err))
	})
}

func TestContentService_Schedule(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewContentService(client.Client)
	ctx := context.Background()

	u := createTestUser(t, client.Client)
	c := createTestCampaign(t, client.Client, u.ID, campaign.StatusInProgress)

	for day := 1; day <= 3; day++ {
		_, err := service.UpsertDailyContent(ctx, c.ID, day, models.PlatformYouTube, DailyContentInput{Script: "s"})
		require.NoError(t, err)
	}
	_, err := service.ConfirmDay(ctx, c.ID, 2, ConfirmDayInput{
		Platform:        models.PlatformYouTube,
		PostedToYouTube: true,
	})
	require.NoError(t, err)

	days, err := service.Schedule(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, days, 3)
	assert.Equal(t, 1, days[0].DayNumber)
	assert.Equal(t, 2, days[1].DayNumber)
	assert.Len(t, days[1].Executions, 1)
	assert.Empty(t, days[0].Executions)
}

func TestContentService_ExecutionMetrics(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewContentService(client.Client)
	ctx := context.Background()

	u := createTestUser(t, client.Client)
	c := createTestCampaign(t, client.Client, u.ID, campaign.StatusInProgress)

	for day := 1; day <= 2; day++ {
		_, err := service.ConfirmDay(ctx, c.ID, day, ConfirmDayInput{
			Platform:          models.PlatformYouTube,
			PostedToYouTube:   true,
			EngagementMetrics: map[string]interface{}{"views": float64(100), "likes": float64(10)},
		})
		require.NoError(t, err)
	}

	metrics, err := service.ExecutionMetrics(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, metrics["days_confirmed"])
	assert.Equal(t, float64(200), metrics["views"])
	assert.Equal(t, float64(20), metrics["likes"])
}
