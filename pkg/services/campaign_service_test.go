package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creatorloop/looper/ent/campaign"
	testdb "github.com/creatorloop/looper/test/database"
)

func TestCampaignService_CreateCampaign(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCampaignService(client.Client)
	ctx := context.Background()

	t.Run("requires a creator profile", func(t *testing.T) {
		u := createTestUser(t, client.Client)

		_, err := service.CreateCampaign(ctx, u.ID)
		assert.ErrorIs(t, err, ErrProfileRequired)
	})

	t.Run("creates shell with profile snapshot", func(t *testing.T) {
		u := createTestUser(t, client.Client)
		createTestProfile(t, client.Client, u.ID)

		c, err := service.CreateCampaign(ctx, u.ID)
		require.NoError(t, err)
		assert.Equal(t, campaign.StatusOnboardingIncomplete, c.Status)
		assert.Equal(t, "golang", c.ProfileSnapshot["niche"])
		assert.Equal(t, "Test Creator", c.ProfileSnapshot["name"])
		assert.Empty(t, c.OnboardingData)
		assert.Nil(t, c.TaskID)
	})
}

func TestCampaignService_Ownership(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCampaignService(client.Client)
	ctx := context.Background()

	owner := createTestUser(t, client.Client)
	stranger := createTestUser(t, client.Client)
	c := createTestCampaign(t, client.Client, owner.ID, campaign.StatusReadyToStart)

	_, err := service.GetCampaign(ctx, stranger.ID, c.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = service.GetCampaign(ctx, owner.ID, "missing")
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := service.GetCampaign(ctx, owner.ID, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)
}

func TestCampaignService_UpdateOnboarding(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCampaignService(client.Client)
	ctx := context.Background()

	u := createTestUser(t, client.Client)

	t.Run("deep merges partial payloads", func(t *testing.T) {
		c := createTestCampaign(t, client.Client, u.ID, campaign.StatusOnboardingIncomplete)

		c, err := service.UpdateOnboarding(ctx, u.ID, c.ID, map[string]interface{}{
			"goal": map[string]interface{}{"intensity": "intense"},
		})
		require.NoError(t, err)

		goal := c.OnboardingData["goal"].(map[string]interface{})
		assert.Equal(t, "intense", goal["intensity"])
		assert.Equal(t, "grow subscribers", goal["goal_aim"], "untouched keys survive the merge")
	})

	t.Run("rejects out-of-range duration", func(t *testing.T) {
		c := createTestCampaign(t, client.Client, u.ID, campaign.StatusOnboardingIncomplete)

		_, err := service.UpdateOnboarding(ctx, u.ID, c.ID, map[string]interface{}{
			"goal": map[string]interface{}{"duration_days": float64(45)},
		})
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects edits while processing", func(t *testing.T) {
		c := createTestCampaign(t, client.Client, u.ID, campaign.StatusProcessing)

		_, err := service.UpdateOnboarding(ctx, u.ID, c.ID, map[string]interface{}{"x": "y"})
		assert.ErrorIs(t, err, ErrInvalidStateTransition)
	})
}

func TestCampaignService_CompleteOnboarding(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCampaignService(client.Client)
	ctx := context.Background()

	u := createTestUser(t, client.Client)

	t.Run("moves valid campaign to ready_to_start", func(t *testing.T) {
		c := createTestCampaign(t, client.Client, u.ID, campaign.StatusOnboardingIncomplete)

		c, err := service.CompleteOnboarding(ctx, u.ID, c.ID)
		require.NoError(t, err)
		assert.Equal(t, campaign.StatusReadyToStart, c.Status)
	})

	t.Run("rejects missing goal", func(t *testing.T) {
		c, err := client.Campaign.Create().
			SetID("no-goal").
			SetUserID(u.ID).
			SetStatus(campaign.StatusOnboardingIncomplete).
			Save(ctx)
		require.NoError(t, err)

		_, err = service.CompleteOnboarding(ctx, u.ID, c.ID)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects incomplete goal", func(t *testing.T) {
		c := createTestCampaign(t, client.Client, u.ID, campaign.StatusOnboardingIncomplete)
		_, err := service.UpdateOnboarding(ctx, u.ID, c.ID, map[string]interface{}{
			"goal": map[string]interface{}{"goal_aim": ""},
		})
		require.NoError(t, err)

		// Wipe the aim via direct update so the merge cannot restore it.
		err = c.Update().SetOnboardingData(map[string]interface{}{
			"goal": map[string]interface{}{
				"goal_type":     "subscribers",
				"platforms":     []interface{}{"youtube"},
				"duration_days": float64(7),
				"intensity":     "moderate",
			},
		}).Exec(ctx)
		require.NoError(t, err)

		_, err = service.CompleteOnboarding(ctx, u.ID, c.ID)
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestCampaignService_DeleteCampaign(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCampaignService(client.Client)
	ctx := context.Background()

	u := createTestUser(t, client.Client)

	t.Run("deletes editable campaign", func(t *testing.T) {
		c := createTestCampaign(t, client.Client, u.ID, campaign.StatusReadyToStart)
		require.NoError(t, service.DeleteCampaign(ctx, u.ID, c.ID))

		_, err := service.GetCampaign(ctx, u.ID, c.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("refuses while processing", func(t *testing.T) {
		c := createTestCampaign(t, client.Client, u.ID, campaign.StatusProcessing)
		err := service.DeleteCampaign(ctx, u.ID, c.ID)
		assert.ErrorIs(t, err, ErrInvalidStateTransition)
	})
}

func TestCampaignService_TaskBinding(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewCampaignService(client.Client)
	ctx := context.Background()

	u := createTestUser(t, client.Client)

	t.Run("bind and resolve success", func(t *testing.T) {
		c := createTestCampaign(t, client.Client, u.ID, campaign.StatusReadyToStart)

		err := service.BindTask(ctx, c.ID, "task-1", ActionEnqueueWorkflow, "workflow")
		require.NoError(t, err)

		c, err = client.Campaign.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, campaign.StatusProcessing, c.Status)
		require.NotNil(t, c.TaskID)
		assert.Equal(t, "task-1", *c.TaskID)
		assert.NotNil(t, c.StartedAt)

		require.NoError(t, service.ResolveWorkflowSuccess(ctx, c.ID))

		c, err = client.Campaign.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, campaign.StatusInProgress, c.Status)
		assert.Nil(t, c.TaskID)
	})

	t.Run("bind rejected when already processing", func(t *testing.T) {
		c := createTestCampaign(t, client.Client, u.ID, campaign.StatusProcessing)

		err := service.BindTask(ctx, c.ID, "task-2", ActionEnqueueWorkflow, "workflow")
		assert.ErrorIs(t, err, ErrInvalidStateTransition)
	})

	t.Run("failure records stage and clears binding", func(t *testing.T) {
		c := createTestCampaign(t, client.Client, u.ID, campaign.StatusReadyToStart)
		require.NoError(t, service.BindTask(ctx, c.ID, "task-3", ActionEnqueueWorkflow, "workflow"))

		require.NoError(t, service.ResolveWorkflowFailure(ctx, c.ID, "planner"))

		c, err := client.Campaign.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, campaign.StatusProcessingFailed, c.Status)
		assert.Nil(t, c.TaskID)
		require.NotNil(t, c.FailedStage)
		assert.Equal(t, "planner", *c.FailedStage)
		require.NotNil(t, c.LastAttemptedPhase)
		assert.Equal(t, "workflow", *c.LastAttemptedPhase)
	})
}
