package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creatorloop/looper/ent/campaign"
)

func TestNextStatus_AllowedTransitions(t *testing.T) {
	tests := []struct {
		from   campaign.Status
		action CampaignAction
		to     campaign.Status
	}{
		{campaign.StatusOnboardingIncomplete, ActionUpdateOnboarding, campaign.StatusOnboardingIncomplete},
		{campaign.StatusOnboardingIncomplete, ActionCompleteOnboarding, campaign.StatusReadyToStart},
		{campaign.StatusReadyToStart, ActionUpdateOnboarding, campaign.StatusReadyToStart},
		{campaign.StatusReadyToStart, ActionEnqueueWorkflow, campaign.StatusProcessing},
		{campaign.StatusReadyToStart, ActionArchive, campaign.StatusArchivedPlanExpired},
		{campaign.StatusProcessing, ActionWorkflowOK, campaign.StatusInProgress},
		{campaign.StatusProcessing, ActionWorkflowError, campaign.StatusProcessingFailed},
		{campaign.StatusInProgress, ActionCompleteWithMetric, campaign.StatusGeneratingReport},
		{campaign.StatusGeneratingReport, ActionOutcomeOK, campaign.StatusCompleted},
		{campaign.StatusGeneratingReport, ActionOutcomeError, campaign.StatusProcessingFailed},
		{campaign.StatusProcessingFailed, ActionEnqueueWorkflow, campaign.StatusProcessing},
		{campaign.StatusProcessingFailed, ActionCompleteWithMetric, campaign.StatusGeneratingReport},
		{campaign.StatusCompleted, ActionArchive, campaign.StatusArchivedPlanExpired},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"/"+string(tt.action), func(t *testing.T) {
			next, err := NextStatus(tt.from, tt.action)
			require.NoError(t, err)
			assert.Equal(t, tt.to, next)
		})
	}
}

func TestNextStatus_RejectedTransitions(t *testing.T) {
	tests := []struct {
		from   campaign.Status
		action CampaignAction
	}{
		{campaign.StatusOnboardingIncomplete, ActionEnqueueWorkflow},
		{campaign.StatusProcessing, ActionEnqueueWorkflow},
		{campaign.StatusProcessing, ActionUpdateOnboarding},
		{campaign.StatusInProgress, ActionEnqueueWorkflow},
		{campaign.StatusInProgress, ActionCompleteOnboarding},
		{campaign.StatusCompleted, ActionEnqueueWorkflow},
		{campaign.StatusCompleted, ActionCompleteWithMetric},
		{campaign.StatusArchivedPlanExpired, ActionUpdateOnboarding},
		{campaign.StatusArchivedUserDeleted, ActionEnqueueWorkflow},
		{campaign.StatusFailed, ActionEnqueueWorkflow},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"/"+string(tt.action), func(t *testing.T) {
			_, err := NextStatus(tt.from, tt.action)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidStateTransition)
		})
	}
}

func TestIsEditable(t *testing.T) {
	assert.True(t, IsEditable(campaign.StatusOnboardingIncomplete))
	assert.True(t, IsEditable(campaign.StatusReadyToStart))
	assert.False(t, IsEditable(campaign.StatusProcessing))
	assert.False(t, IsEditable(campaign.StatusInProgress))
	assert.False(t, IsEditable(campaign.StatusCompleted))
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(campaign.StatusCompleted))
	assert.True(t, IsTerminal(campaign.StatusFailed))
	assert.True(t, IsTerminal(campaign.StatusArchivedPlanExpired))
	assert.True(t, IsTerminal(campaign.StatusArchivedUserDeleted))
	assert.False(t, IsTerminal(campaign.StatusProcessing))
	assert.False(t, IsTerminal(campaign.StatusProcessingFailed))
}
