package services

import (
	"fmt"

	"github.com/creatorloop/looper/ent/campaign"
)

// CampaignAction names an action that may move a campaign between states.
type CampaignAction string

// Campaign actions.
const (
	ActionUpdateOnboarding   CampaignAction = "update_onboarding"
	ActionCompleteOnboarding CampaignAction = "complete_onboarding"
	ActionEnqueueWorkflow    CampaignAction = "enqueue_workflow"
	ActionWorkflowOK         CampaignAction = "workflow_ok"
	ActionWorkflowError      CampaignAction = "workflow_error"
	ActionCompleteWithMetric CampaignAction = "complete_with_metrics"
	ActionOutcomeOK          CampaignAction = "outcome_ok"
	ActionOutcomeError       CampaignAction = "outcome_error"
	ActionArchive            CampaignAction = "archive"
)

// transitions is the campaign state machine: (current status, action) -> next
// status. Any pair absent from the table is an invalid transition.
//
// ActionEnqueueWorkflow from processing_failed is the retry path; the
// campaign's last_attempted_phase decides whether the new task re-runs the
// workflow or the outcome analysis.
var transitions = map[campaign.Status]map[CampaignAction]campaign.Status{
	campaign.StatusOnboardingIncomplete: {
		ActionUpdateOnboarding:   campaign.StatusOnboardingIncomplete,
		ActionCompleteOnboarding: campaign.StatusReadyToStart,
	},
	campaign.StatusReadyToStart: {
		ActionUpdateOnboarding: campaign.StatusReadyToStart,
		ActionEnqueueWorkflow:  campaign.StatusProcessing,
		ActionArchive:          campaign.StatusArchivedPlanExpired,
	},
	campaign.StatusProcessing: {
		ActionWorkflowOK:    campaign.StatusInProgress,
		ActionWorkflowError: campaign.StatusProcessingFailed,
	},
	campaign.StatusInProgress: {
		ActionCompleteWithMetric: campaign.StatusGeneratingReport,
	},
	campaign.StatusGeneratingReport: {
		ActionOutcomeOK:    campaign.StatusCompleted,
		ActionOutcomeError: campaign.StatusProcessingFailed,
	},
	campaign.StatusProcessingFailed: {
		ActionEnqueueWorkflow:    campaign.StatusProcessing,
		ActionCompleteWithMetric: campaign.StatusGeneratingReport,
	},
	campaign.StatusCompleted: {
		ActionArchive: campaign.StatusArchivedPlanExpired,
	},
}

// NextStatus resolves the state machine. Returns ErrInvalidStateTransition
// (wrapped with the offending pair) when the action is not allowed.
func NextStatus(current campaign.Status, action CampaignAction) (campaign.Status, error) {
	if next, ok := transitions[current][action]; ok {
		return next, nil
	}
	return "", fmt.Errorf("%w: cannot %s from %s", ErrInvalidStateTransition, action, current)
}

// editableStatuses are the states where onboarding_data may be changed and
// the campaign may be deleted.
var editableStatuses = map[campaign.Status]bool{
	campaign.StatusOnboardingIncomplete: true,
	campaign.StatusReadyToStart:         true,
}

// IsEditable reports whether onboarding edits and deletes are allowed.
func IsEditable(status campaign.Status) bool {
	return editableStatuses[status]
}

// IsTerminal reports whether a campaign will never be processed again
// without an explicit user action.
func IsTerminal(status campaign.Status) bool {
	switch status {
	case campaign.StatusCompleted, campaign.StatusFailed,
		campaign.StatusArchivedPlanExpired, campaign.StatusArchivedUserDeleted:
		return true
	}
	return false
}
