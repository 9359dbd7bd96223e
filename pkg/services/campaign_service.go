package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/creatorloop/looper/ent"
	"github.com/creatorloop/looper/ent/campaign"
	"github.com/creatorloop/looper/pkg/models"
)

// CampaignService manages campaign lifecycle and guards every status
// change through the transition table.
type CampaignService struct {
	client *ent.Client
}

// NewCampaignService creates a new CampaignService
func NewCampaignService(client *ent.Client) *CampaignService {
	return &CampaignService{client: client}
}

// CreateCampaign creates an empty campaign shell in onboarding_incomplete.
// The owning user must already have a creator profile; its snapshot is
// frozen onto the campaign at this point.
func (s *CampaignService) CreateCampaign(ctx context.Context, userID string) (*ent.Campaign, error) {
	profile, err := NewProfileService(s.client).GetProfile(ctx, userID)
	if err != nil {
		if err == ErrNotFound {
			return nil, ErrProfileRequired
		}
		return nil, err
	}

	snapshot, err := Snapshot(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to snapshot profile: %w", err)
	}

	c, err := s.client.Campaign.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetStatus(campaign.StatusOnboardingIncomplete).
		SetProfileSnapshot(snapshot).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create campaign: %w", err)
	}
	return c, nil
}

// GetCampaign retrieves a campaign and enforces ownership.
func (s *CampaignService) GetCampaign(ctx context.Context, userID, campaignID string) (*ent.Campaign, error) {
	c, err := s.client.Campaign.Get(ctx, campaignID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}
	if c.UserID != userID {
		return nil, ErrForbidden
	}
	return c, nil
}

// ListCampaigns returns the user's campaigns, newest first.
func (s *CampaignService) ListCampaigns(ctx context.Context, userID string) ([]*ent.Campaign, error) {
	cs, err := s.client.Campaign.Query().
		Where(campaign.UserIDEQ(userID)).
		Order(ent.Desc(campaign.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return cs, nil
}

// UpdateOnboarding deep-merges a partial onboarding payload onto the
// campaign. Allowed only while the campaign is editable; merging P1 then
// P2 must equal merging merge(P1, P2).
func (s *CampaignService) UpdateOnboarding(ctx context.Context, userID, campaignID string, patch map[string]interface{}) (*ent.Campaign, error) {
	c, err := s.GetCampaign(ctx, userID, campaignID)
	if err != nil {
		return nil, err
	}
	if !IsEditable(c.Status) {
		return nil, fmt.Errorf("%w: cannot edit onboarding in %s", ErrInvalidStateTransition, c.Status)
	}

	merged := models.MergeMaps(c.OnboardingData, patch)

	// Duration is validated as soon as the goal carries it, not only at
	// completion, so the client gets immediate feedback.
	if goal, err := goalFromOnboarding(merged); err == nil && goal.DurationDays != 0 {
		if goal.DurationDays < models.MinDurationDays || goal.DurationDays > models.MaxDurationDays {
			return nil, NewValidationError("goal.duration_days",
				fmt.Sprintf("must be between %d and %d", models.MinDurationDays, models.MaxDurationDays))
		}
	}

	c, err = c.Update().SetOnboardingData(merged).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update onboarding: %w", err)
	}
	return c, nil
}

// DeleteCampaign removes an editable campaign; cascades take dependents.
func (s *CampaignService) DeleteCampaign(ctx context.Context, userID, campaignID string) error {
	c, err := s.GetCampaign(ctx, userID, campaignID)
	if err != nil {
		return err
	}
	if !IsEditable(c.Status) {
		return fmt.Errorf("%w: cannot delete campaign in %s", ErrInvalidStateTransition, c.Status)
	}
	if err := s.client.Campaign.DeleteOne(c).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete campaign: %w", err)
	}
	return nil
}

// CompleteOnboarding validates the accumulated onboarding payload and
// transitions the campaign to ready_to_start.
func (s *CampaignService) CompleteOnboarding(ctx context.Context, userID, campaignID string) (*ent.Campaign, error) {
	c, err := s.GetCampaign(ctx, userID, campaignID)
	if err != nil {
		return nil, err
	}

	goal, err := goalFromOnboarding(c.OnboardingData)
	if err != nil {
		return nil, err
	}
	if err := validateGoal(goal); err != nil {
		return nil, err
	}

	next, err := NextStatus(c.Status, ActionCompleteOnboarding)
	if err != nil {
		return nil, err
	}

	c, err = c.Update().SetStatus(next).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to complete onboarding: %w", err)
	}
	return c, nil
}

// Goal decodes the goal block from a campaign's onboarding data.
func (s *CampaignService) Goal(c *ent.Campaign) (*models.CampaignGoal, error) {
	return goalFromOnboarding(c.OnboardingData)
}

// BindTask transitions the campaign for a new enqueue and records the
// task binding. The pre-check that the current status allows the action
// and the task_id write happen in one transaction, so concurrent enqueues
// on the same campaign lose deterministically.
func (s *CampaignService) BindTask(ctx context.Context, campaignID, taskID string, action CampaignAction, phase string) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := BindCampaignTask(ctx, tx, campaignID, taskID, action, phase); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit task binding: %w", err)
	}
	return nil
}

// BindCampaignTask performs the guarded transition and task binding inside
// the caller's transaction. The task queue uses it to commit the task row
// and the campaign binding atomically.
func BindCampaignTask(ctx context.Context, tx *ent.Tx, campaignID, taskID string, action CampaignAction, phase string) error {
	c, err := tx.Campaign.Get(ctx, campaignID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get campaign: %w", err)
	}

	next, err := NextStatus(c.Status, action)
	if err != nil {
		return err
	}

	update := tx.Campaign.UpdateOne(c).
		SetStatus(next).
		SetTaskID(taskID).
		SetLastAttemptedPhase(phase)
	if next == campaign.StatusProcessing && c.StartedAt == nil {
		update.SetStartedAt(time.Now())
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to bind task: %w", err)
	}
	return nil
}

// ResolveWorkflowSuccess moves processing -> in_progress and clears the
// task binding.
func (s *CampaignService) ResolveWorkflowSuccess(ctx context.Context, campaignID string) error {
	return s.resolve(ctx, campaignID, ActionWorkflowOK, "")
}

// ResolveWorkflowFailure moves the campaign to processing_failed, clears
// the task binding, and records the failing stage.
func (s *CampaignService) ResolveWorkflowFailure(ctx context.Context, campaignID, failedStage string) error {
	return s.resolve(ctx, campaignID, ActionWorkflowError, failedStage)
}

// ResolveOutcomeFailure moves generating_report to processing_failed.
func (s *CampaignService) ResolveOutcomeFailure(ctx context.Context, campaignID, failedStage string) error {
	return s.resolve(ctx, campaignID, ActionOutcomeError, failedStage)
}

func (s *CampaignService) resolve(ctx context.Context, campaignID string, action CampaignAction, failedStage string) error {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	c, err := tx.Campaign.Get(ctx, campaignID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get campaign: %w", err)
	}

	next, err := NextStatus(c.Status, action)
	if err != nil {
		return err
	}

	update := tx.Campaign.UpdateOne(c).
		SetStatus(next).
		ClearTaskID()
	if failedStage != "" {
		update.SetFailedStage(failedStage)
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to resolve campaign status: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit status resolution: %w", err)
	}
	return nil
}

// CountCompleted returns how many campaigns the user has finished. Used
// to decide whether past-campaign analysis is worth enqueueing.
func (s *CampaignService) CountCompleted(ctx context.Context, userID string) (int, error) {
	n, err := s.client.Campaign.Query().
		Where(
			campaign.UserIDEQ(userID),
			campaign.StatusEQ(campaign.StatusCompleted),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count completed campaigns: %w", err)
	}
	return n, nil
}

// Archive moves a campaign into the named archived status.
func (s *CampaignService) Archive(ctx context.Context, userID, campaignID string, status campaign.Status) (*ent.Campaign, error) {
	c, err := s.GetCampaign(ctx, userID, campaignID)
	if err != nil {
		return nil, err
	}
	if _, err := NextStatus(c.Status, ActionArchive); err != nil {
		return nil, err
	}

	c, err = c.Update().
		SetStatus(status).
		SetArchivedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to archive campaign: %w", err)
	}
	return c, nil
}

func goalFromOnboarding(data map[string]interface{}) (*models.CampaignGoal, error) {
	raw, ok := data["goal"].(map[string]interface{})
	if !ok || len(raw) == 0 {
		return nil, NewValidationError("goal", "required")
	}
	var goal models.CampaignGoal
	if err := models.FromMap(raw, &goal); err != nil {
		return nil, NewValidationError("goal", "malformed")
	}
	return &goal, nil
}

func validateGoal(goal *models.CampaignGoal) error {
	if goal.GoalAim == "" {
		return NewValidationError("goal.goal_aim", "required")
	}
	if goal.GoalType == "" {
		return NewValidationError("goal.goal_type", "required")
	}
	if len(goal.Platforms) == 0 {
		return NewValidationError("goal.platforms", "at least one platform required")
	}
	if goal.DurationDays < models.MinDurationDays || goal.DurationDays > models.MaxDurationDays {
		return NewValidationError("goal.duration_days",
			fmt.Sprintf("must be between %d and %d", models.MinDurationDays, models.MaxDurationDays))
	}
	switch goal.Intensity {
	case models.IntensityLight, models.IntensityModerate, models.IntensityIntense:
	default:
		return NewValidationError("goal.intensity", "must be light, moderate or intense")
	}
	return nil
}
