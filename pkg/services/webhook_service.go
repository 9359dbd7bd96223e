package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/creatorloop/looper/ent"
	"github.com/creatorloop/looper/ent/user"
	"github.com/creatorloop/looper/ent/webhookevent"
)

// Webhook event types accepted from the identity provider.
const (
	EventUserCreated = "user.created"
	EventUserUpdated = "user.updated"
	EventUserDeleted = "user.deleted"
)

// Webhook processing outcomes returned to the provider.
const (
	WebhookProcessed              = "processed"
	WebhookDuplicateSkipped       = "duplicate_skipped"
	WebhookDuplicateRecentSkipped = "duplicate_recent_skipped"
	WebhookIgnored                = "ignored"
)

// WebhookInput is a verified, decoded identity-provider event.
type WebhookInput struct {
	EventID        string
	EventType      string
	ExternalUserID string
	Email          string
	Payload        map[string]interface{}
}

// WebhookService is the idempotency ledger for identity-provider events.
// The ledger row and the user mutation commit in one transaction, so a
// crash mid-event leaves either both or neither.
type WebhookService struct {
	client          *ent.Client
	duplicateWindow time.Duration
	logger          *slog.Logger
}

// NewWebhookService creates a new WebhookService
func NewWebhookService(client *ent.Client, duplicateWindow time.Duration, logger *slog.Logger) *WebhookService {
	return &WebhookService{
		client:          client,
		duplicateWindow: duplicateWindow,
		logger:          logger.With("component", "webhook_service"),
	}
}

// ProcessEvent applies one event exactly once. Replays of the same
// event_id and near-duplicate (external_user_id, event_type) deliveries
// inside the duplicate window are skipped without touching user state.
func (s *WebhookService) ProcessEvent(ctx context.Context, in WebhookInput) (string, error) {
	if in.EventID == "" {
		return "", NewValidationError("event_id", "required")
	}
	if in.ExternalUserID == "" {
		return "", NewValidationError("external_user_id", "required")
	}
	if in.Payload == nil {
		in.Payload = map[string]interface{}{}
	}

	seen, err := s.client.WebhookEvent.Query().
		Where(webhookevent.IDEQ(in.EventID)).
		Exist(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to check event ledger: %w", err)
	}
	if seen {
		return WebhookDuplicateSkipped, nil
	}

	recent, err := s.client.WebhookEvent.Query().
		Where(
			webhookevent.ExternalUserIDEQ(in.ExternalUserID),
			webhookevent.EventTypeEQ(in.EventType),
			webhookevent.ProcessedAtGT(time.Now().Add(-s.duplicateWindow)),
		).
		Exist(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to check recent events: %w", err)
	}
	if recent {
		return WebhookDuplicateRecentSkipped, nil
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.WebhookEvent.Create().
		SetID(in.EventID).
		SetEventType(in.EventType).
		SetExternalUserID(in.ExternalUserID).
		SetPayload(in.Payload).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Concurrent delivery of the same event won the race.
			return WebhookDuplicateSkipped, nil
		}
		return "", fmt.Errorf("failed to record webhook event: %w", err)
	}

	status := WebhookProcessed
	switch in.EventType {
	case EventUserCreated:
		err = s.applyUserCreated(ctx, tx, in)
	case EventUserUpdated:
		err = s.applyUserUpdated(ctx, tx, in)
	case EventUserDeleted:
		err = s.applyUserDeleted(ctx, tx, in)
	default:
		s.logger.Warn("Ignoring unknown webhook event type",
			"event_id", in.EventID, "event_type", in.EventType)
		status = WebhookIgnored
	}
	if err != nil {
		return "", err
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit webhook event: %w", err)
	}
	return status, nil
}

// applyUserCreated links an existing account to the external identity or
// creates a fresh user with free-tier defaults.
func (s *WebhookService) applyUserCreated(ctx context.Context, tx *ent.Tx, in WebhookInput) error {
	existing, err := tx.User.Query().
		Where(user.ExternalIdentityIDEQ(in.ExternalUserID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to query user by external ID: %w", err)
	}
	if existing != nil {
		return nil
	}

	if in.Email != "" {
		byEmail, err := tx.User.Query().
			Where(user.EmailEQ(in.Email)).
			Only(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return fmt.Errorf("failed to query user by email: %w", err)
		}
		if byEmail != nil {
			if err := byEmail.Update().SetExternalIdentityID(in.ExternalUserID).Exec(ctx); err != nil {
				return fmt.Errorf("failed to link external identity: %w", err)
			}
			return nil
		}
	}

	_, err = tx.User.Create().
		SetID(uuid.New().String()).
		SetEmail(in.Email).
		SetExternalIdentityID(in.ExternalUserID).
		SetPlanTier("free").
		SetUsage(defaultUsage()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (s *WebhookService) applyUserUpdated(ctx context.Context, tx *ent.Tx, in WebhookInput) error {
	u, err := tx.User.Query().
		Where(user.ExternalIdentityIDEQ(in.ExternalUserID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			s.logger.Warn("user.updated for unknown user",
				"event_id", in.EventID, "external_user_id", in.ExternalUserID)
			return nil
		}
		return fmt.Errorf("failed to query user by external ID: %w", err)
	}
	if in.Email != "" && in.Email != u.Email {
		if err := u.Update().SetEmail(in.Email).Exec(ctx); err != nil {
			return fmt.Errorf("failed to update email: %w", err)
		}
	}
	return nil
}

// applyUserDeleted removes the user; FK cascades take profile, campaigns,
// content, executions, and learning memories with it.
func (s *WebhookService) applyUserDeleted(ctx context.Context, tx *ent.Tx, in WebhookInput) error {
	n, err := tx.User.Delete().
		Where(user.ExternalIdentityIDEQ(in.ExternalUserID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if n == 0 {
		s.logger.Warn("user.deleted for unknown user",
			"event_id", in.EventID, "external_user_id", in.ExternalUserID)
	}
	return nil
}
