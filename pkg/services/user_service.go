package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/creatorloop/looper/ent"
	"github.com/creatorloop/looper/ent/user"
)

// defaultUsage seeds the per-user usage counters created with the account.
func defaultUsage() map[string]interface{} {
	return map[string]interface{}{
		"campaigns_created":   0,
		"campaigns_completed": 0,
	}
}

// UserService manages user records.
type UserService struct {
	client *ent.Client
}

// NewUserService creates a new UserService
func NewUserService(client *ent.Client) *UserService {
	return &UserService{client: client}
}

// GetUser retrieves a user by ID.
func (s *UserService) GetUser(ctx context.Context, userID string) (*ent.User, error) {
	u, err := s.client.User.Get(ctx, userID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// FindByExternalID retrieves a user by the identity provider's ID.
func (s *UserService) FindByExternalID(ctx context.Context, externalID string) (*ent.User, error) {
	u, err := s.client.User.Query().
		Where(user.ExternalIdentityIDEQ(externalID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to query user by external ID: %w", err)
	}
	return u, nil
}

// EnsureUser resolves the local user for a verified token identity,
// creating the record when the user.created webhook has not arrived yet.
// A webhook racing this creation hits the unique constraint; the row it
// inserted is re-read and returned.
func (s *UserService) EnsureUser(ctx context.Context, externalID, email string) (*ent.User, error) {
	if externalID == "" {
		return nil, NewValidationError("external_id", "required")
	}

	if u, err := s.FindByExternalID(ctx, externalID); err == nil {
		return u, nil
	} else if err != ErrNotFound {
		return nil, err
	}

	// Token identities may predate their webhook; match by email before
	// creating a second account.
	if email != "" {
		u, err := s.client.User.Query().Where(user.EmailEQ(email)).Only(ctx)
		if err == nil {
			return u.Update().SetExternalIdentityID(externalID).Save(ctx)
		}
		if !ent.IsNotFound(err) {
			return nil, fmt.Errorf("failed to query user by email: %w", err)
		}
	}

	u, err := s.client.User.Create().
		SetID(uuid.New().String()).
		SetEmail(email).
		SetExternalIdentityID(externalID).
		SetUsage(defaultUsage()).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Concurrent webhook won the race
			return s.FindByExternalID(ctx, externalID)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return u, nil
}
