package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creatorloop/looper/ent/user"
	"github.com/creatorloop/looper/ent/webhookevent"
	testdb "github.com/creatorloop/looper/test/database"
)

func TestWebhookService_UserCreated(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewWebhookService(client.Client, 5*time.Minute, testLogger())
	ctx := context.Background()

	t.Run("creates user with free-tier defaults", func(t *testing.T) {
		status, err := service.ProcessEvent(ctx, WebhookInput{
			EventID:        "evt_1",
			EventType:      EventUserCreated,
			ExternalUserID: "ext_new",
			Email:          "new@example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, WebhookProcessed, status)

		u, err := client.User.Query().
			Where(user.ExternalIdentityIDEQ("ext_new")).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, "new@example.com", u.Email)
		assert.Equal(t, "free", u.PlanTier)
		assert.NotEmpty(t, u.Usage)

		// Ledger row committed with the user
		exists, err := client.WebhookEvent.Query().
			Where(webhookevent.IDEQ("evt_1")).
			Exist(ctx)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("links identity to existing email account", func(t *testing.T) {
		existing, err := client.User.Create().
			SetID("pre-existing").
			SetEmail("pre@example.com").
			SetUsage(defaultUsage()).
			Save(ctx)
		require.NoError(t, err)

		status, err := service.ProcessEvent(ctx, WebhookInput{
			EventID:        "evt_2",
			EventType:      EventUserCreated,
			ExternalUserID: "ext_pre",
			Email:          "pre@example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, WebhookProcessed, status)

		u, err := client.User.Get(ctx, existing.ID)
		require.NoError(t, err)
		require.NotNil(t, u.ExternalIdentityID)
		assert.Equal(t, "ext_pre", *u.ExternalIdentityID)
	})
}

func TestWebhookService_Idempotency(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewWebhookService(client.Client, 5*time.Minute, testLogger())
	ctx := context.Background()

	first := WebhookInput{
		EventID:        "evt_dup",
		EventType:      EventUserCreated,
		ExternalUserID: "ext_dup",
		Email:          "dup@example.com",
	}

	status, err := service.ProcessEvent(ctx, first)
	require.NoError(t, err)
	assert.Equal(t, WebhookProcessed, status)

	t.Run("same event_id is skipped", func(t *testing.T) {
		status, err := service.ProcessEvent(ctx, first)
		require.NoError(t, err)
		assert.Equal(t, WebhookDuplicateSkipped, status)

		n, err := client.User.Query().
			Where(user.ExternalIdentityIDEQ("ext_dup")).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("same user and type inside window is skipped", func(t *testing.T) {
		status, err := service.ProcessEvent(ctx, WebhookInput{
			EventID:        "evt_dup_2",
			EventType:      EventUserCreated,
			ExternalUserID: "ext_dup",
			Email:          "dup@example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, WebhookDuplicateRecentSkipped, status)
	})

	t.Run("different type passes the window check", func(t *testing.T) {
		status, err := service.ProcessEvent(ctx, WebhookInput{
			EventID:        "evt_dup_3",
			EventType:      EventUserUpdated,
			ExternalUserID: "ext_dup",
			Email:          "dup-renamed@example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, WebhookProcessed, status)

		u, err := client.User.Query().
			Where(user.ExternalIdentityIDEQ("ext_dup")).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, "dup-renamed@example.com", u.Email)
	})
}

func TestWebhookService_UserDeleted(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewWebhookService(client.Client, 5*time.Minute, testLogger())
	ctx := context.Background()

	u := createTestUser(t, client.Client)
	createTestProfile(t, client.Client, u.ID)

	status, err := service.ProcessEvent(ctx, WebhookInput{
		EventID:        "evt_del",
		EventType:      EventUserDeleted,
		ExternalUserID: *u.ExternalIdentityID,
	})
	require.NoError(t, err)
	assert.Equal(t, WebhookProcessed, status)

	_, err = client.User.Get(ctx, u.ID)
	require.Error(t, err)

	// Cascade took the profile
	n, err := client.CreatorProfile.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestWebhookService_UnknownType(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewWebhookService(client.Client, 5*time.Minute, testLogger())
	ctx := context.Background()

	status, err := service.ProcessEvent(ctx, WebhookInput{
		EventID:        "evt_odd",
		EventType:      "session.created",
		ExternalUserID: "ext_odd",
	})
	require.NoError(t, err)
	assert.Equal(t, WebhookIgnored, status)

	// Ledger still records it so a replay is skipped.
	status, err = service.ProcessEvent(ctx, WebhookInput{
		EventID:        "evt_odd",
		EventType:      "session.created",
		ExternalUserID: "ext_odd",
	})
	require.NoError(t, err)
	assert.Equal(t, WebhookDuplicateSkipped, status)
}
