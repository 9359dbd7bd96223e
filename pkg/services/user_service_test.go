package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/creatorloop/looper/test/database"
)

func TestUserService_EnsureUser(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewUserService(client.Client)
	ctx := context.Background()

	t.Run("returns existing user by external ID", func(t *testing.T) {
		u := createTestUser(t, client.Client)

		got, err := service.EnsureUser(ctx, *u.ExternalIdentityID, u.Email)
		require.NoError(t, err)
		assert.Equal(t, u.ID, got.ID)
	})

	t.Run("links external identity to existing email", func(t *testing.T) {
		u, err := client.User.Create().
			SetID("user-email-only").
			SetEmail("email-only@example.com").
			SetUsage(defaultUsage()).
			Save(ctx)
		require.NoError(t, err)

		got, err := service.EnsureUser(ctx, "ext_linked", u.Email)
		require.NoError(t, err)
		assert.Equal(t, u.ID, got.ID)
		require.NotNil(t, got.ExternalIdentityID)
		assert.Equal(t, "ext_linked", *got.ExternalIdentityID)
	})

	t.Run("creates user when nothing matches", func(t *testing.T) {
		got, err := service.EnsureUser(ctx, "ext_fresh", "fresh@example.com")
		require.NoError(t, err)
		assert.Equal(t, "fresh@example.com", got.Email)
		require.NotNil(t, got.ExternalIdentityID)
		assert.Equal(t, "ext_fresh", *got.ExternalIdentityID)
		assert.NotEmpty(t, got.Usage)
	})

	t.Run("rejects empty external ID", func(t *testing.T) {
		_, err := service.EnsureUser(ctx, "", "x@example.com")
		require.Error(t, err)
		assert.True(t, IsValidationError(err))
	})
}

func TestUserService_GetUser(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewUserService(client.Client)
	ctx := context.Background()

	u := createTestUser(t, client.Client)

	got, err := service.GetUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Email, got.Email)

	_, err = service.GetUser(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
