package services

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/creatorloop/looper/ent"
	"github.com/creatorloop/looper/ent/campaign"
)

// testLogger discards output; service logs are noise in tests.
func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// createTestUser inserts a user row and returns it.
func createTestUser(t *testing.T, client *ent.Client) *ent.User {
	t.Helper()
	u, err := client.User.Create().
		SetID(uuid.New().String()).
		SetEmail(uuid.New().String() + "@example.com").
		SetExternalIdentityID("ext_" + uuid.New().String()).
		SetUsage(defaultUsage()).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

// createTestProfile inserts a Phase 1 complete profile for the user.
func createTestProfile(t *testing.T, client *ent.Client, userID string) *ent.CreatorProfile {
	t.Helper()
	p, err := client.CreatorProfile.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetName("Test Creator").
		SetCreatorType("educator").
		SetNiche("golang").
		SetTargetAudienceNiche("backend developers").
		SetExistingPlatforms([]string{"youtube"}).
		SetPlatformUrls(map[string]string{"youtube": "https://youtube.com/@testcreator"}).
		Save(context.Background())
	require.NoError(t, err)
	return p
}

// createTestCampaign inserts a campaign in the given status with a valid goal.
func createTestCampaign(t *testing.T, client *ent.Client, userID string, status campaign.Status) *ent.Campaign {
	t.Helper()
	c, err := client.Campaign.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetStatus(status).
		SetOnboardingData(map[string]interface{}{
			"goal": map[string]interface{}{
				"goal_aim":      "grow subscribers",
				"goal_type":     "subscribers",
				"platforms":     []interface{}{"youtube"},
				"duration_days": float64(7),
				"intensity":     "moderate",
			},
		}).
		SetProfileSnapshot(map[string]interface{}{"niche": "golang"}).
		Save(context.Background())
	require.NoError(t, err)
	return c
}
