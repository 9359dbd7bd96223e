package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/creatorloop/looper/test/database"
)

func strPtr(s string) *string { return &s }

func TestProfileService_UpsertPhase1(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewProfileService(client.Client)
	ctx := context.Background()

	u := createTestUser(t, client.Client)

	valid := Phase1Input{
		Name:                "Casey",
		CreatorType:         "educator",
		Niche:               "golang",
		TargetAudienceNiche: "backend developers",
		ExistingPlatforms:   []string{"youtube"},
		PlatformURLs:        map[string]string{"youtube": "https://youtube.com/@casey"},
	}

	t.Run("creates profile", func(t *testing.T) {
		p, err := service.UpsertPhase1(ctx, u.ID, valid)
		require.NoError(t, err)
		assert.Equal(t, "Casey", p.Name)
		assert.False(t, p.Phase2Completed)
	})

	t.Run("second call replaces phase 1 fields", func(t *testing.T) {
		in := valid
		in.Niche = "rust"
		p, err := service.UpsertPhase1(ctx, u.ID, in)
		require.NoError(t, err)
		assert.Equal(t, "rust", p.Niche)

		n, err := client.CreatorProfile.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("validates required fields", func(t *testing.T) {
		tests := []struct {
			name string
			in   Phase1Input
		}{
			{"missing name", Phase1Input{CreatorType: "x", Niche: "y", TargetAudienceNiche: "z", ExistingPlatforms: []string{"youtube"}}},
			{"missing creator_type", Phase1Input{Name: "n", Niche: "y", TargetAudienceNiche: "z", ExistingPlatforms: []string{"youtube"}}},
			{"missing niche", Phase1Input{Name: "n", CreatorType: "x", TargetAudienceNiche: "z", ExistingPlatforms: []string{"youtube"}}},
			{"no platforms", Phase1Input{Name: "n", CreatorType: "x", Niche: "y", TargetAudienceNiche: "z"}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := service.UpsertPhase1(ctx, u.ID, tt.in)
				require.Error(t, err)
				assert.True(t, IsValidationError(err))
			})
		}
	})
}

func TestProfileService_UpdatePhase2(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewProfileService(client.Client)
	ctx := context.Background()

	u := createTestUser(t, client.Client)
	createTestProfile(t, client.Client, u.ID)

	t.Run("partial update leaves other fields alone", func(t *testing.T) {
		p, err := service.UpdatePhase2(ctx, u.ID, Phase2Input{
			UniqueAngle: strPtr("code-along format"),
			Topics:      []string{"testing", "concurrency"},
		})
		require.NoError(t, err)
		require.NotNil(t, p.UniqueAngle)
		assert.Equal(t, "code-along format", *p.UniqueAngle)
		assert.Nil(t, p.Purpose)
		assert.False(t, p.Phase2Completed)
	})

	t.Run("completion stats count set fields", func(t *testing.T) {
		stats, err := service.Completion(ctx, u.ID)
		require.NoError(t, err)
		assert.True(t, stats.Phase1Complete)
		assert.False(t, stats.Phase2Complete)
		assert.Equal(t, 2, stats.Phase2FieldsSet)
		assert.Equal(t, phase2FieldCount, stats.Phase2FieldsTotal)
	})

	t.Run("flag flips when every field is set", func(t *testing.T) {
		p, err := service.UpdatePhase2(ctx, u.ID, Phase2Input{
			Purpose:              strPtr("teach Go well"),
			Strengths:            []string{"clarity"},
			TargetPlatforms:      []string{"youtube", "twitter"},
			AudienceDemographics: map[string]interface{}{"age": "25-34"},
			CompetitorAccounts:   map[string][]string{"youtube": {"https://youtube.com/@other"}},
			ExistingAssets:       []string{"course outline"},
			Motivation:           strPtr("community"),
		})
		require.NoError(t, err)
		assert.True(t, p.Phase2Completed)
	})

	t.Run("missing profile", func(t *testing.T) {
		other := createTestUser(t, client.Client)
		_, err := service.UpdatePhase2(ctx, other.ID, Phase2Input{})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestProfileService_SaveAgentContext(t *testing.T) {
	client := testdb.NewTestClient(t)
	service := NewProfileService(client.Client)
	ctx := context.Background()

	u := createTestUser(t, client.Client)
	createTestProfile(t, client.Client, u.ID)

	err := service.SaveAgentContext(ctx, u.ID, map[string]interface{}{
		"summary": "established channel, low posting cadence",
	}, "3x per week")
	require.NoError(t, err)

	p, err := service.GetProfile(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "established channel, low posting cadence", p.AgentContext["summary"])
	require.NotNil(t, p.RecommendedFrequency)
	assert.Equal(t, "3x per week", *p.RecommendedFrequency)
}

func TestSnapshot(t *testing.T) {
	client := testdb.NewTestClient(t)

	u := createTestUser(t, client.Client)
	p := createTestProfile(t, client.Client, u.ID)

	snap, err := Snapshot(p)
	require.NoError(t, err)
	assert.Equal(t, "Test Creator", snap["name"])
	assert.Equal(t, "golang", snap["niche"])
	// JSON round-trip normalizes slices to []interface{}
	assert.Equal(t, []interface{}{"youtube"}, snap["existing_platforms"])
}
