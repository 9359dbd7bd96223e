package orchestrator

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creatorloop/looper/ent"
	"github.com/creatorloop/looper/ent/campaign"
	"github.com/creatorloop/looper/ent/dailycontent"
	"github.com/creatorloop/looper/ent/learningmemory"
	"github.com/creatorloop/looper/ent/task"
	"github.com/creatorloop/looper/pkg/config"
	"github.com/creatorloop/looper/pkg/enrich"
	"github.com/creatorloop/looper/pkg/models"
	"github.com/creatorloop/looper/pkg/queue"
	"github.com/creatorloop/looper/pkg/reasoning"
	"github.com/creatorloop/looper/pkg/services"
	testdb "github.com/creatorloop/looper/test/database"
)

func newTestExecutor(client *ent.Client, stub reasoning.Service) *Executor {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return &Executor{
		client:    client,
		campaigns: services.NewCampaignService(client),
		profiles:  services.NewProfileService(client),
		content:   services.NewContentService(client),
		learnings: services.NewLearningService(client, logger),
		reasoner:  stub,
		logger:    logger,
	}
}

func seedUser(t *testing.T, client *ent.Client) *ent.User {
	t.Helper()
	u, err := client.User.Create().
		SetID(uuid.New().String()).
		SetEmail(uuid.New().String() + "@example.com").
		Save(context.Background())
	require.NoError(t, err)

	_, err = client.CreatorProfile.Create().
		SetID(uuid.New().String()).
		SetUserID(u.ID).
		SetName("Test Creator").
		SetCreatorType("educator").
		SetNiche("golang").
		SetTargetAudienceNiche("backend developers").
		Save(context.Background())
	require.NoError(t, err)
	return u
}

type campaignOpts struct {
	status       campaign.Status
	durationDays int
	platforms    []string
	runForensics bool
	competitors  map[string][]string
	imageGen     bool
	seo          bool
}

func seedCampaign(t *testing.T, client *ent.Client, userID string, opts campaignOpts) *ent.Campaign {
	t.Helper()
	if opts.durationDays == 0 {
		opts.durationDays = 7
	}
	if opts.platforms == nil {
		opts.platforms = []string{models.PlatformYouTube, models.PlatformTwitter}
	}
	onboarding := map[string]interface{}{
		"goal": map[string]interface{}{
			"goal_aim":      "grow subscribers",
			"goal_type":     "growth",
			"platforms":     opts.platforms,
			"duration_days": float64(opts.durationDays),
			"intensity":     "moderate",
		},
		"agent_toggles": map[string]interface{}{
			"run_forensics": opts.runForensics,
		},
		"image_generation_enabled": opts.imageGen,
		"seo_optimization_enabled": opts.seo,
	}
	if opts.competitors != nil {
		onboarding["competitors"] = opts.competitors
	}

	c, err := client.Campaign.Create().
		SetID(uuid.New().String()).
		SetUserID(userID).
		SetStatus(opts.status).
		SetOnboardingData(onboarding).
		SetProfileSnapshot(map[string]interface{}{"niche": "golang"}).
		Save(context.Background())
	require.NoError(t, err)
	return c
}

func bindTask(t *testing.T, client *ent.Client, c *ent.Campaign, kind task.Kind, args map[string]interface{}) *ent.Task {
	t.Helper()
	ctx := context.Background()
	if args == nil {
		args = map[string]interface{}{}
	}
	tk, err := client.Task.Create().
		SetID(uuid.New().String()).
		SetKind(kind).
		SetCampaignID(c.ID).
		SetUserID(c.UserID).
		SetArgs(args).
		SetStatus(task.StatusStarted).
		SetAttempt(1).
		Save(ctx)
	require.NoError(t, err)
	require.NoError(t, client.Campaign.UpdateOneID(c.ID).SetTaskID(tk.ID).Exec(ctx))
	return tk
}

func TestExecutor_RunWorkflow(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	t.Run("full pipeline success", func(t *testing.T) {
		stub := &reasoning.StubService{}
		executor := newTestExecutor(client.Client, stub)
		u := seedUser(t, client.Client)
		c := seedCampaign(t, client.Client, u.ID, campaignOpts{status: campaign.StatusProcessing, durationDays: 7})
		tk := bindTask(t, client.Client, c, task.KindRunCampaignWorkflow, nil)

		result := executor.Execute(ctx, tk)
		require.NotNil(t, result)
		require.NoError(t, result.Error)
		assert.Equal(t, task.StatusSuccess, result.Status)

		c, err := client.Campaign.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.NotEmpty(t, c.AgentContext)
		assert.NotEmpty(t, c.StrategyOutput["hypothesis"])
		assert.Equal(t, "skipped", c.ForensicsOutput["status"])
		assert.NotEmpty(t, c.CampaignPlan["day_1"])
		assert.Empty(t, c.ContentWarnings)

		// One row per platform per day.
		n, err := client.DailyContent.Query().
			Where(dailycontent.CampaignIDEQ(c.ID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 14, n)

		// Final content checkpoint lands on 100.
		tk, err = client.Task.Get(ctx, tk.ID)
		require.NoError(t, err)
		assert.Equal(t, 100, tk.Progress)

		// Context output mirrored onto the profile.
		p, err := executor.profiles.GetProfile(ctx, u.ID)
		require.NoError(t, err)
		assert.NotEmpty(t, p.AgentContext)
		require.NotNil(t, p.RecommendedFrequency)
		assert.Equal(t, "3x_per_week", *p.RecommendedFrequency)
	})

	t.Run("short campaign gets reality check warning", func(t *testing.T) {
		stub := &reasoning.StubService{}
		executor := newTestExecutor(client.Client, stub)
		u := seedUser(t, client.Client)
		c := seedCampaign(t, client.Client, u.ID, campaignOpts{status: campaign.StatusProcessing, durationDays: 3})
		tk := bindTask(t, client.Client, c, task.KindRunCampaignWorkflow, nil)

		result := executor.Execute(ctx, tk)
		assert.Equal(t, task.StatusSuccess, result.Status)

		c, err := client.Campaign.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Contains(t, c.ContentWarnings, shortCampaignWarning)
		assert.Equal(t, shortCampaignWarning, c.StrategyOutput["reality_check"])
	})

	t.Run("stage failure reports the stage and keeps prior artifacts", func(t *testing.T) {
		stub := &reasoning.StubService{Err: errors.New("sidecar unavailable"), FailOn: "PlanCampaign"}
		executor := newTestExecutor(client.Client, stub)
		u := seedUser(t, client.Client)
		c := seedCampaign(t, client.Client, u.ID, campaignOpts{status: campaign.StatusProcessing, durationDays: 3})
		tk := bindTask(t, client.Client, c, task.KindRunCampaignWorkflow, nil)

		result := executor.Execute(ctx, tk)
		assert.Equal(t, task.StatusFailure, result.Status)
		assert.Equal(t, StagePlanner, result.FailedStage)
		assert.True(t, result.Retryable)

		c, err := client.Campaign.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.NotEmpty(t, c.AgentContext)
		assert.NotEmpty(t, c.StrategyOutput)
		assert.Empty(t, c.CampaignPlan)
	})

	t.Run("retry resumes at first incomplete stage", func(t *testing.T) {
		failing := &reasoning.StubService{Err: errors.New("sidecar unavailable"), FailOn: "PlanCampaign"}
		executor := newTestExecutor(client.Client, failing)
		u := seedUser(t, client.Client)
		c := seedCampaign(t, client.Client, u.ID, campaignOpts{status: campaign.StatusProcessing, durationDays: 3})
		tk := bindTask(t, client.Client, c, task.KindRunCampaignWorkflow, nil)

		result := executor.Execute(ctx, tk)
		require.Equal(t, task.StatusFailure, result.Status)

		healthy := &reasoning.StubService{}
		executor = newTestExecutor(client.Client, healthy)
		result = executor.Execute(ctx, tk)
		assert.Equal(t, task.StatusSuccess, result.Status)

		// Context and strategy artifacts exist, so the second attempt
		// starts at the planner.
		assert.Equal(t, "PlanCampaign", healthy.Calls[0])
		assert.NotContains(t, healthy.Calls, "AnalyzeContext")
		assert.NotContains(t, healthy.Calls, "DevelopStrategy")
	})

	t.Run("completed days are not regenerated", func(t *testing.T) {
		stub := &reasoning.StubService{}
		executor := newTestExecutor(client.Client, stub)
		u := seedUser(t, client.Client)
		c := seedCampaign(t, client.Client, u.ID, campaignOpts{status: campaign.StatusProcessing, durationDays: 3})
		tk := bindTask(t, client.Client, c, task.KindRunCampaignWorkflow, nil)

		for _, p := range []string{models.PlatformYouTube, models.PlatformTwitter} {
			_, err := executor.content.UpsertDailyContent(ctx, c.ID, 1, p, services.DailyContentInput{
				Title: "already generated",
			})
			require.NoError(t, err)
		}

		result := executor.Execute(ctx, tk)
		require.Equal(t, task.StatusSuccess, result.Status)

		generations := 0
		for _, call := range stub.Calls {
			if call == "GenerateDailyContent" {
				generations++
			}
		}
		assert.Equal(t, 2, generations, "days 2 and 3 only")

		dc, err := client.DailyContent.Query().
			Where(
				dailycontent.CampaignIDEQ(c.ID),
				dailycontent.DayNumberEQ(1),
				dailycontent.PlatformEQ(models.PlatformYouTube),
			).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, "already generated", dc.Title)
	})

	t.Run("exits silently when another task owns the campaign", func(t *testing.T) {
		stub := &reasoning.StubService{}
		executor := newTestExecutor(client.Client, stub)
		u := seedUser(t, client.Client)
		c := seedCampaign(t, client.Client, u.ID, campaignOpts{status: campaign.StatusProcessing, durationDays: 3})
		tk := bindTask(t, client.Client, c, task.KindRunCampaignWorkflow, nil)
		require.NoError(t, client.Campaign.UpdateOneID(c.ID).SetTaskID(uuid.New().String()).Exec(ctx))

		result := executor.Execute(ctx, tk)
		assert.Equal(t, task.StatusSuccess, result.Status)
		assert.Equal(t, true, result.Result["skipped"])
		assert.Empty(t, stub.Calls)
	})

	t.Run("enrichers applied when enabled", func(t *testing.T) {
		imageSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]string{"url": "https://cdn.example.com/thumb.png"})
		}))
		defer imageSrv.Close()
		seoSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"title": "Optimized Title",
				"tags":  []string{"seo", "optimized"},
			})
		}))
		defer seoSrv.Close()

		stub := &reasoning.StubService{}
		executor := newTestExecutor(client.Client, stub)
		executor.image = enrich.NewImageClient(&config.EnrichConfig{
			ImageServiceURL: imageSrv.URL,
			ImageTimeout:    5 * time.Second,
		})
		executor.seo = enrich.NewSEOClient(&config.EnrichConfig{
			SEOServiceURL: seoSrv.URL,
			SEOTimeout:    5 * time.Second,
		})

		u := seedUser(t, client.Client)
		c := seedCampaign(t, client.Client, u.ID, campaignOpts{
			status:       campaign.StatusProcessing,
			durationDays: 3,
			platforms:    []string{models.PlatformYouTube},
			imageGen:     true,
			seo:          true,
		})
		tk := bindTask(t, client.Client, c, task.KindRunCampaignWorkflow, nil)

		result := executor.Execute(ctx, tk)
		require.Equal(t, task.StatusSuccess, result.Status)

		dc, err := client.DailyContent.Query().
			Where(
				dailycontent.CampaignIDEQ(c.ID),
				dailycontent.DayNumberEQ(1),
			).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, "Optimized Title", dc.Title)
		assert.Equal(t, []string{"seo", "optimized"}, dc.SeoTags)
		assert.Equal(t, "https://cdn.example.com/thumb.png", dc.ThumbnailUrls["generated"])
	})

	t.Run("enricher failure degrades content, not the workflow", func(t *testing.T) {
		brokenSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer brokenSrv.Close()

		stub := &reasoning.StubService{}
		executor := newTestExecutor(client.Client, stub)
		executor.image = enrich.NewImageClient(&config.EnrichConfig{
			ImageServiceURL: brokenSrv.URL,
			ImageTimeout:    5 * time.Second,
		})

		u := seedUser(t, client.Client)
		c := seedCampaign(t, client.Client, u.ID, campaignOpts{
			status:       campaign.StatusProcessing,
			durationDays: 3,
			platforms:    []string{models.PlatformYouTube},
			imageGen:     true,
		})
		tk := bindTask(t, client.Client, c, task.KindRunCampaignWorkflow, nil)

		result := executor.Execute(ctx, tk)
		assert.Equal(t, task.StatusSuccess, result.Status)

		dc, err := client.DailyContent.Query().
			Where(
				dailycontent.CampaignIDEQ(c.ID),
				dailycontent.DayNumberEQ(1),
			).
			Only(ctx)
		require.NoError(t, err)
		assert.Empty(t, dc.ThumbnailUrls)
	})

	t.Run("forensics fails when every competitor fails", func(t *testing.T) {
		// No platform fetchers configured, so each competitor fetch errors.
		stub := &reasoning.StubService{}
		executor := newTestExecutor(client.Client, stub)
		u := seedUser(t, client.Client)
		c := seedCampaign(t, client.Client, u.ID, campaignOpts{
			status:       campaign.StatusProcessing,
			durationDays: 3,
			platforms:    []string{models.PlatformYouTube},
			runForensics: true,
			competitors:  map[string][]string{models.PlatformYouTube: {"https://youtube.com/@rival"}},
		})
		tk := bindTask(t, client.Client, c, task.KindRunCampaignWorkflow, nil)

		result := executor.Execute(ctx, tk)
		assert.Equal(t, task.StatusFailure, result.Status)
		assert.Equal(t, StageForensics, result.FailedStage)
		assert.True(t, result.Retryable)
	})

	t.Run("forensics completes with no competitors configured", func(t *testing.T) {
		stub := &reasoning.StubService{}
		executor := newTestExecutor(client.Client, stub)
		u := seedUser(t, client.Client)
		c := seedCampaign(t, client.Client, u.ID, campaignOpts{
			status:       campaign.StatusProcessing,
			durationDays: 3,
			runForensics: true,
		})
		tk := bindTask(t, client.Client, c, task.KindRunCampaignWorkflow, nil)

		result := executor.Execute(ctx, tk)
		require.Equal(t, task.StatusSuccess, result.Status)

		c, err := client.Campaign.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "completed", c.ForensicsOutput["status"])
	})
}

func TestExecutor_RunOutcome(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	t.Run("report, learning memory and completion commit together", func(t *testing.T) {
		stub := &reasoning.StubService{}
		executor := newTestExecutor(client.Client, stub)
		u := seedUser(t, client.Client)
		c := seedCampaign(t, client.Client, u.ID, campaignOpts{status: campaign.StatusGeneratingReport, durationDays: 7})
		tk := bindTask(t, client.Client, c, task.KindAnalyzeCampaignOutcome, map[string]interface{}{
			"actual_metrics": map[string]interface{}{"subscribers_gained": float64(120)},
		})

		result := executor.Execute(ctx, tk)
		require.NotNil(t, result)
		require.NoError(t, result.Error)
		assert.Equal(t, task.StatusSuccess, result.Status)

		c, err := client.Campaign.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, campaign.StatusCompleted, c.Status)
		assert.Nil(t, c.TaskID)
		assert.NotNil(t, c.CompletedAt)
		assert.NotEmpty(t, c.OutcomeReport["what_worked"])

		lm, err := client.LearningMemory.Query().
			Where(learningmemory.CampaignIDEQ(c.ID)).
			Only(ctx)
		require.NoError(t, err)
		assert.Equal(t, "growth", lm.GoalType)
		assert.Equal(t, models.PlatformYouTube, lm.Platform)
		assert.Equal(t, "golang", lm.Niche)
		assert.Equal(t, []string{"consistent posting"}, lm.WhatWorked)
	})

	t.Run("reasoning failure leaves campaign in generating_report", func(t *testing.T) {
		stub := &reasoning.StubService{Err: errors.New("sidecar unavailable"), FailOn: "AnalyzeOutcome"}
		executor := newTestExecutor(client.Client, stub)
		u := seedUser(t, client.Client)
		c := seedCampaign(t, client.Client, u.ID, campaignOpts{status: campaign.StatusGeneratingReport, durationDays: 7})
		tk := bindTask(t, client.Client, c, task.KindAnalyzeCampaignOutcome, nil)

		result := executor.Execute(ctx, tk)
		assert.Equal(t, task.StatusFailure, result.Status)
		assert.Equal(t, StageOutcome, result.FailedStage)
		assert.True(t, result.Retryable)

		c, err := client.Campaign.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, campaign.StatusGeneratingReport, c.Status)

		n, err := client.LearningMemory.Query().
			Where(learningmemory.CampaignIDEQ(c.ID)).
			Count(ctx)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("exits silently when campaign already completed", func(t *testing.T) {
		stub := &reasoning.StubService{}
		executor := newTestExecutor(client.Client, stub)
		u := seedUser(t, client.Client)
		c := seedCampaign(t, client.Client, u.ID, campaignOpts{status: campaign.StatusCompleted, durationDays: 7})
		tk := bindTask(t, client.Client, c, task.KindAnalyzeCampaignOutcome, nil)

		result := executor.Execute(ctx, tk)
		assert.Equal(t, task.StatusSuccess, result.Status)
		assert.Equal(t, true, result.Result["skipped"])
		assert.Empty(t, stub.Calls)
	})
}

func TestExecutor_Finalize(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	t.Run("workflow success moves campaign to in_progress", func(t *testing.T) {
		executor := newTestExecutor(client.Client, &reasoning.StubService{})
		u := seedUser(t, client.Client)
		c := seedCampaign(t, client.Client, u.ID, campaignOpts{status: campaign.StatusProcessing})
		tk := bindTask(t, client.Client, c, task.KindRunCampaignWorkflow, nil)

		executor.Finalize(ctx, tk, &queue.ExecutionResult{Status: task.StatusSuccess}, false)

		c, err := client.Campaign.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, campaign.StatusInProgress, c.Status)
		assert.Nil(t, c.TaskID)
	})

	t.Run("workflow failure records the failed stage", func(t *testing.T) {
		executor := newTestExecutor(client.Client, &reasoning.StubService{})
		u := seedUser(t, client.Client)
		c := seedCampaign(t, client.Client, u.ID, campaignOpts{status: campaign.StatusProcessing})
		tk := bindTask(t, client.Client, c, task.KindRunCampaignWorkflow, nil)

		executor.Finalize(ctx, tk, &queue.ExecutionResult{
			Status:      task.StatusFailure,
			FailedStage: StagePlanner,
			Error:       errors.New("planner failed"),
		}, false)

		c, err := client.Campaign.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, campaign.StatusProcessingFailed, c.Status)
		assert.Nil(t, c.TaskID)
		require.NotNil(t, c.FailedStage)
		assert.Equal(t, StagePlanner, *c.FailedStage)
	})

	t.Run("pending retry leaves campaign untouched", func(t *testing.T) {
		executor := newTestExecutor(client.Client, &reasoning.StubService{})
		u := seedUser(t, client.Client)
		c := seedCampaign(t, client.Client, u.ID, campaignOpts{status: campaign.StatusProcessing})
		tk := bindTask(t, client.Client, c, task.KindRunCampaignWorkflow, nil)

		executor.Finalize(ctx, tk, &queue.ExecutionResult{
			Status:    task.StatusFailure,
			Retryable: true,
		}, true)

		c, err := client.Campaign.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, campaign.StatusProcessing, c.Status)
		require.NotNil(t, c.TaskID)
		assert.Equal(t, tk.ID, *c.TaskID)
	})

	t.Run("revocation releases campaign with cancelled marker", func(t *testing.T) {
		executor := newTestExecutor(client.Client, &reasoning.StubService{})
		u := seedUser(t, client.Client)
		c := seedCampaign(t, client.Client, u.ID, campaignOpts{status: campaign.StatusProcessing})
		tk := bindTask(t, client.Client, c, task.KindRunCampaignWorkflow, nil)

		executor.Finalize(ctx, tk, &queue.ExecutionResult{
			Status: task.StatusRevoked,
			Error:  context.Canceled,
		}, false)

		c, err := client.Campaign.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, campaign.StatusProcessingFailed, c.Status)
		assert.Nil(t, c.TaskID)
		assert.Equal(t, "cancelled", c.CampaignPlan["error"])
	})

	t.Run("superseded task does not touch the campaign", func(t *testing.T) {
		executor := newTestExecutor(client.Client, &reasoning.StubService{})
		u := seedUser(t, client.Client)
		c := seedCampaign(t, client.Client, u.ID, campaignOpts{status: campaign.StatusProcessing})
		tk := bindTask(t, client.Client, c, task.KindRunCampaignWorkflow, nil)
		newOwner := uuid.New().String()
		require.NoError(t, client.Campaign.UpdateOneID(c.ID).SetTaskID(newOwner).Exec(ctx))

		executor.Finalize(ctx, tk, &queue.ExecutionResult{Status: task.StatusRevoked}, false)

		c, err := client.Campaign.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, campaign.StatusProcessing, c.Status)
		require.NotNil(t, c.TaskID)
		assert.Equal(t, newOwner, *c.TaskID)
	})
}

func TestExecutor_RunAnalyzePrevious(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	executor := newTestExecutor(client.Client, &reasoning.StubService{})
	u := seedUser(t, client.Client)
	past := seedCampaign(t, client.Client, u.ID, campaignOpts{status: campaign.StatusCompleted})
	current := seedCampaign(t, client.Client, u.ID, campaignOpts{status: campaign.StatusOnboardingIncomplete})

	_, err := client.LearningMemory.Create().
		SetID(uuid.New().String()).
		SetUserID(u.ID).
		SetCampaignID(past.ID).
		SetGoalType("growth").
		SetPlatform(models.PlatformYouTube).
		SetNiche("golang").
		SetCampaignDurationDays(7).
		SetWhatWorked([]string{"shorts", "shorts"}).
		SetWhatFailed([]string{"long intros"}).
		SetRecommendations([]string{"post daily"}).
		Save(ctx)
	require.NoError(t, err)

	tk, err := client.Task.Create().
		SetID(uuid.New().String()).
		SetKind(task.KindAnalyzePreviousCampaigns).
		SetUserID(u.ID).
		SetCampaignID(current.ID).
		SetStatus(task.StatusStarted).
		SetAttempt(1).
		SetMaxAttempts(1).
		Save(ctx)
	require.NoError(t, err)

	result := executor.Execute(ctx, tk)
	require.NotNil(t, result)
	assert.Equal(t, task.StatusSuccess, result.Status)
	assert.Equal(t, 1, result.Result["campaigns_analyzed"])

	current, err = client.Campaign.Get(ctx, current.ID)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"shorts"}, current.LearningInsights["what_worked"])
	assert.Equal(t, []interface{}{"long intros"}, current.LearningInsights["what_failed"])
}

func TestAggregateInsights(t *testing.T) {
	memories := []*ent.LearningMemory{
		{
			WhatWorked:      []string{"a", "b"},
			WhatFailed:      []string{"x"},
			Recommendations: []string{"r1"},
		},
		{
			WhatWorked:      []string{"b", "c"},
			WhatFailed:      []string{},
			Recommendations: []string{"r1", "r2"},
		},
	}

	insights := aggregateInsights(memories)
	assert.Equal(t, 2, insights["campaigns_analyzed"])
	assert.Equal(t, []string{"a", "b", "c"}, insights["what_worked"])
	assert.Equal(t, []string{"x"}, insights["what_failed"])
	assert.Equal(t, []string{"r1", "r2"}, insights["recommendations"])
}
