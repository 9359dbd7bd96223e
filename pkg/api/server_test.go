package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creatorloop/looper/ent/campaign"
	"github.com/creatorloop/looper/ent/user"
	"github.com/creatorloop/looper/pkg/database"
	"github.com/creatorloop/looper/pkg/queue"
	"github.com/creatorloop/looper/pkg/services"
	testdb "github.com/creatorloop/looper/test/database"
)

const testWebhookSecret = "test-signing-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

// stubVerifier resolves tokens of the form "tok:<external_id>".
type stubVerifier struct{}

func (stubVerifier) Verify(_ context.Context, token string) (Identity, error) {
	const prefix = "tok:"
	if len(token) <= len(prefix) || token[:len(prefix)] != prefix {
		return Identity{}, errors.New("unknown token")
	}
	externalID := token[len(prefix):]
	return Identity{
		ExternalID: externalID,
		Email:      externalID + "@example.com",
	}, nil
}

type testServer struct {
	router *gin.Engine
	db     *database.Client
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	client := testdb.NewTestClient(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	srv := NewServer(Deps{
		DB:            client,
		Users:         services.NewUserService(client.Client),
		Profiles:      services.NewProfileService(client.Client),
		Campaigns:     services.NewCampaignService(client.Client),
		Content:       services.NewContentService(client.Client),
		Learnings:     services.NewLearningService(client.Client, logger),
		Webhooks:      services.NewWebhookService(client.Client, 5*time.Minute, logger),
		Runtime:       queue.NewRuntime(client.Client, nil),
		Verifier:      stubVerifier{},
		WebhookSecret: testWebhookSecret,
	})

	router := gin.New()
	srv.RegisterRoutes(router)
	return &testServer{router: router, db: client}
}

// do issues a JSON request as the given external user ("" = anonymous).
func (ts *testServer) do(t *testing.T, method, path, externalID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if externalID != "" {
		req.Header.Set("Authorization", "Bearer tok:"+externalID)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func completeProfile(t *testing.T, ts *testServer, externalID string) {
	t.Helper()
	w := ts.do(t, http.MethodPost, "/onboarding", externalID, map[string]interface{}{
		"name":                  "Test Creator",
		"creator_type":          "educator",
		"niche":                 "golang",
		"target_audience_niche": "backend developers",
		"existing_platforms":    []string{"youtube"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
}

func createReadyCampaign(t *testing.T, ts *testServer, externalID string) string {
	t.Helper()
	completeProfile(t, ts, externalID)

	w := ts.do(t, http.MethodPost, "/campaigns", externalID, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	campaignID := decodeJSON(t, w)["id"].(string)

	w = ts.do(t, http.MethodPatch, "/campaigns/"+campaignID+"/onboarding", externalID, map[string]interface{}{
		"goal": map[string]interface{}{
			"goal_aim":      "grow subscribers",
			"goal_type":     "growth",
			"platforms":     []string{"youtube"},
			"duration_days": 7,
			"intensity":     "moderate",
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = ts.do(t, http.MethodPost, "/campaigns/"+campaignID+"/complete-onboarding", externalID, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return campaignID
}

func TestAuth(t *testing.T) {
	ts := newTestServer(t)

	t.Run("missing token rejected", func(t *testing.T) {
		w := ts.do(t, http.MethodGet, "/auth/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("invalid token rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		w := httptest.NewRecorder()
		ts.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("first request creates the user", func(t *testing.T) {
		w := ts.do(t, http.MethodGet, "/auth/me", "ext-auth-1", nil)
		require.Equal(t, http.StatusOK, w.Code)
		body := decodeJSON(t, w)
		assert.Equal(t, "ext-auth-1@example.com", body["email"])

		n, err := ts.db.User.Query().
			Where(user.ExternalIdentityIDEQ("ext-auth-1")).
			Count(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})
}

func TestWebhookEndpoint(t *testing.T) {
	ts := newTestServer(t)

	signedRequest := func(eventID string, body map[string]interface{}) *httptest.ResponseRecorder {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		timestamp := fmt.Sprintf("%d", time.Now().Unix())

		req := httptest.NewRequest(http.MethodPost, "/auth/webhooks", bytes.NewReader(payload))
		req.Header.Set("event_id", eventID)
		req.Header.Set("timestamp", timestamp)
		req.Header.Set("signature", services.ComputeSignature(testWebhookSecret, timestamp, payload))
		w := httptest.NewRecorder()
		ts.router.ServeHTTP(w, req)
		return w
	}

	t.Run("bad signature rejected", func(t *testing.T) {
		payload := []byte(`{"type":"user.created","data":{"id":"ext-1"}}`)
		req := httptest.NewRequest(http.MethodPost, "/auth/webhooks", bytes.NewReader(payload))
		req.Header.Set("event_id", "evt-bad")
		req.Header.Set("timestamp", "1700000000")
		req.Header.Set("signature", "deadbeef")
		w := httptest.NewRecorder()
		ts.router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	userCreated := map[string]interface{}{
		"type": "user.created",
		"data": map[string]interface{}{
			"id": "ext-wh-1",
			"email_addresses": []map[string]interface{}{
				{"email_address": "wh@example.com"},
			},
		},
	}

	t.Run("user.created processed", func(t *testing.T) {
		w := signedRequest("evt-1", userCreated)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		assert.Equal(t, services.WebhookProcessed, decodeJSON(t, w)["status"])

		u, err := ts.db.User.Query().
			Where(user.ExternalIdentityIDEQ("ext-wh-1")).
			Only(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "wh@example.com", u.Email)
	})

	t.Run("replayed event skipped", func(t *testing.T) {
		w := signedRequest("evt-1", userCreated)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, services.WebhookDuplicateSkipped, decodeJSON(t, w)["status"])

		n, err := ts.db.User.Query().
			Where(user.ExternalIdentityIDEQ("ext-wh-1")).
			Count(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})
}

func TestProfileEndpoints(t *testing.T) {
	ts := newTestServer(t)

	t.Run("phase1 validation error names the field", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, "/onboarding", "ext-p1", map[string]interface{}{
			"name": "No Niche",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "creator_type", decodeJSON(t, w)["field"])
	})

	t.Run("phase1 upsert and completion stats", func(t *testing.T) {
		completeProfile(t, ts, "ext-p2")

		w := ts.do(t, http.MethodGet, "/profile/completion", "ext-p2", nil)
		require.Equal(t, http.StatusOK, w.Code)
		body := decodeJSON(t, w)
		assert.Equal(t, true, body["phase1_complete"])
		assert.Equal(t, false, body["phase2_complete"])
	})

	t.Run("profile read requires one to exist", func(t *testing.T) {
		w := ts.do(t, http.MethodGet, "/onboarding", "ext-p3", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestCampaignEndpoints(t *testing.T) {
	ts := newTestServer(t)

	t.Run("create requires a profile", func(t *testing.T) {
		w := ts.do(t, http.MethodPost, "/campaigns", "ext-c0", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("onboarding flow through start", func(t *testing.T) {
		campaignID := createReadyCampaign(t, ts, "ext-c1")

		w := ts.do(t, http.MethodGet, "/campaigns/"+campaignID, "ext-c1", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, string(campaign.StatusReadyToStart), decodeJSON(t, w)["status"])

		w = ts.do(t, http.MethodPost, "/campaigns/"+campaignID+"/start", "ext-c1", nil)
		require.Equal(t, http.StatusAccepted, w.Code, w.Body.String())
		body := decodeJSON(t, w)
		taskID := body["task_id"].(string)
		assert.Equal(t, "pending", body["state"])
		assert.Equal(t, "/tasks/"+taskID, body["poll_url"])

		// A second start loses the state-machine pre-check.
		w = ts.do(t, http.MethodPost, "/campaigns/"+campaignID+"/start", "ext-c1", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		// Task is pollable and cancellable by its owner.
		w = ts.do(t, http.MethodGet, "/tasks/"+taskID, "ext-c1", nil)
		require.Equal(t, http.StatusOK, w.Code)
		status := decodeJSON(t, w)
		assert.Equal(t, "pending", status["state"])
		assert.Equal(t, campaignID, status["campaign_id"])

		w = ts.do(t, http.MethodDelete, "/tasks/"+taskID, "ext-c1", nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = ts.do(t, http.MethodDelete, "/tasks/"+taskID, "ext-c1", nil)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("onboarding patch rejects out-of-range duration", func(t *testing.T) {
		completeProfile(t, ts, "ext-c2")
		w := ts.do(t, http.MethodPost, "/campaigns", "ext-c2", nil)
		require.Equal(t, http.StatusCreated, w.Code)
		campaignID := decodeJSON(t, w)["id"].(string)

		w = ts.do(t, http.MethodPatch, "/campaigns/"+campaignID+"/onboarding", "ext-c2", map[string]interface{}{
			"goal": map[string]interface{}{
				"goal_aim":      "too short",
				"goal_type":     "growth",
				"platforms":     []string{"youtube"},
				"duration_days": 2,
				"intensity":     "moderate",
			},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("ownership is enforced", func(t *testing.T) {
		campaignID := createReadyCampaign(t, ts, "ext-c3")

		w := ts.do(t, http.MethodGet, "/campaigns/"+campaignID, "ext-intruder", nil)
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = ts.do(t, http.MethodDelete, "/campaigns/"+campaignID, "ext-intruder", nil)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("report unavailable before completion", func(t *testing.T) {
		campaignID := createReadyCampaign(t, ts, "ext-c4")
		w := ts.do(t, http.MethodGet, "/campaigns/"+campaignID+"/report", "ext-c4", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("schedule and day confirmation", func(t *testing.T) {
		campaignID := createReadyCampaign(t, ts, "ext-c5")

		w := ts.do(t, http.MethodPatch, "/campaigns/"+campaignID+"/day/2/confirm", "ext-c5", map[string]interface{}{
			"platform":           "youtube",
			"posted_to_youtube":  true,
			"engagement_metrics": map[string]interface{}{"views": 250},
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = ts.do(t, http.MethodGet, "/campaigns/"+campaignID+"/schedule", "ext-c5", nil)
		require.Equal(t, http.StatusOK, w.Code)
		body := decodeJSON(t, w)
		days := body["days"].([]interface{})
		require.Len(t, days, 1)

		w = ts.do(t, http.MethodPatch, "/campaigns/"+campaignID+"/day/abc/confirm", "ext-c5", map[string]interface{}{
			"platform": "youtube",
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("lessons learned empty by default", func(t *testing.T) {
		campaignID := createReadyCampaign(t, ts, "ext-c6")
		w := ts.do(t, http.MethodGet, "/campaigns/"+campaignID+"/lessons-learned", "ext-c6", nil)
		require.Equal(t, http.StatusOK, w.Code)
		body := decodeJSON(t, w)
		assert.Equal(t, campaignID, body["campaign_id"])
	})
}

func TestHealthEndpoint(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeJSON(t, w)
	assert.Equal(t, "healthy", body["status"])
	db := body["database"].(map[string]interface{})
	assert.Equal(t, "healthy", db["status"])
}
