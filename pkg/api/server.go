// Package api is the HTTP surface: profile onboarding, campaign
// lifecycle, task polling, and identity-provider webhooks. Handlers never
// do long work on the request path; anything slow is enqueued and the
// client polls the returned task.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/creatorloop/looper/pkg/database"
	"github.com/creatorloop/looper/pkg/queue"
	"github.com/creatorloop/looper/pkg/services"
	"github.com/creatorloop/looper/pkg/version"
)

// Deps bundles the server's collaborators. Pool may be nil (API-only
// deployment); health then omits worker stats.
type Deps struct {
	DB        *database.Client
	Users     *services.UserService
	Profiles  *services.ProfileService
	Campaigns *services.CampaignService
	Content   *services.ContentService
	Learnings *services.LearningService
	Webhooks  *services.WebhookService
	Runtime   *queue.Runtime
	Pool      *queue.WorkerPool
	Verifier  TokenVerifier

	// WebhookSecret signs identity-provider events.
	WebhookSecret string
}

// Server carries the handler dependencies.
type Server struct {
	db            *database.Client
	users         *services.UserService
	profiles      *services.ProfileService
	campaigns     *services.CampaignService
	content       *services.ContentService
	learnings     *services.LearningService
	webhooks      *services.WebhookService
	runtime       *queue.Runtime
	pool          *queue.WorkerPool
	verifier      TokenVerifier
	webhookSecret string
}

// NewServer creates the API server.
func NewServer(deps Deps) *Server {
	return &Server{
		db:            deps.DB,
		users:         deps.Users,
		profiles:      deps.Profiles,
		campaigns:     deps.Campaigns,
		content:       deps.Content,
		learnings:     deps.Learnings,
		webhooks:      deps.Webhooks,
		runtime:       deps.Runtime,
		pool:          deps.Pool,
		verifier:      deps.Verifier,
		webhookSecret: deps.WebhookSecret,
	}
}

// RegisterRoutes attaches all endpoints to the engine.
func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.Use(securityHeaders(), requestLogger())

	r.GET("/health", s.HandleHealth)
	r.POST("/auth/webhooks", s.HandleWebhook)
	r.POST("/api/webhooks", s.HandleWebhook)

	authed := r.Group("/", s.requireAuth())
	{
		authed.GET("/auth/me", s.HandleMe)

		authed.POST("/onboarding", s.HandleUpsertProfile)
		authed.GET("/onboarding", s.HandleGetProfile)
		authed.PATCH("/profile/phase2", s.HandleUpdatePhase2)
		authed.GET("/profile/completion", s.HandleProfileCompletion)

		authed.POST("/campaigns", s.HandleCreateCampaign)
		authed.GET("/campaigns", s.HandleListCampaigns)
		authed.GET("/campaigns/:id", s.HandleGetCampaign)
		authed.DELETE("/campaigns/:id", s.HandleDeleteCampaign)
		authed.PATCH("/campaigns/:id/onboarding", s.HandleUpdateOnboarding)
		authed.POST("/campaigns/:id/complete-onboarding", s.HandleCompleteOnboarding)
		authed.POST("/campaigns/:id/start", s.HandleStartCampaign)
		authed.POST("/campaigns/:id/complete", s.HandleCompleteCampaign)
		authed.PATCH("/campaigns/:id/day/:n/confirm", s.HandleConfirmDay)
		authed.GET("/campaigns/:id/schedule", s.HandleSchedule)
		authed.GET("/campaigns/:id/report", s.HandleReport)
		authed.GET("/campaigns/:id/lessons-learned", s.HandleLessonsLearned)

		authed.GET("/tasks/:task_id", s.HandleTaskStatus)
		authed.DELETE("/tasks/:task_id", s.HandleCancelTask)
	}
}

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status     string                 `json:"status"`
	Version    string                 `json:"version"`
	Database   *database.HealthStatus `json:"database"`
	WorkerPool *queue.PoolHealth      `json:"worker_pool,omitempty"`
}

// HandleHealth reports database connectivity and worker pool health.
func (s *Server) HandleHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	resp := HealthResponse{
		Status:  "healthy",
		Version: version.Full(),
	}
	if s.pool != nil {
		resp.WorkerPool = s.pool.Health()
		if !resp.WorkerPool.IsHealthy {
			resp.Status = "unhealthy"
		}
	}

	dbHealth, err := database.Health(ctx, s.db.DB())
	resp.Database = dbHealth
	if err != nil {
		resp.Status = "unhealthy"
		c.JSON(http.StatusServiceUnavailable, resp)
		return
	}

	c.JSON(http.StatusOK, resp)
}
