package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/creatorloop/looper/ent/campaign"
	"github.com/creatorloop/looper/pkg/services"
)

// TaskAcceptedResponse is returned when a handler enqueues background work.
// The client polls /tasks/{task_id}; two seconds is the recommended interval.
type TaskAcceptedResponse struct {
	TaskID     string `json:"task_id"`
	CampaignID string `json:"campaign_id"`
	State      string `json:"state"`
	PollURL    string `json:"poll_url"`
}

// HandleCreateCampaign creates an empty campaign shell with the profile
// snapshot frozen in.
func (s *Server) HandleCreateCampaign(c *gin.Context) {
	created, err := s.campaigns.CreateCampaign(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// HandleListCampaigns returns the user's campaigns, newest first.
func (s *Server) HandleListCampaigns(c *gin.Context) {
	list, err := s.campaigns.ListCampaigns(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"campaigns": list})
}

// HandleGetCampaign returns one campaign, enforcing ownership.
func (s *Server) HandleGetCampaign(c *gin.Context) {
	found, err := s.campaigns.GetCampaign(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, found)
}

// HandleDeleteCampaign deletes an editable campaign.
func (s *Server) HandleDeleteCampaign(c *gin.Context) {
	if err := s.campaigns.DeleteCampaign(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// HandleUpdateOnboarding deep-merges the patch into onboarding_data.
func (s *Server) HandleUpdateOnboarding(c *gin.Context) {
	var patch map[string]interface{}
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
		return
	}

	updated, err := s.campaigns.UpdateOnboarding(c.Request.Context(), currentUserID(c), c.Param("id"), patch)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// HandleCompleteOnboarding validates the accumulated onboarding payload
// and moves the campaign to ready_to_start. Users with completed
// campaigns get a best-effort past-campaign analysis enqueued.
func (s *Server) HandleCompleteOnboarding(c *gin.Context) {
	ctx := c.Request.Context()
	userID := currentUserID(c)

	completed, err := s.campaigns.CompleteOnboarding(ctx, userID, c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	resp := gin.H{"campaign": completed}
	if n, err := s.campaigns.CountCompleted(ctx, userID); err == nil && n > 0 {
		if t, err := s.runtime.EnqueueAnalyzePrevious(ctx, userID, completed.ID); err == nil {
			resp["analysis_task_id"] = t.ID
		} else {
			slog.Warn("Failed to enqueue previous-campaign analysis",
				"campaign_id", completed.ID, "error", err)
		}
	}

	c.JSON(http.StatusOK, resp)
}

// HandleStartCampaign enqueues the workflow task. Also the retry path for
// a campaign that failed during the workflow phase.
func (s *Server) HandleStartCampaign(c *gin.Context) {
	t, err := s.runtime.EnqueueWorkflow(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, TaskAcceptedResponse{
		TaskID:     t.ID,
		CampaignID: c.Param("id"),
		State:      string(t.Status),
		PollURL:    "/tasks/" + t.ID,
	})
}

// completeCampaignRequest carries the user-reported results.
type completeCampaignRequest struct {
	ActualMetrics map[string]interface{} `json:"actual_metrics"`
}

// HandleCompleteCampaign enqueues the outcome-analysis task with the
// reported metrics. Also the retry path for a failed outcome phase.
func (s *Server) HandleCompleteCampaign(c *gin.Context) {
	var req completeCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
		return
	}

	t, err := s.runtime.EnqueueOutcome(c.Request.Context(), currentUserID(c), c.Param("id"), req.ActualMetrics)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, TaskAcceptedResponse{
		TaskID:     t.ID,
		CampaignID: c.Param("id"),
		State:      string(t.Status),
		PollURL:    "/tasks/" + t.ID,
	})
}

// HandleConfirmDay records what the user actually posted for a day.
func (s *Server) HandleConfirmDay(c *gin.Context) {
	ctx := c.Request.Context()

	found, err := s.campaigns.GetCampaign(ctx, currentUserID(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	day, err := strconv.Atoi(c.Param("n"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "day number must be an integer"})
		return
	}

	var in services.ConfirmDayInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
		return
	}

	exec, err := s.content.ConfirmDay(ctx, found.ID, day, in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, exec)
}

// HandleSchedule returns the plan plus per-day content and executions.
func (s *Server) HandleSchedule(c *gin.Context) {
	ctx := c.Request.Context()

	found, err := s.campaigns.GetCampaign(ctx, currentUserID(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	days, err := s.content.Schedule(ctx, found.ID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"campaign_id":   found.ID,
		"status":        found.Status,
		"campaign_plan": found.CampaignPlan,
		"days":          days,
	})
}

// HandleReport returns the outcome report once the campaign completed.
func (s *Server) HandleReport(c *gin.Context) {
	found, err := s.campaigns.GetCampaign(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if found.Status != campaign.StatusCompleted {
		c.JSON(http.StatusBadRequest, gin.H{"error": "report is available after the campaign completes"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"campaign_id":    found.ID,
		"outcome_report": found.OutcomeReport,
	})
}

// HandleLessonsLearned returns the aggregated learning insights.
func (s *Server) HandleLessonsLearned(c *gin.Context) {
	found, err := s.campaigns.GetCampaign(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"campaign_id":       found.ID,
		"learning_insights": found.LearningInsights,
	})
}
