package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/creatorloop/looper/pkg/services"
)

// HandleMe returns the authenticated user.
func (s *Server) HandleMe(c *gin.Context) {
	u, err := s.users.GetUser(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

// HandleUpsertProfile creates or replaces the Phase 1 profile fields.
func (s *Server) HandleUpsertProfile(c *gin.Context) {
	var in services.Phase1Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
		return
	}

	p, err := s.profiles.UpsertPhase1(c.Request.Context(), currentUserID(c), in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// HandleGetProfile returns the creator profile.
func (s *Server) HandleGetProfile(c *gin.Context) {
	p, err := s.profiles.GetProfile(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// HandleUpdatePhase2 merges the optional Phase 2 fields.
func (s *Server) HandleUpdatePhase2(c *gin.Context) {
	var in services.Phase2Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request body"})
		return
	}

	p, err := s.profiles.UpdatePhase2(c.Request.Context(), currentUserID(c), in)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

// HandleProfileCompletion returns profile completion stats.
func (s *Server) HandleProfileCompletion(c *gin.Context) {
	stats, err := s.profiles.Completion(c.Request.Context(), currentUserID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
