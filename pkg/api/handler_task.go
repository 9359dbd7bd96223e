package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HandleTaskStatus returns the polling payload for a task.
func (s *Server) HandleTaskStatus(c *gin.Context) {
	status, err := s.runtime.Status(c.Request.Context(), currentUserID(c), c.Param("task_id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// HandleCancelTask revokes a task cooperatively.
func (s *Server) HandleCancelTask(c *gin.Context) {
	taskID := c.Param("task_id")
	if err := s.runtime.Cancel(c.Request.Context(), currentUserID(c), taskID); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"task_id": taskID,
		"message": "cancellation requested",
	})
}
