package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/geniesugar/geniesugar/internal/services"
)

type ActivityHandler struct {
	activity *services.ActivityService
}

func NewActivityHandler(activity *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{activity: activity}
}

// List handles GET /api/activity.
func (h *ActivityHandler) List(c *gin.Context) {
	logs, err := h.activity.List(c.Request.Context(), User(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

type activityLogRequest struct {
	ActivityType string    `json:"activityType"`
	Duration     int       `json:"duration"`
	Intensity    string    `json:"intensity"`
	Timestamp    time.Time `json:"timestamp"`
	Notes        string    `json:"notes"`
}

// Create handles POST /api/activity.
func (h *ActivityHandler) Create(c *gin.Context) {
	var req activityLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	log, err := h.activity.Create(c.Request.Context(), User(c).ID, services.ActivityLogInput{
		ActivityType: req.ActivityType,
		Duration:     req.Duration,
		Intensity:    req.Intensity,
		Timestamp:    req.Timestamp,
		Notes:        req.Notes,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, log)
}

// Delete handles DELETE /api/activity/:id.
func (h *ActivityHandler) Delete(c *gin.Context) {
	if err := h.activity.Delete(c.Request.Context(), c.Param("id"), User(c).ID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Activity log deleted"})
}
