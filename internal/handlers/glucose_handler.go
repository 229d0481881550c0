package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/geniesugar/geniesugar/internal/alerts"
	"github.com/geniesugar/geniesugar/internal/logger"
	"github.com/geniesugar/geniesugar/internal/services"
)

type GlucoseHandler struct {
	glucose  *services.GlucoseService
	notifier *alerts.Notifier
	audit    *services.AuditService
}

func NewGlucoseHandler(glucose *services.GlucoseService, notifier *alerts.Notifier, audit *services.AuditService) *GlucoseHandler {
	return &GlucoseHandler{glucose: glucose, notifier: notifier, audit: audit}
}

// List handles GET /api/glucose.
func (h *GlucoseHandler) List(c *gin.Context) {
	readings, err := h.glucose.List(c.Request.Context(), User(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, readings)
}

type glucoseCreateRequest struct {
	Value     int       `json:"value"`
	Timestamp time.Time `json:"timestamp"`
	Note      string    `json:"note"`
}

// Create handles POST /api/glucose. The response does not wait for alert
// evaluation: the notifier runs in the background and its failures never
// affect the stored reading.
func (h *GlucoseHandler) Create(c *gin.Context) {
	var req glucoseCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	user := User(c)
	reading, err := h.glucose.Create(c.Request.Context(), user.ID, req.Value, req.Timestamp, req.Note)
	if err != nil {
		respondError(c, err)
		return
	}
	h.audit.Record(c.Request.Context(), user.ID, "glucose_create", fmt.Sprintf("Value %d mg/dL", reading.Value))

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := h.notifier.CheckAndNotify(ctx, user, reading.Value, reading.Timestamp); err != nil {
			logger.Error("Glucose alert dispatch failed", "user_id", user.ID, "error", err)
		}
	}()

	c.JSON(http.StatusCreated, reading)
}

// Delete handles DELETE /api/glucose/:id.
func (h *GlucoseHandler) Delete(c *gin.Context) {
	user := User(c)
	if err := h.glucose.Delete(c.Request.Context(), c.Param("id"), user.ID); err != nil {
		respondError(c, err)
		return
	}
	h.audit.Record(c.Request.Context(), user.ID, "glucose_delete", "Reading "+c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "Reading deleted"})
}
