package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/geniesugar/geniesugar/internal/services"
)

// AlertsHandler serves alert settings and family contacts, the two pieces of
// per-user alerting configuration.
type AlertsHandler struct {
	settings *services.AlertSettingsService
	contacts *services.ContactService
	audit    *services.AuditService
}

func NewAlertsHandler(settings *services.AlertSettingsService, contacts *services.ContactService, audit *services.AuditService) *AlertsHandler {
	return &AlertsHandler{settings: settings, contacts: contacts, audit: audit}
}

// GetSettings handles GET /api/alert-settings, creating defaults on first
// access.
func (h *AlertsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settings.GetOrCreate(c.Request.Context(), User(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, settings)
}

type alertSettingsRequest struct {
	HighThreshold *int  `json:"highThreshold"`
	LowThreshold  *int  `json:"lowThreshold"`
	EmailAlerts   *bool `json:"emailAlerts"`
	SMSAlerts     *bool `json:"smsAlerts"`
}

// UpdateSettings handles PUT /api/alert-settings.
func (h *AlertsHandler) UpdateSettings(c *gin.Context) {
	var req alertSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	user := User(c)
	settings, err := h.settings.Update(c.Request.Context(), user.ID, services.AlertSettingsUpdate{
		HighThreshold: req.HighThreshold,
		LowThreshold:  req.LowThreshold,
		EmailAlerts:   req.EmailAlerts,
		SMSAlerts:     req.SMSAlerts,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	h.audit.Record(c.Request.Context(), user.ID, "alert_settings_update",
		fmt.Sprintf("High %d, low %d", settings.HighThreshold, settings.LowThreshold))
	c.JSON(http.StatusOK, settings)
}

// ListContacts handles GET /api/family-contacts.
func (h *AlertsHandler) ListContacts(c *gin.Context) {
	contacts, err := h.contacts.ListContacts(c.Request.Context(), User(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contacts)
}

type contactRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

// AddContact handles POST /api/family-contacts.
func (h *AlertsHandler) AddContact(c *gin.Context) {
	var req contactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	user := User(c)
	contact, err := h.contacts.Add(c.Request.Context(), user.ID, services.ContactInput{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Relationship: req.Relationship,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	h.audit.Record(c.Request.Context(), user.ID, "family_contact_add", "Contact "+contact.Name)
	c.JSON(http.StatusCreated, contact)
}

// RemoveContact handles DELETE /api/family-contacts/:id.
func (h *AlertsHandler) RemoveContact(c *gin.Context) {
	user := User(c)
	if err := h.contacts.Remove(c.Request.Context(), c.Param("id"), user.ID); err != nil {
		respondError(c, err)
		return
	}
	h.audit.Record(c.Request.Context(), user.ID, "family_contact_remove", "Contact "+c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "Contact removed"})
}
