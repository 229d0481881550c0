package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/geniesugar/geniesugar/internal/database"
	"github.com/geniesugar/geniesugar/internal/services"
)

type CareTeamHandler struct {
	careTeam *services.CareTeamService
	audit    *services.AuditService
}

func NewCareTeamHandler(careTeam *services.CareTeamService, audit *services.AuditService) *CareTeamHandler {
	return &CareTeamHandler{careTeam: careTeam, audit: audit}
}

// List handles GET /api/care-team for patients.
func (h *CareTeamHandler) List(c *gin.Context) {
	relations, err := h.careTeam.ListByPatient(c.Request.Context(), User(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	for i := range relations {
		relations[i].Provider.Password = ""
	}
	c.JSON(http.StatusOK, relations)
}

type addProviderRequest struct {
	Email       string `json:"email"`
	Permissions string `json:"permissions"`
}

// AddProvider handles POST /api/care-team.
func (h *CareTeamHandler) AddProvider(c *gin.Context) {
	var req addProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	user := User(c)
	relation, provider, err := h.careTeam.AddProvider(c.Request.Context(), user.ID, req.Email, req.Permissions)
	if err != nil {
		respondError(c, err)
		return
	}
	h.audit.Record(c.Request.Context(), user.ID, "care_team_add", "Added provider "+provider.Email)

	provider.Password = ""
	relation.Provider = *provider
	c.JSON(http.StatusCreated, relation)
}

// Remove handles DELETE /api/care-team/:id.
func (h *CareTeamHandler) Remove(c *gin.Context) {
	user := User(c)
	if err := h.careTeam.Remove(c.Request.Context(), c.Param("id"), user.ID); err != nil {
		respondError(c, err)
		return
	}
	h.audit.Record(c.Request.Context(), user.ID, "care_team_remove", "Removed relation "+c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"message": "Provider removed from care team"})
}

// PendingRequests handles GET /api/provider/pending-requests for physicians.
func (h *CareTeamHandler) PendingRequests(c *gin.Context) {
	requests, err := h.careTeam.PendingForPhysician(c.Request.Context(), User(c))
	if err != nil {
		respondError(c, err)
		return
	}
	for i := range requests {
		requests[i].Patient.Password = ""
	}
	c.JSON(http.StatusOK, requests)
}

// PendingCount handles GET /api/provider/pending-requests/count.
func (h *CareTeamHandler) PendingCount(c *gin.Context) {
	count, err := h.careTeam.PendingCount(c.Request.Context(), User(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

type resolveRequestBody struct {
	Status string `json:"status"`
}

// ResolveRequest handles POST /api/provider/pending-requests/:id/resolve.
func (h *CareTeamHandler) ResolveRequest(c *gin.Context) {
	var req resolveRequestBody
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	physician := User(c)
	relation, err := h.careTeam.ResolveRequest(c.Request.Context(), physician, c.Param("id"), req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	action := "care_team_reject"
	if relation.Status == database.CareTeamApproved {
		action = "care_team_approve"
	}
	h.audit.Record(c.Request.Context(), physician.ID, action, "Request "+relation.ID)
	c.JSON(http.StatusOK, relation)
}
