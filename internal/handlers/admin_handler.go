package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/geniesugar/geniesugar/internal/services"
)

type AdminHandler struct {
	users *services.UserService
	audit *services.AuditService
}

func NewAdminHandler(users *services.UserService, audit *services.AuditService) *AdminHandler {
	return &AdminHandler{users: users, audit: audit}
}

// ListUsers handles GET /api/admin/users.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	users, err := h.users.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	for i := range users {
		users[i].Password = ""
	}
	c.JSON(http.StatusOK, users)
}

type lockRequest struct {
	Locked bool `json:"locked"`
}

// SetLock handles POST /api/admin/users/:id/lock.
func (h *AdminHandler) SetLock(c *gin.Context) {
	var req lockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	admin := User(c)
	targetID := c.Param("id")
	if targetID == admin.ID {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Cannot lock your own account"})
		return
	}

	user, err := h.users.SetLocked(c.Request.Context(), targetID, req.Locked)
	if err != nil {
		respondError(c, err)
		return
	}

	action := "account_unlock"
	if req.Locked {
		action = "account_lock"
	}
	h.audit.Record(c.Request.Context(), admin.ID, action, "Target user "+targetID)

	user.Password = ""
	c.JSON(http.StatusOK, user)
}

// AuditLogs handles GET /api/admin/audit-logs.
func (h *AdminHandler) AuditLogs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "200"))
	logs, err := h.audit.List(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}
