package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/geniesugar/geniesugar/internal/services"
)

type UserHandler struct {
	users *services.UserService
	audit *services.AuditService
}

func NewUserHandler(users *services.UserService, audit *services.AuditService) *UserHandler {
	return &UserHandler{users: users, audit: audit}
}

type profileUpdateRequest struct {
	FullName     *string `json:"fullName"`
	DiabetesType *string `json:"diabetesType"`
	ProfileImage *string `json:"profileImage"`
}

// UpdateProfile handles PUT /api/user/profile.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req profileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	user := User(c)
	updated, err := h.users.UpdateProfile(c.Request.Context(), user.ID, services.ProfileUpdate{
		FullName:     req.FullName,
		DiabetesType: req.DiabetesType,
		ProfileImage: req.ProfileImage,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	h.audit.Record(c.Request.Context(), user.ID, "profile_update", "")
	c.JSON(http.StatusOK, updated)
}
