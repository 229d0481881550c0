package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/geniesugar/geniesugar/internal/database"
	"github.com/geniesugar/geniesugar/internal/logger"
	"github.com/geniesugar/geniesugar/internal/services"
	"github.com/geniesugar/geniesugar/internal/session"
	"github.com/geniesugar/geniesugar/internal/tokens"
)

// AuthMailer sends the account lifecycle emails.
type AuthMailer interface {
	SendWelcome(to, fullName, role string) error
	SendVerification(to, fullName, token string) error
	SendPasswordReset(to, fullName, token string) error
}

type AuthHandler struct {
	users    *services.UserService
	careTeam *services.CareTeamService
	audit    *services.AuditService
	sessions *session.Store
	tokens   *tokens.Manager
	mailer   AuthMailer
}

func NewAuthHandler(users *services.UserService, careTeam *services.CareTeamService, audit *services.AuditService,
	sessions *session.Store, tokenManager *tokens.Manager, mailer AuthMailer) *AuthHandler {
	return &AuthHandler{
		users:    users,
		careTeam: careTeam,
		audit:    audit,
		sessions: sessions,
		tokens:   tokenManager,
		mailer:   mailer,
	}
}

type registerRequest struct {
	Email          string `json:"email"`
	Password       string `json:"password"`
	FullName       string `json:"fullName"`
	Role           string `json:"role"`
	DiabetesType   string `json:"diabetesType"`
	Phone          string `json:"phone"`
	LicenseNumber  string `json:"licenseNumber"`
	Specialization string `json:"specialization"`
	HospitalClinic string `json:"hospitalClinic"`
	HospitalID     string `json:"hospitalId"`
	DoctorID       string `json:"doctorId"`
}

// Register handles POST /api/register. Patients may select a doctor from the
// directory during signup, which files a pending care team request for that
// physician to accept.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	user, err := h.users.Register(c.Request.Context(), services.RegisterInput{
		Email:          req.Email,
		Password:       req.Password,
		FullName:       req.FullName,
		Role:           req.Role,
		DiabetesType:   req.DiabetesType,
		Phone:          req.Phone,
		LicenseNumber:  req.LicenseNumber,
		Specialization: req.Specialization,
		HospitalClinic: req.HospitalClinic,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	if user.Role == database.RolePatient && req.HospitalID != "" && req.DoctorID != "" {
		if err := h.careTeam.CreatePendingRequest(c.Request.Context(), user.ID, req.HospitalID, req.DoctorID); err != nil {
			logger.Error("Failed to create pending care team request", "user_id", user.ID, "error", err)
		}
	}

	h.audit.Record(c.Request.Context(), user.ID, "register", "Account created with role "+user.Role)

	go func() {
		if err := h.mailer.SendWelcome(user.Email, user.FullName, user.Role); err != nil {
			logger.Error("Failed to send welcome email", "user_id", user.ID, "error", err)
		}
		verifyToken, err := h.tokens.Issue(user.ID, tokens.PurposeEmailVerification, 24*time.Hour)
		if err != nil {
			logger.Error("Failed to issue verification token", "user_id", user.ID, "error", err)
			return
		}
		if err := h.mailer.SendVerification(user.Email, user.FullName, verifyToken); err != nil {
			logger.Error("Failed to send verification email", "user_id", user.ID, "error", err)
		}
	}()

	token, err := h.sessions.Create(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	setSessionCookie(c, token)
	c.JSON(http.StatusCreated, user)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	user, err := h.users.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.sessions.Create(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	h.audit.Record(c.Request.Context(), user.ID, "login", "")

	setSessionCookie(c, token)
	c.JSON(http.StatusOK, user)
}

// Logout handles POST /api/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, err := c.Cookie(SessionCookie); err == nil && token != "" {
		if err := h.sessions.Destroy(c.Request.Context(), token); err != nil {
			logger.Error("Failed to destroy session", "error", err)
		}
	}
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Me handles GET /api/user.
func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, User(c))
}

type forgotPasswordRequest struct {
	Email string `json:"email"`
}

// ForgotPassword handles POST /api/forgot-password. The response is identical
// whether or not the email exists, so the endpoint cannot be used to probe for
// registered accounts.
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	user, err := h.users.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	if user != nil {
		resetToken, err := h.tokens.Issue(user.ID, tokens.PurposePasswordReset, 24*time.Hour)
		if err != nil {
			respondError(c, err)
			return
		}
		go func() {
			if err := h.mailer.SendPasswordReset(user.Email, user.FullName, resetToken); err != nil {
				logger.Error("Failed to send password reset email", "user_id", user.ID, "error", err)
			}
		}()
	}

	c.JSON(http.StatusOK, gin.H{"message": "If that email is registered, a reset link has been sent"})
}

type resetPasswordRequest struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// ResetPassword handles POST /api/reset-password.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	userID, err := h.tokens.Verify(req.Token, tokens.PurposePasswordReset)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or expired reset token"})
		return
	}
	if err := h.users.SetPassword(c.Request.Context(), userID, req.Password); err != nil {
		respondError(c, err)
		return
	}
	h.audit.Record(c.Request.Context(), userID, "password_reset", "")
	c.JSON(http.StatusOK, gin.H{"message": "Password updated"})
}

// VerifyResetToken handles GET /api/verify-reset-token/:token. The reset form
// uses it to fail fast before asking for a new password.
func (h *AuthHandler) VerifyResetToken(c *gin.Context) {
	if _, err := h.tokens.Verify(c.Param("token"), tokens.PurposePasswordReset); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"valid": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true})
}

// VerifyEmail handles GET /api/verify-email/:token.
func (h *AuthHandler) VerifyEmail(c *gin.Context) {
	userID, err := h.tokens.Verify(c.Param("token"), tokens.PurposeEmailVerification)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid or expired verification link"})
		return
	}
	if err := h.users.VerifyEmail(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Email verified"})
}

func setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(SessionCookie, token, int(session.TTL.Seconds()), "/", "", false, true)
}
