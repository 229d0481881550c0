package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/geniesugar/geniesugar/internal/database"
	"github.com/geniesugar/geniesugar/internal/handlers"
	"github.com/geniesugar/geniesugar/internal/services"
	"github.com/geniesugar/geniesugar/internal/session"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth         *handlers.AuthHandler
	User         *handlers.UserHandler
	Glucose      *handlers.GlucoseHandler
	Food         *handlers.FoodHandler
	Activity     *handlers.ActivityHandler
	Alerts       *handlers.AlertsHandler
	CareTeam     *handlers.CareTeamHandler
	Provider     *handlers.ProviderHandler
	Admin        *handlers.AdminHandler
	Chat         *handlers.ChatHandler
	Appointments *handlers.AppointmentHandler
	Dexcom       *handlers.DexcomHandler
	Directory    *handlers.DirectoryHandler
}

// NewRouter wires all routes. Authentication is cookie-session based; role
// checks guard the provider and admin surfaces.
func NewRouter(h Handlers, sessions *session.Store, users *services.UserService) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger())
	r.Use(CORS())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	// Public endpoints. The auth endpoints are rate limited to slow down
	// brute force attempts.
	authLimited := api.Group("")
	authLimited.Use(RateLimit(20, time.Minute))
	{
		authLimited.POST("/register", h.Auth.Register)
		authLimited.POST("/login", h.Auth.Login)
		authLimited.POST("/forgot-password", h.Auth.ForgotPassword)
		authLimited.POST("/reset-password", h.Auth.ResetPassword)
	}
	api.GET("/verify-reset-token/:token", h.Auth.VerifyResetToken)
	api.GET("/verify-email/:token", h.Auth.VerifyEmail)
	api.GET("/dexcom/callback", h.Dexcom.Callback)
	api.GET("/hospitals", h.Directory.Hospitals)
	api.GET("/hospitals/:id/doctors", h.Directory.HospitalDoctors)
	api.GET("/food-catalog", h.Food.Catalog)

	// Authenticated endpoints.
	auth := api.Group("")
	auth.Use(RequireAuth(sessions, users))
	{
		auth.POST("/logout", h.Auth.Logout)
		auth.GET("/user", h.Auth.Me)
		auth.PUT("/user/profile", h.User.UpdateProfile)

		auth.GET("/food", h.Food.List)
		auth.POST("/food", h.Food.Create)
		auth.DELETE("/food/:id", h.Food.Delete)

		auth.GET("/activity", h.Activity.List)
		auth.POST("/activity", h.Activity.Create)
		auth.DELETE("/activity/:id", h.Activity.Delete)

		auth.GET("/alert-settings", h.Alerts.GetSettings)
		auth.PUT("/alert-settings", h.Alerts.UpdateSettings)

		auth.GET("/family-contacts", h.Alerts.ListContacts)
		auth.POST("/family-contacts", h.Alerts.AddContact)
		auth.DELETE("/family-contacts/:id", h.Alerts.RemoveContact)

		auth.GET("/care-team", h.CareTeam.List)
		auth.POST("/care-team", h.CareTeam.AddProvider)
		auth.DELETE("/care-team/:id", h.CareTeam.Remove)

		auth.GET("/chat/conversations", h.Chat.Conversations)
		auth.GET("/chat/unread-count", h.Chat.UnreadCount)
		auth.GET("/chat/messages/:partnerId", h.Chat.Messages)
		auth.POST("/chat/messages", h.Chat.Send)

		auth.GET("/appointments", h.Appointments.List)
		auth.GET("/appointments/unseen-count", h.Appointments.UnseenCount)
		auth.PUT("/appointments/:id", h.Appointments.Update)
		auth.POST("/appointments/:id/seen", h.Appointments.MarkSeen)

		auth.GET("/dexcom/auth", h.Dexcom.Auth)
		auth.GET("/dexcom/status", h.Dexcom.Status)
		auth.GET("/dexcom/readings", h.Dexcom.Readings)
		auth.POST("/dexcom/sync", h.Dexcom.Sync)
		auth.DELETE("/dexcom/disconnect", h.Dexcom.Disconnect)
	}

	// Glucose logging is a patient surface; providers read patient glucose
	// through /provider/patients instead.
	patient := auth.Group("")
	patient.Use(RequireRole(database.RolePatient))
	{
		patient.GET("/glucose", h.Glucose.List)
		patient.POST("/glucose", h.Glucose.Create)
		patient.DELETE("/glucose/:id", h.Glucose.Delete)
	}

	// Provider surface: physicians and dietitians.
	provider := auth.Group("/provider")
	provider.Use(RequireRole(database.RolePhysician, database.RoleDietitian))
	{
		provider.GET("/patients", h.Provider.Patients)
		provider.GET("/patients/:id", h.Provider.PatientDetail)
	}

	// Pending care team requests are physician-only because the directory
	// match is keyed to doctor entries.
	physician := auth.Group("")
	physician.Use(RequireRole(database.RolePhysician))
	{
		physician.GET("/provider/pending-requests", h.CareTeam.PendingRequests)
		physician.GET("/provider/pending-requests/count", h.CareTeam.PendingCount)
		physician.POST("/provider/pending-requests/:id/resolve", h.CareTeam.ResolveRequest)
		physician.POST("/appointments", h.Appointments.Create)
	}

	admin := auth.Group("/admin")
	admin.Use(RequireRole(database.RoleAdmin))
	{
		admin.GET("/users", h.Admin.ListUsers)
		admin.POST("/users/:id/lock", h.Admin.SetLock)
		admin.GET("/audit-logs", h.Admin.AuditLogs)
		admin.POST("/send-reminders", h.Appointments.SendReminders)
	}

	return r
}
