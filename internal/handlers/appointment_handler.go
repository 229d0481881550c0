package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/geniesugar/geniesugar/internal/database"
	"github.com/geniesugar/geniesugar/internal/services"
)

type AppointmentHandler struct {
	appointments *services.AppointmentService
	audit        *services.AuditService
}

func NewAppointmentHandler(appointments *services.AppointmentService, audit *services.AuditService) *AppointmentHandler {
	return &AppointmentHandler{appointments: appointments, audit: audit}
}

type appointmentCreateRequest struct {
	PatientID       string    `json:"patientId"`
	AppointmentDate time.Time `json:"appointmentDate"`
	Duration        int       `json:"duration"`
	Notes           string    `json:"notes"`
	Requirements    string    `json:"requirements"`
	ReminderDays    *int      `json:"reminderDays"`
}

// Create handles POST /api/appointments. Physician only.
func (h *AppointmentHandler) Create(c *gin.Context) {
	var req appointmentCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	user := User(c)
	appointment, err := h.appointments.Create(c.Request.Context(), user, services.AppointmentInput{
		PatientID:       req.PatientID,
		AppointmentDate: req.AppointmentDate,
		Duration:        req.Duration,
		Notes:           req.Notes,
		Requirements:    req.Requirements,
		ReminderDays:    req.ReminderDays,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	h.audit.Record(c.Request.Context(), user.ID, "appointment_create", "Patient "+req.PatientID)
	c.JSON(http.StatusCreated, appointment)
}

// List handles GET /api/appointments, scoped by the caller's role.
func (h *AppointmentHandler) List(c *gin.Context) {
	user := User(c)

	var (
		appointments []database.Appointment
		err          error
	)
	if user.Role == database.RolePhysician {
		appointments, err = h.appointments.ListByPhysician(c.Request.Context(), user.ID)
	} else {
		appointments, err = h.appointments.ListByPatient(c.Request.Context(), user.ID)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	for i := range appointments {
		appointments[i].Patient.Password = ""
		appointments[i].Physician.Password = ""
	}
	c.JSON(http.StatusOK, appointments)
}

type appointmentUpdateRequest struct {
	Status       *string `json:"status"`
	Notes        *string `json:"notes"`
	Requirements *string `json:"requirements"`
}

// Update handles PUT /api/appointments/:id.
func (h *AppointmentHandler) Update(c *gin.Context) {
	var req appointmentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	user := User(c)
	appointment, err := h.appointments.Update(c.Request.Context(), c.Param("id"), user.ID, services.AppointmentUpdate{
		Status:       req.Status,
		Notes:        req.Notes,
		Requirements: req.Requirements,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	h.audit.Record(c.Request.Context(), user.ID, "appointment_update", "Appointment "+appointment.ID+" now "+appointment.Status)
	c.JSON(http.StatusOK, appointment)
}

// UnseenCount handles GET /api/appointments/unseen-count.
func (h *AppointmentHandler) UnseenCount(c *gin.Context) {
	count, err := h.appointments.UnseenCount(c.Request.Context(), User(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

// MarkSeen handles POST /api/appointments/:id/seen.
func (h *AppointmentHandler) MarkSeen(c *gin.Context) {
	if err := h.appointments.MarkSeen(c.Request.Context(), c.Param("id"), User(c).ID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Appointment acknowledged"})
}

// SendReminders handles POST /api/appointments/send-reminders. Admin only; the
// background sweep uses the same service call.
func (h *AppointmentHandler) SendReminders(c *gin.Context) {
	sent, err := h.appointments.SendDueReminders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sent": sent})
}
