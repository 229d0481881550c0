package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/geniesugar/geniesugar/internal/apperrors"
	"github.com/geniesugar/geniesugar/internal/database"
	"github.com/geniesugar/geniesugar/internal/logger"
	"github.com/geniesugar/geniesugar/internal/utils"
	"gorm.io/gorm"
)

// AppointmentMailer is the delivery contract for appointment email.
type AppointmentMailer interface {
	SendAppointmentBooked(to, patientName, physicianName string, date time.Time, duration int, notes, requirements string) error
	SendAppointmentReminder(to, patientName, physicianName string, date time.Time, daysUntil int, requirements string) error
}

type AppointmentService struct {
	db     *gorm.DB
	mailer AppointmentMailer
}

func NewAppointmentService(db *gorm.DB, mailer AppointmentMailer) *AppointmentService {
	return &AppointmentService{db: db, mailer: mailer}
}

// AppointmentInput is the payload for booking an appointment.
type AppointmentInput struct {
	PatientID       string
	AppointmentDate time.Time
	Duration        int
	Notes           string
	Requirements    string
	ReminderDays    *int
}

// Create books an appointment for a patient in the physician's care team and
// mails the patient a confirmation without blocking the caller.
func (s *AppointmentService) Create(ctx context.Context, physician *database.User, in AppointmentInput) (*database.Appointment, error) {
	if in.AppointmentDate.IsZero() {
		return nil, apperrors.NewValidationError("Appointment date is required")
	}
	if in.Duration == 0 {
		in.Duration = 30
	}
	if in.Duration < 15 || in.Duration > 180 {
		return nil, apperrors.NewValidationError("Duration must be between 15 and 180 minutes")
	}
	reminderDays := 2
	if in.ReminderDays != nil {
		reminderDays = *in.ReminderDays
	}
	if reminderDays < 0 || reminderDays > 14 {
		return nil, apperrors.NewValidationError("Reminder days must be between 0 and 14")
	}

	var count int64
	if err := s.db.WithContext(ctx).
		Model(&database.CareTeamRelation{}).
		Where("patient_id = ? AND provider_id = ? AND status = ?", in.PatientID, physician.ID, database.CareTeamApproved).
		Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check care team: %w", err)
	}
	if count == 0 {
		return nil, apperrors.NewPermissionError("Patient is not in your care team")
	}

	appointment := &database.Appointment{
		PhysicianID:     physician.ID,
		PatientID:       in.PatientID,
		AppointmentDate: in.AppointmentDate,
		Duration:        in.Duration,
		Status:          database.AppointmentPending,
		Notes:           in.Notes,
		Requirements:    in.Requirements,
		ReminderDays:    reminderDays,
	}
	if err := s.db.WithContext(ctx).Create(appointment).Error; err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}

	var patient database.User
	if err := s.db.WithContext(ctx).First(&patient, "id = ?", in.PatientID).Error; err == nil {
		go func() {
			if err := s.mailer.SendAppointmentBooked(patient.Email, patient.FullName, physician.FullName,
				appointment.AppointmentDate, appointment.Duration, appointment.Notes, appointment.Requirements); err != nil {
				logger.Error("Failed to send appointment email", "appointment_id", appointment.ID, "error", err)
			}
		}()
	}

	return appointment, nil
}

func (s *AppointmentService) ListByPhysician(ctx context.Context, physicianID string) ([]database.Appointment, error) {
	var appointments []database.Appointment
	if err := s.db.WithContext(ctx).
		Preload("Patient").
		Where("physician_id = ?", physicianID).
		Order("appointment_date ASC").
		Find(&appointments).Error; err != nil {
		return nil, fmt.Errorf("failed to get physician appointments: %w", err)
	}
	return appointments, nil
}

func (s *AppointmentService) ListByPatient(ctx context.Context, patientID string) ([]database.Appointment, error) {
	var appointments []database.Appointment
	if err := s.db.WithContext(ctx).
		Preload("Physician").
		Where("patient_id = ?", patientID).
		Order("appointment_date ASC").
		Find(&appointments).Error; err != nil {
		return nil, fmt.Errorf("failed to get patient appointments: %w", err)
	}
	return appointments, nil
}

var validAppointmentStatuses = map[string]bool{
	database.AppointmentPending:   true,
	database.AppointmentConfirmed: true,
	database.AppointmentCompleted: true,
	database.AppointmentCancelled: true,
}

// AppointmentUpdate carries a partial update; nil fields are unchanged.
type AppointmentUpdate struct {
	Status       *string
	Notes        *string
	Requirements *string
}

// Update modifies an appointment. Only the physician who created it or the
// patient it belongs to may update.
func (s *AppointmentService) Update(ctx context.Context, id, userID string, upd AppointmentUpdate) (*database.Appointment, error) {
	var appointment database.Appointment
	err := s.db.WithContext(ctx).First(&appointment, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewNotFoundError("Appointment not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	if appointment.PhysicianID != userID && appointment.PatientID != userID {
		return nil, apperrors.NewPermissionError("Not authorized")
	}

	fields := make(map[string]interface{})
	if upd.Status != nil {
		if !validAppointmentStatuses[*upd.Status] {
			return nil, apperrors.NewValidationError("Invalid appointment status")
		}
		fields["status"] = *upd.Status
	}
	if upd.Notes != nil {
		fields["notes"] = *upd.Notes
	}
	if upd.Requirements != nil {
		fields["requirements"] = *upd.Requirements
	}
	if len(fields) == 0 {
		return &appointment, nil
	}

	if err := s.db.WithContext(ctx).Model(&appointment).Updates(fields).Error; err != nil {
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}
	return &appointment, nil
}

// UnseenCount counts appointments the patient has not acknowledged yet.
func (s *AppointmentService) UnseenCount(ctx context.Context, patientID string) (int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).
		Model(&database.Appointment{}).
		Where("patient_id = ? AND patient_seen = ?", patientID, false).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count unseen appointments: %w", err)
	}
	return count, nil
}

func (s *AppointmentService) MarkSeen(ctx context.Context, id, patientID string) error {
	result := s.db.WithContext(ctx).
		Model(&database.Appointment{}).
		Where("id = ? AND patient_id = ?", id, patientID).
		Update("patient_seen", true)
	if result.Error != nil {
		return fmt.Errorf("failed to mark appointment seen: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("Appointment not found")
	}
	return nil
}

// SendDueReminders mails a reminder for every future appointment that entered
// its reminder window and has not been reminded yet. Returns how many
// reminders went out.
func (s *AppointmentService) SendDueReminders(ctx context.Context) (int, error) {
	var appointments []database.Appointment
	if err := s.db.WithContext(ctx).
		Preload("Patient").
		Preload("Physician").
		Where("reminder_sent = ? AND appointment_date > ? AND status NOT IN ?",
			false, time.Now(), []string{database.AppointmentCancelled, database.AppointmentCompleted}).
		Find(&appointments).Error; err != nil {
		return 0, fmt.Errorf("failed to get appointments needing reminders: %w", err)
	}

	sent := 0
	for _, apt := range appointments {
		daysUntil := utils.DaysUntil(apt.AppointmentDate)
		if daysUntil > apt.ReminderDays {
			continue
		}
		if err := s.mailer.SendAppointmentReminder(apt.Patient.Email, apt.Patient.FullName,
			apt.Physician.FullName, apt.AppointmentDate, daysUntil, apt.Requirements); err != nil {
			logger.Error("Failed to send appointment reminder", "appointment_id", apt.ID, "error", err)
			continue
		}
		if err := s.db.WithContext(ctx).
			Model(&database.Appointment{}).
			Where("id = ?", apt.ID).
			Update("reminder_sent", true).Error; err != nil {
			return sent, fmt.Errorf("failed to mark reminder sent: %w", err)
		}
		sent++
	}
	return sent, nil
}
