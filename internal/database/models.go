package database

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User roles
const (
	RolePatient   = "patient"
	RolePhysician = "physician"
	RoleDietitian = "dietitian"
	RoleAdmin     = "admin"
)

// Care team request status
const (
	CareTeamPending  = "pending"
	CareTeamApproved = "approved"
	CareTeamRejected = "rejected"
)

// Appointment status
const (
	AppointmentPending   = "pending"
	AppointmentConfirmed = "confirmed"
	AppointmentCompleted = "completed"
	AppointmentCancelled = "cancelled"
)

// Model is the shared base for all tables: UUID primary key plus creation time,
// matching the varchar(36) keys of the original schema.
type Model struct {
	ID        string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

func (m *Model) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

type User struct {
	Model
	Email          string `gorm:"uniqueIndex;not null" json:"email"`
	Password       string `gorm:"not null" json:"-"`
	FullName       string `gorm:"not null" json:"fullName"`
	Role           string `gorm:"not null;default:patient" json:"role"`
	DiabetesType   string `json:"diabetesType,omitempty"`
	Phone          string `json:"phone,omitempty"`
	ProfileImage   string `gorm:"type:text" json:"profileImage,omitempty"`
	EmailVerified  bool   `json:"emailVerified"`
	LicenseNumber  string `json:"licenseNumber,omitempty"`
	Specialization string `json:"specialization,omitempty"`
	HospitalClinic string `json:"hospitalClinic,omitempty"`
	IsVerified     bool   `json:"isVerified"`
	IsLocked       bool   `json:"isLocked"`
}

type GlucoseReading struct {
	Model
	UserID    string    `gorm:"type:varchar(36);index;not null" json:"userId"`
	Value     int       `gorm:"not null" json:"value"` // mg/dL
	Timestamp time.Time `gorm:"not null" json:"timestamp"`
	Note      string    `json:"note,omitempty"`
}

type FoodLog struct {
	Model
	UserID        string    `gorm:"type:varchar(36);index;not null" json:"userId"`
	MealType      string    `gorm:"not null" json:"mealType"` // breakfast, lunch, dinner, snack
	FoodName      string    `gorm:"not null" json:"foodName"`
	Portion       string    `json:"portion,omitempty"`
	Calories      int       `json:"calories,omitempty"`
	Carbs         int       `json:"carbs,omitempty"`
	Protein       int       `json:"protein,omitempty"`
	Fat           int       `json:"fat,omitempty"`
	Fiber         int       `json:"fiber,omitempty"`
	GlycemicIndex int       `json:"glycemicIndex,omitempty"`
	GlycemicLoad  int       `json:"glycemicLoad,omitempty"`
	IsDangerous   bool      `json:"isDangerous"`
	Notes         string    `json:"notes,omitempty"`
	Timestamp     time.Time `gorm:"not null" json:"timestamp"`
}

type ActivityLog struct {
	Model
	UserID       string    `gorm:"type:varchar(36);index;not null" json:"userId"`
	ActivityType string    `gorm:"not null" json:"activityType"`
	Duration     int       `gorm:"not null" json:"duration"`  // minutes
	Intensity    string    `gorm:"not null" json:"intensity"` // low, moderate, high
	Timestamp    time.Time `gorm:"not null" json:"timestamp"`
	Notes        string    `json:"notes,omitempty"`
}

// AlertSettings holds per-user glucose alert thresholds and channel toggles.
// One row per user, created lazily with defaults on first access.
type AlertSettings struct {
	Model
	UserID        string `gorm:"type:varchar(36);uniqueIndex;not null" json:"userId"`
	HighThreshold int    `gorm:"default:180" json:"highThreshold"` // mg/dL
	LowThreshold  int    `gorm:"default:70" json:"lowThreshold"`   // mg/dL
	EmailAlerts   bool   `gorm:"default:true" json:"emailAlerts"`
	SMSAlerts     bool   `gorm:"default:false" json:"smsAlerts"` // channel not implemented, kept as a toggle
}

// FamilyContact is a third party copied on a patient's glucose alerts.
type FamilyContact struct {
	Model
	UserID       string `gorm:"type:varchar(36);index;not null" json:"userId"`
	Name         string `gorm:"not null" json:"name"`
	Email        string `gorm:"not null" json:"email"`
	Phone        string `json:"phone,omitempty"`
	Relationship string `gorm:"not null" json:"relationship"`
}

type CareTeamRelation struct {
	Model
	PatientID         string `gorm:"type:varchar(36);index;not null" json:"patientId"`
	ProviderID        string `gorm:"type:varchar(36);index" json:"providerId"`
	Permissions       string `gorm:"not null" json:"permissions"` // "glucose" or "all"
	Status            string `gorm:"not null;default:approved" json:"status"`
	HospitalID        string `json:"hospitalId,omitempty"`
	DoctorDirectoryID string `json:"doctorDirectoryId,omitempty"`
	Patient           User   `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Provider          User   `gorm:"foreignKey:ProviderID" json:"provider,omitempty"`
}

type ProviderNote struct {
	Model
	PatientID  string `gorm:"type:varchar(36);index;not null" json:"patientId"`
	ProviderID string `gorm:"type:varchar(36);index;not null" json:"providerId"`
	Content    string `gorm:"type:text;not null" json:"content"`
}

type AuditLog struct {
	Model
	UserID  string `gorm:"type:varchar(36);index;not null" json:"userId"`
	Action  string `gorm:"not null" json:"action"`
	Details string `json:"details,omitempty"`
}

type ChatMessage struct {
	Model
	SenderID   string `gorm:"type:varchar(36);index;not null" json:"senderId"`
	ReceiverID string `gorm:"type:varchar(36);index;not null" json:"receiverId"`
	Content    string `gorm:"type:text;not null" json:"content"`
	IsRead     bool   `json:"isRead"`
}

type Appointment struct {
	Model
	PhysicianID     string    `gorm:"type:varchar(36);index;not null" json:"physicianId"`
	PatientID       string    `gorm:"type:varchar(36);index;not null" json:"patientId"`
	AppointmentDate time.Time `gorm:"not null" json:"appointmentDate"`
	Duration        int       `gorm:"not null;default:30" json:"duration"` // minutes
	Status          string    `gorm:"not null;default:pending" json:"status"`
	Notes           string    `json:"notes,omitempty"`
	Requirements    string    `json:"requirements,omitempty"`
	ReminderDays    int       `gorm:"default:2" json:"reminderDays"`
	ReminderSent    bool      `json:"reminderSent"`
	PatientSeen     bool      `json:"patientSeen"`
	Patient         User      `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Physician       User      `gorm:"foreignKey:PhysicianID" json:"physician,omitempty"`
}

// AllModels lists every table for auto-migration.
func AllModels() []interface{} {
	return []interface{}{
		&User{},
		&GlucoseReading{},
		&FoodLog{},
		&ActivityLog{},
		&AlertSettings{},
		&FamilyContact{},
		&CareTeamRelation{},
		&ProviderNote{},
		&AuditLog{},
		&ChatMessage{},
		&Appointment{},
	}
}
