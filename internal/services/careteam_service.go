package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/geniesugar/geniesugar/internal/apperrors"
	"github.com/geniesugar/geniesugar/internal/database"
	"github.com/geniesugar/geniesugar/internal/directory"
	"gorm.io/gorm"
)

var validPermissions = map[string]bool{
	"glucose": true,
	"all":     true,
}

type CareTeamService struct {
	db *gorm.DB
}

func NewCareTeamService(db *gorm.DB) *CareTeamService {
	return &CareTeamService{db: db}
}

// ListByPatient returns the patient's approved care team with providers loaded.
func (s *CareTeamService) ListByPatient(ctx context.Context, patientID string) ([]database.CareTeamRelation, error) {
	var relations []database.CareTeamRelation
	if err := s.db.WithContext(ctx).
		Preload("Provider").
		Where("patient_id = ? AND status = ?", patientID, database.CareTeamApproved).
		Find(&relations).Error; err != nil {
		return nil, fmt.Errorf("failed to get care team: %w", err)
	}
	return relations, nil
}

// ListByProvider returns the provider's approved patients with patient records
// loaded.
func (s *CareTeamService) ListByProvider(ctx context.Context, providerID string) ([]database.CareTeamRelation, error) {
	var relations []database.CareTeamRelation
	if err := s.db.WithContext(ctx).
		Preload("Patient").
		Where("provider_id = ? AND status = ?", providerID, database.CareTeamApproved).
		Find(&relations).Error; err != nil {
		return nil, fmt.Errorf("failed to get provider relations: %w", err)
	}
	return relations, nil
}

// Relation returns the approved relation between a patient and a provider, or
// (nil, nil) when none exists.
func (s *CareTeamService) Relation(ctx context.Context, patientID, providerID string) (*database.CareTeamRelation, error) {
	var relation database.CareTeamRelation
	err := s.db.WithContext(ctx).
		Where("patient_id = ? AND provider_id = ? AND status = ?", patientID, providerID, database.CareTeamApproved).
		First(&relation).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get care team relation: %w", err)
	}
	return &relation, nil
}

// AddProvider links a healthcare provider (looked up by email) to a patient's
// care team.
func (s *CareTeamService) AddProvider(ctx context.Context, patientID, providerEmail, permissions string) (*database.CareTeamRelation, *database.User, error) {
	if !validPermissions[permissions] {
		return nil, nil, apperrors.NewValidationError("Permissions must be glucose or all")
	}

	var provider database.User
	err := s.db.WithContext(ctx).Where("email = ?", providerEmail).First(&provider).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, apperrors.NewNotFoundError("Provider not found with that email")
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to look up provider: %w", err)
	}
	if provider.Role != database.RolePhysician && provider.Role != database.RoleDietitian {
		return nil, nil, apperrors.NewValidationError("User is not a healthcare provider")
	}

	var count int64
	if err := s.db.WithContext(ctx).
		Model(&database.CareTeamRelation{}).
		Where("patient_id = ? AND provider_id = ?", patientID, provider.ID).
		Count(&count).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to check existing relation: %w", err)
	}
	if count > 0 {
		return nil, nil, apperrors.NewConflictError("Provider already in care team")
	}

	relation := &database.CareTeamRelation{
		PatientID:   patientID,
		ProviderID:  provider.ID,
		Permissions: permissions,
		Status:      database.CareTeamApproved,
	}
	if err := s.db.WithContext(ctx).Create(relation).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to add care team member: %w", err)
	}
	return relation, &provider, nil
}

// Remove detaches a provider from the patient's care team, ownership-checked.
func (s *CareTeamService) Remove(ctx context.Context, relationID, patientID string) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND patient_id = ?", relationID, patientID).
		Delete(&database.CareTeamRelation{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove care team member: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("Care team member not found")
	}
	return nil
}

// CreatePendingRequest records a patient's doctor selection from registration
// as a pending care team request, scoped by the doctor directory entry.
func (s *CareTeamService) CreatePendingRequest(ctx context.Context, patientID, hospitalID, doctorDirectoryID string) error {
	relation := &database.CareTeamRelation{
		PatientID:         patientID,
		Permissions:       "glucose",
		Status:            database.CareTeamPending,
		HospitalID:        hospitalID,
		DoctorDirectoryID: doctorDirectoryID,
	}
	if err := s.db.WithContext(ctx).Create(relation).Error; err != nil {
		return fmt.Errorf("failed to create pending care team request: %w", err)
	}
	return nil
}

// PendingRequest decorates a pending relation with directory metadata for the
// physician's inbox.
type PendingRequest struct {
	database.CareTeamRelation
	HospitalName         string `json:"hospitalName"`
	DoctorName           string `json:"doctorName"`
	DoctorSpecialization string `json:"doctorSpecialization"`
}

// PendingForPhysician lists pending requests addressed to directory entries
// matching the physician's name and hospital.
func (s *CareTeamService) PendingForPhysician(ctx context.Context, physician *database.User) ([]PendingRequest, error) {
	doctorIDs := directory.MatchDoctorIDs(physician.FullName, physician.HospitalClinic)
	if len(doctorIDs) == 0 {
		return []PendingRequest{}, nil
	}

	var relations []database.CareTeamRelation
	if err := s.db.WithContext(ctx).
		Preload("Patient").
		Where("status = ? AND doctor_directory_id IN ?", database.CareTeamPending, doctorIDs).
		Find(&relations).Error; err != nil {
		return nil, fmt.Errorf("failed to get pending requests: %w", err)
	}

	requests := make([]PendingRequest, 0, len(relations))
	for _, rel := range relations {
		req := PendingRequest{CareTeamRelation: rel, HospitalName: "Unknown Hospital", DoctorName: "Unknown Doctor"}
		if h, ok := directory.HospitalByID(rel.HospitalID); ok {
			req.HospitalName = h.Name
		}
		if d, ok := directory.DoctorByID(rel.DoctorDirectoryID); ok {
			req.DoctorName = d.Name
			req.DoctorSpecialization = d.Specialization
		}
		requests = append(requests, req)
	}
	return requests, nil
}

// PendingCount counts pending requests addressed to the physician.
func (s *CareTeamService) PendingCount(ctx context.Context, physician *database.User) (int64, error) {
	doctorIDs := directory.MatchDoctorIDs(physician.FullName, physician.HospitalClinic)
	if len(doctorIDs) == 0 {
		return 0, nil
	}
	var count int64
	if err := s.db.WithContext(ctx).
		Model(&database.CareTeamRelation{}).
		Where("status = ? AND doctor_directory_id IN ?", database.CareTeamPending, doctorIDs).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count pending requests: %w", err)
	}
	return count, nil
}

// ResolveRequest accepts or rejects a pending request. The physician must
// match the request's directory entry; acceptance attaches the physician as
// the provider.
func (s *CareTeamService) ResolveRequest(ctx context.Context, physician *database.User, requestID, status string) (*database.CareTeamRelation, error) {
	if status != database.CareTeamApproved && status != database.CareTeamRejected {
		return nil, apperrors.NewValidationError("Invalid request status")
	}

	var request database.CareTeamRelation
	err := s.db.WithContext(ctx).First(&request, "id = ?", requestID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.NewNotFoundError("Request not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get request: %w", err)
	}

	doctorIDs := directory.MatchDoctorIDs(physician.FullName, physician.HospitalClinic)
	matched := false
	for _, id := range doctorIDs {
		if id == request.DoctorDirectoryID {
			matched = true
			break
		}
	}
	if !matched {
		return nil, apperrors.NewPermissionError("Not authorized to resolve this request")
	}

	fields := map[string]interface{}{"status": status}
	if status == database.CareTeamApproved {
		fields["provider_id"] = physician.ID
	}
	if err := s.db.WithContext(ctx).Model(&request).Updates(fields).Error; err != nil {
		return nil, fmt.Errorf("failed to update request: %w", err)
	}
	return &request, nil
}
