package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/geniesugar/geniesugar/internal/apperrors"
	"github.com/geniesugar/geniesugar/internal/database"
	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

var validRoles = map[string]bool{
	database.RolePatient:   true,
	database.RolePhysician: true,
	database.RoleDietitian: true,
	database.RoleAdmin:     true,
}

// RegisterInput is the payload for creating an account.
type RegisterInput struct {
	Email          string
	Password       string
	FullName       string
	Role           string
	DiabetesType   string
	Phone          string
	LicenseNumber  string
	Specialization string
	HospitalClinic string
}

func (s *UserService) Register(ctx context.Context, in RegisterInput) (*database.User, error) {
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return nil, apperrors.NewValidationError("Invalid email address")
	}
	if len(in.Password) < 8 {
		return nil, apperrors.NewValidationError("Password must be at least 8 characters")
	}
	if len(strings.TrimSpace(in.FullName)) < 2 {
		return nil, apperrors.NewValidationError("Full name must be at least 2 characters")
	}
	if in.Role == "" {
		in.Role = database.RolePatient
	}
	if !validRoles[in.Role] {
		return nil, apperrors.NewValidationError("Invalid role")
	}
	if in.Role == database.RolePhysician && strings.TrimSpace(in.LicenseNumber) == "" {
		return nil, apperrors.NewValidationError("License number is required")
	}

	existing, err := s.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.NewConflictError("Email already registered")
	}

	user := &database.User{
		Email:          in.Email,
		Password:       hashPassword(in.Password),
		FullName:       strings.TrimSpace(in.FullName),
		Role:           in.Role,
		DiabetesType:   in.DiabetesType,
		Phone:          in.Phone,
		LicenseNumber:  in.LicenseNumber,
		Specialization: in.Specialization,
		HospitalClinic: in.HospitalClinic,
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return user, nil
}

// Authenticate checks credentials and returns the user. Locked accounts are
// rejected even with valid credentials.
func (s *UserService) Authenticate(ctx context.Context, email, password string) (*database.User, error) {
	user, err := s.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || user.Password != hashPassword(password) {
		return nil, apperrors.NewAuthError("Invalid email or password")
	}
	if user.IsLocked {
		return nil, apperrors.NewPermissionError("Account is locked")
	}
	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*database.User, error) {
	var user database.User
	err := s.db.WithContext(ctx).First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*database.User, error) {
	var user database.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return &user, nil
}

// ProfileUpdate carries a partial profile update; nil fields are unchanged.
type ProfileUpdate struct {
	FullName     *string
	DiabetesType *string
	ProfileImage *string
}

const maxProfileImageBytes = 2 * 1024 * 1024

func (s *UserService) UpdateProfile(ctx context.Context, userID string, upd ProfileUpdate) (*database.User, error) {
	fields := make(map[string]interface{})
	if upd.FullName != nil {
		if len(strings.TrimSpace(*upd.FullName)) < 2 {
			return nil, apperrors.NewValidationError("Full name must be at least 2 characters")
		}
		fields["full_name"] = strings.TrimSpace(*upd.FullName)
	}
	if upd.DiabetesType != nil {
		fields["diabetes_type"] = *upd.DiabetesType
	}
	if upd.ProfileImage != nil {
		if *upd.ProfileImage != "" {
			if len(*upd.ProfileImage) > maxProfileImageBytes {
				return nil, apperrors.NewValidationError("Image too large (max 2MB)")
			}
			if !strings.HasPrefix(*upd.ProfileImage, "data:image/") {
				return nil, apperrors.NewValidationError("Invalid image format")
			}
		}
		fields["profile_image"] = *upd.ProfileImage
	}
	if len(fields) == 0 {
		return nil, apperrors.NewValidationError("No valid fields to update")
	}

	result := s.db.WithContext(ctx).Model(&database.User{}).Where("id = ?", userID).Updates(fields)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update profile: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.NewNotFoundError("User not found")
	}
	return s.GetByID(ctx, userID)
}

func (s *UserService) VerifyEmail(ctx context.Context, userID string) error {
	result := s.db.WithContext(ctx).Model(&database.User{}).Where("id = ?", userID).Update("email_verified", true)
	if result.Error != nil {
		return fmt.Errorf("failed to verify email: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("User not found")
	}
	return nil
}

func (s *UserService) SetPassword(ctx context.Context, userID, password string) error {
	if len(password) < 8 {
		return apperrors.NewValidationError("Password must be at least 8 characters")
	}
	result := s.db.WithContext(ctx).Model(&database.User{}).Where("id = ?", userID).Update("password", hashPassword(password))
	if result.Error != nil {
		return fmt.Errorf("failed to set password: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("User not found")
	}
	return nil
}

func (s *UserService) ListAll(ctx context.Context) ([]database.User, error) {
	var users []database.User
	if err := s.db.WithContext(ctx).Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// SetLocked locks or unlocks an account. Locked users cannot log in.
func (s *UserService) SetLocked(ctx context.Context, userID string, locked bool) (*database.User, error) {
	result := s.db.WithContext(ctx).Model(&database.User{}).Where("id = ?", userID).Update("is_locked", locked)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update lock state: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, apperrors.NewNotFoundError("User not found")
	}
	return s.GetByID(ctx, userID)
}
