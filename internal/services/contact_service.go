package services

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/geniesugar/geniesugar/internal/apperrors"
	"github.com/geniesugar/geniesugar/internal/database"
	"gorm.io/gorm"
)

type ContactService struct {
	db *gorm.DB
}

func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{db: db}
}

// ListContacts returns all family contacts registered by the user.
func (s *ContactService) ListContacts(ctx context.Context, userID string) ([]database.FamilyContact, error) {
	var contacts []database.FamilyContact
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&contacts).Error; err != nil {
		return nil, fmt.Errorf("failed to list family contacts: %w", err)
	}
	return contacts, nil
}

// ContactInput is the payload for adding a family contact.
type ContactInput struct {
	Name         string
	Email        string
	Phone        string
	Relationship string
}

func (s *ContactService) Add(ctx context.Context, userID string, in ContactInput) (*database.FamilyContact, error) {
	if len(strings.TrimSpace(in.Name)) < 2 {
		return nil, apperrors.NewValidationError("Name must be at least 2 characters")
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return nil, apperrors.NewValidationError("Invalid email address")
	}
	if strings.TrimSpace(in.Relationship) == "" {
		return nil, apperrors.NewValidationError("Relationship is required")
	}

	contact := &database.FamilyContact{
		UserID:       userID,
		Name:         strings.TrimSpace(in.Name),
		Email:        in.Email,
		Phone:        in.Phone,
		Relationship: in.Relationship,
	}
	if err := s.db.WithContext(ctx).Create(contact).Error; err != nil {
		return nil, fmt.Errorf("failed to add family contact: %w", err)
	}
	return contact, nil
}

// Remove deletes a contact. Ownership-checked: only the owning user's delete
// takes effect.
func (s *ContactService) Remove(ctx context.Context, contactID, userID string) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", contactID, userID).
		Delete(&database.FamilyContact{})
	if result.Error != nil {
		return fmt.Errorf("failed to remove family contact: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("Family contact not found")
	}
	return nil
}
