package services

import (
	"context"
	"fmt"
	"time"

	"github.com/geniesugar/geniesugar/internal/apperrors"
	"github.com/geniesugar/geniesugar/internal/database"
	"gorm.io/gorm"
)

type GlucoseService struct {
	db *gorm.DB
}

func NewGlucoseService(db *gorm.DB) *GlucoseService {
	return &GlucoseService{db: db}
}

func (s *GlucoseService) List(ctx context.Context, userID string) ([]database.GlucoseReading, error) {
	var readings []database.GlucoseReading
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Find(&readings).Error; err != nil {
		return nil, fmt.Errorf("failed to get glucose readings: %w", err)
	}
	return readings, nil
}

// Create stores a new reading. Values outside the measurable range [20,600]
// mg/dL are rejected before anything downstream (alert evaluation included)
// sees them.
func (s *GlucoseService) Create(ctx context.Context, userID string, value int, timestamp time.Time, note string) (*database.GlucoseReading, error) {
	if value < 20 || value > 600 {
		return nil, apperrors.NewValidationError("Value must be between 20 and 600 mg/dL")
	}
	if timestamp.IsZero() {
		timestamp = time.Now()
	}

	reading := &database.GlucoseReading{
		UserID:    userID,
		Value:     value,
		Timestamp: timestamp,
		Note:      note,
	}
	if err := s.db.WithContext(ctx).Create(reading).Error; err != nil {
		return nil, fmt.Errorf("failed to create glucose reading: %w", err)
	}
	return reading, nil
}

func (s *GlucoseService) Delete(ctx context.Context, id, userID string) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&database.GlucoseReading{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete glucose reading: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("Glucose reading not found")
	}
	return nil
}
