package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/geniesugar/geniesugar/internal/apperrors"
	"github.com/geniesugar/geniesugar/internal/database"
	"gorm.io/gorm"
)

var validIntensities = map[string]bool{
	"low":      true,
	"moderate": true,
	"high":     true,
}

type ActivityService struct {
	db *gorm.DB
}

func NewActivityService(db *gorm.DB) *ActivityService {
	return &ActivityService{db: db}
}

func (s *ActivityService) List(ctx context.Context, userID string) ([]database.ActivityLog, error) {
	var logs []database.ActivityLog
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("failed to get activity logs: %w", err)
	}
	return logs, nil
}

// ActivityLogInput is the payload for logging physical activity.
type ActivityLogInput struct {
	ActivityType string
	Duration     int
	Intensity    string
	Timestamp    time.Time
	Notes        string
}

func (s *ActivityService) Create(ctx context.Context, userID string, in ActivityLogInput) (*database.ActivityLog, error) {
	if strings.TrimSpace(in.ActivityType) == "" {
		return nil, apperrors.NewValidationError("Activity type is required")
	}
	if in.Duration < 1 {
		return nil, apperrors.NewValidationError("Duration must be at least 1 minute")
	}
	if !validIntensities[in.Intensity] {
		return nil, apperrors.NewValidationError("Intensity must be low, moderate or high")
	}
	if in.Timestamp.IsZero() {
		in.Timestamp = time.Now()
	}

	log := &database.ActivityLog{
		UserID:       userID,
		ActivityType: strings.TrimSpace(in.ActivityType),
		Duration:     in.Duration,
		Intensity:    in.Intensity,
		Timestamp:    in.Timestamp,
		Notes:        in.Notes,
	}
	if err := s.db.WithContext(ctx).Create(log).Error; err != nil {
		return nil, fmt.Errorf("failed to create activity log: %w", err)
	}
	return log, nil
}

func (s *ActivityService) Delete(ctx context.Context, id, userID string) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&database.ActivityLog{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete activity log: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("Activity log not found")
	}
	return nil
}
