package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/geniesugar/geniesugar/internal/apperrors"
	"github.com/geniesugar/geniesugar/internal/database"
	"gorm.io/gorm"
)

// Default thresholds applied when settings are created lazily.
const (
	DefaultHighThreshold = 180
	DefaultLowThreshold  = 70
)

type AlertSettingsService struct {
	db *gorm.DB
}

func NewAlertSettingsService(db *gorm.DB) *AlertSettingsService {
	return &AlertSettingsService{db: db}
}

// Lookup returns the user's alert settings, or (nil, nil) when the user never
// configured any. The alert evaluation path uses this to short-circuit.
func (s *AlertSettingsService) Lookup(ctx context.Context, userID string) (*database.AlertSettings, error) {
	var settings database.AlertSettings
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get alert settings: %w", err)
	}
	return &settings, nil
}

// GetOrCreate returns the user's settings, creating them with defaults when
// absent.
func (s *AlertSettingsService) GetOrCreate(ctx context.Context, userID string) (*database.AlertSettings, error) {
	settings, err := s.Lookup(ctx, userID)
	if err != nil {
		return nil, err
	}
	if settings != nil {
		return settings, nil
	}

	settings = &database.AlertSettings{
		UserID:        userID,
		HighThreshold: DefaultHighThreshold,
		LowThreshold:  DefaultLowThreshold,
		EmailAlerts:   true,
		SMSAlerts:     false,
	}
	if err := s.db.WithContext(ctx).Create(settings).Error; err != nil {
		return nil, fmt.Errorf("failed to create alert settings: %w", err)
	}
	return settings, nil
}

// AlertSettingsUpdate carries a partial update; nil fields are left unchanged.
type AlertSettingsUpdate struct {
	HighThreshold *int
	LowThreshold  *int
	EmailAlerts   *bool
	SMSAlerts     *bool
}

// Update merges the given fields into the user's settings, creating the row
// with defaults first when absent. Thresholds are range-checked; the relation
// low < high is deliberately not enforced.
func (s *AlertSettingsService) Update(ctx context.Context, userID string, upd AlertSettingsUpdate) (*database.AlertSettings, error) {
	if upd.HighThreshold != nil && (*upd.HighThreshold < 100 || *upd.HighThreshold > 600) {
		return nil, apperrors.NewValidationError("High threshold must be between 100 and 600 mg/dL")
	}
	if upd.LowThreshold != nil && (*upd.LowThreshold < 20 || *upd.LowThreshold > 100) {
		return nil, apperrors.NewValidationError("Low threshold must be between 20 and 100 mg/dL")
	}

	settings, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]interface{})
	if upd.HighThreshold != nil {
		fields["high_threshold"] = *upd.HighThreshold
	}
	if upd.LowThreshold != nil {
		fields["low_threshold"] = *upd.LowThreshold
	}
	if upd.EmailAlerts != nil {
		fields["email_alerts"] = *upd.EmailAlerts
	}
	if upd.SMSAlerts != nil {
		fields["sms_alerts"] = *upd.SMSAlerts
	}
	if len(fields) == 0 {
		return settings, nil
	}

	if err := s.db.WithContext(ctx).Model(settings).Updates(fields).Error; err != nil {
		return nil, fmt.Errorf("failed to update alert settings: %w", err)
	}
	return s.Lookup(ctx, userID)
}
