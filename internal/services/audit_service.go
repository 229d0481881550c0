package services

import (
	"context"
	"fmt"

	"github.com/geniesugar/geniesugar/internal/database"
	"github.com/geniesugar/geniesugar/internal/logger"
	"gorm.io/gorm"
)

type AuditService struct {
	db *gorm.DB
}

func NewAuditService(db *gorm.DB) *AuditService {
	return &AuditService{db: db}
}

// Record writes an audit entry. Best-effort: failures are logged and never
// propagate to the action being audited.
func (s *AuditService) Record(ctx context.Context, userID, action, details string) {
	entry := &database.AuditLog{
		UserID:  userID,
		Action:  action,
		Details: details,
	}
	if err := s.db.WithContext(ctx).Create(entry).Error; err != nil {
		logger.Error("Failed to write audit log", "action", action, "user_id", userID, "error", err)
	}
}

func (s *AuditService) List(ctx context.Context, limit int) ([]database.AuditLog, error) {
	if limit <= 0 {
		limit = 200
	}
	var logs []database.AuditLog
	if err := s.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("failed to get audit logs: %w", err)
	}
	return logs, nil
}
