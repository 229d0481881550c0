package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/geniesugar/geniesugar/internal/apperrors"
	"github.com/geniesugar/geniesugar/internal/database"
	"github.com/geniesugar/geniesugar/internal/nutrition"
	"gorm.io/gorm"
)

var validMealTypes = map[string]bool{
	"breakfast": true,
	"lunch":     true,
	"dinner":    true,
	"snack":     true,
}

type FoodService struct {
	db *gorm.DB
}

func NewFoodService(db *gorm.DB) *FoodService {
	return &FoodService{db: db}
}

func (s *FoodService) List(ctx context.Context, userID string) ([]database.FoodLog, error) {
	var logs []database.FoodLog
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC").
		Find(&logs).Error; err != nil {
		return nil, fmt.Errorf("failed to get food logs: %w", err)
	}
	return logs, nil
}

// FoodLogInput is the payload for logging a meal.
type FoodLogInput struct {
	MealType      string
	FoodName      string
	Portion       string
	Calories      int
	Carbs         int
	Protein       int
	Fat           int
	Fiber         int
	GlycemicIndex int
	GlycemicLoad  int
	IsDangerous   bool
	Notes         string
	Timestamp     time.Time
}

// Create stores a food log. When a glycemic index is supplied the glycemic
// load is derived from the macros unless the client sent one, and the
// dangerous flag is raised for high-GI/GL foods.
func (s *FoodService) Create(ctx context.Context, userID string, in FoodLogInput) (*database.FoodLog, error) {
	if !validMealTypes[in.MealType] {
		return nil, apperrors.NewValidationError("Meal type must be breakfast, lunch, dinner or snack")
	}
	if strings.TrimSpace(in.FoodName) == "" {
		return nil, apperrors.NewValidationError("Food name is required")
	}
	if in.Timestamp.IsZero() {
		in.Timestamp = time.Now()
	}

	gl := in.GlycemicLoad
	dangerous := in.IsDangerous
	if in.GlycemicIndex > 0 {
		if gl == 0 {
			gl = nutrition.GlycemicLoad(in.GlycemicIndex, in.Carbs, in.Fiber)
		}
		if nutrition.DangerousForDiabetes(in.GlycemicIndex, gl) {
			dangerous = true
		}
	}

	log := &database.FoodLog{
		UserID:        userID,
		MealType:      in.MealType,
		FoodName:      strings.TrimSpace(in.FoodName),
		Portion:       in.Portion,
		Calories:      in.Calories,
		Carbs:         in.Carbs,
		Protein:       in.Protein,
		Fat:           in.Fat,
		Fiber:         in.Fiber,
		GlycemicIndex: in.GlycemicIndex,
		GlycemicLoad:  gl,
		IsDangerous:   dangerous,
		Notes:         in.Notes,
		Timestamp:     in.Timestamp,
	}
	if err := s.db.WithContext(ctx).Create(log).Error; err != nil {
		return nil, fmt.Errorf("failed to create food log: %w", err)
	}
	return log, nil
}

func (s *FoodService) Delete(ctx context.Context, id, userID string) error {
	result := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&database.FoodLog{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete food log: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("Food log not found")
	}
	return nil
}
