package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/geniesugar/geniesugar/internal/database"
	"github.com/geniesugar/geniesugar/internal/services"
)

// ProviderHandler serves the physician and dietitian views over their
// patients' data. Access is gated by the approved care team relation and its
// permission scope.
type ProviderHandler struct {
	careTeam *services.CareTeamService
	glucose  *services.GlucoseService
	food     *services.FoodService
	activity *services.ActivityService
	users    *services.UserService
}

func NewProviderHandler(careTeam *services.CareTeamService, glucose *services.GlucoseService,
	food *services.FoodService, activity *services.ActivityService, users *services.UserService) *ProviderHandler {
	return &ProviderHandler{
		careTeam: careTeam,
		glucose:  glucose,
		food:     food,
		activity: activity,
		users:    users,
	}
}

type patientSummary struct {
	Patient     database.User            `json:"patient"`
	Permissions string                   `json:"permissions"`
	RelationID  string                   `json:"relationId"`
	LastReading *database.GlucoseReading `json:"lastReading,omitempty"`
	LastMeal    *database.FoodLog        `json:"lastMeal,omitempty"`
}

// Patients handles GET /api/provider/patients: each approved patient with
// their most recent glucose reading, plus the latest meal when the relation
// grants the "all" scope.
func (h *ProviderHandler) Patients(c *gin.Context) {
	relations, err := h.careTeam.ListByProvider(c.Request.Context(), User(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}

	summaries := make([]patientSummary, 0, len(relations))
	for _, rel := range relations {
		rel.Patient.Password = ""
		summary := patientSummary{
			Patient:     rel.Patient,
			Permissions: rel.Permissions,
			RelationID:  rel.ID,
		}
		readings, err := h.glucose.List(c.Request.Context(), rel.PatientID)
		if err != nil {
			respondError(c, err)
			return
		}
		if len(readings) > 0 {
			summary.LastReading = &readings[0]
		}
		if rel.Permissions == "all" {
			meals, err := h.food.List(c.Request.Context(), rel.PatientID)
			if err != nil {
				respondError(c, err)
				return
			}
			if len(meals) > 0 {
				summary.LastMeal = &meals[0]
			}
		}
		summaries = append(summaries, summary)
	}
	c.JSON(http.StatusOK, summaries)
}

// PatientDetail handles GET /api/provider/patients/:id. Glucose data is always
// shared; food and activity logs require the "all" permission scope.
func (h *ProviderHandler) PatientDetail(c *gin.Context) {
	provider := User(c)
	patientID := c.Param("id")

	relation, err := h.careTeam.Relation(c.Request.Context(), patientID, provider.ID)
	if err != nil {
		respondError(c, err)
		return
	}
	if relation == nil {
		c.JSON(http.StatusForbidden, gin.H{"message": "Patient is not in your care team"})
		return
	}

	patient, err := h.users.GetByID(c.Request.Context(), patientID)
	if err != nil {
		respondError(c, err)
		return
	}
	if patient == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Patient not found"})
		return
	}
	patient.Password = ""

	readings, err := h.glucose.List(c.Request.Context(), patientID)
	if err != nil {
		respondError(c, err)
		return
	}

	detail := gin.H{
		"patient":     patient,
		"permissions": relation.Permissions,
		"glucose":     readings,
	}
	if relation.Permissions == "all" {
		foodLogs, err := h.food.List(c.Request.Context(), patientID)
		if err != nil {
			respondError(c, err)
			return
		}
		activityLogs, err := h.activity.List(c.Request.Context(), patientID)
		if err != nil {
			respondError(c, err)
			return
		}
		detail["food"] = foodLogs
		detail["activity"] = activityLogs
	}
	c.JSON(http.StatusOK, detail)
}
