package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/geniesugar/geniesugar/internal/nutrition"
	"github.com/geniesugar/geniesugar/internal/services"
)

type FoodHandler struct {
	food *services.FoodService
}

func NewFoodHandler(food *services.FoodService) *FoodHandler {
	return &FoodHandler{food: food}
}

// List handles GET /api/food.
func (h *FoodHandler) List(c *gin.Context) {
	logs, err := h.food.List(c.Request.Context(), User(c).ID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, logs)
}

type foodLogRequest struct {
	MealType      string    `json:"mealType"`
	FoodName      string    `json:"foodName"`
	Portion       string    `json:"portion"`
	Calories      int       `json:"calories"`
	Carbs         int       `json:"carbs"`
	Protein       int       `json:"protein"`
	Fat           int       `json:"fat"`
	Fiber         int       `json:"fiber"`
	GlycemicIndex int       `json:"glycemicIndex"`
	GlycemicLoad  int       `json:"glycemicLoad"`
	IsDangerous   bool      `json:"isDangerous"`
	Notes         string    `json:"notes"`
	Timestamp     time.Time `json:"timestamp"`
}

// Create handles POST /api/food.
func (h *FoodHandler) Create(c *gin.Context) {
	var req foodLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	log, err := h.food.Create(c.Request.Context(), User(c).ID, services.FoodLogInput{
		MealType:      req.MealType,
		FoodName:      req.FoodName,
		Portion:       req.Portion,
		Calories:      req.Calories,
		Carbs:         req.Carbs,
		Protein:       req.Protein,
		Fat:           req.Fat,
		Fiber:         req.Fiber,
		GlycemicIndex: req.GlycemicIndex,
		GlycemicLoad:  req.GlycemicLoad,
		IsDangerous:   req.IsDangerous,
		Notes:         req.Notes,
		Timestamp:     req.Timestamp,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, log)
}

// Delete handles DELETE /api/food/:id.
func (h *FoodHandler) Delete(c *gin.Context) {
	if err := h.food.Delete(c.Request.Context(), c.Param("id"), User(c).ID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Food log deleted"})
}

// Catalog handles GET /api/food-catalog, serving the built-in regional food
// reference with glycemic data.
func (h *FoodHandler) Catalog(c *gin.Context) {
	c.JSON(http.StatusOK, nutrition.Catalog)
}
