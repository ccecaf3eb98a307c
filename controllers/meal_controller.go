package controllers

import (
	"net/http"

	"github.com/Jordo960/VibePulse/models"
	"github.com/Jordo960/VibePulse/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	App *services.App
}

func NewMealController(app *services.App) *MealController {
	return &MealController{App: app}
}

type LogMealInput struct {
	models.MealDraft
	Type         models.MealType `json:"type" binding:"required"`
	Time         string          `json:"time"`
	SaveAsPreset bool            `json:"saveAsPreset"`
}

// GET /api/meals
func (mc *MealController) ListMeals(c *gin.Context) {
	c.JSON(http.StatusOK, mc.App.Log.Meals())
}

// POST /api/meals
func (mc *MealController) LogMeal(c *gin.Context) {
	var input LogMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	meal, preset, err := mc.App.CommitMeal(input.MealDraft, input.Type, input.Time, input.SaveAsPreset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"meal": meal, "preset": preset})
}

// DELETE /api/meals/:id
func (mc *MealController) DeleteMeal(c *gin.Context) {
	mc.App.DeleteMeal(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// POST /api/drafts/preview
func (mc *MealController) PreviewDraft(c *gin.Context) {
	var d models.MealDraft
	if err := c.ShouldBindJSON(&d); err != nil {
		badRequest(c, err)
		return
	}
	p, err := mc.App.PreviewDraft(d)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}
