package controllers

import (
	"net/http"

	"github.com/Jordo960/VibePulse/services"

	"github.com/gin-gonic/gin"
)

type StatsController struct {
	App *services.App
}

func NewStatsController(app *services.App) *StatsController {
	return &StatsController{App: app}
}

// GET /api/stats/daily
func (sc *StatsController) Daily(c *gin.Context) {
	c.JSON(http.StatusOK, sc.App.Stats.Daily())
}

// GET /api/stats/meal-types
func (sc *StatsController) ByMealType(c *gin.Context) {
	c.JSON(http.StatusOK, sc.App.Stats.ByMealType())
}
