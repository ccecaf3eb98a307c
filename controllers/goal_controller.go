package controllers

import (
	"net/http"

	"github.com/Jordo960/VibePulse/models"
	"github.com/Jordo960/VibePulse/services"

	"github.com/gin-gonic/gin"
)

type GoalController struct {
	App *services.App
}

func NewGoalController(app *services.App) *GoalController {
	return &GoalController{App: app}
}

// GET /api/goals
func (gc *GoalController) GetGoals(c *gin.Context) {
	c.JSON(http.StatusOK, gc.App.Goals.Snapshot())
}

// PUT /api/goals
func (gc *GoalController) UpdateGoals(c *gin.Context) {
	var g models.NutritionalGoals
	if err := c.ShouldBindJSON(&g); err != nil {
		badRequest(c, err)
		return
	}
	if err := gc.App.UpdateGoals(g); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gc.App.Goals.Snapshot())
}

// POST /api/goals/sync blocks until the remote answers.
func (gc *GoalController) SyncGoals(c *gin.Context) {
	snap, err := gc.App.SyncGoals(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}
