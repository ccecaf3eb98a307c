package controllers

import (
	"net/http"

	"github.com/Jordo960/VibePulse/models"
	"github.com/Jordo960/VibePulse/services"

	"github.com/gin-gonic/gin"
)

type SettingsController struct {
	App *services.App
}

func NewSettingsController(app *services.App) *SettingsController {
	return &SettingsController{App: app}
}

// GET /api/theme
func (sc *SettingsController) GetTheme(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"theme": sc.App.Theme()})
}

// PUT /api/theme
func (sc *SettingsController) SetTheme(c *gin.Context) {
	var body struct {
		Theme models.Theme `json:"theme" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	if err := sc.App.SetTheme(body.Theme); err != nil {
		respondError(c, err)
		return
	}
	sc.GetTheme(c)
}

// POST /api/theme/toggle
func (sc *SettingsController) ToggleTheme(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"theme": sc.App.ToggleTheme()})
}
