package controllers

import (
	"net/http"

	"github.com/Jordo960/VibePulse/models"
	"github.com/Jordo960/VibePulse/services"

	"github.com/gin-gonic/gin"
)

type CatalogController struct {
	App *services.App
}

func NewCatalogController(app *services.App) *CatalogController {
	return &CatalogController{App: app}
}

// GET /api/foods/quick?q=egg
func (cc *CatalogController) QuickFoods(c *gin.Context) {
	if q := c.Query("q"); q != "" {
		c.JSON(http.StatusOK, cc.App.Catalog.Search(q))
		return
	}
	c.JSON(http.StatusOK, cc.App.Catalog.Categories())
}

// GET /api/presets
func (cc *CatalogController) ListPresets(c *gin.Context) {
	c.JSON(http.StatusOK, cc.App.Log.Presets())
}

// POST /api/presets
func (cc *CatalogController) CreatePreset(c *gin.Context) {
	var d models.MealDraft
	if err := c.ShouldBindJSON(&d); err != nil {
		badRequest(c, err)
		return
	}
	p, err := cc.App.CreatePreset(d)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// DELETE /api/presets/:id
func (cc *CatalogController) DeletePreset(c *gin.Context) {
	cc.App.DeletePreset(c.Param("id"))
	c.Status(http.StatusNoContent)
}

// POST /api/presets/:id/apply returns the draft the preset fills in.
func (cc *CatalogController) ApplyPreset(c *gin.Context) {
	d, err := cc.App.Log.ApplyPresetByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, d)
}
