package controllers

import (
	"net/http"

	"github.com/Jordo960/VibePulse/services"

	"github.com/gin-gonic/gin"
)

type EstimateController struct {
	App *services.App
}

func NewEstimateController(app *services.App) *EstimateController {
	return &EstimateController{App: app}
}

// POST /api/estimate  { "description": "two boiled eggs" }
func (ec *EstimateController) EstimateText(c *gin.Context) {
	var body struct {
		Description string `json:"description"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	res, err := ec.App.EstimateText(c.Request.Context(), body.Description)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// POST /api/estimate/photo  { "image_base64": "data:image/jpeg;base64,..." }
func (ec *EstimateController) EstimatePhoto(c *gin.Context) {
	var body struct {
		ImageBase64 string `json:"image_base64" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	res, err := ec.App.EstimatePhoto(c.Request.Context(), body.ImageBase64)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
