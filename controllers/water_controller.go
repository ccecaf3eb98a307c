package controllers

import (
	"net/http"
	"strconv"

	"github.com/Jordo960/VibePulse/services"

	"github.com/gin-gonic/gin"
)

type TrackerController struct {
	App *services.App
}

func NewTrackerController(app *services.App) *TrackerController {
	return &TrackerController{App: app}
}

// GET /api/water
func (tc *TrackerController) GetWater(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"glasses": tc.App.Water.Count(), "max": services.WaterGlasses})
}

// PUT /api/water
func (tc *TrackerController) SetWater(c *gin.Context) {
	var body struct {
		Glasses *int `json:"glasses" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	if err := tc.App.Water.Set(*body.Glasses); err != nil {
		respondError(c, err)
		return
	}
	tc.GetWater(c)
}

// POST /api/water/:glass/toggle
func (tc *TrackerController) ToggleWater(c *gin.Context) {
	i, err := strconv.Atoi(c.Param("glass"))
	if err != nil {
		badRequest(c, err)
		return
	}
	if _, err := tc.App.Water.Toggle(i); err != nil {
		respondError(c, err)
		return
	}
	tc.GetWater(c)
}

// GET /api/weight
func (tc *TrackerController) GetWeight(c *gin.Context) {
	goal := services.MockUser.WeightGoal
	if u := tc.App.Session.Current(); u != nil {
		goal = u.WeightGoal
	}
	c.JSON(http.StatusOK, tc.App.Weight.Summary(goal))
}

// POST /api/weight
func (tc *TrackerController) LogWeight(c *gin.Context) {
	var body struct {
		Weight float64 `json:"weight" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		badRequest(c, err)
		return
	}
	e, err := tc.App.LogWeight(body.Weight)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, e)
}
