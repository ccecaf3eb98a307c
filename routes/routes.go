package routes

import (
	"github.com/Jordo960/VibePulse/controllers"
	"github.com/Jordo960/VibePulse/middlewares"
	"github.com/Jordo960/VibePulse/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(app *services.App, secret []byte) *gin.Engine {
	r := gin.Default()

	authC := controllers.NewAuthController(app)
	mealC := controllers.NewMealController(app)
	catalogC := controllers.NewCatalogController(app)
	goalC := controllers.NewGoalController(app)
	statsC := controllers.NewStatsController(app)
	trackerC := controllers.NewTrackerController(app)
	settingsC := controllers.NewSettingsController(app)
	estimateC := controllers.NewEstimateController(app)
	notifyC := controllers.NewNotificationController(app)
	rtC := controllers.NewRealtimeController(app.Hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/login", authC.Login)
		auth.POST("/signup", authC.Signup)
		auth.POST("/social/:provider", authC.Social)
	}

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware(secret, app.Session))
	{
		api.GET("/session", authC.GetSession)
		api.DELETE("/session", authC.Logout)

		api.GET("/theme", settingsC.GetTheme)
		api.PUT("/theme", settingsC.SetTheme)
		api.POST("/theme/toggle", settingsC.ToggleTheme)

		api.GET("/meals", mealC.ListMeals)
		api.POST("/meals", mealC.LogMeal)
		api.DELETE("/meals/:id", mealC.DeleteMeal)
		api.POST("/drafts/preview", mealC.PreviewDraft)

		api.GET("/presets", catalogC.ListPresets)
		api.POST("/presets", catalogC.CreatePreset)
		api.DELETE("/presets/:id", catalogC.DeletePreset)
		api.POST("/presets/:id/apply", catalogC.ApplyPreset)
		api.GET("/foods/quick", catalogC.QuickFoods)

		api.GET("/goals", goalC.GetGoals)
		api.PUT("/goals", goalC.UpdateGoals)
		api.POST("/goals/sync", goalC.SyncGoals)

		api.GET("/stats/daily", statsC.Daily)
		api.GET("/stats/meal-types", statsC.ByMealType)

		api.GET("/weight", trackerC.GetWeight)
		api.POST("/weight", trackerC.LogWeight)
		api.GET("/water", trackerC.GetWater)
		api.PUT("/water", trackerC.SetWater)
		api.POST("/water/:glass/toggle", trackerC.ToggleWater)

		api.POST("/estimate", estimateC.EstimateText)
		api.POST("/estimate/photo", estimateC.EstimatePhoto)

		api.GET("/notifications/current", notifyC.Current)
		api.DELETE("/notifications/current", notifyC.Dismiss)
		api.GET("/ws", rtC.Stream)
	}

	return r
}
