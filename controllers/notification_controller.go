package controllers

import (
	"net/http"

	"github.com/Jordo960/VibePulse/services"

	"github.com/gin-gonic/gin"
)

type NotificationController struct {
	App *services.App
}

func NewNotificationController(app *services.App) *NotificationController {
	return &NotificationController{App: app}
}

// GET /api/notifications/current returns 204 when no toast is visible.
func (nc *NotificationController) Current(c *gin.Context) {
	n := nc.App.Notifier.Current()
	if n == nil {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, n)
}

// DELETE /api/notifications/current
func (nc *NotificationController) Dismiss(c *gin.Context) {
	nc.App.Notifier.Dismiss()
	c.Status(http.StatusNoContent)
}
