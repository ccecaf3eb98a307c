package controllers

import (
	"log"
	"net/http"

	"github.com/Jordo960/VibePulse/apperrors"

	"github.com/gin-gonic/gin"
)

// respondError writes {"error": message, "code": CODE} with the status of
// the error's code.
func respondError(c *gin.Context, err error) {
	code := apperrors.CodeOf(err)
	status := code.HTTPStatus()
	msg := apperrors.MessageOf(err)
	if status >= http.StatusInternalServerError && code == apperrors.CodeUnknown {
		log.Printf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		msg = "internal error"
	}
	c.JSON(status, gin.H{"error": msg, "code": code})
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "code": apperrors.CodeValidation})
}
