package controllers

import (
	"net/http"

	"github.com/Jordo960/VibePulse/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	App *services.App
}

func NewAuthController(app *services.App) *AuthController {
	return &AuthController{App: app}
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SignupInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

// POST /auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	sess, err := ac.App.LoginEmail(c.Request.Context(), input.Email, "", false)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// POST /auth/signup
func (ac *AuthController) Signup(c *gin.Context) {
	var input SignupInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, err)
		return
	}
	sess, err := ac.App.LoginEmail(c.Request.Context(), input.Email, input.Name, true)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sess)
}

// POST /auth/social/:provider
func (ac *AuthController) Social(c *gin.Context) {
	sess, err := ac.App.LoginSocial(c.Request.Context(), c.Param("provider"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sess)
}

// GET /api/session
func (ac *AuthController) GetSession(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": ac.App.Session.Current()})
}

// DELETE /api/session
func (ac *AuthController) Logout(c *gin.Context) {
	ac.App.Logout()
	c.Status(http.StatusNoContent)
}
