package middlewares

import (
	"net/http"
	"strings"

	"github.com/Jordo960/VibePulse/apperrors"
	"github.com/Jordo960/VibePulse/services"
	"github.com/Jordo960/VibePulse/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware accepts a session token from the Authorization header or,
// for websocket upgrades, the token query parameter. The token must belong
// to the current session; a logged-out app rejects every token.
func AuthMiddleware(secret []byte, sessions *services.SessionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := c.Query("token")
		if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
			tokenString = strings.TrimPrefix(h, "Bearer ")
		}
		if tokenString == "" {
			unauthorized(c, "Authorization header required")
			return
		}
		if len(secret) == 0 {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "server misconfigured: JWT_SECRET not set", "code": apperrors.CodeUnknown})
			return
		}

		userID, email, err := utils.ParseJWT(secret, tokenString)
		if err != nil {
			unauthorized(c, "invalid token")
			return
		}
		u := sessions.Current()
		if u == nil || u.ID != userID || u.Email != email {
			unauthorized(c, "session ended")
			return
		}

		c.Set("userID", userID)
		c.Set("email", email)
		c.Next()
	}
}

func unauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg, "code": apperrors.CodeUnauthenticated})
}
