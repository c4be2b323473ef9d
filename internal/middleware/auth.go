package middleware

import (
	"net/http"

	"github.com/Xyscco/easy-finances/internal/models"
	"github.com/Xyscco/easy-finances/internal/services"
	"github.com/Xyscco/easy-finances/internal/utils"

	"github.com/gin-gonic/gin"
)

const userContextKey = "currentUser"

// unauthorized writes the 401 response. Every rejection carries the
// WWW-Authenticate challenge header.
func unauthorized(c *gin.Context, message string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, message))
	c.Abort()
}

// AuthMiddleware resolves the request's bearer token into an authenticated,
// active user and stores it on the context for the handler. The resolution is
// per-request; nothing is retained between requests.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := utils.ExtractToken(c)
		if err != nil {
			unauthorized(c, err.Error())
			return
		}

		userID, err := utils.VerifyToken(tokenString)
		if err != nil {
			unauthorized(c, "Token inválido ou expirado")
			return
		}

		user, err := services.FindActiveUserByID(userID)
		if err != nil {
			unauthorized(c, "Usuário não encontrado ou inativo")
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// CurrentUser returns the user resolved by AuthMiddleware.
func CurrentUser(c *gin.Context) (models.User, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return models.User{}, false
	}
	user, ok := value.(models.User)
	return user, ok
}

// ActiveUser re-checks the active flag on the already-resolved user. The
// middleware lookup filters on active, so a false here means the state
// changed mid-request.
func ActiveUser(c *gin.Context) (models.User, bool) {
	user, ok := CurrentUser(c)
	if !ok {
		unauthorized(c, "Unauthorized")
		return models.User{}, false
	}
	if !user.Active {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, "Usuário inativo"))
		c.Abort()
		return models.User{}, false
	}
	return user, true
}
