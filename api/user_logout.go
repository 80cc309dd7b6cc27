package api

import (
	"net/http"

	"agritech/plantcare-api/security"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

func (a *API) UserLogout(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	token, err := c.Cookie(security.CookieName)
	if err == nil && token != "" {
		if err := a.Sessions.Destroy(token); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     "Logout failed",
				"requestID": requestID,
			})

			zap.L().Error("Failed to destroy session", zap.Error(err), zap.String("requestID", requestID))
			return
		}
	}

	c.SetCookie(security.CookieName, "", -1, "/", "",
		viper.GetBool("session.cookie_secure"), true)
	c.Redirect(http.StatusFound, "/login")
}
