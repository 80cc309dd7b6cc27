package api

import (
	"errors"
	"net/http"

	"agritech/plantcare-api/model"
	"agritech/plantcare-api/security"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type loginBody struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

// invalidCredentials writes the one failure response /login is allowed
// to produce. Unknown username and wrong password must be
// indistinguishable to the client.
func invalidCredentials(c *gin.Context, requestID string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"error":     "Invalid credentials",
		"requestID": requestID,
	})
}

func (a *API) UserLogin(c *gin.Context) {
	requestID := c.MustGet("requestID").(string)

	var data loginBody
	if err := c.ShouldBind(&data); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Invalid request body",
			"requestID": requestID,
		})

		zap.L().Debug("Can't bind request body", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if data.Username == "" || data.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":     "Please fill all fields",
			"requestID": requestID,
		})
		return
	}

	var user model.User
	if err := a.DB.Where("username = ?", data.Username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			invalidCredentials(c, requestID)
			return
		}

		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to look up user", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	ok, err := a.Argon.Verify(data.Password, user.PasswordHash)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to verify password", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	if !ok {
		invalidCredentials(c, requestID)
		return
	}

	// The session row is committed before the redirect goes out, so the
	// browser's follow-up request to /dashboard always finds it
	token, err := a.Sessions.Create(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Internal server error",
			"requestID": requestID,
		})

		zap.L().Error("Failed to create session", zap.Error(err), zap.String("requestID", requestID))
		return
	}

	c.SetCookie(security.CookieName, token, int(a.Sessions.TTL().Seconds()), "/", "",
		viper.GetBool("session.cookie_secure"), true)
	c.Redirect(http.StatusFound, "/dashboard")
}
