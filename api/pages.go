package api

import (
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

// Static pages, served straight from the web directory.

func (a *API) RegisterPage(c *gin.Context) {
	c.File(filepath.Join(viper.GetString("web.dir"), "register.html"))
}

func (a *API) LoginPage(c *gin.Context) {
	c.File(filepath.Join(viper.GetString("web.dir"), "login.html"))
}

func (a *API) Dashboard(c *gin.Context) {
	c.File(filepath.Join(viper.GetString("web.dir"), "index.html"))
}
