// Package api contains all endpoints available
package api

import (
	"fmt"
	"time"

	"agritech/plantcare-api/analysis"
	"agritech/plantcare-api/db"
	"agritech/plantcare-api/middleware"
	"agritech/plantcare-api/security"
	"agritech/plantcare-api/storage"

	cache "github.com/chenyahui/gin-cache"
	"github.com/chenyahui/gin-cache/persist"
	ginzap "github.com/gin-contrib/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
)

const (
	gray  = "\x1b[90m"
	reset = "\x1b[0m"
)

var store = persist.NewMemoryStore(time.Minute)

type API struct {
	DB       *gorm.DB
	Router   *gin.Engine
	Argon    *security.ArgonHash
	Sessions *security.Sessions
	Store    storage.Store
	Analyzer analysis.Analyzer
}

func NewRouter() (*API, error) {
	a := &API{
		Argon:    security.NewArgon(),
		Analyzer: analysis.Static{},
	}

	d, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}
	a.DB = d
	a.Sessions = security.NewSessions(d)

	st, err := storage.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage backend, %w", err)
	}
	a.Store = st

	makeLogger()

	router := gin.New()
	a.Router = router

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     []string{"http://localhost:5173"},
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		ginzap.GinzapWithConfig(zap.L(), &ginzap.Config{
			TimeFormat: "15:04:05.000",
			UTC:        true,
			Skipper: func(c *gin.Context) bool {
				return c.Request.Method == "HEAD"
			},
			Context: func(c *gin.Context) []zapcore.Field {
				fields := []zapcore.Field{}

				if v := c.GetString("requestID"); v != "" {
					fields = append(fields, zap.String("request_id", v))
				}

				if v := c.GetString("userID"); v != "" {
					fields = append(fields, zap.String("userID", v))
				}

				return fields
			},
		}),
	)

	router.HandleMethodNotAllowed = true
	router.MaxMultipartMemory = 5 << 20

	session := middleware.NewSessionMiddleware(a.Sessions)
	loginLimiter := middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
		RequestsPerSecond: 5,
		Burst:             20,
	})
	maxUploadSize := viper.GetInt64("upload.max_size")

	// HEAD /api/heartbeat		-> Used to check if the server is alive
	router.HEAD("/api/heartbeat", a.Heartbeat)

	// GET /register, /login	-> Static form pages
	router.GET("/register", cacheFor(60), a.RegisterPage)
	router.GET("/login", cacheFor(60), a.LoginPage)

	// GET /dashboard		-> Main page, needs an authenticated session
	router.GET("/dashboard", session, a.Dashboard)

	// POST /register		-> Creates a new account
	router.POST("/register", middleware.BodySizeLimiter(1<<20), a.UserRegister)

	// POST /login			-> Verifies credentials and issues a session cookie
	router.POST("/login", loginLimiter, middleware.BodySizeLimiter(1<<20), a.UserLogin)

	// GET /logout			-> Destroys the session and clears the cookie
	router.GET("/logout", a.UserLogout)

	// POST /upload-image		-> Validates, stores and analyzes a plant image
	router.POST("/upload-image", middleware.BodySizeLimiter(maxUploadSize+(1<<20)), a.UploadImage)

	return a, nil
}

func makeLogger() {
	cfg := zap.NewDevelopmentConfig()
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cfg.EncoderConfig.EncodeTime = func(t time.Time, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + t.Format("15:04:05.000") + reset)
	}
	cfg.EncoderConfig.EncodeCaller = func(ec zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(gray + ec.TrimmedPath() + reset)
	}

	cfg.DisableStacktrace = true

	if lvl, err := zapcore.ParseLevel(viper.GetString("app.log_level")); err == nil {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	log, _ := cfg.Build()
	zap.ReplaceGlobals(log)
}

func cacheFor(sec int) gin.HandlerFunc {
	return cache.CacheByRequestURI(store, time.Second*time.Duration(sec))
}
