// Package api contains all endpoints available
package api

import (
	"fmt"
	"net/http"
	"time"

	"twitchplanner/backend/db"
	"twitchplanner/backend/metrics"
	"twitchplanner/backend/middleware"
	"twitchplanner/backend/security"

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
	DB      *gorm.DB
	Router  *gin.Engine
	Hasher  *security.PasswordHasher
	Metrics *metrics.Collector
}

func NewRouter() (*API, error) {
	a := &API{
		Hasher:  security.New(),
		Metrics: metrics.NewCollector(),
	}

	db, err := db.New()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database, %w", err)
	}
	a.DB = db

	makeLogger()

	router := gin.New()
	a.Router = router

	router.Use(
		cors.New(cors.Config{
			AllowOrigins:     viper.GetStringSlice("cors.allowed_origins"),
			AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}),
		gin.Recovery(),
		middleware.NewRequestIDMiddleware(),
		a.Metrics.Middleware(),
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
	router.RedirectFixedPath = true

	jwt := middleware.NewJWTMiddleware()
	bodyLimit := middleware.BodySizeLimiter(viper.GetInt64("upload.max_body_size"))

	main := router.Group("/api", bodyLimit)
	{
		// GET /api			-> API info, safe to cache since it's identical for everyone
		main.GET("", cacheFor(60), a.Info)

		// HEAD /api/heartbeat 		-> Used to check if the server is alive
		main.HEAD("/heartbeat", a.Heartbeat)

		// HEAD /api/validate		-> Validates a JWT token
		main.HEAD("/validate", jwt, a.Validate)

		// GET /api/metrics		-> Prometheus scrape endpoint
		main.GET("/metrics", a.Metrics.Handler())
	}

	auth := main.Group("/auth")
	{
		// POST /api/auth/register 	-> Registers a new user and returns a JWT token
		auth.POST("/register", a.AuthRegister)

		// POST /api/auth/login 	-> Logs in a user and returns a JWT token
		auth.POST("/login", a.AuthLogin)

		// GET /api/auth/profile	-> Returns the logged in user
		auth.GET("/profile", jwt, a.UserFetch)
	}

	users := main.Group("/users", jwt)
	{
		// GET /api/users/profile	-> Returns the logged in user
		users.GET("/profile", a.UserFetch)

		// PUT /api/users/profile	-> Partially updates the logged in user
		users.PUT("/profile", a.UserUpdate)
	}

	plannings := main.Group("/plannings", jwt)
	{
		// GET /api/plannings		-> Lists the user's plannings
		plannings.GET("", a.PlanningList)

		// POST /api/plannings		-> Creates a new planning
		plannings.POST("", a.PlanningCreate)

		// GET /api/plannings/:id	-> Returns one planning with its events
		plannings.GET("/:id", a.PlanningFetch)

		// PUT /api/plannings/:id	-> Partially updates a planning
		plannings.PUT("/:id", a.PlanningUpdate)

		// DELETE /api/plannings/:id	-> Deletes a planning and its events
		plannings.DELETE("/:id", a.PlanningDelete)

		// GET /api/plannings/:id/events	-> Lists a planning's events in grid order
		plannings.GET("/:id/events", a.EventList)

		// POST /api/plannings/:id/events	-> Adds an event to a planning
		plannings.POST("/:id/events", a.EventCreate)
	}

	events := main.Group("/events", jwt)
	{
		// PUT /api/events/:id		-> Partially updates an event
		events.PUT("/:id", a.EventUpdate)

		// DELETE /api/events/:id	-> Deletes an event
		events.DELETE("/:id", a.EventDelete)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Route not found",
		})
	})

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
