package routes

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/harian/checklistd/checklist"
	"github.com/harian/checklistd/config"
	"github.com/harian/checklistd/controllers"
	"github.com/harian/checklistd/middleware"
	"github.com/harian/checklistd/store"
	"github.com/harian/checklistd/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(db *gorm.DB) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	// Replace default console logger with file-based zap logger
	gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err == nil {
		r.Use(utils.Ginzap(gl, time.RFC3339, true))
		r.Use(utils.RecoveryWithZap(gl, false))
	} else {
		// fallback to default recovery if logger failed to init
		r.Use(gin.Recovery())
	}

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}

	r.Use(cors.New(corsCfg))

	r.GET("/health", func(ctx *gin.Context) {
		utils.Success(ctx, gin.H{"status": "ok"})
	})

	svc := checklist.NewService(
		store.NewTemplateStore(db),
		store.NewDailyStore(db),
		utils.Sugar,
		cfg.RecapWindowDays,
		cfg.StreakWindowDays,
	)

	authController := controllers.NewAuthController(db)
	templateController := controllers.NewTemplateController(svc)
	dailyController := controllers.NewDailyController(svc)
	recapController := controllers.NewRecapController(svc)

	api := r.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.Use(middleware.RateLimitMiddleware())
	authGroup.POST("/register", authController.Register)
	authGroup.POST("/login", authController.Login)
	authGroup.POST("/logout", middleware.AuthRequired(), authController.Logout)
	authGroup.GET("/me", middleware.AuthRequired(), authController.Me)

	protected := api.Group("")
	protected.Use(middleware.AuthRequired(), middleware.RateLimitMiddleware())

	protected.GET("/template", templateController.Get)
	protected.PUT("/template", templateController.Replace)
	protected.POST("/template/items", templateController.AddItem)
	protected.PATCH("/template/items/:id", templateController.EditItem)
	protected.DELETE("/template/items/:id", templateController.RemoveItem)
	protected.POST("/template/reset", templateController.Reset)

	protected.GET("/today", dailyController.Today)
	protected.POST("/today/tasks", dailyController.AddTask)
	protected.PATCH("/today/tasks/:id", dailyController.EditTask)
	protected.POST("/today/tasks/:id/toggle", dailyController.ToggleTask)
	protected.DELETE("/today/tasks/:id", dailyController.RemoveTask)
	protected.POST("/today/complete-all", dailyController.CompleteAll)
	protected.POST("/today/uncomplete-all", dailyController.UncompleteAll)
	protected.POST("/today/reset", dailyController.Reset)

	protected.GET("/recap", recapController.Recap)
	protected.GET("/recap/export", recapController.Export)
	protected.GET("/streak", recapController.Streak)

	return r
}
