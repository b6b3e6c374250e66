package router

import (
	"github.com/cuongbtq/jobboard/internal/api/handler"
	"github.com/cuongbtq/jobboard/internal/api/policy"
	"github.com/cuongbtq/jobboard/internal/config"
	"github.com/cuongbtq/jobboard/shared/metrics"
	"github.com/gin-gonic/gin"
)

// SetupRouter configures and returns the Gin router with all routes
func SetupRouter(deps *handler.Dependencies) *gin.Engine {
	cfg := deps.Config
	if cfg == nil {
		cfg = &config.Config{}
	}

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(LoggerMiddleware(deps.Logger))
	r.Use(MetricsMiddleware())
	r.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	systemHandler := handler.NewSystemHandler(deps)
	r.GET("/health", systemHandler.Health)
	r.GET("/test", systemHandler.Test)
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	authenticate := Authenticate(deps.Auth, deps.Logger)
	require := func(action policy.Action) gin.HandlerFunc {
		return Authorize(action, deps.Logger)
	}

	authHandler := handler.NewAuthHandler(deps)
	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", RateLimit(cfg.Auth.LoginRatePerMinute, cfg.Auth.LoginBurst), authHandler.Login)
		auth.GET("/me", authenticate, require(policy.ActionViewProfile), authHandler.Me)
	}

	jobHandler := handler.NewJobHandler(deps)
	jobs := r.Group("/jobs")
	{
		jobs.GET("", jobHandler.ListJobs)
		jobs.GET("/:id", jobHandler.GetJob)
		jobs.POST("", authenticate, require(policy.ActionCreateJob), jobHandler.CreateJob)
	}

	applicationHandler := handler.NewApplicationHandler(deps)
	applications := r.Group("/applications", authenticate)
	{
		applications.GET("", require(policy.ActionListApplications), applicationHandler.ListApplications)
		applications.POST("", require(policy.ActionApply), applicationHandler.CreateApplication)
		// ownership is checked once the application is loaded
		applications.GET("/:id", applicationHandler.GetApplication)
	}

	adminHandler := handler.NewAdminHandler(deps)
	admin := r.Group("/admin", authenticate, require(policy.ActionViewAdmin))
	{
		admin.GET("/stats", adminHandler.Stats)
		admin.GET("/activity", adminHandler.Activity)
	}

	return r
}
