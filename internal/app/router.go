package app

import (
	"study_planner_backend/docs"
	"study_planner_backend/internal/config"
	"study_planner_backend/internal/middleware"
	"study_planner_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, s *services, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共路由(无需会话)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/sessions", c.session.StartSession)
	}

	// 需要会话令牌的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.SessionMiddleware(cfg, s.session))
	{
		authGroup.DELETE("/sessions", c.session.EndSession)

		authGroup.GET("/schedule/daily", c.planner.GetDailySchedule)
		authGroup.GET("/schedule/weekly", c.planner.GetWeeklySchedule)
		authGroup.GET("/reminders", c.planner.GetReminders)
		authGroup.GET("/recommendations/:subject", c.planner.GetRecommendations)

		authGroup.GET("/profile", c.planner.GetProfile)
		authGroup.GET("/progress", c.planner.GetSubjectProgress)
		authGroup.PUT("/subjects/:subject/progress", c.planner.UpdateProgress)
		authGroup.POST("/subjects/:subject/complete", c.planner.CompleteSession)
	}
}
