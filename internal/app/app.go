package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"study_planner_backend/internal/config"
	"study_planner_backend/internal/controller"
	"study_planner_backend/internal/repository"
	"study_planner_backend/internal/service"
	"study_planner_backend/pkg/configwatcher"
	"study_planner_backend/pkg/logger"
	"study_planner_backend/pkg/monitoring"
	"study_planner_backend/pkg/security"
	"study_planner_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type App struct {
	Config  *config.Config
	Router  *gin.Engine
	Catalog *repository.RecommendationCatalog
}

type services struct {
	session        *service.SessionService
	schedule       *service.ScheduleService
	reminder       *service.ReminderService
	recommendation *service.RecommendationService
	progress       *service.ProgressService
}

type controllers struct {
	session *controller.SessionController
	planner *controller.PlannerController
	health  *controller.HealthController
}

func (a *App) initServices(cfg *config.Config, catalog *repository.RecommendationCatalog) *services {
	return &services{
		session:        service.NewSessionService(cfg),
		schedule:       service.NewScheduleService(),
		reminder:       service.NewReminderService(),
		recommendation: service.NewRecommendationService(catalog),
		progress:       service.NewProgressService(),
	}
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		session: controller.NewSessionController(s.session),
		planner: controller.NewPlannerController(s.schedule, s.reminder, s.recommendation, s.progress),
		health:  controller.NewHealthController(),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// watchCatalog 推荐目录热更新：文件变更后原子替换，失败时保留旧目录
func (a *App) watchCatalog(cfg *config.Config, catalog *repository.RecommendationCatalog) {
	go configwatcher.WatchFile(cfg.Planner.CatalogPath, func(path string) {
		if err := catalog.Reload(path); err != nil {
			logger.Log.Error("Failed to reload recommendation catalog", zap.Error(err))
			return
		}
		logger.Log.Info("Recommendation catalog reloaded", zap.String("path", path))
	})
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	catalog, err := repository.LoadRecommendationCatalog(cfg.Planner.CatalogPath)
	if err != nil {
		logger.Log.Fatal("Failed to load recommendation catalog", zap.Error(err))
	}

	// 启动时校验学生快照，配置错误尽早暴露
	snapshot, err := repository.LoadSnapshot(cfg.Planner.SnapshotPath)
	if err != nil {
		logger.Log.Fatal("Failed to load student snapshot", zap.Error(err))
	}
	if _, err := repository.NewPerformanceStore(snapshot); err != nil {
		logger.Log.Fatal("Invalid student snapshot", zap.Error(err))
	}

	app := &App{
		Config:  cfg,
		Catalog: catalog,
	}

	services := app.initServices(cfg, catalog)
	controllers := app.initControllers(services)

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("study-planner", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, services, cfg)

	if cfg.Planner.WatchCatalog {
		app.watchCatalog(cfg, catalog)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
