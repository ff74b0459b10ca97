// @title Study Planner 后端 API
// @version 1.0
// @description 基于学习表现的个性化学习计划与推荐服务。
// @termsOfService http://swagger.io/terms/

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"study_planner_backend/internal/app"
	"study_planner_backend/internal/config"
	"study_planner_backend/pkg/logger"
)

func main() {
	configPath := flag.String("config", "configs", "配置文件目录")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	application.Run()
}
