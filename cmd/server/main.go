package main

import (
	"log"

	"github.com/devfolio/internal/config"
	"github.com/devfolio/internal/db"
	"github.com/devfolio/internal/handler"
	"github.com/devfolio/internal/router"
	"github.com/joho/godotenv"
)

func main() {
	// 本地开发时从 .env 读取配置，文件不存在不算错误
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	cfg := config.Load()

	// 初始化数据库
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// 环境变量提供管理员时确保其存在
	if err := db.EnsureUser(cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("failed to ensure admin user: %v", err)
	}

	api := handler.NewAPI(db.DB, cfg)

	// 设置并运行 Gin 服务器
	r := router.Setup(cfg, api)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
