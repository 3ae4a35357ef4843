// @title SkillForge API
// @version 1.0
// @description Lesson delivery backend for the SkillForge learning platform.

// @host localhost:8080
// @BasePath /api

package main

import (
	"flag"
	"log"

	"skillforge_backend/internal/app"
	"skillforge_backend/internal/config"
	"skillforge_backend/pkg/logger"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "只执行数据库表结构迁移，完成后退出")
	migrate := flag.Bool("migrate", false, "启动时强制执行数据库表结构迁移")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *migrateOnly {
		log.Println("Schema migration completed, exiting")
		return
	}

	application.Run()
}
