// One-time lesson block migration.
//
// Reshapes every active legacy lesson into typed, section-tagged content
// blocks. Safe to re-run: already-migrated lessons are skipped. The same
// job is reachable over POST /api/admin/migration/run.
//
// 用法: go run scripts/migrate_lessons/main.go

package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"skillforge_backend/internal/config"
	"skillforge_backend/internal/repository"
	"skillforge_backend/internal/service"
	"skillforge_backend/pkg/database"
	"skillforge_backend/pkg/logger"

	"gopkg.in/yaml.v3"
)

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("无法读取配置文件: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("解析配置文件失败: %v", err)
	}

	logger.InitLogger(&cfg)
	defer logger.Log.Sync()

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
	if err != nil {
		log.Fatalf("数据库连接失败: %v", err)
	}

	migration := service.NewLessonMigrationService(repository.NewLessonRepository(db), db)

	log.Println("Starting lesson block migration...")
	summary, err := migration.Run(context.Background())
	if err != nil {
		log.Fatalf("Migration aborted: %v", err)
	}

	fmt.Printf("Candidates:      %d\n", summary.Candidates)
	fmt.Printf("Migrated:        %d\n", summary.Migrated)
	fmt.Printf("Failed:          %d\n", summary.Failed)
	fmt.Printf("Blocks created:  %d\n", summary.BlocksCreated)
	fmt.Printf("Total minutes:   %d\n", summary.TotalMinutes)
	fmt.Printf("Avg blocks/lesson: %.1f\n", summary.AverageBlocks())

	if summary.Failed > 0 {
		os.Exit(1)
	}
}
