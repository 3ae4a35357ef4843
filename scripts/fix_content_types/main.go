// Content type repair pass.
//
// Re-examines blocks classified as code and reclassifies the ones that
// are mostly prose back to text. Idempotent; run it after migration has
// fully completed rather than alongside it.
//
// 用法: go run scripts/fix_content_types/main.go

package main

import (
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

	corrector := service.NewContentTypeService(repository.NewContentBlockRepository(db))

	log.Println("Scanning code blocks...")
	fixed, err := corrector.FixCodeBlocks()
	if err != nil {
		log.Fatalf("Correction failed: %v", err)
	}

	fmt.Printf("Blocks reclassified to text: %d\n", fixed)
}
