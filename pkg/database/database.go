package database

import (
	"fmt"
	"log"

	"skillforge_backend/internal/config"
	"skillforge_backend/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig, mode string) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.DBName,
		cfg.SSLMode,
	)

	logLevel := logger.Info
	if mode == "release" {
		logLevel = logger.Warn
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.Category{},
		&model.Topic{},
		&model.Lesson{},
		&model.ContentBlock{},
		&model.ModularLesson{},
		&model.LessonBlock{},
		&model.BlockCompletion{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	// 默认分类（首次启动时插入）
	var count int64
	db.Model(&model.Category{}).Count(&count)
	if count == 0 {
		defaultCategories := []model.Category{
			{Name: "Getting Started", Slug: "getting-started", Description: "Installation and first steps", Order: 1},
			{Name: "Core Concepts", Slug: "core-concepts", Description: "Agents, swarms and coordination", Order: 2},
			{Name: "Advanced Usage", Slug: "advanced-usage", Description: "Workflows, automation and tuning", Order: 3},
		}
		for _, c := range defaultCategories {
			db.Create(&c)
		}
	}

	return db, nil
}
