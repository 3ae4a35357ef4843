package app

import (
	"skillforge_backend/docs"
	"skillforge_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		api.GET("/categories", c.topic.GetCategories)
		api.GET("/topics", c.topic.GetTopics)
		api.GET("/topics/:id", c.topic.GetTopic)

		api.GET("/lessons", c.lesson.GetLessons)
		api.GET("/lessons/:id", c.lesson.GetLesson)
		api.POST("/lessons/:id/blocks/:blockId/complete", c.lesson.CompleteBlock)
	}

	// 管理端批处理接口（部署层面做访问控制）
	admin := router.Group("/api/admin")
	{
		admin.POST("/migration/run", c.migration.RunMigration)
		admin.POST("/migration/fix-content-types", c.migration.FixContentTypes)
	}
}
