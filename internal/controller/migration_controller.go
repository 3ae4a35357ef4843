package controller

import (
	"skillforge_backend/internal/service"
	"skillforge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type MigrationController struct {
	MigrationService   *service.LessonMigrationService
	ContentTypeService *service.ContentTypeService
}

func NewMigrationController(migrationService *service.LessonMigrationService, contentTypeService *service.ContentTypeService) *MigrationController {
	return &MigrationController{
		MigrationService:   migrationService,
		ContentTypeService: contentTypeService,
	}
}

// RunMigration godoc
// @Summary Run the lesson block migration batch
// @Description Migrates every active legacy lesson into content blocks. Safe to re-run; already-migrated lessons are skipped.
// @Tags admin
// @Produce json
// @Success 200 {object} util.Response{data=service.MigrationSummary}
// @Router /api/admin/migration/run [post]
func (c *MigrationController) RunMigration(ctx *gin.Context) {
	summary, err := c.MigrationService.Run(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, summary)
}

// FixContentTypes godoc
// @Summary Reclassify mostly-prose code blocks back to text
// @Tags admin
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/admin/migration/fix-content-types [post]
func (c *MigrationController) FixContentTypes(ctx *gin.Context) {
	fixed, err := c.ContentTypeService.FixCodeBlocks()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"fixedCount": fixed})
}
