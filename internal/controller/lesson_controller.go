package controller

import (
	"errors"

	"skillforge_backend/internal/service"
	"skillforge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LessonController struct {
	LessonService   *service.LessonService
	ProgressService *service.ProgressService
}

func NewLessonController(lessonService *service.LessonService, progressService *service.ProgressService) *LessonController {
	return &LessonController{
		LessonService:   lessonService,
		ProgressService: progressService,
	}
}

// GetLessons godoc
// @Summary List modular lessons
// @Description Paginated catalog of migrated lessons, optionally filtered by topic
// @Tags lessons
// @Produce json
// @Param topicId query int false "Topic ID"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Page size" default(20)
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Router /api/lessons [get]
func (c *LessonController) GetLessons(ctx *gin.Context) {
	topicID := util.MustParseUint(ctx.Query("topicId"))
	page := int(util.MustParseUint(ctx.DefaultQuery("page", "1")))
	limit := int(util.MustParseUint(ctx.DefaultQuery("limit", "20")))

	lessons, total, err := c.LessonService.List(topicID, page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  lessons,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// GetLesson godoc
// @Summary Get the assembled modular view of a lesson
// @Description Blocks grouped into the five sections, with per-user progress when userId is supplied
// @Tags lessons
// @Produce json
// @Param id path int true "Lesson ID"
// @Param userId query int false "User ID for completion flags"
// @Success 200 {object} util.Response{data=service.ModularLessonView}
// @Failure 404 {object} util.Response
// @Router /api/lessons/{id} [get]
func (c *LessonController) GetLesson(ctx *gin.Context) {
	lessonID := util.MustParseUint(ctx.Param("id"))
	userID := util.MustParseUint(ctx.Query("userId"))

	view, err := c.LessonService.Assemble(ctx.Request.Context(), lessonID, userID)
	if errors.Is(err, util.ErrLessonNotFound) {
		util.NotFound(ctx)
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, view)
}

type completeBlockRequest struct {
	UserID    uint `json:"userId" binding:"required"`
	Completed bool `json:"completed"`
}

// CompleteBlock godoc
// @Summary Mark a block complete or incomplete
// @Tags lessons
// @Accept json
// @Produce json
// @Param id path int true "Lesson ID"
// @Param blockId path string true "Block ID"
// @Param body body completeBlockRequest true "Completion flag"
// @Success 200 {object} util.Response{data=service.LessonProgress}
// @Failure 404 {object} util.Response
// @Router /api/lessons/{id}/blocks/{blockId}/complete [post]
func (c *LessonController) CompleteBlock(ctx *gin.Context) {
	var req completeBlockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	lessonID := util.MustParseUint(ctx.Param("id"))
	blockID := ctx.Param("blockId")

	progress, err := c.ProgressService.MarkBlock(req.UserID, lessonID, blockID, req.Completed)
	if errors.Is(err, util.ErrLessonNotFound) || errors.Is(err, util.ErrBlockNotInLesson) {
		util.NotFound(ctx)
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, progress)
}
