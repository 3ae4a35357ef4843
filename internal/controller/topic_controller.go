package controller

import (
	"errors"

	"skillforge_backend/internal/service"
	"skillforge_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type TopicController struct {
	TopicService *service.TopicService
}

func NewTopicController(topicService *service.TopicService) *TopicController {
	return &TopicController{TopicService: topicService}
}

// GetCategories godoc
// @Summary List lesson categories
// @Tags catalog
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/categories [get]
func (c *TopicController) GetCategories(ctx *gin.Context) {
	categories, err := c.TopicService.ListCategories()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, categories)
}

// GetTopics godoc
// @Summary List active topics
// @Tags catalog
// @Produce json
// @Param categoryId query int false "Category ID"
// @Success 200 {object} util.Response
// @Router /api/topics [get]
func (c *TopicController) GetTopics(ctx *gin.Context) {
	categoryID := util.MustParseUint(ctx.Query("categoryId"))

	topics, err := c.TopicService.ListTopics(categoryID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, topics)
}

// GetTopic godoc
// @Summary Get one topic
// @Tags catalog
// @Produce json
// @Param id path int true "Topic ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/topics/{id} [get]
func (c *TopicController) GetTopic(ctx *gin.Context) {
	topic, err := c.TopicService.GetTopic(util.MustParseUint(ctx.Param("id")))
	if errors.Is(err, util.ErrTopicNotFound) {
		util.NotFound(ctx)
		return
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, topic)
}
