package repository

import (
	"errors"

	"skillforge_backend/internal/model"
	"skillforge_backend/internal/util"

	"gorm.io/gorm"
)

type TopicRepository struct {
	DB *gorm.DB
}

func NewTopicRepository(db *gorm.DB) *TopicRepository {
	return &TopicRepository{DB: db}
}

func (r *TopicRepository) ListCategories() ([]model.Category, error) {
	var categories []model.Category
	err := r.DB.Order("\"order\" ASC, id ASC").Find(&categories).Error
	return categories, err
}

func (r *TopicRepository) ListTopics(categoryID uint) ([]model.Topic, error) {
	query := r.DB.Where("is_active = ?", true)
	if categoryID > 0 {
		query = query.Where("category_id = ?", categoryID)
	}

	var topics []model.Topic
	err := query.Order("\"order\" ASC, id ASC").Find(&topics).Error
	return topics, err
}

func (r *TopicRepository) FindByID(id uint) (*model.Topic, error) {
	var topic model.Topic
	err := r.DB.First(&topic, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrTopicNotFound
	}
	if err != nil {
		return nil, err
	}
	return &topic, nil
}
