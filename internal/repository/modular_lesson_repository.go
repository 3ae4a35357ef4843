package repository

import (
	"errors"

	"skillforge_backend/internal/model"
	"skillforge_backend/internal/util"

	"gorm.io/gorm"
)

type ModularLessonRepository struct {
	DB *gorm.DB
}

func NewModularLessonRepository(db *gorm.DB) *ModularLessonRepository {
	return &ModularLessonRepository{DB: db}
}

func (r *ModularLessonRepository) FindByID(id uint) (*model.ModularLesson, error) {
	var lesson model.ModularLesson
	err := r.DB.First(&lesson, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrLessonNotFound
	}
	if err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (r *ModularLessonRepository) List(topicID uint, page, limit int) ([]model.ModularLesson, int64, error) {
	query := r.DB.Model(&model.ModularLesson{})
	if topicID > 0 {
		query = query.Where("topic_id = ?", topicID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var lessons []model.ModularLesson
	err := query.Order("id ASC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&lessons).Error
	return lessons, total, err
}
