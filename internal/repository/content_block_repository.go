package repository

import (
	"errors"

	"skillforge_backend/internal/model"
	"skillforge_backend/internal/util"

	"gorm.io/gorm"
)

type ContentBlockRepository struct {
	DB *gorm.DB
}

func NewContentBlockRepository(db *gorm.DB) *ContentBlockRepository {
	return &ContentBlockRepository{DB: db}
}

func (r *ContentBlockRepository) FindByID(id string) (*model.ContentBlock, error) {
	var block model.ContentBlock
	err := r.DB.First(&block, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrBlockNotFound
	}
	if err != nil {
		return nil, err
	}
	return &block, nil
}

func (r *ContentBlockRepository) FindByType(blockType model.BlockType) ([]model.ContentBlock, error) {
	var blocks []model.ContentBlock
	err := r.DB.Where("type = ?", blockType).Order("created_at ASC").Find(&blocks).Error
	return blocks, err
}

func (r *ContentBlockRepository) UpdateType(id string, blockType model.BlockType) error {
	return r.DB.Model(&model.ContentBlock{}).
		Where("id = ?", id).
		Update("type", blockType).Error
}
