package repository

import (
	"skillforge_backend/internal/model"

	"gorm.io/gorm"
)

type LessonBlockRepository struct {
	DB *gorm.DB
}

func NewLessonBlockRepository(db *gorm.DB) *LessonBlockRepository {
	return &LessonBlockRepository{DB: db}
}

// LinkedBlock is one lesson_blocks row joined with its content block.
type LinkedBlock struct {
	Block      model.ContentBlock
	Section    model.Section
	OrderIndex int
	Required   bool
}

// FindByLessonID returns every block linked to the lesson together with
// its link metadata. Rows come back in link order; grouping into sections
// is the assembler's job.
func (r *LessonBlockRepository) FindByLessonID(lessonID uint) ([]LinkedBlock, error) {
	var links []model.LessonBlock
	err := r.DB.
		Where("lesson_id = ?", lessonID).
		Order("order_index ASC").
		Find(&links).Error
	if err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(links))
	for _, l := range links {
		ids = append(ids, l.BlockID)
	}

	var blocks []model.ContentBlock
	if err := r.DB.Where("id IN ?", ids).Find(&blocks).Error; err != nil {
		return nil, err
	}
	byID := make(map[string]model.ContentBlock, len(blocks))
	for _, b := range blocks {
		byID[b.ID] = b
	}

	linked := make([]LinkedBlock, 0, len(links))
	for _, l := range links {
		block, ok := byID[l.BlockID]
		if !ok {
			// Link to a hard-deleted block; skip rather than fail the read.
			continue
		}
		linked = append(linked, LinkedBlock{
			Block:      block,
			Section:    l.Section,
			OrderIndex: l.OrderIndex,
			Required:   l.Required,
		})
	}
	return linked, nil
}

func (r *LessonBlockRepository) Exists(lessonID uint, blockID string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.LessonBlock{}).
		Where("lesson_id = ? AND block_id = ?", lessonID, blockID).
		Count(&count).Error
	return count > 0, err
}

func (r *LessonBlockRepository) CountByLessonID(lessonID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.LessonBlock{}).
		Where("lesson_id = ?", lessonID).
		Count(&count).Error
	return count, err
}
