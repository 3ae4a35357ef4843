package repository

import (
	"errors"

	"skillforge_backend/internal/model"
	"skillforge_backend/internal/util"

	"gorm.io/gorm"
)

type LessonRepository struct {
	DB *gorm.DB
}

func NewLessonRepository(db *gorm.DB) *LessonRepository {
	return &LessonRepository{DB: db}
}

// FindMigrationCandidates returns active lessons that have not been
// migrated yet. Already-migrated lessons are excluded, which is what makes
// the batch job re-runnable.
func (r *LessonRepository) FindMigrationCandidates() ([]model.Lesson, error) {
	var lessons []model.Lesson
	err := r.DB.
		Where("is_active = ? AND migration_status = ?", true, model.MigrationLegacy).
		Order("id ASC").
		Find(&lessons).Error
	return lessons, err
}

func (r *LessonRepository) FindByID(id uint) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.DB.First(&lesson, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrLessonNotFound
	}
	if err != nil {
		return nil, err
	}
	return &lesson, nil
}

func (r *LessonRepository) CountByStatus(status model.MigrationStatus) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Lesson{}).
		Where("migration_status = ?", status).
		Count(&count).Error
	return count, err
}
