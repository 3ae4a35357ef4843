package repository

import (
	"time"

	"skillforge_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository struct {
	DB *gorm.DB
}

func NewProgressRepository(db *gorm.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

// SetCompletion upserts the completion flag for one (user, lesson, block).
func (r *ProgressRepository) SetCompletion(userID, lessonID uint, blockID string, completed bool) error {
	row := model.BlockCompletion{
		UserID:    userID,
		LessonID:  lessonID,
		BlockID:   blockID,
		Completed: completed,
	}
	if completed {
		now := time.Now()
		row.CompletedAt = &now
	}

	return r.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"},
			{Name: "lesson_id"},
			{Name: "block_id"},
		},
		DoUpdates: clause.AssignmentColumns([]string{"completed", "completed_at", "updated_at"}),
	}).Create(&row).Error
}

// CompletedBlockIDs returns the set of blocks the user has completed in a
// lesson. Progress percentages are always derived from this set, never
// from a stored counter.
func (r *ProgressRepository) CompletedBlockIDs(userID, lessonID uint) (map[string]bool, error) {
	var ids []string
	err := r.DB.Model(&model.BlockCompletion{}).
		Where("user_id = ? AND lesson_id = ? AND completed = ?", userID, lessonID, true).
		Pluck("block_id", &ids).Error
	if err != nil {
		return nil, err
	}

	completed := make(map[string]bool, len(ids))
	for _, id := range ids {
		completed[id] = true
	}
	return completed, nil
}
