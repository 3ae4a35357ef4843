package model

import "time"

// BlockCompletion is the source of truth for progress. The aggregate
// percentage is recomputed from these rows on every read and never stored
// as a running counter.
type BlockCompletion struct {
	BaseModel
	UserID      uint       `gorm:"index;uniqueIndex:idx_user_lesson_block,priority:1" json:"userId"`
	LessonID    uint       `gorm:"index;uniqueIndex:idx_user_lesson_block,priority:2" json:"lessonId"`
	BlockID     string     `gorm:"type:varchar(36);uniqueIndex:idx_user_lesson_block,priority:3" json:"blockId"`
	Completed   bool       `gorm:"default:false" json:"completed"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

func (BlockCompletion) TableName() string {
	return "block_completions"
}
