package model

import (
	"encoding/json"

	"gorm.io/datatypes"
)

type BlockType string

const (
	BlockText        BlockType = "text"
	BlockCode        BlockType = "code"
	BlockInteractive BlockType = "interactive"
	BlockVideo       BlockType = "video"
	BlockQuiz        BlockType = "quiz"
	BlockExercise    BlockType = "exercise"
	BlockAssessment  BlockType = "assessment"
)

type Section string

const (
	SectionIntroduction Section = "introduction"
	SectionContent      Section = "content"
	SectionPractice     Section = "practice"
	SectionAssessment   Section = "assessment"
	SectionClosure      Section = "closure"
)

// Sections returns the five lesson phases in display order. The read path
// always emits all of them, empty or not.
func Sections() []Section {
	return []Section{
		SectionIntroduction,
		SectionContent,
		SectionPractice,
		SectionAssessment,
		SectionClosure,
	}
}

// BlockPayload is the shape of the content column. The variant is keyed by
// the block's Type field, not by probing which sub-object happens to be
// present.
type BlockPayload struct {
	Format  string `json:"format"`
	Content string `json:"content"`
}

// ContentBlock is the smallest unit of lesson content. A block may be
// linked into more than one lesson, so it carries no lesson foreign key.
type ContentBlock struct {
	UUIDBase
	Title                string         `gorm:"size:255;not null" json:"title"`
	Type                 BlockType      `gorm:"size:20;not null;index" json:"type"`
	Content              datatypes.JSON `gorm:"type:jsonb" json:"content"`
	EstimatedTimeMinutes int            `gorm:"default:2" json:"estimatedTimeMinutes"`
	Difficulty           string         `gorm:"size:20;default:'beginner'" json:"difficulty"`
	Tags                 datatypes.JSON `gorm:"type:jsonb" json:"tags"`
	IsReusable           bool           `gorm:"default:false" json:"isReusable"`
	Status               string         `gorm:"size:20;default:'draft'" json:"status"`
}

func (ContentBlock) TableName() string {
	return "content_blocks"
}

// Payload decodes the content column. An undecodable column yields a zero
// payload, never an error surface.
func (b *ContentBlock) Payload() BlockPayload {
	var p BlockPayload
	_ = json.Unmarshal(b.Content, &p)
	return p
}

// TagList decodes the tags column.
func (b *ContentBlock) TagList() []string {
	var tags []string
	_ = json.Unmarshal(b.Tags, &tags)
	return tags
}

// LessonBlock links a block into one lesson at one position of one
// section. OrderIndex is unique within (lesson, section) and defines
// render order.
type LessonBlock struct {
	LessonID   uint    `gorm:"primaryKey;autoIncrement:false;uniqueIndex:idx_lesson_section_order,priority:1" json:"lessonId"`
	BlockID    string  `gorm:"primaryKey;type:varchar(36)" json:"blockId"`
	Section    Section `gorm:"size:20;not null;uniqueIndex:idx_lesson_section_order,priority:2" json:"section"`
	OrderIndex int     `gorm:"not null;uniqueIndex:idx_lesson_section_order,priority:3" json:"orderIndex"`
	Required   bool    `gorm:"default:true" json:"required"`
}

func (LessonBlock) TableName() string {
	return "lesson_blocks"
}
