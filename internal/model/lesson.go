package model

import (
	"encoding/json"
	"strings"

	"gorm.io/datatypes"
)

// MigrationStatus tracks whether a legacy lesson row has been reshaped
// into the modular block schema.
type MigrationStatus string

const (
	MigrationLegacy   MigrationStatus = "legacy"
	MigrationMigrated MigrationStatus = "migrated"
)

// Lesson is a legacy monolithic lesson row. Its content column holds the
// original HTML, either as {"html": "..."} or as a bare string. Rows are
// never deleted by migration; they are stamped migrated and kept.
type Lesson struct {
	BaseModel
	TopicID                  uint            `gorm:"index" json:"topicId"`
	Name                     string          `gorm:"size:255;not null" json:"name"`
	Slug                     string          `gorm:"size:255;uniqueIndex" json:"slug"`
	Description              string          `gorm:"type:text" json:"description"`
	Content                  datatypes.JSON  `gorm:"type:jsonb" json:"content"`
	LessonType               string          `gorm:"size:50" json:"lessonType"`
	EstimatedDurationMinutes int             `gorm:"default:0" json:"estimatedDurationMinutes"`
	IsActive                 bool            `gorm:"default:true;index" json:"isActive"`
	MigrationStatus          MigrationStatus `gorm:"size:20;default:'legacy';index" json:"migrationStatus"`
}

func (Lesson) TableName() string {
	return "lessons"
}

// HTMLContent unwraps the content column. Legacy rows are inconsistent:
// some store {"html": "..."}, some a JSON-encoded string, some raw text.
// Malformed content is returned as-is rather than rejected.
func (l *Lesson) HTMLContent() string {
	raw := []byte(l.Content)
	if len(raw) == 0 {
		return ""
	}

	var wrapped struct {
		HTML string `json:"html"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.HTML != "" {
		return wrapped.HTML
	}

	var plain string
	if err := json.Unmarshal(raw, &plain); err == nil {
		return plain
	}

	return strings.TrimSpace(string(raw))
}

// ModularLesson is the migrated lesson record. It reuses the legacy
// lesson's ID so downstream consumers keep working against the same key.
type ModularLesson struct {
	ID                       uint   `gorm:"primaryKey;autoIncrement:false" json:"id"`
	TopicID                  uint   `gorm:"index" json:"topicId"`
	Name                     string `gorm:"size:255;not null" json:"name"`
	Slug                     string `gorm:"size:255;uniqueIndex" json:"slug"`
	Description              string `gorm:"type:text" json:"description"`
	EstimatedDurationMinutes int    `gorm:"default:0" json:"estimatedDurationMinutes"`
	Type                     string `gorm:"size:20;default:'modular'" json:"type"`
}

func (ModularLesson) TableName() string {
	return "lessons_v2"
}
