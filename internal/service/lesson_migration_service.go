package service

import (
	"context"
	"encoding/json"

	"skillforge_backend/internal/model"
	"skillforge_backend/internal/repository"
	"skillforge_backend/pkg/logger"
	"skillforge_backend/pkg/monitoring"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// LessonMigrationService reshapes legacy monolithic lessons into linked
// content blocks. Each lesson is migrated inside its own transaction, so
// a failure rolls that lesson back completely and the batch moves on.
type LessonMigrationService struct {
	Lessons *repository.LessonRepository
	DB      *gorm.DB
}

func NewLessonMigrationService(lessons *repository.LessonRepository, db *gorm.DB) *LessonMigrationService {
	return &LessonMigrationService{Lessons: lessons, DB: db}
}

// MigrationSummary is the batch run's accumulator. It is a plain value
// threaded through the loop, so parallel runners could keep one each and
// merge at the end.
type MigrationSummary struct {
	Candidates    int `json:"candidates"`
	Migrated      int `json:"migrated"`
	Failed        int `json:"failed"`
	BlocksCreated int `json:"blocksCreated"`
	TotalMinutes  int `json:"totalMinutes"`
}

// AverageBlocks is blocks per successfully migrated lesson.
func (s MigrationSummary) AverageBlocks() float64 {
	if s.Migrated == 0 {
		return 0
	}
	return float64(s.BlocksCreated) / float64(s.Migrated)
}

func (s *MigrationSummary) merge(other MigrationSummary) {
	s.Candidates += other.Candidates
	s.Migrated += other.Migrated
	s.Failed += other.Failed
	s.BlocksCreated += other.BlocksCreated
	s.TotalMinutes += other.TotalMinutes
}

// LessonMigrationResult reports one lesson's outcome.
type LessonMigrationResult struct {
	BlocksCreated    int `json:"blocksCreated"`
	TotalTimeMinutes int `json:"totalTimeMinutes"`
}

// Run migrates every active, not-yet-migrated lesson. Re-running is safe:
// migrated lessons are no longer candidates, so a second run selects
// nothing. The context is checked between lessons; a lesson in flight is
// never cut short mid-transaction.
func (s *LessonMigrationService) Run(ctx context.Context) (MigrationSummary, error) {
	var summary MigrationSummary

	candidates, err := s.Lessons.FindMigrationCandidates()
	if err != nil {
		return summary, err
	}
	summary.Candidates = len(candidates)

	logger.Log.Info("Lesson migration started",
		zap.Int("candidates", len(candidates)))

	for i := range candidates {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		lesson := &candidates[i]
		result, err := s.MigrateLesson(lesson)
		if err != nil {
			summary.merge(MigrationSummary{Failed: 1})
			monitoring.LessonsMigrated.WithLabelValues("failure").Inc()
			logger.Log.Error("Lesson migration failed",
				zap.Uint("lessonId", lesson.ID),
				zap.String("lesson", lesson.Name),
				zap.Error(err))
			continue
		}

		summary.merge(MigrationSummary{
			Migrated:      1,
			BlocksCreated: result.BlocksCreated,
			TotalMinutes:  result.TotalTimeMinutes,
		})
		monitoring.LessonsMigrated.WithLabelValues("success").Inc()
		monitoring.BlocksCreated.Add(float64(result.BlocksCreated))
		logger.Log.Info("Lesson migrated",
			zap.Uint("lessonId", lesson.ID),
			zap.String("lesson", lesson.Name),
			zap.Int("blocks", result.BlocksCreated),
			zap.Int("minutes", result.TotalTimeMinutes))
	}

	logger.Log.Info("Lesson migration finished",
		zap.Int("migrated", summary.Migrated),
		zap.Int("failed", summary.Failed),
		zap.Int("blocksCreated", summary.BlocksCreated),
		zap.Float64("avgBlocksPerLesson", summary.AverageBlocks()))

	return summary, nil
}

// MigrateLesson transforms one legacy lesson: segment the HTML, persist
// the blocks, persist the modular lesson under the same ID, link the
// blocks section by section and stamp the source row. All of it commits
// or none of it does.
func (s *LessonMigrationService) MigrateLesson(lesson *model.Lesson) (LessonMigrationResult, error) {
	var result LessonMigrationResult

	drafts := SegmentLesson(lesson.HTMLContent(), lesson.Name)

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		totalMinutes := 0
		links := make([]model.LessonBlock, 0, len(drafts))

		for _, draft := range drafts {
			block := draftToBlock(draft)
			if err := tx.Create(&block).Error; err != nil {
				return err
			}
			totalMinutes += block.EstimatedTimeMinutes
			links = append(links, model.LessonBlock{
				LessonID:   lesson.ID,
				BlockID:    block.ID,
				Section:    draft.Section,
				OrderIndex: draft.OrderIndex,
				Required:   true,
			})
		}

		// The modular record reuses the legacy ID; downstream consumers
		// key lessons by it and must not see the ID change.
		modular := model.ModularLesson{
			ID:                       lesson.ID,
			TopicID:                  lesson.TopicID,
			Name:                     lesson.Name,
			Slug:                     lesson.Slug,
			Description:              lesson.Description,
			EstimatedDurationMinutes: totalMinutes,
			Type:                     "modular",
		}
		if err := tx.Create(&modular).Error; err != nil {
			return err
		}

		if len(links) > 0 {
			if err := tx.Create(&links).Error; err != nil {
				return err
			}
		}

		if err := tx.Model(&model.Lesson{}).
			Where("id = ?", lesson.ID).
			Update("migration_status", model.MigrationMigrated).Error; err != nil {
			return err
		}

		result.BlocksCreated = len(links)
		result.TotalTimeMinutes = totalMinutes
		return nil
	})
	if err != nil {
		return LessonMigrationResult{}, err
	}

	return result, nil
}

// draftToBlock converts a classified draft into a persistable block. The
// payload is stored under the shape the block's Type dictates; blocks go
// live immediately.
func draftToBlock(draft BlockDraft) model.ContentBlock {
	payload, _ := json.Marshal(model.BlockPayload{
		Format:  "html",
		Content: draft.Content,
	})

	tags := draft.Tags
	if tags == nil {
		tags = []string{}
	}
	tagJSON, _ := json.Marshal(tags)

	return model.ContentBlock{
		Title:                draft.Title,
		Type:                 draft.Type,
		Content:              payload,
		EstimatedTimeMinutes: draft.EstimatedTimeMinutes,
		Difficulty:           "beginner",
		Tags:                 tagJSON,
		IsReusable:           draft.IsReusable,
		Status:               "published",
	}
}
