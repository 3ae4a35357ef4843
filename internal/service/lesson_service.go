package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"skillforge_backend/internal/model"
	"skillforge_backend/internal/repository"
	"skillforge_backend/pkg/logger"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// LessonService is the read path: it reconstructs the modular section
// view of a lesson from its linked blocks on every request.
type LessonService struct {
	ModularLessons *repository.ModularLessonRepository
	LessonBlocks   *repository.LessonBlockRepository
	Progress       *repository.ProgressRepository
	Redis          *redis.Client
	cacheTTL       time.Duration
}

func NewLessonService(
	modularLessons *repository.ModularLessonRepository,
	lessonBlocks *repository.LessonBlockRepository,
	progress *repository.ProgressRepository,
	rdb *redis.Client,
	cacheTTL time.Duration,
) *LessonService {
	return &LessonService{
		ModularLessons: modularLessons,
		LessonBlocks:   lessonBlocks,
		Progress:       progress,
		Redis:          rdb,
		cacheTTL:       cacheTTL,
	}
}

// SetCacheTTL is invoked on config hot reload.
func (s *LessonService) SetCacheTTL(ttl time.Duration) {
	s.cacheTTL = ttl
}

type BlockView struct {
	ID                   string          `json:"id"`
	Title                string          `json:"title"`
	Type                 model.BlockType `json:"type"`
	EstimatedTimeMinutes int             `json:"estimatedTimeMinutes"`
	Completed            bool            `json:"completed"`
	Content              json.RawMessage `json:"content"`
}

type LessonProgress struct {
	TotalBlocks        int     `json:"totalBlocks"`
	CompletedBlocks    int     `json:"completedBlocks"`
	ProgressPercentage float64 `json:"progressPercentage"`
}

type ModularLessonView struct {
	ID                       uint                            `json:"id"`
	Name                     string                          `json:"name"`
	Slug                     string                          `json:"slug"`
	Description              string                          `json:"description"`
	EstimatedDurationMinutes int                             `json:"estimatedDurationMinutes"`
	Type                     string                          `json:"type"`
	Sections                 map[model.Section][]BlockView   `json:"sections"`
	Progress                 LessonProgress                  `json:"progress"`
}

const lessonCacheKeyPrefix = "modular_lesson:"

// cachedLesson is what goes into redis: the lesson row plus its linked
// blocks. Completion flags are deliberately absent; progress is always
// recomputed from the completion table so it can never drift.
type cachedLesson struct {
	Lesson model.ModularLesson       `json:"lesson"`
	Links  []repository.LinkedBlock  `json:"links"`
}

// Assemble builds the five-section modular view of a lesson for one user.
// An unknown lesson yields util.ErrLessonNotFound; a lesson with no
// linked blocks is valid and comes back with five empty sections.
func (s *LessonService) Assemble(ctx context.Context, lessonID, userID uint) (*ModularLessonView, error) {
	cached, err := s.loadLesson(ctx, lessonID)
	if err != nil {
		return nil, err
	}

	completed := map[string]bool{}
	if userID > 0 {
		completed, err = s.Progress.CompletedBlockIDs(userID, lessonID)
		if err != nil {
			return nil, err
		}
	}

	view := buildLessonView(&cached.Lesson, cached.Links, completed)
	return &view, nil
}

func (s *LessonService) loadLesson(ctx context.Context, lessonID uint) (*cachedLesson, error) {
	key := fmt.Sprintf("%s%d", lessonCacheKeyPrefix, lessonID)

	if s.Redis != nil {
		if raw, err := s.Redis.Get(ctx, key).Result(); err == nil {
			var cached cachedLesson
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				return &cached, nil
			}
		}
	}

	lesson, err := s.ModularLessons.FindByID(lessonID)
	if err != nil {
		return nil, err
	}
	links, err := s.LessonBlocks.FindByLessonID(lessonID)
	if err != nil {
		return nil, err
	}

	cached := &cachedLesson{Lesson: *lesson, Links: links}

	if s.Redis != nil && s.cacheTTL > 0 {
		if raw, err := json.Marshal(cached); err == nil {
			if err := s.Redis.Set(ctx, key, raw, s.cacheTTL).Err(); err != nil {
				logger.Log.Warn("Failed to cache lesson view",
					zap.Uint("lessonId", lessonID),
					zap.Error(err))
			}
		}
	}

	return cached, nil
}

// List returns the modular lesson catalog.
func (s *LessonService) List(topicID uint, page, limit int) ([]model.ModularLesson, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return s.ModularLessons.List(topicID, page, limit)
}

// buildLessonView groups linked blocks by section in stored order and
// derives duration and progress. Pure function of its inputs.
func buildLessonView(lesson *model.ModularLesson, links []repository.LinkedBlock, completed map[string]bool) ModularLessonView {
	sections := make(map[model.Section][]BlockView, len(model.Sections()))
	for _, sec := range model.Sections() {
		sections[sec] = []BlockView{}
	}

	grouped := make(map[model.Section][]repository.LinkedBlock)
	for _, link := range links {
		grouped[link.Section] = append(grouped[link.Section], link)
	}

	totalMinutes := 0
	totalBlocks := 0
	completedBlocks := 0
	for section, group := range grouped {
		// Order indexes increment across the whole lesson, so they are
		// only meaningful within one section group.
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].OrderIndex < group[j].OrderIndex
		})

		views := make([]BlockView, 0, len(group))
		for _, link := range group {
			block := link.Block
			views = append(views, BlockView{
				ID:                   block.ID,
				Title:                block.Title,
				Type:                 block.Type,
				EstimatedTimeMinutes: block.EstimatedTimeMinutes,
				Completed:            completed[block.ID],
				Content:              json.RawMessage(block.Content),
			})

			totalMinutes += block.EstimatedTimeMinutes
			totalBlocks++
			if completed[block.ID] {
				completedBlocks++
			}
		}
		sections[section] = views
	}

	progress := LessonProgress{
		TotalBlocks:     totalBlocks,
		CompletedBlocks: completedBlocks,
	}
	if totalBlocks > 0 {
		progress.ProgressPercentage = float64(completedBlocks) / float64(totalBlocks) * 100
	}

	return ModularLessonView{
		ID:                       lesson.ID,
		Name:                     lesson.Name,
		Slug:                     lesson.Slug,
		Description:              lesson.Description,
		EstimatedDurationMinutes: totalMinutes,
		Type:                     lesson.Type,
		Sections:                 sections,
		Progress:                 progress,
	}
}
