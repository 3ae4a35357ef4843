package service

import (
	"skillforge_backend/internal/repository"
	"skillforge_backend/internal/util"
)

// ProgressService records per-block completion and recomputes the lesson
// aggregate on demand.
type ProgressService struct {
	ModularLessons *repository.ModularLessonRepository
	LessonBlocks   *repository.LessonBlockRepository
	Progress       *repository.ProgressRepository
}

func NewProgressService(
	modularLessons *repository.ModularLessonRepository,
	lessonBlocks *repository.LessonBlockRepository,
	progress *repository.ProgressRepository,
) *ProgressService {
	return &ProgressService{
		ModularLessons: modularLessons,
		LessonBlocks:   lessonBlocks,
		Progress:       progress,
	}
}

// MarkBlock flips one block's completion flag for a user and returns the
// lesson's fresh progress.
func (s *ProgressService) MarkBlock(userID, lessonID uint, blockID string, completed bool) (LessonProgress, error) {
	if _, err := s.ModularLessons.FindByID(lessonID); err != nil {
		return LessonProgress{}, err
	}

	linked, err := s.LessonBlocks.Exists(lessonID, blockID)
	if err != nil {
		return LessonProgress{}, err
	}
	if !linked {
		return LessonProgress{}, util.ErrBlockNotInLesson
	}

	if err := s.Progress.SetCompletion(userID, lessonID, blockID, completed); err != nil {
		return LessonProgress{}, err
	}

	return s.LessonProgress(userID, lessonID)
}

// LessonProgress recomputes the aggregate from completion flags. There is
// no stored counter to get out of sync.
func (s *ProgressService) LessonProgress(userID, lessonID uint) (LessonProgress, error) {
	total, err := s.LessonBlocks.CountByLessonID(lessonID)
	if err != nil {
		return LessonProgress{}, err
	}

	completedIDs, err := s.Progress.CompletedBlockIDs(userID, lessonID)
	if err != nil {
		return LessonProgress{}, err
	}

	progress := LessonProgress{
		TotalBlocks:     int(total),
		CompletedBlocks: len(completedIDs),
	}
	if total > 0 {
		progress.ProgressPercentage = float64(len(completedIDs)) / float64(total) * 100
	}
	return progress, nil
}
