package util

import "errors"

var (
	ErrLessonNotFound   = errors.New("lesson not found")
	ErrBlockNotFound    = errors.New("content block not found")
	ErrBlockNotInLesson = errors.New("block is not linked to this lesson")
	ErrTopicNotFound    = errors.New("topic not found")
)
