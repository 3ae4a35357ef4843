package service

import (
	"skillforge_backend/internal/model"
	"skillforge_backend/internal/repository"
)

type TopicService struct {
	Topics *repository.TopicRepository
}

func NewTopicService(topics *repository.TopicRepository) *TopicService {
	return &TopicService{Topics: topics}
}

func (s *TopicService) ListCategories() ([]model.Category, error) {
	return s.Topics.ListCategories()
}

func (s *TopicService) ListTopics(categoryID uint) ([]model.Topic, error) {
	return s.Topics.ListTopics(categoryID)
}

func (s *TopicService) GetTopic(id uint) (*model.Topic, error) {
	return s.Topics.FindByID(id)
}
