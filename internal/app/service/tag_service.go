package service

import (
	"context"

	"github.com/dontforgetsemicologne/task-flow/internal/core/domain"
	"github.com/dontforgetsemicologne/task-flow/internal/core/ports"
)

type TagService struct {
	tagRepository  ports.TagRepository
	taskRepository ports.TaskRepository
}

func NewTagService(tagRepository ports.TagRepository, taskRepository ports.TaskRepository) *TagService {
	return &TagService{tagRepository: tagRepository, taskRepository: taskRepository}
}

func (s *TagService) ListTags(ctx context.Context) ([]domain.Tag, error) {
	return s.tagRepository.List(ctx)
}

func (s *TagService) GetTag(ctx context.Context, id uint64) (domain.Tag, error) {
	return s.tagRepository.GetByID(ctx, id)
}

func (s *TagService) CreateTag(ctx context.Context, input domain.CreateTagInput) (domain.Tag, error) {
	return s.tagRepository.Create(ctx, input)
}

func (s *TagService) UpdateTag(ctx context.Context, input domain.UpdateTagInput) (domain.Tag, error) {
	return s.tagRepository.Update(ctx, input)
}

func (s *TagService) DeleteTag(ctx context.Context, id uint64) (domain.Tag, error) {
	return s.tagRepository.Delete(ctx, id)
}

func (s *TagService) ListTasksByTag(ctx context.Context, tagID uint64) ([]domain.Task, error) {
	return s.taskRepository.ListByTag(ctx, tagID)
}

var _ ports.TagService = (*TagService)(nil)
