package routers

import (
	"context"

	"github.com/dontforgetsemicologne/task-flow/internal/adapter/http/dto"
	"github.com/dontforgetsemicologne/task-flow/internal/adapter/http/mapper"
	"github.com/dontforgetsemicologne/task-flow/internal/adapter/http/procedure"
	"github.com/dontforgetsemicologne/task-flow/internal/adapter/http/validation"
	"github.com/dontforgetsemicologne/task-flow/internal/core/domain"
	"github.com/dontforgetsemicologne/task-flow/internal/core/ports"
)

func NewTagRouter(svc ports.TagService) *procedure.Router {
	return procedure.NewRouter().
		Query("getTags", procedure.HandleNoInput(func(ctx context.Context) ([]dto.TagItem, error) {
			tags, err := svc.ListTags(ctx)
			if err != nil {
				return nil, err
			}
			return mapper.ToTagItems(tags), nil
		})).
		Query("getTagById", procedure.Handle(func(ctx context.Context, req dto.TagIDRequest) (dto.TagItem, error) {
			return tagItem(svc.GetTag(ctx, req.ID))
		})).
		Mutation("createTag", procedure.Handle(func(ctx context.Context, req dto.CreateTagRequest) (dto.TagItem, error) {
			return tagItem(svc.CreateTag(ctx, validation.BuildCreateTagInput(req)))
		})).
		Mutation("updateTag", procedure.Handle(func(ctx context.Context, req dto.UpdateTagRequest) (dto.TagItem, error) {
			return tagItem(svc.UpdateTag(ctx, validation.BuildUpdateTagInput(req)))
		})).
		Mutation("deleteTag", procedure.Handle(func(ctx context.Context, req dto.TagIDRequest) (dto.TagItem, error) {
			return tagItem(svc.DeleteTag(ctx, req.ID))
		})).
		Query("getTasksByTag", procedure.Handle(func(ctx context.Context, req dto.TasksByTagRequest) ([]dto.TaskItem, error) {
			return taskItems(svc.ListTasksByTag(ctx, req.TagID))
		}))
}

func tagItem(tag domain.Tag, err error) (dto.TagItem, error) {
	if err != nil {
		return dto.TagItem{}, err
	}
	return mapper.ToTagItem(tag), nil
}
