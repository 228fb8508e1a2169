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

func NewTaskRouter(svc ports.TaskService) *procedure.Router {
	return procedure.NewRouter().
		Query("getTasks", procedure.HandleNoInput(func(ctx context.Context) ([]dto.TaskItem, error) {
			return taskItems(svc.ListTasks(ctx))
		})).
		Query("getTaskById", procedure.Handle(func(ctx context.Context, req dto.TaskIDRequest) (dto.TaskItem, error) {
			return taskItem(svc.GetTask(ctx, req.ID))
		})).
		Mutation("createTask", procedure.Handle(func(ctx context.Context, req dto.CreateTaskRequest) (dto.TaskItem, error) {
			input, err := validation.BuildCreateTaskInput(req)
			if err != nil {
				return dto.TaskItem{}, err
			}
			return taskItem(svc.CreateTask(ctx, input))
		})).
		Mutation("updateTask", procedure.Handle(func(ctx context.Context, req dto.UpdateTaskRequest) (dto.TaskItem, error) {
			input, err := validation.BuildUpdateTaskInput(req)
			if err != nil {
				return dto.TaskItem{}, err
			}
			return taskItem(svc.UpdateTask(ctx, input))
		})).
		Mutation("deleteTask", procedure.Handle(func(ctx context.Context, req dto.TaskIDRequest) (dto.TaskItem, error) {
			return taskItem(svc.DeleteTask(ctx, req.ID))
		})).
		Mutation("updateTaskStatus", procedure.Handle(func(ctx context.Context, req dto.UpdateTaskStatusRequest) (dto.TaskItem, error) {
			return taskItem(svc.UpdateTaskStatus(ctx, req.ID, domain.TaskStatus(req.Status)))
		})).
		Mutation("addComment", procedure.Handle(func(ctx context.Context, req dto.CreateCommentRequest) (dto.CommentItem, error) {
			comment, err := svc.AddComment(ctx, validation.BuildCreateCommentInput(req))
			if err != nil {
				return dto.CommentItem{}, err
			}
			return mapper.ToCommentItem(comment), nil
		})).
		Query("getTaskComments", procedure.Handle(func(ctx context.Context, req dto.TaskIDRequest) ([]dto.CommentItem, error) {
			comments, err := svc.ListTaskComments(ctx, req.ID)
			if err != nil {
				return nil, err
			}
			return mapper.ToCommentItems(comments), nil
		})).
		Query("getTasksByStatus", procedure.Handle(func(ctx context.Context, req dto.TasksByStatusRequest) ([]dto.TaskItem, error) {
			return taskItems(svc.ListTasksByStatus(ctx, domain.TaskStatus(req.Status)))
		})).
		Query("getTasksByPriority", procedure.Handle(func(ctx context.Context, req dto.TasksByPriorityRequest) ([]dto.TaskItem, error) {
			return taskItems(svc.ListTasksByPriority(ctx, domain.TaskPriority(req.Priority)))
		})).
		Query("getTasksByTeam", procedure.Handle(func(ctx context.Context, req dto.TasksByTeamRequest) ([]dto.TaskItem, error) {
			return taskItems(svc.ListTasksByTeam(ctx, req.TeamID))
		}))
}

func taskItem(task domain.Task, err error) (dto.TaskItem, error) {
	if err != nil {
		return dto.TaskItem{}, err
	}
	return mapper.ToTaskItem(task), nil
}

func taskItems(tasks []domain.Task, err error) ([]dto.TaskItem, error) {
	if err != nil {
		return nil, err
	}
	return mapper.ToTaskItems(tasks), nil
}
