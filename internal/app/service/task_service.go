package service

import (
	"context"

	"github.com/dontforgetsemicologne/task-flow/internal/core/domain"
	"github.com/dontforgetsemicologne/task-flow/internal/core/ports"
)

type TaskService struct {
	taskRepository    ports.TaskRepository
	commentRepository ports.CommentRepository
}

func NewTaskService(taskRepository ports.TaskRepository, commentRepository ports.CommentRepository) *TaskService {
	return &TaskService{
		taskRepository:    taskRepository,
		commentRepository: commentRepository,
	}
}

func (s *TaskService) ListTasks(ctx context.Context) ([]domain.Task, error) {
	return s.taskRepository.List(ctx)
}

func (s *TaskService) GetTask(ctx context.Context, id uint64) (domain.Task, error) {
	return s.taskRepository.GetByID(ctx, id)
}

// CreateTask fills in PENDING and MEDIUM when status or priority are absent.
func (s *TaskService) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	if input.Status == "" {
		input.Status = domain.TaskStatusPending
	}
	if input.Priority == "" {
		input.Priority = domain.TaskPriorityMedium
	}
	if err := checkStatus(input.Status); err != nil {
		return domain.Task{}, err
	}
	if err := checkPriority(input.Priority); err != nil {
		return domain.Task{}, err
	}
	return s.taskRepository.Create(ctx, input)
}

func (s *TaskService) UpdateTask(ctx context.Context, input domain.UpdateTaskInput) (domain.Task, error) {
	if input.Status != nil {
		if err := checkStatus(*input.Status); err != nil {
			return domain.Task{}, err
		}
	}
	if input.Priority != nil {
		if err := checkPriority(*input.Priority); err != nil {
			return domain.Task{}, err
		}
	}
	return s.taskRepository.Update(ctx, input)
}

// UpdateTaskStatus allows any transition, including back to PENDING.
func (s *TaskService) UpdateTaskStatus(ctx context.Context, id uint64, status domain.TaskStatus) (domain.Task, error) {
	if err := checkStatus(status); err != nil {
		return domain.Task{}, err
	}
	return s.taskRepository.UpdateStatus(ctx, id, status)
}

func (s *TaskService) DeleteTask(ctx context.Context, id uint64) (domain.Task, error) {
	return s.taskRepository.Delete(ctx, id)
}

func (s *TaskService) ListTasksByStatus(ctx context.Context, status domain.TaskStatus) ([]domain.Task, error) {
	if err := checkStatus(status); err != nil {
		return nil, err
	}
	return s.taskRepository.ListByStatus(ctx, status)
}

func (s *TaskService) ListTasksByPriority(ctx context.Context, priority domain.TaskPriority) ([]domain.Task, error) {
	if err := checkPriority(priority); err != nil {
		return nil, err
	}
	return s.taskRepository.ListByPriority(ctx, priority)
}

func (s *TaskService) ListTasksByTeam(ctx context.Context, teamID uint64) ([]domain.Task, error) {
	return s.taskRepository.ListByTeam(ctx, teamID)
}

func (s *TaskService) AddComment(ctx context.Context, input domain.CreateCommentInput) (domain.Comment, error) {
	return s.commentRepository.Create(ctx, input)
}

func (s *TaskService) ListTaskComments(ctx context.Context, taskID uint64) ([]domain.Comment, error) {
	return s.commentRepository.ListByTask(ctx, taskID)
}

func checkStatus(status domain.TaskStatus) error {
	if !status.Valid() {
		return domain.NewValidationError("status", "oneof", "PENDING IN_PROGRESS REVIEW COMPLETED")
	}
	return nil
}

func checkPriority(priority domain.TaskPriority) error {
	if !priority.Valid() {
		return domain.NewValidationError("priority", "oneof", "LOW MEDIUM HIGH URGENT")
	}
	return nil
}

var _ ports.TaskService = (*TaskService)(nil)
