package service

import (
	"context"

	"github.com/dontforgetsemicologne/task-flow/internal/core/domain"
	"github.com/dontforgetsemicologne/task-flow/internal/core/ports"
)

// UserService also answers the user-centric navigation queries, which read tasks and teams.
type UserService struct {
	userRepository ports.UserRepository
	taskRepository ports.TaskRepository
	teamRepository ports.TeamRepository
}

func NewUserService(userRepository ports.UserRepository, taskRepository ports.TaskRepository, teamRepository ports.TeamRepository) *UserService {
	return &UserService{
		userRepository: userRepository,
		taskRepository: taskRepository,
		teamRepository: teamRepository,
	}
}

func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepository.List(ctx)
}

func (s *UserService) GetUser(ctx context.Context, id uint64) (domain.User, error) {
	return s.userRepository.GetByID(ctx, id)
}

func (s *UserService) CreateUser(ctx context.Context, input domain.CreateUserInput) (domain.User, error) {
	return s.userRepository.Create(ctx, input)
}

func (s *UserService) UpdateUser(ctx context.Context, input domain.UpdateUserInput) (domain.User, error) {
	return s.userRepository.Update(ctx, input)
}

func (s *UserService) DeleteUser(ctx context.Context, id uint64) (domain.User, error) {
	return s.userRepository.Delete(ctx, id)
}

func (s *UserService) ListAssignedTasks(ctx context.Context, userID uint64) ([]domain.Task, error) {
	return s.taskRepository.ListByAssignee(ctx, userID)
}

func (s *UserService) ListTeamsLed(ctx context.Context, userID uint64) ([]domain.Team, error) {
	return s.teamRepository.ListByLead(ctx, userID)
}

func (s *UserService) ListMemberTeams(ctx context.Context, userID uint64) ([]domain.Team, error) {
	return s.teamRepository.ListByMember(ctx, userID)
}

var _ ports.UserService = (*UserService)(nil)
