package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dontforgetsemicologne/task-flow/internal/core/domain"
)

func tasksOrNil(args mock.Arguments) []domain.Task {
	if value := args.Get(0); value != nil {
		return value.([]domain.Task)
	}
	return nil
}

func teamsOrNil(args mock.Arguments) []domain.Team {
	if value := args.Get(0); value != nil {
		return value.([]domain.Team)
	}
	return nil
}

type taskRepositoryMock struct {
	mock.Mock
}

func (m *taskRepositoryMock) List(ctx context.Context) ([]domain.Task, error) {
	args := m.Called(ctx)
	return tasksOrNil(args), args.Error(1)
}

func (m *taskRepositoryMock) GetByID(ctx context.Context, id uint64) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) Update(ctx context.Context, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) UpdateStatus(ctx context.Context, id uint64, status domain.TaskStatus) (domain.Task, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) Delete(ctx context.Context, id uint64) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskRepositoryMock) ListByStatus(ctx context.Context, status domain.TaskStatus) ([]domain.Task, error) {
	args := m.Called(ctx, status)
	return tasksOrNil(args), args.Error(1)
}

func (m *taskRepositoryMock) ListByPriority(ctx context.Context, priority domain.TaskPriority) ([]domain.Task, error) {
	args := m.Called(ctx, priority)
	return tasksOrNil(args), args.Error(1)
}

func (m *taskRepositoryMock) ListByTeam(ctx context.Context, teamID uint64) ([]domain.Task, error) {
	args := m.Called(ctx, teamID)
	return tasksOrNil(args), args.Error(1)
}

func (m *taskRepositoryMock) ListByTag(ctx context.Context, tagID uint64) ([]domain.Task, error) {
	args := m.Called(ctx, tagID)
	return tasksOrNil(args), args.Error(1)
}

func (m *taskRepositoryMock) ListByAssignee(ctx context.Context, userID uint64) ([]domain.Task, error) {
	args := m.Called(ctx, userID)
	return tasksOrNil(args), args.Error(1)
}

type commentRepositoryMock struct {
	mock.Mock
}

func (m *commentRepositoryMock) Create(ctx context.Context, input domain.CreateCommentInput) (domain.Comment, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Comment), args.Error(1)
}

func (m *commentRepositoryMock) ListByTask(ctx context.Context, taskID uint64) ([]domain.Comment, error) {
	args := m.Called(ctx, taskID)

	var comments []domain.Comment
	if value := args.Get(0); value != nil {
		comments = value.([]domain.Comment)
	}
	return comments, args.Error(1)
}

type teamRepositoryMock struct {
	mock.Mock
}

func (m *teamRepositoryMock) List(ctx context.Context) ([]domain.Team, error) {
	args := m.Called(ctx)
	return teamsOrNil(args), args.Error(1)
}

func (m *teamRepositoryMock) GetByID(ctx context.Context, id uint64) (domain.Team, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Team), args.Error(1)
}

func (m *teamRepositoryMock) Create(ctx context.Context, input domain.CreateTeamInput) (domain.Team, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Team), args.Error(1)
}

func (m *teamRepositoryMock) Update(ctx context.Context, input domain.UpdateTeamInput) (domain.Team, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Team), args.Error(1)
}

func (m *teamRepositoryMock) Delete(ctx context.Context, id uint64) (domain.Team, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Team), args.Error(1)
}

func (m *teamRepositoryMock) AddMember(ctx context.Context, input domain.TeamMemberInput) (domain.Team, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Team), args.Error(1)
}

func (m *teamRepositoryMock) RemoveMember(ctx context.Context, input domain.TeamMemberInput) (domain.Team, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Team), args.Error(1)
}

func (m *teamRepositoryMock) ListByLead(ctx context.Context, userID uint64) ([]domain.Team, error) {
	args := m.Called(ctx, userID)
	return teamsOrNil(args), args.Error(1)
}

func (m *teamRepositoryMock) ListByMember(ctx context.Context, userID uint64) ([]domain.Team, error) {
	args := m.Called(ctx, userID)
	return teamsOrNil(args), args.Error(1)
}

type userRepositoryMock struct {
	mock.Mock
}

func (m *userRepositoryMock) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)

	var users []domain.User
	if value := args.Get(0); value != nil {
		users = value.([]domain.User)
	}
	return users, args.Error(1)
}

func (m *userRepositoryMock) GetByID(ctx context.Context, id uint64) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) Create(ctx context.Context, input domain.CreateUserInput) (domain.User, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) Update(ctx context.Context, input domain.UpdateUserInput) (domain.User, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userRepositoryMock) Delete(ctx context.Context, id uint64) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

type tagRepositoryMock struct {
	mock.Mock
}

func (m *tagRepositoryMock) List(ctx context.Context) ([]domain.Tag, error) {
	args := m.Called(ctx)

	var tags []domain.Tag
	if value := args.Get(0); value != nil {
		tags = value.([]domain.Tag)
	}
	return tags, args.Error(1)
}

func (m *tagRepositoryMock) GetByID(ctx context.Context, id uint64) (domain.Tag, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Tag), args.Error(1)
}

func (m *tagRepositoryMock) Create(ctx context.Context, input domain.CreateTagInput) (domain.Tag, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Tag), args.Error(1)
}

func (m *tagRepositoryMock) Update(ctx context.Context, input domain.UpdateTagInput) (domain.Tag, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Tag), args.Error(1)
}

func (m *tagRepositoryMock) Delete(ctx context.Context, id uint64) (domain.Tag, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Tag), args.Error(1)
}
