package tests

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dontforgetsemicologne/task-flow/internal/core/domain"
)

func tasksArg(args mock.Arguments) []domain.Task {
	if value := args.Get(0); value != nil {
		return value.([]domain.Task)
	}
	return nil
}

func teamsArg(args mock.Arguments) []domain.Team {
	if value := args.Get(0); value != nil {
		return value.([]domain.Team)
	}
	return nil
}

type userServiceMock struct {
	mock.Mock
}

func (m *userServiceMock) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)

	var users []domain.User
	if value := args.Get(0); value != nil {
		users = value.([]domain.User)
	}
	return users, args.Error(1)
}

func (m *userServiceMock) GetUser(ctx context.Context, id uint64) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userServiceMock) CreateUser(ctx context.Context, input domain.CreateUserInput) (domain.User, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userServiceMock) UpdateUser(ctx context.Context, input domain.UpdateUserInput) (domain.User, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userServiceMock) DeleteUser(ctx context.Context, id uint64) (domain.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *userServiceMock) ListAssignedTasks(ctx context.Context, userID uint64) ([]domain.Task, error) {
	args := m.Called(ctx, userID)
	return tasksArg(args), args.Error(1)
}

func (m *userServiceMock) ListTeamsLed(ctx context.Context, userID uint64) ([]domain.Team, error) {
	args := m.Called(ctx, userID)
	return teamsArg(args), args.Error(1)
}

func (m *userServiceMock) ListMemberTeams(ctx context.Context, userID uint64) ([]domain.Team, error) {
	args := m.Called(ctx, userID)
	return teamsArg(args), args.Error(1)
}

type taskServiceMock struct {
	mock.Mock
}

func (m *taskServiceMock) ListTasks(ctx context.Context) ([]domain.Task, error) {
	args := m.Called(ctx)
	return tasksArg(args), args.Error(1)
}

func (m *taskServiceMock) GetTask(ctx context.Context, id uint64) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateTask(ctx context.Context, input domain.UpdateTaskInput) (domain.Task, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) UpdateTaskStatus(ctx context.Context, id uint64, status domain.TaskStatus) (domain.Task, error) {
	args := m.Called(ctx, id, status)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) DeleteTask(ctx context.Context, id uint64) (domain.Task, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Task), args.Error(1)
}

func (m *taskServiceMock) ListTasksByStatus(ctx context.Context, status domain.TaskStatus) ([]domain.Task, error) {
	args := m.Called(ctx, status)
	return tasksArg(args), args.Error(1)
}

func (m *taskServiceMock) ListTasksByPriority(ctx context.Context, priority domain.TaskPriority) ([]domain.Task, error) {
	args := m.Called(ctx, priority)
	return tasksArg(args), args.Error(1)
}

func (m *taskServiceMock) ListTasksByTeam(ctx context.Context, teamID uint64) ([]domain.Task, error) {
	args := m.Called(ctx, teamID)
	return tasksArg(args), args.Error(1)
}

func (m *taskServiceMock) AddComment(ctx context.Context, input domain.CreateCommentInput) (domain.Comment, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Comment), args.Error(1)
}

func (m *taskServiceMock) ListTaskComments(ctx context.Context, taskID uint64) ([]domain.Comment, error) {
	args := m.Called(ctx, taskID)

	var comments []domain.Comment
	if value := args.Get(0); value != nil {
		comments = value.([]domain.Comment)
	}
	return comments, args.Error(1)
}

type teamServiceMock struct {
	mock.Mock
}

func (m *teamServiceMock) ListTeams(ctx context.Context) ([]domain.Team, error) {
	args := m.Called(ctx)
	return teamsArg(args), args.Error(1)
}

func (m *teamServiceMock) GetTeam(ctx context.Context, id uint64) (domain.Team, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Team), args.Error(1)
}

func (m *teamServiceMock) CreateTeam(ctx context.Context, input domain.CreateTeamInput) (domain.Team, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Team), args.Error(1)
}

func (m *teamServiceMock) UpdateTeam(ctx context.Context, input domain.UpdateTeamInput) (domain.Team, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Team), args.Error(1)
}

func (m *teamServiceMock) DeleteTeam(ctx context.Context, id uint64) (domain.Team, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Team), args.Error(1)
}

func (m *teamServiceMock) AddMember(ctx context.Context, input domain.TeamMemberInput) (domain.Team, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Team), args.Error(1)
}

func (m *teamServiceMock) RemoveMember(ctx context.Context, input domain.TeamMemberInput) (domain.Team, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Team), args.Error(1)
}

type tagServiceMock struct {
	mock.Mock
}

func (m *tagServiceMock) ListTags(ctx context.Context) ([]domain.Tag, error) {
	args := m.Called(ctx)

	var tags []domain.Tag
	if value := args.Get(0); value != nil {
		tags = value.([]domain.Tag)
	}
	return tags, args.Error(1)
}

func (m *tagServiceMock) GetTag(ctx context.Context, id uint64) (domain.Tag, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Tag), args.Error(1)
}

func (m *tagServiceMock) CreateTag(ctx context.Context, input domain.CreateTagInput) (domain.Tag, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Tag), args.Error(1)
}

func (m *tagServiceMock) UpdateTag(ctx context.Context, input domain.UpdateTagInput) (domain.Tag, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(domain.Tag), args.Error(1)
}

func (m *tagServiceMock) DeleteTag(ctx context.Context, id uint64) (domain.Tag, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.Tag), args.Error(1)
}

func (m *tagServiceMock) ListTasksByTag(ctx context.Context, tagID uint64) ([]domain.Task, error) {
	args := m.Called(ctx, tagID)
	return tasksArg(args), args.Error(1)
}
