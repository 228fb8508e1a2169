package ports

import (
	"context"

	"github.com/dontforgetsemicologne/task-flow/internal/core/domain"
)

type UserService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	GetUser(ctx context.Context, id uint64) (domain.User, error)
	CreateUser(ctx context.Context, input domain.CreateUserInput) (domain.User, error)
	UpdateUser(ctx context.Context, input domain.UpdateUserInput) (domain.User, error)
	DeleteUser(ctx context.Context, id uint64) (domain.User, error)
	ListAssignedTasks(ctx context.Context, userID uint64) ([]domain.Task, error)
	ListTeamsLed(ctx context.Context, userID uint64) ([]domain.Team, error)
	ListMemberTeams(ctx context.Context, userID uint64) ([]domain.Team, error)
}

type TaskService interface {
	ListTasks(ctx context.Context) ([]domain.Task, error)
	GetTask(ctx context.Context, id uint64) (domain.Task, error)
	CreateTask(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	UpdateTask(ctx context.Context, input domain.UpdateTaskInput) (domain.Task, error)
	UpdateTaskStatus(ctx context.Context, id uint64, status domain.TaskStatus) (domain.Task, error)
	DeleteTask(ctx context.Context, id uint64) (domain.Task, error)
	ListTasksByStatus(ctx context.Context, status domain.TaskStatus) ([]domain.Task, error)
	ListTasksByPriority(ctx context.Context, priority domain.TaskPriority) ([]domain.Task, error)
	ListTasksByTeam(ctx context.Context, teamID uint64) ([]domain.Task, error)
	AddComment(ctx context.Context, input domain.CreateCommentInput) (domain.Comment, error)
	ListTaskComments(ctx context.Context, taskID uint64) ([]domain.Comment, error)
}

type TeamService interface {
	ListTeams(ctx context.Context) ([]domain.Team, error)
	GetTeam(ctx context.Context, id uint64) (domain.Team, error)
	CreateTeam(ctx context.Context, input domain.CreateTeamInput) (domain.Team, error)
	UpdateTeam(ctx context.Context, input domain.UpdateTeamInput) (domain.Team, error)
	DeleteTeam(ctx context.Context, id uint64) (domain.Team, error)
	AddMember(ctx context.Context, input domain.TeamMemberInput) (domain.Team, error)
	RemoveMember(ctx context.Context, input domain.TeamMemberInput) (domain.Team, error)
}

type TagService interface {
	ListTags(ctx context.Context) ([]domain.Tag, error)
	GetTag(ctx context.Context, id uint64) (domain.Tag, error)
	CreateTag(ctx context.Context, input domain.CreateTagInput) (domain.Tag, error)
	UpdateTag(ctx context.Context, input domain.UpdateTagInput) (domain.Tag, error)
	DeleteTag(ctx context.Context, id uint64) (domain.Tag, error)
	ListTasksByTag(ctx context.Context, tagID uint64) ([]domain.Task, error)
}
