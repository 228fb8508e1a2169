package ports

import (
	"context"

	"github.com/dontforgetsemicologne/task-flow/internal/core/domain"
)

type UserRepository interface {
	List(ctx context.Context) ([]domain.User, error)
	GetByID(ctx context.Context, id uint64) (domain.User, error)
	Create(ctx context.Context, input domain.CreateUserInput) (domain.User, error)
	Update(ctx context.Context, input domain.UpdateUserInput) (domain.User, error)
	Delete(ctx context.Context, id uint64) (domain.User, error)
}

type TaskRepository interface {
	List(ctx context.Context) ([]domain.Task, error)
	GetByID(ctx context.Context, id uint64) (domain.Task, error)
	Create(ctx context.Context, input domain.CreateTaskInput) (domain.Task, error)
	Update(ctx context.Context, input domain.UpdateTaskInput) (domain.Task, error)
	UpdateStatus(ctx context.Context, id uint64, status domain.TaskStatus) (domain.Task, error)
	Delete(ctx context.Context, id uint64) (domain.Task, error)
	ListByStatus(ctx context.Context, status domain.TaskStatus) ([]domain.Task, error)
	ListByPriority(ctx context.Context, priority domain.TaskPriority) ([]domain.Task, error)
	ListByTeam(ctx context.Context, teamID uint64) ([]domain.Task, error)
	ListByTag(ctx context.Context, tagID uint64) ([]domain.Task, error)
	ListByAssignee(ctx context.Context, userID uint64) ([]domain.Task, error)
}

type CommentRepository interface {
	Create(ctx context.Context, input domain.CreateCommentInput) (domain.Comment, error)
	ListByTask(ctx context.Context, taskID uint64) ([]domain.Comment, error)
}

type TeamRepository interface {
	List(ctx context.Context) ([]domain.Team, error)
	GetByID(ctx context.Context, id uint64) (domain.Team, error)
	Create(ctx context.Context, input domain.CreateTeamInput) (domain.Team, error)
	Update(ctx context.Context, input domain.UpdateTeamInput) (domain.Team, error)
	Delete(ctx context.Context, id uint64) (domain.Team, error)
	AddMember(ctx context.Context, input domain.TeamMemberInput) (domain.Team, error)
	RemoveMember(ctx context.Context, input domain.TeamMemberInput) (domain.Team, error)
	ListByLead(ctx context.Context, userID uint64) ([]domain.Team, error)
	ListByMember(ctx context.Context, userID uint64) ([]domain.Team, error)
}

type TagRepository interface {
	List(ctx context.Context) ([]domain.Tag, error)
	GetByID(ctx context.Context, id uint64) (domain.Tag, error)
	Create(ctx context.Context, input domain.CreateTagInput) (domain.Tag, error)
	Update(ctx context.Context, input domain.UpdateTagInput) (domain.Tag, error)
	Delete(ctx context.Context, id uint64) (domain.Tag, error)
}
