package db

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dontforgetsemicologne/task-flow/internal/config"
	"github.com/dontforgetsemicologne/task-flow/internal/core/domain"
)

// stepClock hands out strictly increasing timestamps so ordering by created_at is deterministic.
type stepClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *stepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}

type repos struct {
	db       *gorm.DB
	users    *UserRepository
	tasks    *TaskRepository
	comments *CommentRepository
	teams    *TeamRepository
	tags     *TagRepository
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	conf := &config.Config{
		DbDriver:       config.DriverSQLite,
		DatabaseURL:    "file:" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=on",
		DbMaxOpenConns: 1,
		DbAutoMigrate:  true,
	}

	gdb, err := ConnectDB(conf)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Close(gdb) })

	clock := &stepClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	gdb.NowFunc = clock.Now

	return gdb
}

func newRepos(t *testing.T) repos {
	gdb := newTestDB(t)
	return repos{
		db:       gdb,
		users:    NewUserRepository(gdb),
		tasks:    NewTaskRepository(gdb),
		comments: NewCommentRepository(gdb),
		teams:    NewTeamRepository(gdb),
		tags:     NewTagRepository(gdb),
	}
}

func (r repos) user(t *testing.T, email, name string) domain.User {
	t.Helper()
	user, err := r.users.Create(context.Background(), domain.CreateUserInput{Email: email, Name: name, Role: "eng"})
	require.NoError(t, err)
	return user
}

func (r repos) team(t *testing.T, name string, leadID uint64, members ...uint64) domain.Team {
	t.Helper()
	team, err := r.teams.Create(context.Background(), domain.CreateTeamInput{Name: name, LeadID: leadID, MemberIDs: members})
	require.NoError(t, err)
	return team
}

func (r repos) tag(t *testing.T, name string) domain.Tag {
	t.Helper()
	tag, err := r.tags.Create(context.Background(), domain.CreateTagInput{Name: name})
	require.NoError(t, err)
	return tag
}

func (r repos) task(t *testing.T, input domain.CreateTaskInput) domain.Task {
	t.Helper()
	if input.Status == "" {
		input.Status = domain.TaskStatusPending
	}
	if input.Priority == "" {
		input.Priority = domain.TaskPriorityMedium
	}
	task, err := r.tasks.Create(context.Background(), input)
	require.NoError(t, err)
	return task
}

func userIDs(users []domain.User) []uint64 {
	ids := make([]uint64, 0, len(users))
	for _, u := range users {
		ids = append(ids, u.ID)
	}
	return ids
}

func teamIDs(teams []domain.Team) []uint64 {
	ids := make([]uint64, 0, len(teams))
	for _, team := range teams {
		ids = append(ids, team.ID)
	}
	return ids
}

func taskIDs(tasks []domain.Task) []uint64 {
	ids := make([]uint64, 0, len(tasks))
	for _, task := range tasks {
		ids = append(ids, task.ID)
	}
	return ids
}
