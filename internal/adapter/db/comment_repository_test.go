package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dontforgetsemicologne/task-flow/internal/core/domain"
)

func TestCommentRepository_NewestFirst(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	ann := r.user(t, "a@x.com", "Ann")
	team := r.team(t, "Core", ann.ID)
	task := r.task(t, domain.CreateTaskInput{Title: "Fix bug", CreatedByID: ann.ID, TeamID: team.ID})

	var ids []uint64
	for _, content := range []string{"t1", "t2", "t3"} {
		comment, err := r.comments.Create(ctx, domain.CreateCommentInput{TaskID: task.ID, UserID: ann.ID, Content: content})
		require.NoError(t, err)
		require.NotNil(t, comment.Task)
		assert.Equal(t, task.ID, comment.Task.ID)
		ids = append(ids, comment.ID)
	}

	comments, err := r.comments.ListByTask(ctx, task.ID)
	require.NoError(t, err)
	require.Len(t, comments, 3)
	assert.Equal(t, "t3", comments[0].Content)
	assert.Equal(t, "t2", comments[1].Content)
	assert.Equal(t, "t1", comments[2].Content)
	assert.Equal(t, ids[2], comments[0].ID)

	detail, err := r.tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	require.Len(t, detail.Comments, 3)
	assert.Equal(t, "t3", detail.Comments[0].Content)
	require.NotNil(t, detail.Comments[0].Task)
}

func TestCommentRepository_UnknownTask(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	ann := r.user(t, "a@x.com", "Ann")

	_, err := r.comments.Create(ctx, domain.CreateCommentInput{TaskID: 99, UserID: ann.ID, Content: "wip"})
	var ref *domain.ReferenceError
	require.ErrorAs(t, err, &ref)
	assert.Equal(t, "taskId", ref.Field)

	comments, err := r.comments.ListByTask(ctx, 99)
	require.NoError(t, err)
	assert.Empty(t, comments)
}

func TestCommentRepository_UnknownAuthorRejectedByStore(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	ann := r.user(t, "a@x.com", "Ann")
	team := r.team(t, "Core", ann.ID)
	task := r.task(t, domain.CreateTaskInput{Title: "Fix bug", CreatedByID: ann.ID, TeamID: team.ID})

	_, err := r.comments.Create(ctx, domain.CreateCommentInput{TaskID: task.ID, UserID: 99, Content: "wip"})
	require.ErrorIs(t, err, domain.ErrReference)
}
