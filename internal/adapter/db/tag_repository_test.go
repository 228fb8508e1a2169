package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dontforgetsemicologne/task-flow/internal/core/domain"
)

func TestTagRepository_Lifecycle(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	red := "#ff0000"

	created, err := r.tags.Create(ctx, domain.CreateTagInput{Name: "bug", Color: &red})
	require.NoError(t, err)
	assert.Equal(t, "bug", created.Name)
	assert.NotNil(t, created.Tasks)

	name := "defect"
	updated, err := r.tags.Update(ctx, domain.UpdateTagInput{ID: created.ID, Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "defect", updated.Name)
	assert.Equal(t, red, *updated.Color)

	tags, err := r.tags.List(ctx)
	require.NoError(t, err)
	assert.Len(t, tags, 1)

	_, err = r.tags.Update(ctx, domain.UpdateTagInput{ID: 99, Name: &name})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTagRepository_DeleteUnlinksTasks(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	ann := r.user(t, "a@x.com", "Ann")
	team := r.team(t, "Core", ann.ID)
	bug := r.tag(t, "bug")
	task := r.task(t, domain.CreateTaskInput{Title: "Fix bug", CreatedByID: ann.ID, TeamID: team.ID, TagIDs: []uint64{bug.ID}})

	got, err := r.tags.GetByID(ctx, bug.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint64{task.ID}, taskIDs(got.Tasks))

	_, err = r.tags.Delete(ctx, bug.ID)
	require.NoError(t, err)

	remaining, err := r.tasks.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Empty(t, remaining.Tags)

	_, err = r.tags.GetByID(ctx, bug.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
	_, err = r.tags.Delete(ctx, bug.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}
