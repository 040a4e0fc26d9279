package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wekeepgrowing/project-planner/internal/domain/entity"
	domainerrors "github.com/wekeepgrowing/project-planner/internal/domain/errors"
)

func TestTaskUsecase_CreateResolvesTags(t *testing.T) {
	f := newFixture(t, nil, nil, nil)
	ctx := context.Background()
	ada := f.signup(t, "ada", "ada@example.com")
	p := f.project(t, ada, "Launch")
	other := f.project(t, ada, "Other")

	first, err := f.tasks.Create(ctx, ada, p.ID, TaskInput{Name: "Design", Date: day(2), TagName: "UI", TagColor: "#ff0000"})
	require.NoError(t, err)
	require.NotNil(t, first.Tag)
	assert.Equal(t, "#FF0000", first.Tag.Color)
	assert.Equal(t, []entity.UserRef{ada.Ref()}, first.Assignees)

	second, err := f.tasks.Create(ctx, ada, p.ID, TaskInput{Name: "Polish", Date: day(3), TagName: " ui "})
	require.NoError(t, err)
	assert.Equal(t, first.Tag.ID, second.Tag.ID)

	byID, err := f.tasks.Create(ctx, ada, p.ID, TaskInput{Name: "Review", Date: day(4), TagID: first.Tag.ID, TagName: "ignored"})
	require.NoError(t, err)
	assert.Equal(t, first.Tag.ID, byID.Tag.ID)

	untagged, err := f.tasks.Create(ctx, ada, p.ID, TaskInput{Name: "Plain", Date: day(5)})
	require.NoError(t, err)
	assert.Nil(t, untagged.Tag)

	tags, err := f.tags.ListByProject(ctx, ada, p.ID)
	require.NoError(t, err)
	assert.Len(t, tags, 1)

	foreign, err := f.tasks.Create(ctx, ada, other.ID, TaskInput{Name: "Elsewhere", TagName: "Ops"})
	require.NoError(t, err)

	tests := []struct {
		name string
		in   TaskInput
		want error
	}{
		{"tag from another project", TaskInput{Name: "x", TagID: foreign.Tag.ID}, domainerrors.ErrTagOutsideProject},
		{"unknown tag", TaskInput{Name: "x", TagID: "missing"}, domainerrors.ErrTagNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.tasks.Create(ctx, ada, p.ID, tt.in)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	tasks, err := f.tasks.ListByProject(ctx, ada, p.ID)
	require.NoError(t, err)
	assert.Len(t, tasks, 4)
}

func TestTaskUsecase_UpdateAndDelete(t *testing.T) {
	f := newFixture(t, nil, nil, nil)
	ctx := context.Background()
	ada := f.signup(t, "ada", "ada@example.com")
	bob := f.signup(t, "bob", "bob@example.com")
	eve := f.signup(t, "eve", "eve@example.com")
	p := f.project(t, ada, "Launch")

	task, err := f.tasks.Create(ctx, ada, p.ID, TaskInput{Name: "Design", Date: day(2), TagName: "UI"})
	require.NoError(t, err)

	finished := true
	clear := ""
	updated, err := f.tasks.Update(ctx, ada, task.ID, TaskUpdate{
		Changes: entity.TaskChanges{Finished: &finished, AssigneeIDs: []string{bob.ID}},
		TagID:   &clear,
	})
	require.NoError(t, err)
	assert.True(t, updated.Finished)
	assert.Nil(t, updated.Tag)
	assert.Equal(t, []entity.UserRef{bob.Ref()}, updated.Assignees)

	bobs, err := f.tasks.ListAssigned(ctx, bob)
	require.NoError(t, err)
	require.Len(t, bobs, 1)
	assert.Equal(t, task.ID, bobs[0].ID)
	adas, err := f.tasks.ListAssigned(ctx, ada)
	require.NoError(t, err)
	assert.Empty(t, adas)

	// bob은 프로젝트 멤버가 아니지만 태스크 담당자라서 접근할 수 있다.
	name := "Design v2"
	_, err = f.tasks.Update(ctx, bob, task.ID, TaskUpdate{Changes: entity.TaskChanges{Name: &name}})
	require.NoError(t, err)

	_, err = f.tasks.Update(ctx, eve, task.ID, TaskUpdate{Changes: entity.TaskChanges{Name: &name}})
	assert.ErrorIs(t, err, domainerrors.ErrTaskNotFound)
	assert.ErrorIs(t, f.tasks.Delete(ctx, eve, task.ID), domainerrors.ErrTaskNotFound)

	_, err = f.tasks.Update(ctx, ada, task.ID, TaskUpdate{Changes: entity.TaskChanges{AssigneeIDs: []string{"ghost"}}})
	assert.ErrorIs(t, err, domainerrors.ErrUnknownAssignee)

	require.NoError(t, f.tasks.Delete(ctx, ada, task.ID))
	tasks, err := f.tasks.ListByProject(ctx, ada, p.ID)
	require.NoError(t, err)
	assert.Empty(t, tasks)
	assert.ErrorIs(t, f.tasks.Delete(ctx, ada, task.ID), domainerrors.ErrTaskNotFound)
}

func TestTaskUsecase_OutsiderCannotCreate(t *testing.T) {
	f := newFixture(t, nil, nil, nil)
	ada := f.signup(t, "ada", "ada@example.com")
	eve := f.signup(t, "eve", "eve@example.com")
	p := f.project(t, ada, "Launch")

	_, err := f.tasks.Create(context.Background(), eve, p.ID, TaskInput{Name: "sneaky"})
	assert.ErrorIs(t, err, domainerrors.ErrProjectNotFound)
}

func TestTagUsecase_CreateForTask(t *testing.T) {
	f := newFixture(t, nil, nil, nil)
	ctx := context.Background()
	ada := f.signup(t, "ada", "ada@example.com")
	eve := f.signup(t, "eve", "eve@example.com")
	p := f.project(t, ada, "Launch")
	task, err := f.tasks.Create(ctx, ada, p.ID, TaskInput{Name: "Design", Date: day(2)})
	require.NoError(t, err)

	tag, err := f.tags.CreateForTask(ctx, ada, task.ID, "Urgent", "red")
	require.NoError(t, err)
	assert.Equal(t, p.ID, tag.ProjectID)
	assert.Equal(t, "red", tag.Color)

	again, err := f.tags.CreateForTask(ctx, ada, task.ID, "URGENT", "blue")
	require.NoError(t, err)
	assert.Equal(t, tag.ID, again.ID)

	stored, err := f.repos.Task.FindByID(ctx, task.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Tag)
	assert.Equal(t, tag.ID, stored.Tag.ID)

	tags, err := f.tags.ListByProject(ctx, ada, p.ID)
	require.NoError(t, err)
	assert.Len(t, tags, 1)

	_, err = f.tags.CreateForTask(ctx, ada, "missing", "x", "")
	assert.ErrorIs(t, err, domainerrors.ErrTaskNotFound)
	_, err = f.tags.CreateForTask(ctx, eve, task.ID, "x", "")
	assert.ErrorIs(t, err, domainerrors.ErrTaskNotFound)
	_, err = f.tags.ListByProject(ctx, eve, p.ID)
	assert.ErrorIs(t, err, domainerrors.ErrProjectNotFound)
}
