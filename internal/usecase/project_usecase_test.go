package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/wekeepgrowing/project-planner/internal/domain/entity"
	domainerrors "github.com/wekeepgrowing/project-planner/internal/domain/errors"
	pkgerrors "github.com/wekeepgrowing/project-planner/pkg/errors"
)

func TestProjectUsecase_VisibilityAndOwnership(t *testing.T) {
	f := newFixture(t, nil, nil, nil)
	ctx := context.Background()
	ada := f.signup(t, "ada", "ada@example.com")
	bob := f.signup(t, "bob", "bob@example.com")
	eve := f.signup(t, "eve", "eve@example.com")

	p := f.project(t, ada, "Launch")
	assert.Equal(t, "ada", p.Owner.Name)
	assert.Empty(t, p.Tasks)

	name := "Launch v2"
	updated, err := f.projects.Update(ctx, ada, p.ID, entity.ProjectChanges{Name: &name, AssigneeIDs: []string{bob.ID}})
	require.NoError(t, err)
	assert.Equal(t, "Launch v2", updated.Name)
	require.Len(t, updated.Assignees, 1)
	assert.Equal(t, entity.UserRef{ID: bob.ID, Name: "bob"}, updated.Assignees[0])

	bobs, err := f.projects.List(ctx, bob)
	require.NoError(t, err)
	require.Len(t, bobs, 1)
	assert.Equal(t, p.ID, bobs[0].ID)

	eves, err := f.projects.List(ctx, eve)
	require.NoError(t, err)
	assert.Empty(t, eves)

	tests := []struct {
		name string
		run  func() error
		want error
	}{
		{"outsider get", func() error { _, err := f.projects.Get(ctx, eve, p.ID); return err }, domainerrors.ErrProjectNotFound},
		{"outsider delete", func() error { return f.projects.Delete(ctx, eve, p.ID) }, domainerrors.ErrProjectNotFound},
		{"assignee edit", func() error {
			_, err := f.projects.Update(ctx, bob, p.ID, entity.ProjectChanges{Name: &name})
			return err
		}, domainerrors.ErrForbidden},
		{"assignee delete", func() error { return f.projects.Delete(ctx, bob, p.ID) }, domainerrors.ErrForbidden},
		{"unknown assignee", func() error {
			_, err := f.projects.Update(ctx, ada, p.ID, entity.ProjectChanges{AssigneeIDs: []string{"ghost"}})
			return err
		}, domainerrors.ErrUnknownAssignee},
		{"missing project", func() error { _, err := f.projects.Get(ctx, ada, "missing"); return err }, domainerrors.ErrProjectNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.run(), tt.want)
		})
	}
}

func TestProjectUsecase_CreateValidation(t *testing.T) {
	f := newFixture(t, nil, nil, nil)
	ada := f.signup(t, "ada", "ada@example.com")
	end := day(1)

	_, err := f.projects.Create(context.Background(), ada, ProjectInput{Name: "  ", Priority: "low"})
	assert.Equal(t, pkgerrors.ErrInvalidArgument, pkgerrors.CodeOf(err))

	_, err = f.projects.Create(context.Background(), ada, ProjectInput{Name: "x", Priority: "low", DateStart: day(5), DateEnd: &end})
	assert.Equal(t, pkgerrors.ErrInvalidArgument, pkgerrors.CodeOf(err))
}

func TestProjectUsecase_DeleteCascades(t *testing.T) {
	f := newFixture(t, nil, nil, nil)
	ctx := context.Background()
	ada := f.signup(t, "ada", "ada@example.com")

	p := f.project(t, ada, "Launch")
	keep := f.project(t, ada, "Other")
	for _, n := range []string{"one", "two"} {
		_, err := f.tasks.Create(ctx, ada, p.ID, TaskInput{Name: n, Date: day(2), TagName: "Ops"})
		require.NoError(t, err)
	}
	kept, err := f.tasks.Create(ctx, ada, keep.ID, TaskInput{Name: "stays", Date: day(3)})
	require.NoError(t, err)

	require.NoError(t, f.projects.Delete(ctx, ada, p.ID))

	projects, err := f.projects.List(ctx, ada)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, keep.ID, projects[0].ID)

	_, err = f.tasks.ListByProject(ctx, ada, p.ID)
	assert.ErrorIs(t, err, domainerrors.ErrProjectNotFound)

	tasks, err := f.repos.Task.ListByProject(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, tasks)
	tags, err := f.repos.Tag.ListByProject(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, tags)

	assigned, err := f.tasks.ListAssigned(ctx, ada)
	require.NoError(t, err)
	require.Len(t, assigned, 1)
	assert.Equal(t, kept.ID, assigned[0].ID)
}

func TestProjectUsecase_CreateWithAI(t *testing.T) {
	ctx := context.Background()
	input := ProjectInput{Name: "Website", Description: "Build a marketing site", Priority: "high", DateStart: day(1)}

	t.Run("stores generated tasks and tags", func(t *testing.T) {
		generator := new(MockTaskGenerator)
		f := newFixture(t, nil, generator, nil)
		ada := f.signup(t, "ada", "ada@example.com")

		generator.On("Generate", mock.Anything, mock.MatchedBy(func(req entity.GenerationRequest) bool {
			return req.Description == "Build a marketing site" && req.AssigneeID == ada.ID && req.StartDate.Equal(day(1))
		})).Return([]entity.GeneratedTask{
			{Name: "Wireframes", Date: "2024-03-02", TagName: "Design", TagColor: "#abc"},
			{Name: "Mockups", Date: "soon", TagName: "design"},
			{Name: "API", Date: "2024-03-05", TagName: "Backend", TagColor: "teal"},
			{Name: "   ", Date: "2024-03-06"},
		}, nil)

		p, err := f.projects.CreateWithAI(ctx, ada, input)
		require.NoError(t, err)
		generator.AssertExpectations(t)

		stored, err := f.projects.Get(ctx, ada, p.ID)
		require.NoError(t, err)
		require.Len(t, stored.Tasks, 3)
		require.Len(t, stored.Tags, 2)

		assert.Equal(t, "Mockups", stored.Tasks[0].Name)
		assert.True(t, stored.Tasks[0].Date.Equal(day(1)), "unparseable date falls back to the project start")
		assert.Equal(t, "Wireframes", stored.Tasks[1].Name)
		assert.Equal(t, stored.Tasks[0].Tag.ID, stored.Tasks[1].Tag.ID)
		assert.Equal(t, "#ABC", stored.Tasks[1].Tag.Color)
		assert.Equal(t, "Backend", stored.Tasks[2].Tag.Name)

		assigned, err := f.tasks.ListAssigned(ctx, ada)
		require.NoError(t, err)
		assert.Len(t, assigned, 3)
	})

	t.Run("generation failure stores nothing", func(t *testing.T) {
		generator := new(MockTaskGenerator)
		f := newFixture(t, nil, generator, nil)
		ada := f.signup(t, "ada", "ada@example.com")
		generator.On("Generate", mock.Anything, mock.Anything).Return(nil, domainerrors.ErrNoTaskArray)

		_, err := f.projects.CreateWithAI(ctx, ada, input)
		assert.ErrorIs(t, err, domainerrors.ErrNoTaskArray)

		projects, err := f.projects.List(ctx, ada)
		require.NoError(t, err)
		assert.Empty(t, projects)
	})

	t.Run("description is required", func(t *testing.T) {
		generator := new(MockTaskGenerator)
		f := newFixture(t, nil, generator, nil)
		ada := f.signup(t, "ada", "ada@example.com")

		in := input
		in.Description = " "
		_, err := f.projects.CreateWithAI(ctx, ada, in)
		assert.Equal(t, pkgerrors.ErrInvalidArgument, pkgerrors.CodeOf(err))
		generator.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
	})

	t.Run("generator not configured", func(t *testing.T) {
		f := newFixture(t, nil, nil, nil)
		ada := f.signup(t, "ada", "ada@example.com")

		_, err := f.projects.CreateWithAI(ctx, ada, input)
		assert.ErrorIs(t, err, domainerrors.ErrGeneratorDisabled)
	})
}
