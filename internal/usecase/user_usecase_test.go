package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wekeepgrowing/project-planner/internal/domain/entity"
	domainerrors "github.com/wekeepgrowing/project-planner/internal/domain/errors"
)

func TestUserUsecase_Profiles(t *testing.T) {
	f := newFixture(t, nil, nil, nil)
	ctx := context.Background()
	ada := f.signup(t, "ada", "ada@example.com")
	f.signup(t, "bob", "bob@example.com")

	p := f.project(t, ada, "Launch")
	task, err := f.tasks.Create(ctx, ada, p.ID, TaskInput{Name: "Design", Date: day(2)})
	require.NoError(t, err)

	profile, err := f.users.Get(ctx, ada.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{p.ID}, profile.ProjectIDs)
	assert.Equal(t, []string{task.ID}, profile.AssignedTaskIDs)

	all, err := f.users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = f.users.Get(ctx, "missing")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserUsecase_Update(t *testing.T) {
	f := newFixture(t, nil, nil, nil)
	ctx := context.Background()
	ada := f.signup(t, "ada", "ada@example.com")
	bob := f.signup(t, "bob", "bob@example.com")

	gender := "female"
	dob := time.Date(1990, 12, 10, 0, 0, 0, 0, time.UTC)
	email := " Ada.L@Example.com"
	profile, err := f.users.Update(ctx, ada, ada.ID, entity.UserChanges{Gender: &gender, DateOfBirth: &dob, Email: &email})
	require.NoError(t, err)
	assert.Equal(t, "female", profile.User.Gender)
	assert.Equal(t, "ada.l@example.com", profile.User.Email)
	require.NotNil(t, profile.User.DateOfBirth)
	assert.True(t, profile.User.DateOfBirth.Equal(dob))

	_, err = f.auth.LoginNormal(ctx, "ada.l@example.com", "secret-ada")
	require.NoError(t, err)

	taken := "BOB@example.com"
	empty := " "
	tests := []struct {
		name    string
		id      string
		changes entity.UserChanges
		want    error
	}{
		{"someone else", bob.ID, entity.UserChanges{Gender: &gender}, domainerrors.ErrForbidden},
		{"email taken", ada.ID, entity.UserChanges{Email: &taken}, domainerrors.ErrEmailInUse},
		{"blank name", ada.ID, entity.UserChanges{Name: &empty}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.users.Update(ctx, ada, tt.id, tt.changes)
			require.Error(t, err)
			if tt.want != nil {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}
