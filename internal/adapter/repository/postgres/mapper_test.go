package postgres

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/wekeepgrowing/project-planner/internal/domain/entity"
	"github.com/wekeepgrowing/project-planner/internal/domain/model"
	"github.com/wekeepgrowing/project-planner/internal/domain/repository"
)

func TestValidIDs(t *testing.T) {
	id := uuid.NewString()
	assert.True(t, validID(id))
	assert.False(t, validID("42"))
	assert.Equal(t, []string{id}, validIDs([]string{"nope", id, ""}))
}

func TestTranslate(t *testing.T) {
	wrapped := fmt.Errorf("insert users: %w", gorm.ErrDuplicatedKey)
	assert.ErrorIs(t, translate(wrapped), repository.ErrDuplicate)

	other := errors.New("connection reset")
	assert.Equal(t, other, translate(other))
}

func TestProjectToEntity_Aggregate(t *testing.T) {
	tagID := "g1"
	m := &model.Project{
		ID:        "p1",
		Name:      "Launch",
		Priority:  "high",
		DateStart: time.Date(2024, 3, 1, 9, 0, 0, 0, time.FixedZone("KST", 9*3600)),
		OwnerID:   "u1",
		Owner:     &model.User{ID: "u1", Name: "Ada"},
		Assignees: []model.User{{ID: "u2", Name: "Bob"}},
		Tags:      []model.Tag{{ID: tagID, ProjectID: "p1", Name: "UI", Color: "#FFF"}},
		Tasks: []model.Task{
			{ID: "t1", ProjectID: "p1", Name: "tagged", TagID: &tagID, Tag: &model.Tag{ID: tagID, ProjectID: "p1", Name: "UI"}},
			{ID: "t2", ProjectID: "p1", Name: "plain", Assignees: []model.User{{ID: "u1", Name: "Ada"}}},
		},
	}

	p := projectToEntity(m)
	assert.Equal(t, time.UTC, p.DateStart.Location())
	assert.Equal(t, &entity.UserRef{ID: "u1", Name: "Ada"}, p.Owner)
	assert.Equal(t, []entity.UserRef{{ID: "u2", Name: "Bob"}}, p.Assignees)
	require.Len(t, p.Tasks, 2)
	require.NotNil(t, p.Tasks[0].Tag)
	assert.Equal(t, "UI", p.Tasks[0].Tag.Name)
	assert.Nil(t, p.Tasks[1].Tag)
	assert.Equal(t, []entity.UserRef{{ID: "u1", Name: "Ada"}}, p.Tasks[1].Assignees)
	require.Len(t, p.Tags, 1)
}

func TestProjectToEntity_EmptyRelations(t *testing.T) {
	p := projectToEntity(&model.Project{ID: "p1", OwnerID: "u1"})
	assert.Nil(t, p.Owner)
	assert.NotNil(t, p.Tasks)
	assert.NotNil(t, p.Tags)
	assert.NotNil(t, p.Assignees)
}

func TestJoinRows(t *testing.T) {
	p := &entity.Project{ID: "p1", Assignees: []entity.UserRef{{ID: "u1"}, {ID: "u2"}}}
	assert.Equal(t, []model.ProjectAssignee{{ProjectID: "p1", UserID: "u1"}, {ProjectID: "p1", UserID: "u2"}}, projectAssignees(p))

	task := &entity.Task{ID: "t1"}
	assert.Empty(t, taskAssignees(task))
}

func TestUserRoundTrip(t *testing.T) {
	dob := time.Date(1990, 1, 2, 0, 0, 0, 0, time.UTC)
	u := &entity.User{ID: "u1", Name: "Ada", Email: "ada@example.com", AuthType: entity.AuthTypeGoogle, DateOfBirth: &dob}

	back := userToEntity(userToModel(u))
	assert.Equal(t, u.Email, back.Email)
	assert.Equal(t, entity.AuthTypeGoogle, back.AuthType)
	assert.Equal(t, &dob, back.DateOfBirth)
	assert.Nil(t, userToEntity(nil))
}
