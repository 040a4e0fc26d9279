package mongodb

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/wekeepgrowing/project-planner/internal/domain/entity"
)

func TestDiff(t *testing.T) {
	tests := []struct {
		name        string
		before      []string
		after       []string
		wantAdded   []string
		wantRemoved []string
	}{
		{"unchanged", []string{"a", "b"}, []string{"b", "a"}, nil, nil},
		{"grow", []string{"a"}, []string{"a", "b"}, []string{"b"}, nil},
		{"shrink", []string{"a", "b"}, []string{"b"}, nil, []string{"a"}},
		{"replace", []string{"a"}, []string{"c"}, []string{"c"}, []string{"a"}},
		{"from empty", nil, []string{"a"}, []string{"a"}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			added, removed := diff(tt.before, tt.after)
			assert.Equal(t, tt.wantAdded, added)
			assert.Equal(t, tt.wantRemoved, removed)
		})
	}
}

func TestWithout(t *testing.T) {
	assert.Equal(t, []string{"a", "c"}, without([]string{"a", "owner", "c"}, "owner"))
	assert.Empty(t, without([]string{"owner"}, "owner"))
}

func TestNameKey(t *testing.T) {
	assert.Equal(t, "design", nameKey("  Design "))
	assert.Equal(t, nameKey("UI"), nameKey("ui"))
}

func TestTaskDocument_RoundTripsThroughBSON(t *testing.T) {
	task, err := entity.NewTask("t1", "p1", "Design", "desc", time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC), "u1", "u2")
	require.NoError(t, err)

	raw, err := bson.Marshal(taskToDocument(task))
	require.NoError(t, err)

	var m bson.M
	require.NoError(t, bson.Unmarshal(raw, &m))
	assert.Equal(t, "t1", m["_id"])
	_, hasTag := m["tag_id"]
	assert.False(t, hasTag, "an untagged task must not store tag_id")

	var doc taskDocument
	require.NoError(t, bson.Unmarshal(raw, &doc))
	assert.Equal(t, []string{"u1", "u2"}, doc.AssigneeIDs)
	assert.True(t, doc.Date.Equal(task.Date))
}

func TestUserDocument_StartsWithEmptyMemberships(t *testing.T) {
	user, err := entity.NewUser("u1", "Ada", "ada@example.com", "hash")
	require.NoError(t, err)

	doc := userToDocument(user)
	assert.Equal(t, []string{}, doc.Projects)
	assert.Equal(t, []string{}, doc.AssignedTasks)

	back := userFromDocument(doc)
	assert.Equal(t, user.Email, back.Email)
	assert.Equal(t, entity.AuthTypeNormal, back.AuthType)
}
