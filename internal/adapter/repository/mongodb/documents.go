// Package mongodb implements the domain repositories on MongoDB documents.
// users carries denormalized "projects" and "assigned_tasks" id arrays that
// the project and task repositories keep in step with $addToSet and $pull.
package mongodb

import (
	"strings"
	"time"

	"github.com/wekeepgrowing/project-planner/internal/domain/entity"
)

const (
	usersCollection    = "users"
	projectsCollection = "projects"
	tasksCollection    = "tasks"
	tagsCollection     = "tags"
)

type userDocument struct {
	ID             string     `bson:"_id"`
	Name           string     `bson:"name"`
	Email          string     `bson:"email"`
	HashedPassword string     `bson:"hashed_password,omitempty"`
	AuthType       string     `bson:"auth_type"`
	Gender         string     `bson:"gender,omitempty"`
	DateOfBirth    *time.Time `bson:"date_of_birth,omitempty"`
	Picture        string     `bson:"picture,omitempty"`
	Projects       []string   `bson:"projects"`
	AssignedTasks  []string   `bson:"assigned_tasks"`
	CreatedAt      time.Time  `bson:"created_at"`
	UpdatedAt      time.Time  `bson:"updated_at"`
}

type projectDocument struct {
	ID          string     `bson:"_id"`
	Name        string     `bson:"name"`
	Description string     `bson:"description"`
	Finished    bool       `bson:"finished"`
	Priority    string     `bson:"priority"`
	DateStart   time.Time  `bson:"date_start"`
	DateEnd     *time.Time `bson:"date_end,omitempty"`
	OwnerID     string     `bson:"owner_id"`
	AssigneeIDs []string   `bson:"assignee_ids"`
	CreatedAt   time.Time  `bson:"created_at"`
	UpdatedAt   time.Time  `bson:"updated_at"`
}

type taskDocument struct {
	ID          string    `bson:"_id"`
	ProjectID   string    `bson:"project_id"`
	Name        string    `bson:"name"`
	Description string    `bson:"description"`
	Finished    bool      `bson:"finished"`
	Date        time.Time `bson:"date"`
	TagID       *string   `bson:"tag_id,omitempty"`
	AssigneeIDs []string  `bson:"assignee_ids"`
	CreatedAt   time.Time `bson:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at"`
}

type tagDocument struct {
	ID        string `bson:"_id"`
	ProjectID string `bson:"project_id"`
	Name      string `bson:"name"`
	NameKey   string `bson:"name_key"`
	Color     string `bson:"color"`
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func userFromDocument(d *userDocument) *entity.User {
	return &entity.User{
		ID:             d.ID,
		Name:           d.Name,
		Email:          d.Email,
		HashedPassword: d.HashedPassword,
		AuthType:       entity.AuthType(d.AuthType),
		Gender:         d.Gender,
		DateOfBirth:    d.DateOfBirth,
		Picture:        d.Picture,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

func userToDocument(u *entity.User) *userDocument {
	return &userDocument{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		HashedPassword: u.HashedPassword,
		AuthType:       string(u.AuthType),
		Gender:         u.Gender,
		DateOfBirth:    u.DateOfBirth,
		Picture:        u.Picture,
		Projects:       []string{},
		AssignedTasks:  []string{},
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

func projectToDocument(p *entity.Project) *projectDocument {
	return &projectDocument{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Finished:    p.Finished,
		Priority:    p.Priority,
		DateStart:   p.DateStart,
		DateEnd:     p.DateEnd,
		OwnerID:     p.OwnerID,
		AssigneeIDs: refIDs(p.Assignees),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func taskToDocument(t *entity.Task) *taskDocument {
	return &taskDocument{
		ID:          t.ID,
		ProjectID:   t.ProjectID,
		Name:        t.Name,
		Description: t.Description,
		Finished:    t.Finished,
		Date:        t.Date,
		TagID:       t.TagID,
		AssigneeIDs: refIDs(t.Assignees),
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func tagToDocument(t *entity.Tag) *tagDocument {
	return &tagDocument{ID: t.ID, ProjectID: t.ProjectID, Name: t.Name, NameKey: nameKey(t.Name), Color: t.Color}
}

func tagFromDocument(d *tagDocument) *entity.Tag {
	return &entity.Tag{ID: d.ID, ProjectID: d.ProjectID, Name: d.Name, Color: d.Color}
}

func refIDs(refs []entity.UserRef) []string {
	ids := make([]string, 0, len(refs))
	for _, r := range refs {
		ids = append(ids, r.ID)
	}
	return ids
}

// diff returns the ids only in after (added) and only in before (removed).
func diff(before, after []string) (added, removed []string) {
	in := func(list []string, v string) bool {
		for _, s := range list {
			if s == v {
				return true
			}
		}
		return false
	}
	for _, id := range after {
		if !in(before, id) {
			added = append(added, id)
		}
	}
	for _, id := range before {
		if !in(after, id) {
			removed = append(removed, id)
		}
	}
	return added, removed
}
