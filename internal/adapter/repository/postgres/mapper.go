// Package postgres implements the domain repositories on GORM and PostgreSQL.
package postgres

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/wekeepgrowing/project-planner/internal/domain/entity"
	"github.com/wekeepgrowing/project-planner/internal/domain/model"
	"github.com/wekeepgrowing/project-planner/internal/domain/repository"
)

// NewRepositories builds all repositories over one connection.
func NewRepositories(db *gorm.DB) repository.Repositories {
	return repository.Repositories{
		User:    NewUserRepository(db),
		Project: NewProjectRepository(db),
		Task:    NewTaskRepository(db),
		Tag:     NewTagRepository(db),
	}
}

// validID reports whether id can be compared against a uuid column. Other
// values would make PostgreSQL fail the whole query.
func validID(id string) bool {
	return uuid.Validate(id) == nil
}

func validIDs(ids []string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if validID(id) {
			out = append(out, id)
		}
	}
	return out
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return repository.ErrDuplicate
	}
	return err
}

func userToEntity(m *model.User) *entity.User {
	if m == nil {
		return nil
	}
	return &entity.User{
		ID:             m.ID,
		Name:           m.Name,
		Email:          m.Email,
		HashedPassword: m.HashedPassword,
		AuthType:       entity.AuthType(m.AuthType),
		Gender:         m.Gender,
		DateOfBirth:    m.DateOfBirth,
		Picture:        m.Picture,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func userToModel(e *entity.User) *model.User {
	return &model.User{
		ID:             e.ID,
		Name:           e.Name,
		Email:          e.Email,
		HashedPassword: e.HashedPassword,
		AuthType:       string(e.AuthType),
		Gender:         e.Gender,
		DateOfBirth:    e.DateOfBirth,
		Picture:        e.Picture,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func refs(users []model.User) []entity.UserRef {
	out := make([]entity.UserRef, 0, len(users))
	for _, u := range users {
		out = append(out, entity.UserRef{ID: u.ID, Name: u.Name})
	}
	return out
}

func tagToEntity(m *model.Tag) *entity.Tag {
	if m == nil {
		return nil
	}
	return &entity.Tag{ID: m.ID, ProjectID: m.ProjectID, Name: m.Name, Color: m.Color}
}

func tagToModel(e *entity.Tag) *model.Tag {
	return &model.Tag{ID: e.ID, ProjectID: e.ProjectID, Name: e.Name, Color: e.Color}
}

func taskToEntity(m *model.Task) *entity.Task {
	t := &entity.Task{
		ID:          m.ID,
		ProjectID:   m.ProjectID,
		Name:        m.Name,
		Description: m.Description,
		Finished:    m.Finished,
		Date:        m.Date.UTC(),
		TagID:       m.TagID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		Tag:         tagToEntity(m.Tag),
		Assignees:   refs(m.Assignees),
	}
	return t
}

func taskToModel(e *entity.Task) *model.Task {
	return &model.Task{
		ID:          e.ID,
		ProjectID:   e.ProjectID,
		Name:        e.Name,
		Description: e.Description,
		Finished:    e.Finished,
		Date:        e.Date,
		TagID:       e.TagID,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func projectToEntity(m *model.Project) *entity.Project {
	p := &entity.Project{
		ID:          m.ID,
		Name:        m.Name,
		Description: m.Description,
		Finished:    m.Finished,
		Priority:    m.Priority,
		DateStart:   m.DateStart.UTC(),
		DateEnd:     m.DateEnd,
		OwnerID:     m.OwnerID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		Assignees:   refs(m.Assignees),
		Tasks:       make([]*entity.Task, 0, len(m.Tasks)),
		Tags:        make([]*entity.Tag, 0, len(m.Tags)),
	}
	if m.Owner != nil {
		p.Owner = &entity.UserRef{ID: m.Owner.ID, Name: m.Owner.Name}
	}
	for i := range m.Tasks {
		p.Tasks = append(p.Tasks, taskToEntity(&m.Tasks[i]))
	}
	for i := range m.Tags {
		p.Tags = append(p.Tags, tagToEntity(&m.Tags[i]))
	}
	return p
}

func projectToModel(e *entity.Project) *model.Project {
	return &model.Project{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		Finished:    e.Finished,
		Priority:    e.Priority,
		DateStart:   e.DateStart,
		DateEnd:     e.DateEnd,
		OwnerID:     e.OwnerID,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func projectAssignees(p *entity.Project) []model.ProjectAssignee {
	rows := make([]model.ProjectAssignee, 0, len(p.Assignees))
	for _, a := range p.Assignees {
		rows = append(rows, model.ProjectAssignee{ProjectID: p.ID, UserID: a.ID})
	}
	return rows
}

func taskAssignees(t *entity.Task) []model.TaskAssignee {
	rows := make([]model.TaskAssignee, 0, len(t.Assignees))
	for _, a := range t.Assignees {
		rows = append(rows, model.TaskAssignee{TaskID: t.ID, UserID: a.ID})
	}
	return rows
}
