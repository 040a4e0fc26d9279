// Package memory keeps every aggregate in process memory. It backs the
// "memory" database driver used for local runs and handler tests.
package memory

import (
	"sort"
	"strings"
	"sync"

	"github.com/wekeepgrowing/project-planner/internal/domain/entity"
	"github.com/wekeepgrowing/project-planner/internal/domain/repository"
)

// Store holds the rows. Relations are kept as ids (project/task assignees in
// UserRef.ID, task tag in TagID) and resolved on read.
type Store struct {
	mu       sync.RWMutex
	users    map[string]*entity.User
	projects map[string]*entity.Project
	tasks    map[string]*entity.Task
	tags     map[string]*entity.Tag
}

func NewStore() *Store {
	return &Store{
		users:    make(map[string]*entity.User),
		projects: make(map[string]*entity.Project),
		tasks:    make(map[string]*entity.Task),
		tags:     make(map[string]*entity.Tag),
	}
}

// Repositories returns repository implementations sharing this store.
func (s *Store) Repositories() repository.Repositories {
	return repository.Repositories{
		User:    &userRepository{s},
		Project: &projectRepository{s},
		Task:    &taskRepository{s},
		Tag:     &tagRepository{s},
	}
}

func (s *Store) userRef(id string) entity.UserRef {
	if u, ok := s.users[id]; ok {
		return u.Ref()
	}
	return entity.UserRef{ID: id}
}

func (s *Store) refs(in []entity.UserRef) []entity.UserRef {
	out := make([]entity.UserRef, 0, len(in))
	for _, r := range in {
		out = append(out, s.userRef(r.ID))
	}
	return out
}

func (s *Store) hydrateTask(row *entity.Task) *entity.Task {
	t := *row
	t.Assignees = s.refs(row.Assignees)
	t.Tag = nil
	if row.TagID != nil {
		id := *row.TagID
		t.TagID = &id
		if tag, ok := s.tags[id]; ok {
			cp := *tag
			t.Tag = &cp
		}
	}
	return &t
}

func (s *Store) hydrateProject(row *entity.Project) *entity.Project {
	p := *row
	owner := s.userRef(row.OwnerID)
	p.Owner = &owner
	p.Assignees = s.refs(row.Assignees)

	p.Tasks = make([]*entity.Task, 0)
	for _, t := range s.tasks {
		if t.ProjectID == row.ID {
			p.Tasks = append(p.Tasks, s.hydrateTask(t))
		}
	}
	sortTasks(p.Tasks)

	p.Tags = make([]*entity.Tag, 0)
	for _, tag := range s.tags {
		if tag.ProjectID == row.ID {
			cp := *tag
			p.Tags = append(p.Tags, &cp)
		}
	}
	sortTags(p.Tags)
	return &p
}

func idRefs(in []entity.UserRef) []entity.UserRef {
	out := make([]entity.UserRef, 0, len(in))
	for _, r := range in {
		out = append(out, entity.UserRef{ID: r.ID})
	}
	return out
}

func sortTasks(tasks []*entity.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		if !tasks[i].Date.Equal(tasks[j].Date) {
			return tasks[i].Date.Before(tasks[j].Date)
		}
		return tasks[i].CreatedAt.Before(tasks[j].CreatedAt)
	})
}

func sortTags(tags []*entity.Tag) {
	sort.SliceStable(tags, func(i, j int) bool {
		return strings.ToLower(tags[i].Name) < strings.ToLower(tags[j].Name)
	})
}
