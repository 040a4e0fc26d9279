package memory

import (
	"context"
	"strings"

	"github.com/wekeepgrowing/project-planner/internal/domain/entity"
)

type taskRepository struct{ s *Store }

func (r *taskRepository) FindByID(_ context.Context, id string) (*entity.Task, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if t, ok := r.s.tasks[id]; ok {
		return r.s.hydrateTask(t), nil
	}
	return nil, nil
}

func (r *taskRepository) ListByProject(_ context.Context, projectID string) ([]*entity.Task, error) {
	return r.list(func(t *entity.Task) bool { return t.ProjectID == projectID }), nil
}

func (r *taskRepository) ListByAssignee(_ context.Context, userID string) ([]*entity.Task, error) {
	return r.list(func(t *entity.Task) bool { return t.IsAssignedTo(userID) }), nil
}

func (r *taskRepository) list(match func(*entity.Task) bool) []*entity.Task {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Task, 0)
	for _, t := range r.s.tasks {
		if match(t) {
			out = append(out, r.s.hydrateTask(t))
		}
	}
	sortTasks(out)
	return out
}

func (r *taskRepository) Create(_ context.Context, task *entity.Task) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.tasks[task.ID] = taskRow(task)
	return nil
}

func (r *taskRepository) Update(_ context.Context, task *entity.Task) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	row := taskRow(task)
	if existing, ok := r.s.tasks[task.ID]; ok {
		row.ProjectID = existing.ProjectID
	}
	r.s.tasks[task.ID] = row
	return nil
}

func (r *taskRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.tasks, id)
	return nil
}

func taskRow(t *entity.Task) *entity.Task {
	row := *t
	row.Tag = nil
	row.Assignees = idRefs(t.Assignees)
	if t.TagID != nil {
		id := *t.TagID
		row.TagID = &id
	}
	return &row
}

type tagRepository struct{ s *Store }

func (r *tagRepository) FindByID(_ context.Context, id string) (*entity.Tag, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if tag, ok := r.s.tags[id]; ok {
		cp := *tag
		return &cp, nil
	}
	return nil, nil
}

func (r *tagRepository) FindByName(_ context.Context, projectID, name string) (*entity.Tag, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	name = strings.TrimSpace(name)
	for _, tag := range r.s.tags {
		if tag.ProjectID == projectID && tag.SameName(name) {
			cp := *tag
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *tagRepository) ListByProject(_ context.Context, projectID string) ([]*entity.Tag, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Tag, 0)
	for _, tag := range r.s.tags {
		if tag.ProjectID == projectID {
			cp := *tag
			out = append(out, &cp)
		}
	}
	sortTags(out)
	return out, nil
}

func (r *tagRepository) Create(_ context.Context, tag *entity.Tag) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cp := *tag
	r.s.tags[tag.ID] = &cp
	return nil
}
