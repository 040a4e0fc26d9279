package memory

import (
	"context"
	"sort"

	"github.com/wekeepgrowing/project-planner/internal/domain/entity"
)

type projectRepository struct{ s *Store }

func (r *projectRepository) FindByID(_ context.Context, id string) (*entity.Project, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if p, ok := r.s.projects[id]; ok {
		return r.s.hydrateProject(p), nil
	}
	return nil, nil
}

func (r *projectRepository) ListForUser(_ context.Context, userID string) ([]*entity.Project, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make([]*entity.Project, 0)
	for _, p := range r.s.projects {
		if p.IsAccessibleBy(userID) {
			out = append(out, r.s.hydrateProject(p))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *projectRepository) ListIDsForUser(ctx context.Context, userID string) ([]string, error) {
	projects, err := r.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(projects))
	for _, p := range projects {
		ids = append(ids, p.ID)
	}
	return ids, nil
}

func (r *projectRepository) Create(ctx context.Context, project *entity.Project) error {
	return r.CreateWithContents(ctx, project, nil, nil)
}

func (r *projectRepository) CreateWithContents(_ context.Context, project *entity.Project, tags []*entity.Tag, tasks []*entity.Task) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.projects[project.ID] = projectRow(project)
	for _, tag := range tags {
		cp := *tag
		r.s.tags[tag.ID] = &cp
	}
	for _, t := range tasks {
		r.s.tasks[t.ID] = taskRow(t)
	}
	return nil
}

func (r *projectRepository) Update(_ context.Context, project *entity.Project) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.projects[project.ID] = projectRow(project)
	return nil
}

func (r *projectRepository) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for tid, t := range r.s.tasks {
		if t.ProjectID == id {
			delete(r.s.tasks, tid)
		}
	}
	for tid, tag := range r.s.tags {
		if tag.ProjectID == id {
			delete(r.s.tags, tid)
		}
	}
	delete(r.s.projects, id)
	return nil
}

func projectRow(p *entity.Project) *entity.Project {
	row := *p
	row.Owner = nil
	row.Assignees = idRefs(p.Assignees)
	row.Tasks = nil
	row.Tags = nil
	return &row
}
