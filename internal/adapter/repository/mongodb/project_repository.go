package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wekeepgrowing/project-planner/internal/domain/entity"
)

const projectsField = "projects"

type projectRepository struct{ s *store }

func (r *projectRepository) FindByID(ctx context.Context, id string) (*entity.Project, error) {
	doc, err := findOne[projectDocument](ctx, r.s.projects, bson.M{"_id": id})
	if err != nil || doc == nil {
		return nil, err
	}
	projects, err := r.s.hydrateProjects(ctx, []projectDocument{*doc})
	if err != nil {
		return nil, err
	}
	return projects[0], nil
}

func accessFilter(userID string) bson.M {
	return bson.M{"$or": bson.A{
		bson.M{"owner_id": userID},
		bson.M{"assignee_ids": userID},
	}}
}

func (r *projectRepository) ListForUser(ctx context.Context, userID string) ([]*entity.Project, error) {
	docs, err := findAll[projectDocument](ctx, r.s.projects, accessFilter(userID))
	if err != nil {
		return nil, err
	}
	return r.s.hydrateProjects(ctx, docs)
}

// ListIDsForUser reads the user's denormalized projects array.
func (r *projectRepository) ListIDsForUser(ctx context.Context, userID string) ([]string, error) {
	doc, err := findOne[userDocument](ctx, r.s.users, bson.M{"_id": userID},
		options.FindOne().SetProjection(bson.M{projectsField: 1}))
	if err != nil {
		return nil, err
	}
	if doc == nil || doc.Projects == nil {
		return []string{}, nil
	}
	return doc.Projects, nil
}

func (r *projectRepository) Create(ctx context.Context, project *entity.Project) error {
	return r.CreateWithContents(ctx, project, nil, nil)
}

// CreateWithContents inserts the project, then its tags and tasks. MongoDB
// transactions need a replica set, so a failure part way leaves the earlier
// documents in place.
func (r *projectRepository) CreateWithContents(ctx context.Context, project *entity.Project, tags []*entity.Tag, tasks []*entity.Task) error {
	doc := projectToDocument(project)
	if _, err := r.s.projects.InsertOne(ctx, doc); err != nil {
		return err
	}
	members := append([]string{project.OwnerID}, doc.AssigneeIDs...)
	if err := r.s.addMembership(ctx, projectsField, members, project.ID); err != nil {
		return err
	}

	if len(tags) > 0 {
		docs := make([]interface{}, 0, len(tags))
		for _, tag := range tags {
			docs = append(docs, tagToDocument(tag))
		}
		if _, err := r.s.tags.InsertMany(ctx, docs); err != nil {
			return err
		}
	}

	tr := &taskRepository{r.s}
	for _, task := range tasks {
		if err := tr.Create(ctx, task); err != nil {
			return err
		}
	}
	return nil
}

func (r *projectRepository) Update(ctx context.Context, project *entity.Project) error {
	before, err := findOne[projectDocument](ctx, r.s.projects, bson.M{"_id": project.ID},
		options.FindOne().SetProjection(bson.M{"assignee_ids": 1}))
	if err != nil {
		return err
	}

	doc := projectToDocument(project)
	_, err = r.s.projects.UpdateByID(ctx, project.ID, bson.M{"$set": bson.M{
		"name":         doc.Name,
		"description":  doc.Description,
		"finished":     doc.Finished,
		"priority":     doc.Priority,
		"date_start":   doc.DateStart,
		"date_end":     doc.DateEnd,
		"assignee_ids": doc.AssigneeIDs,
		"updated_at":   doc.UpdatedAt,
	}})
	if err != nil || before == nil {
		return err
	}

	added, removed := diff(before.AssigneeIDs, doc.AssigneeIDs)
	if err := r.s.addMembership(ctx, projectsField, added, project.ID); err != nil {
		return err
	}
	removed = without(removed, project.OwnerID)
	if len(removed) == 0 {
		return nil
	}
	return r.s.pullMembership(ctx, projectsField, removed, []string{project.ID})
}

// Delete removes tasks, tags, membership entries and the project, in that order.
func (r *projectRepository) Delete(ctx context.Context, id string) error {
	taskDocs, err := findAll[taskDocument](ctx, r.s.tasks, bson.M{"project_id": id},
		options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		return err
	}
	taskIDs := make([]string, 0, len(taskDocs))
	for _, t := range taskDocs {
		taskIDs = append(taskIDs, t.ID)
	}

	if _, err := r.s.tasks.DeleteMany(ctx, bson.M{"project_id": id}); err != nil {
		return err
	}
	if _, err := r.s.tags.DeleteMany(ctx, bson.M{"project_id": id}); err != nil {
		return err
	}
	if err := r.s.pullMembership(ctx, assignedTasksField, nil, taskIDs); err != nil {
		return err
	}
	if err := r.s.pullMembership(ctx, projectsField, nil, []string{id}); err != nil {
		return err
	}
	_, err = r.s.projects.DeleteOne(ctx, bson.M{"_id": id})
	return err
}

func without(ids []string, drop string) []string {
	out := ids[:0]
	for _, id := range ids {
		if id != drop {
			out = append(out, id)
		}
	}
	return out
}
