package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wekeepgrowing/project-planner/internal/domain/entity"
	"github.com/wekeepgrowing/project-planner/internal/domain/repository"
)

const assignedTasksField = "assigned_tasks"

var taskOrder = options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "created_at", Value: 1}})

type taskRepository struct{ s *store }

func (r *taskRepository) FindByID(ctx context.Context, id string) (*entity.Task, error) {
	doc, err := findOne[taskDocument](ctx, r.s.tasks, bson.M{"_id": id})
	if err != nil || doc == nil {
		return nil, err
	}
	tasks, err := r.s.hydrateTasks(ctx, []taskDocument{*doc})
	if err != nil {
		return nil, err
	}
	return tasks[0], nil
}

func (r *taskRepository) ListByProject(ctx context.Context, projectID string) ([]*entity.Task, error) {
	return r.find(ctx, bson.M{"project_id": projectID})
}

// ListByAssignee resolves the user's denormalized assigned_tasks array.
func (r *taskRepository) ListByAssignee(ctx context.Context, userID string) ([]*entity.Task, error) {
	user, err := findOne[userDocument](ctx, r.s.users, bson.M{"_id": userID})
	if err != nil {
		return nil, err
	}
	if user == nil || len(user.AssignedTasks) == 0 {
		return []*entity.Task{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": user.AssignedTasks}})
}

func (r *taskRepository) find(ctx context.Context, filter bson.M) ([]*entity.Task, error) {
	docs, err := findAll[taskDocument](ctx, r.s.tasks, filter, taskOrder)
	if err != nil {
		return nil, err
	}
	return r.s.hydrateTasks(ctx, docs)
}

func (r *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	doc := taskToDocument(task)
	if _, err := r.s.tasks.InsertOne(ctx, doc); err != nil {
		return err
	}
	return r.s.addMembership(ctx, assignedTasksField, doc.AssigneeIDs, task.ID)
}

func (r *taskRepository) Update(ctx context.Context, task *entity.Task) error {
	before, err := findOne[taskDocument](ctx, r.s.tasks, bson.M{"_id": task.ID})
	if err != nil {
		return err
	}

	doc := taskToDocument(task)
	set := bson.M{
		"name":         doc.Name,
		"description":  doc.Description,
		"finished":     doc.Finished,
		"date":         doc.Date,
		"assignee_ids": doc.AssigneeIDs,
		"updated_at":   doc.UpdatedAt,
	}
	update := bson.M{"$set": set}
	if doc.TagID != nil {
		set["tag_id"] = *doc.TagID
	} else {
		update["$unset"] = bson.M{"tag_id": ""}
	}
	if _, err := r.s.tasks.UpdateByID(ctx, task.ID, update); err != nil {
		return err
	}
	if before == nil {
		return nil
	}

	added, removed := diff(before.AssigneeIDs, doc.AssigneeIDs)
	if err := r.s.addMembership(ctx, assignedTasksField, added, task.ID); err != nil {
		return err
	}
	if len(removed) == 0 {
		return nil
	}
	return r.s.pullMembership(ctx, assignedTasksField, removed, []string{task.ID})
}

func (r *taskRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.s.tasks.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return err
	}
	return r.s.pullMembership(ctx, assignedTasksField, nil, []string{id})
}

type tagRepository struct{ s *store }

func (r *tagRepository) FindByID(ctx context.Context, id string) (*entity.Tag, error) {
	return r.first(ctx, bson.M{"_id": id})
}

func (r *tagRepository) FindByName(ctx context.Context, projectID, name string) (*entity.Tag, error) {
	return r.first(ctx, bson.M{"project_id": projectID, "name_key": nameKey(name)})
}

func (r *tagRepository) first(ctx context.Context, filter bson.M) (*entity.Tag, error) {
	doc, err := findOne[tagDocument](ctx, r.s.tags, filter)
	if err != nil || doc == nil {
		return nil, err
	}
	return tagFromDocument(doc), nil
}

func (r *tagRepository) ListByProject(ctx context.Context, projectID string) ([]*entity.Tag, error) {
	docs, err := findAll[tagDocument](ctx, r.s.tags, bson.M{"project_id": projectID},
		options.Find().SetSort(bson.D{{Key: "name_key", Value: 1}}))
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Tag, 0, len(docs))
	for i := range docs {
		out = append(out, tagFromDocument(&docs[i]))
	}
	return out, nil
}

func (r *tagRepository) Create(ctx context.Context, tag *entity.Tag) error {
	_, err := r.s.tags.InsertOne(ctx, tagToDocument(tag))
	if mongo.IsDuplicateKeyError(err) {
		return repository.ErrDuplicate
	}
	return err
}
