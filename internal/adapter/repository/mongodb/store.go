package mongodb

import (
	"context"
	"errors"
	"sort"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wekeepgrowing/project-planner/internal/domain/entity"
	"github.com/wekeepgrowing/project-planner/internal/domain/repository"
)

// store is shared by the repositories; it owns the collections and the
// read-side hydration.
type store struct {
	users    *mongo.Collection
	projects *mongo.Collection
	tasks    *mongo.Collection
	tags     *mongo.Collection
}

// NewRepositories builds all repositories over one database.
func NewRepositories(db *mongo.Database) repository.Repositories {
	s := &store{
		users:    db.Collection(usersCollection),
		projects: db.Collection(projectsCollection),
		tasks:    db.Collection(tasksCollection),
		tags:     db.Collection(tagsCollection),
	}
	return repository.Repositories{
		User:    &userRepository{s},
		Project: &projectRepository{s},
		Task:    &taskRepository{s},
		Tag:     &tagRepository{s},
	}
}

func findOne[T any](ctx context.Context, c *mongo.Collection, filter interface{}, opts ...*options.FindOneOptions) (*T, error) {
	var doc T
	if err := c.FindOne(ctx, filter, opts...).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &doc, nil
}

func findAll[T any](ctx context.Context, c *mongo.Collection, filter interface{}, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := c.Find(ctx, filter, opts...)
	if err != nil {
		return nil, err
	}
	docs := make([]T, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}
	return docs, nil
}

// addMembership adds value to the array field of each user.
func (s *store) addMembership(ctx context.Context, field string, userIDs []string, value string) error {
	if len(userIDs) == 0 {
		return nil
	}
	_, err := s.users.UpdateMany(ctx,
		bson.M{"_id": bson.M{"$in": userIDs}},
		bson.M{"$addToSet": bson.M{field: value}})
	return err
}

// pullMembership removes values from the array field of the given users, or of
// every user when userIDs is nil.
func (s *store) pullMembership(ctx context.Context, field string, userIDs []string, values []string) error {
	if len(values) == 0 {
		return nil
	}
	filter := bson.M{field: bson.M{"$in": values}}
	if userIDs != nil {
		if len(userIDs) == 0 {
			return nil
		}
		filter["_id"] = bson.M{"$in": userIDs}
	}
	_, err := s.users.UpdateMany(ctx, filter, bson.M{"$pull": bson.M{field: bson.M{"$in": values}}})
	return err
}

func (s *store) userRefs(ctx context.Context, ids []string) (map[string]entity.UserRef, error) {
	refs := make(map[string]entity.UserRef, len(ids))
	if len(ids) == 0 {
		return refs, nil
	}
	docs, err := findAll[userDocument](ctx, s.users,
		bson.M{"_id": bson.M{"$in": ids}},
		options.Find().SetProjection(bson.M{"name": 1}))
	if err != nil {
		return nil, err
	}
	for _, d := range docs {
		refs[d.ID] = entity.UserRef{ID: d.ID, Name: d.Name}
	}
	return refs, nil
}

func resolve(refs map[string]entity.UserRef, ids []string) []entity.UserRef {
	out := make([]entity.UserRef, 0, len(ids))
	for _, id := range ids {
		if r, ok := refs[id]; ok {
			out = append(out, r)
		} else {
			out = append(out, entity.UserRef{ID: id})
		}
	}
	return out
}

// hydrateTasks resolves tags and assignee names for a batch of task documents.
func (s *store) hydrateTasks(ctx context.Context, docs []taskDocument) ([]*entity.Task, error) {
	var tagIDs, userIDs []string
	for _, d := range docs {
		if d.TagID != nil {
			tagIDs = append(tagIDs, *d.TagID)
		}
		userIDs = append(userIDs, d.AssigneeIDs...)
	}

	tags := make(map[string]*entity.Tag)
	if len(tagIDs) > 0 {
		tagDocs, err := findAll[tagDocument](ctx, s.tags, bson.M{"_id": bson.M{"$in": tagIDs}})
		if err != nil {
			return nil, err
		}
		for i := range tagDocs {
			tags[tagDocs[i].ID] = tagFromDocument(&tagDocs[i])
		}
	}
	users, err := s.userRefs(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	out := make([]*entity.Task, 0, len(docs))
	for _, d := range docs {
		t := &entity.Task{
			ID:          d.ID,
			ProjectID:   d.ProjectID,
			Name:        d.Name,
			Description: d.Description,
			Finished:    d.Finished,
			Date:        d.Date.UTC(),
			TagID:       d.TagID,
			CreatedAt:   d.CreatedAt,
			UpdatedAt:   d.UpdatedAt,
			Assignees:   resolve(users, d.AssigneeIDs),
		}
		if d.TagID != nil {
			if tag, ok := tags[*d.TagID]; ok {
				cp := *tag
				t.Tag = &cp
			}
		}
		out = append(out, t)
	}
	return out, nil
}

// hydrateProjects loads tasks, tags and user names for a batch of projects.
func (s *store) hydrateProjects(ctx context.Context, docs []projectDocument) ([]*entity.Project, error) {
	if len(docs) == 0 {
		return []*entity.Project{}, nil
	}
	ids := make([]string, 0, len(docs))
	var userIDs []string
	for _, d := range docs {
		ids = append(ids, d.ID)
		userIDs = append(userIDs, d.OwnerID)
		userIDs = append(userIDs, d.AssigneeIDs...)
	}

	taskDocs, err := findAll[taskDocument](ctx, s.tasks,
		bson.M{"project_id": bson.M{"$in": ids}},
		options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, err
	}
	tasks, err := s.hydrateTasks(ctx, taskDocs)
	if err != nil {
		return nil, err
	}
	tagDocs, err := findAll[tagDocument](ctx, s.tags,
		bson.M{"project_id": bson.M{"$in": ids}},
		options.Find().SetSort(bson.D{{Key: "name_key", Value: 1}}))
	if err != nil {
		return nil, err
	}
	users, err := s.userRefs(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	out := make([]*entity.Project, 0, len(docs))
	byID := make(map[string]*entity.Project, len(docs))
	for _, d := range docs {
		owner := resolve(users, []string{d.OwnerID})[0]
		p := &entity.Project{
			ID:          d.ID,
			Name:        d.Name,
			Description: d.Description,
			Finished:    d.Finished,
			Priority:    d.Priority,
			DateStart:   d.DateStart.UTC(),
			DateEnd:     d.DateEnd,
			OwnerID:     d.OwnerID,
			CreatedAt:   d.CreatedAt,
			UpdatedAt:   d.UpdatedAt,
			Owner:       &owner,
			Assignees:   resolve(users, d.AssigneeIDs),
			Tasks:       []*entity.Task{},
			Tags:        []*entity.Tag{},
		}
		out = append(out, p)
		byID[p.ID] = p
	}
	for _, t := range tasks {
		if p, ok := byID[t.ProjectID]; ok {
			p.Tasks = append(p.Tasks, t)
		}
	}
	for i := range tagDocs {
		if p, ok := byID[tagDocs[i].ProjectID]; ok {
			p.Tags = append(p.Tags, tagFromDocument(&tagDocs[i]))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}
