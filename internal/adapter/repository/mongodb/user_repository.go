package mongodb

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/wekeepgrowing/project-planner/internal/domain/entity"
	"github.com/wekeepgrowing/project-planner/internal/domain/repository"
)

type userRepository struct{ s *store }

func (r *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return r.first(ctx, bson.M{"_id": id})
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.first(ctx, bson.M{"email": email})
}

func (r *userRepository) first(ctx context.Context, filter bson.M) (*entity.User, error) {
	doc, err := findOne[userDocument](ctx, r.s.users, filter)
	if err != nil || doc == nil {
		return nil, err
	}
	return userFromDocument(doc), nil
}

func (r *userRepository) FindByIDs(ctx context.Context, ids []string) ([]*entity.User, error) {
	if len(ids) == 0 {
		return []*entity.User{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *userRepository) List(ctx context.Context) ([]*entity.User, error) {
	return r.find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
}

func (r *userRepository) find(ctx context.Context, filter bson.M, opts ...*options.FindOptions) ([]*entity.User, error) {
	docs, err := findAll[userDocument](ctx, r.s.users, filter, opts...)
	if err != nil {
		return nil, err
	}
	out := make([]*entity.User, 0, len(docs))
	for i := range docs {
		out = append(out, userFromDocument(&docs[i]))
	}
	return out, nil
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	_, err := r.s.users.InsertOne(ctx, userToDocument(user))
	if mongo.IsDuplicateKeyError(err) {
		return repository.ErrDuplicate
	}
	return err
}

// Update sets the profile fields only; membership arrays are left alone.
func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	_, err := r.s.users.UpdateByID(ctx, user.ID, bson.M{"$set": bson.M{
		"name":          user.Name,
		"email":         user.Email,
		"gender":        user.Gender,
		"date_of_birth": user.DateOfBirth,
		"picture":       user.Picture,
		"updated_at":    user.UpdatedAt,
	}})
	if mongo.IsDuplicateKeyError(err) {
		return repository.ErrDuplicate
	}
	return err
}
