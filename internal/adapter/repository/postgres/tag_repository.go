package postgres

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/wekeepgrowing/project-planner/internal/domain/entity"
	"github.com/wekeepgrowing/project-planner/internal/domain/model"
	"github.com/wekeepgrowing/project-planner/internal/domain/repository"
)

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) repository.TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) FindByID(ctx context.Context, id string) (*entity.Tag, error) {
	if !validID(id) {
		return nil, nil
	}
	return r.first(ctx, "id = ?", id)
}

func (r *tagRepository) FindByName(ctx context.Context, projectID, name string) (*entity.Tag, error) {
	if !validID(projectID) {
		return nil, nil
	}
	return r.first(ctx, "project_id = ? AND LOWER(name) = ?", projectID, strings.ToLower(strings.TrimSpace(name)))
}

func (r *tagRepository) first(ctx context.Context, query string, args ...interface{}) (*entity.Tag, error) {
	var tag model.Tag
	err := r.db.WithContext(ctx).Where(query, args...).First(&tag).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return tagToEntity(&tag), nil
}

func (r *tagRepository) ListByProject(ctx context.Context, projectID string) ([]*entity.Tag, error) {
	out := make([]*entity.Tag, 0)
	if !validID(projectID) {
		return out, nil
	}
	var tags []model.Tag
	if err := r.db.WithContext(ctx).Where("project_id = ?", projectID).Order("name").Find(&tags).Error; err != nil {
		return nil, err
	}
	for i := range tags {
		out = append(out, tagToEntity(&tags[i]))
	}
	return out, nil
}

func (r *tagRepository) Create(ctx context.Context, tag *entity.Tag) error {
	return translate(r.db.WithContext(ctx).Create(tagToModel(tag)).Error)
}
