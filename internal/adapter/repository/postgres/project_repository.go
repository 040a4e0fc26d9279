package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/wekeepgrowing/project-planner/internal/domain/entity"
	"github.com/wekeepgrowing/project-planner/internal/domain/model"
	"github.com/wekeepgrowing/project-planner/internal/domain/repository"
)

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) repository.ProjectRepository {
	return &projectRepository{db: db}
}

// withAggregate preloads everything the nested project view needs.
func withAggregate(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Owner").
		Preload("Assignees").
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("tags.name") }).
		Preload("Tasks", func(db *gorm.DB) *gorm.DB { return db.Order("tasks.date, tasks.created_at") }).
		Preload("Tasks.Tag").
		Preload("Tasks.Assignees")
}

func (r *projectRepository) FindByID(ctx context.Context, id string) (*entity.Project, error) {
	if !validID(id) {
		return nil, nil
	}
	var project model.Project
	err := withAggregate(r.db.WithContext(ctx)).Where("id = ?", id).First(&project).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return projectToEntity(&project), nil
}

func (r *projectRepository) forUser(db *gorm.DB, userID string) *gorm.DB {
	return db.Where("owner_id = ? OR id IN (?)", userID,
		r.db.Model(&model.ProjectAssignee{}).Select("project_id").Where("user_id = ?", userID))
}

func (r *projectRepository) ListForUser(ctx context.Context, userID string) ([]*entity.Project, error) {
	if !validID(userID) {
		return []*entity.Project{}, nil
	}
	var projects []model.Project
	err := withAggregate(r.forUser(r.db.WithContext(ctx), userID)).
		Order("created_at").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	out := make([]*entity.Project, 0, len(projects))
	for i := range projects {
		out = append(out, projectToEntity(&projects[i]))
	}
	return out, nil
}

func (r *projectRepository) ListIDsForUser(ctx context.Context, userID string) ([]string, error) {
	ids := make([]string, 0)
	if !validID(userID) {
		return ids, nil
	}
	err := r.forUser(r.db.WithContext(ctx).Model(&model.Project{}), userID).
		Order("created_at").
		Pluck("id", &ids).Error
	return ids, err
}

func (r *projectRepository) Create(ctx context.Context, project *entity.Project) error {
	return r.CreateWithContents(ctx, project, nil, nil)
}

// CreateWithContents stores the project, its tags and its tasks in one transaction.
func (r *projectRepository) CreateWithContents(ctx context.Context, project *entity.Project, tags []*entity.Tag, tasks []*entity.Task) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(projectToModel(project)).Error; err != nil {
			return err
		}
		if rows := projectAssignees(project); len(rows) > 0 {
			if err := tx.Create(&rows).Error; err != nil {
				return err
			}
		}
		for _, tag := range tags {
			if err := tx.Create(tagToModel(tag)).Error; err != nil {
				return translate(err)
			}
		}
		for _, task := range tasks {
			if err := createTask(tx, task); err != nil {
				return err
			}
		}
		return nil
	})
}

// Update saves scalar fields and replaces the assignee set.
func (r *projectRepository) Update(ctx context.Context, project *entity.Project) error {
	m := projectToModel(project)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(m).
			Select("name", "description", "finished", "priority", "date_start", "date_end", "updated_at").
			Updates(m).Error
		if err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", project.ID).Delete(&model.ProjectAssignee{}).Error; err != nil {
			return err
		}
		if rows := projectAssignees(project); len(rows) > 0 {
			return tx.Create(&rows).Error
		}
		return nil
	})
}

// Delete removes the project with its tasks, task assignees, tags and
// project assignees in one transaction.
func (r *projectRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		taskIDs := tx.Model(&model.Task{}).Select("id").Where("project_id = ?", id)
		if err := tx.Where("task_id IN (?)", taskIDs).Delete(&model.TaskAssignee{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&model.Task{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&model.Tag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).Delete(&model.ProjectAssignee{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Project{}).Error
	})
}
