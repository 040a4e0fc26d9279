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

type taskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repository.TaskRepository {
	return &taskRepository{db: db}
}

func withTaskRelations(db *gorm.DB) *gorm.DB {
	return db.Preload("Tag").Preload("Assignees")
}

func (r *taskRepository) FindByID(ctx context.Context, id string) (*entity.Task, error) {
	if !validID(id) {
		return nil, nil
	}
	var task model.Task
	err := withTaskRelations(r.db.WithContext(ctx)).Where("id = ?", id).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return taskToEntity(&task), nil
}

func (r *taskRepository) ListByProject(ctx context.Context, projectID string) ([]*entity.Task, error) {
	if !validID(projectID) {
		return []*entity.Task{}, nil
	}
	return r.find(withTaskRelations(r.db.WithContext(ctx)).Where("project_id = ?", projectID))
}

func (r *taskRepository) ListByAssignee(ctx context.Context, userID string) ([]*entity.Task, error) {
	if !validID(userID) {
		return []*entity.Task{}, nil
	}
	return r.find(withTaskRelations(r.db.WithContext(ctx)).
		Joins("JOIN task_assignees ta ON ta.task_id = tasks.id").
		Where("ta.user_id = ?", userID))
}

func (r *taskRepository) find(db *gorm.DB) ([]*entity.Task, error) {
	var tasks []model.Task
	if err := db.Order("tasks.date, tasks.created_at").Find(&tasks).Error; err != nil {
		return nil, err
	}
	out := make([]*entity.Task, 0, len(tasks))
	for i := range tasks {
		out = append(out, taskToEntity(&tasks[i]))
	}
	return out, nil
}

func (r *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return createTask(tx, task)
	})
}

func createTask(tx *gorm.DB, task *entity.Task) error {
	if err := tx.Omit(clause.Associations).Create(taskToModel(task)).Error; err != nil {
		return err
	}
	if rows := taskAssignees(task); len(rows) > 0 {
		return tx.Create(&rows).Error
	}
	return nil
}

// Update saves scalar fields and the tag, then replaces the assignee set.
func (r *taskRepository) Update(ctx context.Context, task *entity.Task) error {
	m := taskToModel(task)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(m).
			Select("name", "description", "finished", "date", "tag_id", "updated_at").
			Updates(m).Error
		if err != nil {
			return err
		}
		if err := tx.Where("task_id = ?", task.ID).Delete(&model.TaskAssignee{}).Error; err != nil {
			return err
		}
		if rows := taskAssignees(task); len(rows) > 0 {
			return tx.Create(&rows).Error
		}
		return nil
	})
}

func (r *taskRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return nil
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", id).Delete(&model.TaskAssignee{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Task{}).Error
	})
}
