package usecase

import (
	"context"

	"go.uber.org/zap"

	"github.com/wekeepgrowing/project-planner/internal/domain/entity"
	domainerrors "github.com/wekeepgrowing/project-planner/internal/domain/errors"
	"github.com/wekeepgrowing/project-planner/internal/domain/repository"
)

type TagUsecase struct {
	projects repository.ProjectRepository
	tasks    repository.TaskRepository
	tags     repository.TagRepository
	logger   *zap.Logger
}

func NewTagUsecase(repos repository.Repositories, logger *zap.Logger) *TagUsecase {
	return &TagUsecase{
		projects: repos.Project,
		tasks:    repos.Task,
		tags:     repos.Tag,
		logger:   logger,
	}
}

// ListByProject 접근 가능한 프로젝트의 태그 목록
func (uc *TagUsecase) ListByProject(ctx context.Context, actor *entity.User, projectID string) ([]*entity.Tag, error) {
	if _, err := accessibleProject(ctx, uc.projects, actor, projectID); err != nil {
		return nil, err
	}
	tags, err := uc.tags.ListByProject(ctx, projectID)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}
	return tags, nil
}

// CreateForTask 태스크가 속한 프로젝트에 태그를 만들거나(같은 이름이면 재사용) 태스크에 연결한다.
func (uc *TagUsecase) CreateForTask(ctx context.Context, actor *entity.User, taskID, name, color string) (*entity.Tag, error) {
	task, err := uc.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}
	if task == nil {
		return nil, domainerrors.ErrTaskNotFound
	}
	if !task.IsAssignedTo(actor.ID) {
		if _, err := accessibleProject(ctx, uc.projects, actor, task.ProjectID); err != nil {
			return nil, domainerrors.ErrTaskNotFound.WithCause(err)
		}
	}

	tag, err := findOrCreateTag(ctx, uc.tags, task.ProjectID, name, color)
	if err != nil {
		return nil, err
	}
	if err := task.SetTag(tag); err != nil {
		return nil, domainerrors.ErrTagOutsideProject.WithCause(err)
	}
	if err := uc.tasks.Update(ctx, task); err != nil {
		return nil, domainerrors.Internal(err)
	}

	uc.logger.Info("Tag linked",
		zap.String("tag_id", tag.ID),
		zap.String("task_id", task.ID),
		zap.String("project_id", task.ProjectID))
	return tag, nil
}
