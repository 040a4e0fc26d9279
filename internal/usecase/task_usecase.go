package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wekeepgrowing/project-planner/internal/domain/entity"
	domainerrors "github.com/wekeepgrowing/project-planner/internal/domain/errors"
	"github.com/wekeepgrowing/project-planner/internal/domain/repository"
)

// TaskInput 태스크 생성 입력. TagID가 TagName보다 우선하며,
// 프로젝트에 없는 TagName은 TagColor로 새 태그를 만든다.
type TaskInput struct {
	Name        string
	Description string
	Date        time.Time
	Finished    bool
	TagID       string
	TagName     string
	TagColor    string
}

// TaskUpdate 부분 수정. TagID가 ""를 가리키면 태그를 해제한다.
type TaskUpdate struct {
	Changes entity.TaskChanges
	TagID   *string
}

type TaskUsecase struct {
	projects repository.ProjectRepository
	tasks    repository.TaskRepository
	tags     repository.TagRepository
	users    repository.UserRepository
	notifier *Notifier
	logger   *zap.Logger
}

func NewTaskUsecase(repos repository.Repositories, notifier *Notifier, logger *zap.Logger) *TaskUsecase {
	return &TaskUsecase{
		projects: repos.Project,
		tasks:    repos.Task,
		tags:     repos.Tag,
		users:    repos.User,
		notifier: notifier,
		logger:   logger,
	}
}

// ListByProject 접근 가능한 프로젝트의 태스크 목록
func (uc *TaskUsecase) ListByProject(ctx context.Context, actor *entity.User, projectID string) ([]*entity.Task, error) {
	if _, err := accessibleProject(ctx, uc.projects, actor, projectID); err != nil {
		return nil, err
	}
	tasks, err := uc.tasks.ListByProject(ctx, projectID)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}
	return tasks, nil
}

// ListAssigned 프로젝트와 관계없이 actor에게 배정된 태스크
func (uc *TaskUsecase) ListAssigned(ctx context.Context, actor *entity.User) ([]*entity.Task, error) {
	tasks, err := uc.tasks.ListByAssignee(ctx, actor.ID)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}
	return tasks, nil
}

// Create 태스크를 추가하고 actor를 담당자로 배정한다.
func (uc *TaskUsecase) Create(ctx context.Context, actor *entity.User, projectID string, in TaskInput) (*entity.Task, error) {
	project, err := accessibleProject(ctx, uc.projects, actor, projectID)
	if err != nil {
		return nil, err
	}

	task, err := entity.NewTask(uuid.NewString(), project.ID, in.Name, in.Description, in.Date)
	if err != nil {
		return nil, domainerrors.Invalid(err.Error(), err)
	}
	task.Finished = in.Finished
	task.Assignees = []entity.UserRef{actor.Ref()}

	tag, err := uc.resolveTag(ctx, project.ID, in)
	if err != nil {
		return nil, err
	}
	if err := uc.setTag(task, tag); err != nil {
		return nil, err
	}

	if err := uc.tasks.Create(ctx, task); err != nil {
		return nil, domainerrors.Internal(err)
	}

	uc.logger.Info("Task created",
		zap.String("task_id", task.ID),
		zap.String("project_id", project.ID))
	uc.notifier.Emit(ctx, entity.NewEvent(entity.EventTaskCreated, actor.ID, project.ID, task.ID))
	return task, nil
}

// Update 태스크 부분 수정
func (uc *TaskUsecase) Update(ctx context.Context, actor *entity.User, id string, in TaskUpdate) (*entity.Task, error) {
	task, err := uc.accessibleTask(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	var assignees []entity.UserRef
	if in.Changes.AssigneeIDs != nil {
		if assignees, err = knownUsers(ctx, uc.users, in.Changes.AssigneeIDs); err != nil {
			return nil, err
		}
	}
	if err := task.Apply(in.Changes); err != nil {
		return nil, domainerrors.Invalid(err.Error(), err)
	}
	if in.Changes.AssigneeIDs != nil {
		task.Assignees = assignees
	}

	if in.TagID != nil {
		var tag *entity.Tag
		if *in.TagID != "" {
			if tag, err = uc.findTag(ctx, *in.TagID); err != nil {
				return nil, err
			}
		}
		if err := uc.setTag(task, tag); err != nil {
			return nil, err
		}
	}

	if err := uc.tasks.Update(ctx, task); err != nil {
		return nil, domainerrors.Internal(err)
	}

	uc.notifier.Emit(ctx, entity.NewEvent(entity.EventTaskUpdated, actor.ID, task.ProjectID, task.ID))
	return task, nil
}

// Delete 태스크와 담당자 연결을 삭제한다.
func (uc *TaskUsecase) Delete(ctx context.Context, actor *entity.User, id string) error {
	task, err := uc.accessibleTask(ctx, actor, id)
	if err != nil {
		return err
	}
	if err := uc.tasks.Delete(ctx, task.ID); err != nil {
		return domainerrors.Internal(err)
	}

	uc.logger.Info("Task deleted", zap.String("task_id", task.ID), zap.String("project_id", task.ProjectID))
	uc.notifier.Emit(ctx, entity.NewEvent(entity.EventTaskDeleted, actor.ID, task.ProjectID, task.ID))
	return nil
}

// accessibleTask actor가 담당자이거나 프로젝트에 접근할 수 있는 태스크를 불러온다.
// 그 밖의 태스크는 ErrTaskNotFound.
func (uc *TaskUsecase) accessibleTask(ctx context.Context, actor *entity.User, id string) (*entity.Task, error) {
	task, err := uc.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}
	if task == nil {
		return nil, domainerrors.ErrTaskNotFound
	}
	if task.IsAssignedTo(actor.ID) {
		return task, nil
	}
	if _, err := accessibleProject(ctx, uc.projects, actor, task.ProjectID); err != nil {
		return nil, domainerrors.ErrTaskNotFound.WithCause(err)
	}
	return task, nil
}

func (uc *TaskUsecase) resolveTag(ctx context.Context, projectID string, in TaskInput) (*entity.Tag, error) {
	if in.TagID != "" {
		return uc.findTag(ctx, in.TagID)
	}
	name := strings.TrimSpace(in.TagName)
	if name == "" {
		return nil, nil
	}
	return findOrCreateTag(ctx, uc.tags, projectID, name, in.TagColor)
}

func (uc *TaskUsecase) findTag(ctx context.Context, id string) (*entity.Tag, error) {
	tag, err := uc.tags.FindByID(ctx, id)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}
	if tag == nil {
		return nil, domainerrors.ErrTagNotFound
	}
	return tag, nil
}

func (uc *TaskUsecase) setTag(task *entity.Task, tag *entity.Tag) error {
	if err := task.SetTag(tag); err != nil {
		return domainerrors.ErrTagOutsideProject.WithCause(err)
	}
	return nil
}

// findOrCreateTag 프로젝트에서 같은 이름의 태그를 찾고, 없으면 만든다.
func findOrCreateTag(ctx context.Context, tags repository.TagRepository, projectID, name, color string) (*entity.Tag, error) {
	existing, err := tags.FindByName(ctx, projectID, name)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}
	if existing != nil {
		return existing, nil
	}
	tag, err := entity.NewTag(uuid.NewString(), projectID, name, color)
	if err != nil {
		return nil, domainerrors.Invalid(err.Error(), err)
	}
	if err := tags.Create(ctx, tag); err != nil {
		return nil, domainerrors.Internal(err)
	}
	return tag, nil
}
