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
	"github.com/wekeepgrowing/project-planner/internal/domain/service"
)

// ProjectInput 프로젝트 생성 입력 (수동/AI 공통).
// AI 생성에서는 Description이 모델에 보내는 요청문이 된다.
type ProjectInput struct {
	Name        string
	Description string
	Priority    string
	DateStart   time.Time
	DateEnd     *time.Time
}

type ProjectUsecase struct {
	projects  repository.ProjectRepository
	users     repository.UserRepository
	generator service.TaskGenerator
	notifier  *Notifier
	logger    *zap.Logger
}

// NewProjectUsecase generator가 nil이면 CreateWithAI는 ErrGeneratorDisabled를 반환한다.
func NewProjectUsecase(repos repository.Repositories, generator service.TaskGenerator, notifier *Notifier, logger *zap.Logger) *ProjectUsecase {
	return &ProjectUsecase{
		projects:  repos.Project,
		users:     repos.User,
		generator: generator,
		notifier:  notifier,
		logger:    logger,
	}
}

// List actor가 소유하거나 배정된 모든 프로젝트
func (uc *ProjectUsecase) List(ctx context.Context, actor *entity.User) ([]*entity.Project, error) {
	projects, err := uc.projects.ListForUser(ctx, actor.ID)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}
	return projects, nil
}

func (uc *ProjectUsecase) Get(ctx context.Context, actor *entity.User, id string) (*entity.Project, error) {
	return accessibleProject(ctx, uc.projects, actor, id)
}

// Create 태스크 없는 프로젝트를 actor 소유로 저장한다.
func (uc *ProjectUsecase) Create(ctx context.Context, actor *entity.User, in ProjectInput) (*entity.Project, error) {
	project, err := uc.newProject(actor, in)
	if err != nil {
		return nil, err
	}
	if err := uc.projects.Create(ctx, project); err != nil {
		return nil, domainerrors.Internal(err)
	}

	uc.logger.Info("Project created",
		zap.String("project_id", project.ID),
		zap.String("owner_id", actor.ID))
	uc.notifier.Emit(ctx, entity.NewEvent(entity.EventProjectCreated, actor.ID, project.ID, ""))
	return project, nil
}

// CreateWithAI 생성기로 일정을 만든 뒤 프로젝트, 태스크, 태그를 함께 저장한다.
// 생성에 실패하면 아무것도 저장하지 않는다.
func (uc *ProjectUsecase) CreateWithAI(ctx context.Context, actor *entity.User, in ProjectInput) (*entity.Project, error) {
	if uc.generator == nil {
		return nil, domainerrors.ErrGeneratorDisabled
	}
	if strings.TrimSpace(in.Description) == "" {
		return nil, domainerrors.Invalid("description is required", nil)
	}

	project, err := uc.newProject(actor, in)
	if err != nil {
		return nil, err
	}

	generated, err := uc.generator.Generate(ctx, entity.GenerationRequest{
		Description: in.Description,
		StartDate:   project.DateStart,
		EndDate:     project.DateEnd,
		Priority:    project.Priority,
		ProjectID:   project.ID,
		AssigneeID:  actor.ID,
	})
	if err != nil {
		uc.logger.Warn("Task generation failed",
			zap.String("project_id", project.ID),
			zap.Error(err))
		return nil, err
	}

	tags, tasks := materialize(project, actor, generated)
	if err := uc.projects.CreateWithContents(ctx, project, tags, tasks); err != nil {
		return nil, domainerrors.Internal(err)
	}
	project.Tags = tags
	project.Tasks = tasks

	uc.logger.Info("Project generated",
		zap.String("project_id", project.ID),
		zap.String("owner_id", actor.ID),
		zap.Int("tasks", len(tasks)),
		zap.Int("tags", len(tags)))
	uc.notifier.Emit(ctx, entity.NewEvent(entity.EventProjectCreated, actor.ID, project.ID, ""))
	return project, nil
}

// Update 부분 수정. 소유자만 가능
func (uc *ProjectUsecase) Update(ctx context.Context, actor *entity.User, id string, changes entity.ProjectChanges) (*entity.Project, error) {
	project, err := ownedProject(ctx, uc.projects, actor, id)
	if err != nil {
		return nil, err
	}

	var assignees []entity.UserRef
	if changes.AssigneeIDs != nil {
		if assignees, err = knownUsers(ctx, uc.users, changes.AssigneeIDs); err != nil {
			return nil, err
		}
	}
	if err := project.Apply(changes); err != nil {
		return nil, domainerrors.Invalid(err.Error(), err)
	}
	if changes.AssigneeIDs != nil {
		project.Assignees = assignees
	}

	if err := uc.projects.Update(ctx, project); err != nil {
		return nil, domainerrors.Internal(err)
	}

	uc.notifier.Emit(ctx, entity.NewEvent(entity.EventProjectUpdated, actor.ID, project.ID, ""))
	return project, nil
}

// Delete 프로젝트와 하위 태스크, 태그를 삭제한다. 소유자만 가능
func (uc *ProjectUsecase) Delete(ctx context.Context, actor *entity.User, id string) error {
	project, err := ownedProject(ctx, uc.projects, actor, id)
	if err != nil {
		return err
	}
	if err := uc.projects.Delete(ctx, project.ID); err != nil {
		return domainerrors.Internal(err)
	}

	uc.logger.Info("Project deleted",
		zap.String("project_id", project.ID),
		zap.Int("tasks", len(project.Tasks)))
	uc.notifier.Emit(ctx, entity.NewEvent(entity.EventProjectDeleted, actor.ID, project.ID, ""))
	return nil
}

func (uc *ProjectUsecase) newProject(actor *entity.User, in ProjectInput) (*entity.Project, error) {
	project, err := entity.NewProject(uuid.NewString(), actor.ID, in.Name, in.Description, in.Priority, in.DateStart, in.DateEnd)
	if err != nil {
		return nil, domainerrors.Invalid(err.Error(), err)
	}
	owner := actor.Ref()
	project.Owner = &owner
	project.Assignees = []entity.UserRef{}
	project.Tasks = []*entity.Task{}
	project.Tags = []*entity.Tag{}
	return project, nil
}

// materialize 생성 결과를 프로젝트의 태그/태스크로 바꾼다.
// 태그 이름은 대소문자 무시로 중복 제거, 해석할 수 없는 날짜는 프로젝트 시작일로 대체,
// 이름 없는 항목은 버린다.
func materialize(project *entity.Project, actor *entity.User, rows []entity.GeneratedTask) ([]*entity.Tag, []*entity.Task) {
	tags := make([]*entity.Tag, 0)
	tasks := make([]*entity.Task, 0, len(rows))
	byName := make(map[string]*entity.Tag)

	for _, row := range rows {
		date, err := entity.ParseDate(row.Date)
		if err != nil {
			date = project.DateStart
		}
		task, err := entity.NewTask(uuid.NewString(), project.ID, row.Name, row.Description, date)
		if err != nil {
			continue
		}
		task.Assignees = []entity.UserRef{actor.Ref()}

		if key := strings.ToLower(strings.TrimSpace(row.TagName)); key != "" {
			tag, ok := byName[key]
			if !ok {
				if tag, err = entity.NewTag(uuid.NewString(), project.ID, row.TagName, row.TagColor); err != nil {
					tag = nil
				} else {
					byName[key] = tag
					tags = append(tags, tag)
				}
			}
			if tag != nil {
				_ = task.SetTag(tag)
			}
		}
		tasks = append(tasks, task)
	}
	return tags, tasks
}
