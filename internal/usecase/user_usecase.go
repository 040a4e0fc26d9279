package usecase

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/wekeepgrowing/project-planner/internal/domain/entity"
	domainerrors "github.com/wekeepgrowing/project-planner/internal/domain/errors"
	"github.com/wekeepgrowing/project-planner/internal/domain/repository"
)

// UserUsecase 사용자 조회와 본인 프로필 수정
type UserUsecase struct {
	users    repository.UserRepository
	projects repository.ProjectRepository
	tasks    repository.TaskRepository
	logger   *zap.Logger
}

func NewUserUsecase(repos repository.Repositories, logger *zap.Logger) *UserUsecase {
	return &UserUsecase{
		users:    repos.User,
		projects: repos.Project,
		tasks:    repos.Task,
		logger:   logger,
	}
}

// List 모든 사용자 프로필
func (uc *UserUsecase) List(ctx context.Context) ([]*entity.UserProfile, error) {
	users, err := uc.users.List(ctx)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}
	profiles := make([]*entity.UserProfile, 0, len(users))
	for _, u := range users {
		p, err := uc.profile(ctx, u)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}

// Get ID로 프로필 조회
func (uc *UserUsecase) Get(ctx context.Context, id string) (*entity.UserProfile, error) {
	user, err := uc.users.FindByID(ctx, id)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}
	if user == nil {
		return nil, domainerrors.ErrUserNotFound
	}
	return uc.profile(ctx, user)
}

// Update 본인만 수정할 수 있다. 이메일을 바꾸면 중복 검사를 한다.
func (uc *UserUsecase) Update(ctx context.Context, actor *entity.User, id string, changes entity.UserChanges) (*entity.UserProfile, error) {
	if actor.ID != id {
		return nil, domainerrors.ErrForbidden
	}
	user, err := uc.users.FindByID(ctx, id)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}
	if user == nil {
		return nil, domainerrors.ErrUserNotFound
	}

	emailChanged, err := user.Apply(changes)
	if err != nil {
		return nil, domainerrors.Invalid(err.Error(), err)
	}
	if emailChanged {
		other, err := uc.users.FindByEmail(ctx, user.Email)
		if err != nil {
			return nil, domainerrors.Internal(err)
		}
		if other != nil && other.ID != user.ID {
			return nil, domainerrors.ErrEmailInUse
		}
	}

	if err := uc.users.Update(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, domainerrors.ErrEmailInUse.WithCause(err)
		}
		return nil, domainerrors.Internal(err)
	}

	uc.logger.Info("User updated", zap.String("user_id", user.ID), zap.Bool("email_changed", emailChanged))
	return uc.profile(ctx, user)
}

func (uc *UserUsecase) profile(ctx context.Context, user *entity.User) (*entity.UserProfile, error) {
	projectIDs, err := uc.projects.ListIDsForUser(ctx, user.ID)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}
	tasks, err := uc.tasks.ListByAssignee(ctx, user.ID)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}
	taskIDs := make([]string, 0, len(tasks))
	for _, t := range tasks {
		taskIDs = append(taskIDs, t.ID)
	}
	return &entity.UserProfile{User: user, ProjectIDs: projectIDs, AssignedTaskIDs: taskIDs}, nil
}
