package usecase

import (
	"context"

	"github.com/wekeepgrowing/project-planner/internal/domain/entity"
	domainerrors "github.com/wekeepgrowing/project-planner/internal/domain/errors"
	"github.com/wekeepgrowing/project-planner/internal/domain/repository"
)

// accessibleProject actor가 소유하거나 배정된 프로젝트를 불러온다.
// 접근할 수 없는 프로젝트는 존재 여부를 숨기기 위해 ErrProjectNotFound로 응답한다.
func accessibleProject(ctx context.Context, projects repository.ProjectRepository, actor *entity.User, id string) (*entity.Project, error) {
	project, err := projects.FindByID(ctx, id)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}
	if project == nil || !project.IsAccessibleBy(actor.ID) {
		return nil, domainerrors.ErrProjectNotFound
	}
	return project, nil
}

// ownedProject accessibleProject + 소유자 확인
func ownedProject(ctx context.Context, projects repository.ProjectRepository, actor *entity.User, id string) (*entity.Project, error) {
	project, err := accessibleProject(ctx, projects, actor, id)
	if err != nil {
		return nil, err
	}
	if !project.IsOwnedBy(actor.ID) {
		return nil, domainerrors.ErrForbidden
	}
	return project, nil
}

// knownUsers id 목록을 UserRef로 바꾼다. 없는 사용자가 하나라도 있으면 ErrUnknownAssignee.
func knownUsers(ctx context.Context, users repository.UserRepository, ids []string) ([]entity.UserRef, error) {
	if len(ids) == 0 {
		return []entity.UserRef{}, nil
	}
	found, err := users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}
	byID := make(map[string]*entity.User, len(found))
	for _, u := range found {
		byID[u.ID] = u
	}
	refs := make([]entity.UserRef, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		u, ok := byID[id]
		if !ok {
			return nil, domainerrors.ErrUnknownAssignee
		}
		refs = append(refs, u.Ref())
	}
	return refs, nil
}
