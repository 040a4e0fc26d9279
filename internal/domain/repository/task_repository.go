package repository

import (
	"context"

	"github.com/wekeepgrowing/project-planner/internal/domain/entity"
)

// TaskRepository 태스크 저장소. 조회 결과에는 Tag와 Assignees가 채워진다.
type TaskRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Task, error)
	ListByProject(ctx context.Context, projectID string) ([]*entity.Task, error)
	ListByAssignee(ctx context.Context, userID string) ([]*entity.Task, error)
	Create(ctx context.Context, task *entity.Task) error
	// Update 스칼라 필드, 태그, 담당자 목록을 저장한다. ProjectID는 무시된다.
	Update(ctx context.Context, task *entity.Task) error
	Delete(ctx context.Context, id string) error
}

// TagRepository 프로젝트 범위 태그 저장소
type TagRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Tag, error)
	// FindByName 대소문자를 무시하고 프로젝트 안에서 찾는다.
	FindByName(ctx context.Context, projectID, name string) (*entity.Tag, error)
	ListByProject(ctx context.Context, projectID string) ([]*entity.Tag, error)
	Create(ctx context.Context, tag *entity.Tag) error
}
