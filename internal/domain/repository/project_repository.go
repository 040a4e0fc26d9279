package repository

import (
	"context"

	"github.com/wekeepgrowing/project-planner/internal/domain/entity"
)

// ProjectRepository 프로젝트 저장소. 조회 메서드는 Owner, Assignees, Tags,
// Tasks(각 태스크의 Tag, Assignees 포함)를 채운 애그리거트를 반환한다.
type ProjectRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Project, error)
	// ListForUser 사용자가 소유하거나 담당자로 지정된 프로젝트
	ListForUser(ctx context.Context, userID string) ([]*entity.Project, error)
	// ListIDsForUser ListForUser와 같은 범위의 ID만
	ListIDsForUser(ctx context.Context, userID string) ([]string, error)
	Create(ctx context.Context, project *entity.Project) error
	// CreateWithContents 프로젝트, 태그, 태스크를 한 번에 저장한다 (AI 생성 경로).
	CreateWithContents(ctx context.Context, project *entity.Project, tags []*entity.Tag, tasks []*entity.Task) error
	// Update 스칼라 필드와 담당자 목록을 저장한다.
	Update(ctx context.Context, project *entity.Project) error
	// Delete 프로젝트와 그 태스크, 태그를 함께 삭제한다.
	Delete(ctx context.Context, id string) error
}
