package repository

import (
	"context"

	"github.com/wekeepgrowing/project-planner/internal/domain/entity"
)

// UserRepository 사용자 저장소. 조회 결과가 없으면 (nil, nil)을 반환한다.
type UserRepository interface {
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// FindByIDs 존재하는 사용자만 반환한다. 순서는 보장하지 않는다.
	FindByIDs(ctx context.Context, ids []string) ([]*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	// Create 이메일이 이미 있으면 ErrDuplicate를 반환한다.
	Create(ctx context.Context, user *entity.User) error
	Update(ctx context.Context, user *entity.User) error
}
