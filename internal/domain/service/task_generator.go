package service

import (
	"context"

	"github.com/wekeepgrowing/project-planner/internal/domain/entity"
)

// TaskGenerator 자연어 프로젝트 설명으로 태스크 목록을 만든다.
// 실패 사유는 domain/errors의 ErrNoTaskArray, ErrMalformedTaskArray,
// ErrCompletionFailed로 구분된다.
type TaskGenerator interface {
	Generate(ctx context.Context, req entity.GenerationRequest) ([]entity.GeneratedTask, error)
}
