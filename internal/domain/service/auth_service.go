package service

import (
	"context"

	"github.com/wekeepgrowing/project-planner/internal/domain/entity"
)

// PasswordHasher 로컬 비밀번호 단방향 해시
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	// Verify 불일치, 빈 digest, 손상된 digest 모두 false
	Verify(plaintext, digest string) bool
}

// TokenService 베어러 토큰 발급/검증
type TokenService interface {
	Sign(userID, email string) (*entity.AuthToken, error)
	// Decode 서명, 알고리즘, 만료 검증에 실패하면 에러를 반환한다.
	Decode(token string) (*entity.TokenClaims, error)
}

// IdentityVerifier 외부 ID 토큰(Google) 검증
type IdentityVerifier interface {
	Verify(ctx context.Context, token string) (*entity.IdentityClaims, error)
}
