package usecase

import (
	"golang.org/x/crypto/bcrypt"
)

// maxPasswordBytes bcrypt 입력 길이 한도
const maxPasswordBytes = 72

// BcryptHasher 비밀번호 해시 (bcrypt, 솔트 내장)
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher cost가 허용 범위를 벗어나면 bcrypt.DefaultCost를 사용한다.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (h *BcryptHasher) Verify(plaintext, digest string) bool {
	if digest == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
