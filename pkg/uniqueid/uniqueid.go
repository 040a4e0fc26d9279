// Package uniqueid 짧은 랜덤 ID 생성기
package uniqueid

import (
	"fmt"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

const alnum = "0123456789abcdefghijklmnopqrstuvwxyz"

// Generate prefix 뒤에 [0-9a-z] 문자 n개를 붙인 ID를 만든다.
// 예: Generate("req-", 12) -> "req-4f0k2m9x1abc"
func Generate(prefix string, n int) (string, error) {
	id, err := gonanoid.Generate(alnum, n)
	if err != nil {
		return "", fmt.Errorf("failed to generate id: %w", err)
	}
	return prefix + id, nil
}

// RequestID X-Request-ID 헤더가 없을 때 쓰는 요청 ID.
// 생성에 실패하면 nanoid 기본 알파벳으로 한 번 더 시도한다.
func RequestID() string {
	id, err := Generate("", 16)
	if err == nil {
		return id
	}
	return gonanoid.Must(16)
}
