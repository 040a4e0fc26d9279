package entity

import "time"

// TokenClaims 베어러 토큰에서 꺼낸 사용자 식별 정보
type TokenClaims struct {
	UserID    string
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// IdentityClaims 외부 ID 제공자(Google)가 검증한 사용자 정보
type IdentityClaims struct {
	Subject       string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
	Issuer        string `json:"iss"`
	Audience      string `json:"aud"`
	ExpiresAt     int64  `json:"exp"`
}

// AuthToken 로그인/가입 응답
type AuthToken struct {
	AccessToken string
	TokenType   string
	ExpiresAt   time.Time
}
