package usecase

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/wekeepgrowing/project-planner/internal/domain/entity"
)

const (
	// DefaultAccessTokenTTL 발급 후 30초. 설정 jwt.access_token_expiry로 바꿀 수 있다.
	DefaultAccessTokenTTL = 30 * time.Second
	tokenTypeBearer       = "bearer"
)

// accessClaims user_id/email/expiry는 기존 클라이언트가 읽는 필드라 그대로 둔다.
type accessClaims struct {
	UserID string  `json:"user_id"`
	Email  string  `json:"email"`
	Expiry float64 `json:"expiry"`
	jwt.RegisteredClaims
}

// JWTTokenService HS256 베어러 토큰 서명/검증
type JWTTokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// TokenOption JWTTokenService 옵션
type TokenOption func(*JWTTokenService)

// WithClock 테스트용 시계 주입
func WithClock(now func() time.Time) TokenOption {
	return func(s *JWTTokenService) { s.now = now }
}

// NewJWTTokenService ttl이 0 이하이면 DefaultAccessTokenTTL을 사용한다.
func NewJWTTokenService(secret string, ttl time.Duration, opts ...TokenOption) *JWTTokenService {
	if ttl <= 0 {
		ttl = DefaultAccessTokenTTL
	}
	s := &JWTTokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Sign user_id와 email을 담은 토큰을 발급한다.
func (s *JWTTokenService) Sign(userID, email string) (*entity.AuthToken, error) {
	if userID == "" {
		return nil, errors.New("user id is required")
	}
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)

	claims := accessClaims{
		UserID: userID,
		Email:  email,
		Expiry: float64(expiresAt.UnixNano()) / float64(time.Second),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("sign access token: %w", err)
	}

	return &entity.AuthToken{AccessToken: signed, TokenType: tokenTypeBearer, ExpiresAt: expiresAt}, nil
}

// Decode 서명, 알고리즘(HS256), 만료를 검증하고 클레임을 반환한다.
func (s *JWTTokenService) Decode(token string) (*entity.TokenClaims, error) {
	claims := &accessClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, errors.New("token is not valid")
	}

	userID := claims.UserID
	if userID == "" {
		userID = claims.Subject
	}
	if userID == "" && claims.Email == "" {
		return nil, errors.New("token carries no user identity")
	}

	out := &entity.TokenClaims{UserID: userID, Email: claims.Email}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, nil
}
