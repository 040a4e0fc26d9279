package entity

import (
	"errors"
	"strings"
	"time"
)

// AuthType 사용자가 가입한 방식
type AuthType string

const (
	AuthTypeNormal AuthType = "normal"
	AuthTypeGoogle AuthType = "google"
)

// User 비즈니스 도메인 엔티티
type User struct {
	ID             string
	Name           string
	Email          string
	HashedPassword string // google 사용자는 비어 있음
	AuthType       AuthType
	Gender         string
	DateOfBirth    *time.Time
	Picture        string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// UserRef 다른 엔티티에서 참조하는 사용자의 축약형
type UserRef struct {
	ID   string
	Name string
}

// NewUser 비밀번호 가입 사용자 생성
func NewUser(id, name, email, hashedPassword string) (*User, error) {
	if hashedPassword == "" {
		return nil, errors.New("password hash is required")
	}
	u, err := newUser(id, name, email, AuthTypeNormal)
	if err != nil {
		return nil, err
	}
	u.HashedPassword = hashedPassword
	return u, nil
}

// NewGoogleUser Google 계정으로 가입한 사용자 생성
func NewGoogleUser(id string, claims IdentityClaims) (*User, error) {
	name := claims.Name
	if name == "" {
		name = strings.SplitN(claims.Email, "@", 2)[0]
	}
	u, err := newUser(id, name, claims.Email, AuthTypeGoogle)
	if err != nil {
		return nil, err
	}
	u.Picture = claims.Picture
	return u, nil
}

func newUser(id, name, email string, authType AuthType) (*User, error) {
	if id == "" {
		return nil, errors.New("user id is required")
	}
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("name is required")
	}
	if email == "" {
		return nil, errors.New("email is required")
	}
	now := time.Now().UTC()
	return &User{
		ID:        id,
		Name:      strings.TrimSpace(name),
		Email:     NormalizeEmail(email),
		AuthType:  authType,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// NormalizeEmail 저장과 조회에 쓰는 이메일 표기 (공백 제거, 소문자)
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// HasPassword 로컬 비밀번호로 로그인할 수 있는지 여부
func (u *User) HasPassword() bool {
	return u.HashedPassword != ""
}

// Ref 축약형 참조를 반환
func (u *User) Ref() UserRef {
	return UserRef{ID: u.ID, Name: u.Name}
}

// UserChanges 부분 수정 요청. nil 필드는 변경하지 않는다.
type UserChanges struct {
	Name        *string
	Email       *string
	Gender      *string
	DateOfBirth *time.Time
	Picture     *string
}

// Apply 변경 사항을 반영하고 이메일이 바뀌었는지 반환
func (u *User) Apply(c UserChanges) (emailChanged bool, err error) {
	if c.Name != nil {
		name := strings.TrimSpace(*c.Name)
		if name == "" {
			return false, errors.New("name cannot be empty")
		}
		u.Name = name
	}
	if c.Email != nil {
		email := NormalizeEmail(*c.Email)
		if email == "" {
			return false, errors.New("email cannot be empty")
		}
		emailChanged = email != u.Email
		u.Email = email
	}
	if c.Gender != nil {
		u.Gender = *c.Gender
	}
	if c.DateOfBirth != nil {
		dob := c.DateOfBirth.UTC()
		u.DateOfBirth = &dob
	}
	if c.Picture != nil {
		u.Picture = *c.Picture
	}
	u.UpdatedAt = time.Now().UTC()
	return emailChanged, nil
}

// UserProfile 사용자와 소속 프로젝트/배정 태스크 ID 목록
type UserProfile struct {
	User            *User
	ProjectIDs      []string
	AssignedTaskIDs []string
}
