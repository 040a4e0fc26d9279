package repository

import "errors"

// ErrDuplicate 고유 제약(이메일) 위반
var ErrDuplicate = errors.New("duplicate key")

// Repositories 저장소 묶음. 드라이버(postgres/mongodb)에 따라 구현체가 달라진다.
type Repositories struct {
	User    UserRepository
	Project ProjectRepository
	Task    TaskRepository
	Tag     TagRepository
}
