package entity

import (
	"errors"
	"strings"
	"time"
)

// Project 프로젝트 애그리거트. 조회 시 저장소가 Owner, Assignees, Tasks, Tags를 채운다.
type Project struct {
	ID          string
	Name        string
	Description string
	Finished    bool
	Priority    string
	DateStart   time.Time
	DateEnd     *time.Time
	OwnerID     string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Owner     *UserRef
	Assignees []UserRef
	Tasks     []*Task
	Tags      []*Tag
}

// NewProject 프로젝트 생성. dateStart가 zero면 현재 시각을 사용한다.
func NewProject(id, ownerID, name, description, priority string, dateStart time.Time, dateEnd *time.Time) (*Project, error) {
	if id == "" || ownerID == "" {
		return nil, errors.New("project id and owner are required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("project name is required")
	}
	now := time.Now().UTC()
	if dateStart.IsZero() {
		dateStart = now
	}
	if dateEnd != nil && dateEnd.Before(dateStart) {
		return nil, errors.New("date_end must not be before date_start")
	}
	return &Project{
		ID:          id,
		Name:        name,
		Description: description,
		Priority:    priority,
		DateStart:   dateStart.UTC(),
		DateEnd:     utcPtr(dateEnd),
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// IsOwnedBy 소유자 여부
func (p *Project) IsOwnedBy(userID string) bool {
	return p.OwnerID == userID
}

// IsAccessibleBy 소유자이거나 프로젝트 담당자인 경우 true
func (p *Project) IsAccessibleBy(userID string) bool {
	if p.IsOwnedBy(userID) {
		return true
	}
	for _, a := range p.Assignees {
		if a.ID == userID {
			return true
		}
	}
	return false
}

// ProjectChanges 부분 수정 요청. AssigneeIDs가 nil이면 담당자를 바꾸지 않는다.
type ProjectChanges struct {
	Name        *string
	Description *string
	Finished    *bool
	Priority    *string
	DateStart   *time.Time
	DateEnd     *time.Time
	AssigneeIDs []string
}

// Apply 스칼라 필드 변경을 반영한다. 담당자 변경은 저장소가 처리한다.
func (p *Project) Apply(c ProjectChanges) error {
	if c.Name != nil {
		name := strings.TrimSpace(*c.Name)
		if name == "" {
			return errors.New("project name cannot be empty")
		}
		p.Name = name
	}
	if c.Description != nil {
		p.Description = *c.Description
	}
	if c.Finished != nil {
		p.Finished = *c.Finished
	}
	if c.Priority != nil {
		p.Priority = *c.Priority
	}
	if c.DateStart != nil {
		p.DateStart = c.DateStart.UTC()
	}
	if c.DateEnd != nil {
		p.DateEnd = utcPtr(c.DateEnd)
	}
	if p.DateEnd != nil && p.DateEnd.Before(p.DateStart) {
		return errors.New("date_end must not be before date_start")
	}
	if c.AssigneeIDs != nil {
		refs := make([]UserRef, 0, len(c.AssigneeIDs))
		for _, id := range uniqueStrings(c.AssigneeIDs) {
			refs = append(refs, UserRef{ID: id})
		}
		p.Assignees = refs
	}
	p.UpdatedAt = time.Now().UTC()
	return nil
}

// TaskIDs 프로젝트에 속한 태스크 ID 목록
func (p *Project) TaskIDs() []string {
	ids := make([]string, 0, len(p.Tasks))
	for _, t := range p.Tasks {
		ids = append(ids, t.ID)
	}
	return ids
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

func uniqueStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
