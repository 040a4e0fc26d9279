package entity

import (
	"errors"
	"strings"
	"time"
)

// Task 프로젝트에 속한 작업. ProjectID는 생성 후 바뀌지 않는다.
type Task struct {
	ID          string
	ProjectID   string
	Name        string
	Description string
	Finished    bool
	Date        time.Time
	TagID       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Tag       *Tag
	Assignees []UserRef
}

// NewTask 태스크 생성. date가 zero면 현재 시각을 사용한다.
func NewTask(id, projectID, name, description string, date time.Time, assigneeIDs ...string) (*Task, error) {
	if id == "" || projectID == "" {
		return nil, errors.New("task id and project are required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("task name is required")
	}
	now := time.Now().UTC()
	if date.IsZero() {
		date = now
	}
	t := &Task{
		ID:          id,
		ProjectID:   projectID,
		Name:        name,
		Description: description,
		Date:        date.UTC(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, a := range uniqueStrings(assigneeIDs) {
		t.Assignees = append(t.Assignees, UserRef{ID: a})
	}
	return t, nil
}

// SetTag 태그를 연결한다. 태그는 같은 프로젝트 소속이어야 한다.
func (t *Task) SetTag(tag *Tag) error {
	if tag == nil {
		t.TagID = nil
		t.Tag = nil
		return nil
	}
	if tag.ProjectID != t.ProjectID {
		return ErrTagOutsideProject
	}
	id := tag.ID
	t.TagID = &id
	t.Tag = tag
	return nil
}

// IsAssignedTo 담당자 여부
func (t *Task) IsAssignedTo(userID string) bool {
	for _, a := range t.Assignees {
		if a.ID == userID {
			return true
		}
	}
	return false
}

// AssigneeIDs 담당자 ID 목록
func (t *Task) AssigneeIDs() []string {
	ids := make([]string, 0, len(t.Assignees))
	for _, a := range t.Assignees {
		ids = append(ids, a.ID)
	}
	return ids
}

// TaskChanges 부분 수정 요청. 프로젝트는 바꿀 수 없다.
type TaskChanges struct {
	Name        *string
	Description *string
	Finished    *bool
	Date        *time.Time
	AssigneeIDs []string
}

// Apply 스칼라 필드와 담당자 변경을 반영한다. 태그 변경은 SetTag로 한다.
func (t *Task) Apply(c TaskChanges) error {
	if c.Name != nil {
		name := strings.TrimSpace(*c.Name)
		if name == "" {
			return errors.New("task name cannot be empty")
		}
		t.Name = name
	}
	if c.Description != nil {
		t.Description = *c.Description
	}
	if c.Finished != nil {
		t.Finished = *c.Finished
	}
	if c.Date != nil {
		t.Date = c.Date.UTC()
	}
	if c.AssigneeIDs != nil {
		refs := make([]UserRef, 0, len(c.AssigneeIDs))
		for _, id := range uniqueStrings(c.AssigneeIDs) {
			refs = append(refs, UserRef{ID: id})
		}
		t.Assignees = refs
	}
	t.UpdatedAt = time.Now().UTC()
	return nil
}
