package entity

import (
	"errors"
	"regexp"
	"strings"
)

// ErrTagOutsideProject 다른 프로젝트의 태그를 태스크에 연결하려 할 때
var ErrTagOutsideProject = errors.New("tag belongs to a different project")

// DefaultTagColor 색상이 지정되지 않은 태그의 색
const DefaultTagColor = "#9E9E9E"

var (
	hexColor   = regexp.MustCompile(`^#?(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	namedColor = regexp.MustCompile(`^[a-zA-Z]{3,20}$`)
)

// Tag 프로젝트 범위의 태그
type Tag struct {
	ID        string
	ProjectID string
	Name      string
	Color     string
}

// NewTag 태그 생성. 잘못된 색상은 DefaultTagColor로 대체된다.
func NewTag(id, projectID, name, color string) (*Tag, error) {
	if id == "" || projectID == "" {
		return nil, errors.New("tag id and project are required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("tag name is required")
	}
	return &Tag{ID: id, ProjectID: projectID, Name: name, Color: NormalizeColor(color)}, nil
}

// NormalizeColor #RGB / #RRGGBB 는 대문자 hex로, "teal" 같은 CSS 색 이름은 소문자로 정리한다.
// 그 밖의 값은 DefaultTagColor.
func NormalizeColor(color string) string {
	color = strings.TrimSpace(color)
	switch {
	case hexColor.MatchString(color):
		return "#" + strings.ToUpper(strings.TrimPrefix(color, "#"))
	case namedColor.MatchString(color):
		return strings.ToLower(color)
	default:
		return DefaultTagColor
	}
}

// SameName 대소문자와 앞뒤 공백을 무시한 이름 비교
func (t *Tag) SameName(name string) bool {
	return strings.EqualFold(strings.TrimSpace(t.Name), strings.TrimSpace(name))
}
