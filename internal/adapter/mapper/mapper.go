package mapper

import (
	"net/http"

	"github.com/wekeepgrowing/project-planner/internal/domain/entity"
)

func ToUserRefViews(refs []entity.UserRef) []UserRefView {
	out := make([]UserRefView, 0, len(refs))
	for _, r := range refs {
		out = append(out, UserRefView{ID: r.ID, Name: r.Name})
	}
	return out
}

// ToTagView returns nil for a nil tag so it renders as null.
func ToTagView(tag *entity.Tag) *TagView {
	if tag == nil {
		return nil
	}
	return &TagView{ID: tag.ID, Name: tag.Name, Color: tag.Color}
}

func ToTagViews(tags []*entity.Tag) []TagView {
	out := make([]TagView, 0, len(tags))
	for _, t := range tags {
		if t != nil {
			out = append(out, *ToTagView(t))
		}
	}
	return out
}

func ToTaskView(task *entity.Task) TaskView {
	return TaskView{
		ID:          task.ID,
		ProjectID:   task.ProjectID,
		Name:        task.Name,
		Description: task.Description,
		Date:        task.Date,
		Finished:    task.Finished,
		Assignees:   ToUserRefViews(task.Assignees),
		Tag:         ToTagView(task.Tag),
	}
}

func ToTaskViews(tasks []*entity.Task) []TaskView {
	out := make([]TaskView, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, ToTaskView(t))
	}
	return out
}

func ToProjectView(project *entity.Project) ProjectView {
	v := ProjectView{
		ID:          project.ID,
		Name:        project.Name,
		Description: project.Description,
		Finished:    project.Finished,
		Priority:    project.Priority,
		DateStart:   project.DateStart,
		DateEnd:     project.DateEnd,
		Tasks:       ToTaskViews(project.Tasks),
		Assignees:   ToUserRefViews(project.Assignees),
		Tags:        ToTagViews(project.Tags),
	}
	if project.Owner != nil {
		v.Owner = &UserRefView{ID: project.Owner.ID, Name: project.Owner.Name}
	}
	return v
}

func ToProjectViews(projects []*entity.Project) []ProjectView {
	out := make([]ProjectView, 0, len(projects))
	for _, p := range projects {
		out = append(out, ToProjectView(p))
	}
	return out
}

func ToUserView(profile *entity.UserProfile) UserView {
	u := profile.User
	v := UserView{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		AuthType:      string(u.AuthType),
		Gender:        u.Gender,
		DateOfBirth:   u.DateOfBirth,
		Picture:       u.Picture,
		Projects:      profile.ProjectIDs,
		AssignedTasks: profile.AssignedTaskIDs,
	}
	if v.Projects == nil {
		v.Projects = []string{}
	}
	if v.AssignedTasks == nil {
		v.AssignedTasks = []string{}
	}
	return v
}

func ToUserViews(profiles []*entity.UserProfile) []UserView {
	out := make([]UserView, 0, len(profiles))
	for _, p := range profiles {
		out = append(out, ToUserView(p))
	}
	return out
}

func ToTokenView(token *entity.AuthToken) TokenView {
	return TokenView{AuthToken: token.AccessToken, TokenType: token.TokenType, StatusCode: http.StatusOK}
}
