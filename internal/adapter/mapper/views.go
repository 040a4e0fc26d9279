// Package mapper projects domain aggregates into the JSON shapes the HTTP
// API returns. Empty relations are rendered as [] and a missing tag as null.
package mapper

import "time"

type UserRefView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type TagView struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

type TaskView struct {
	ID          string        `json:"id"`
	ProjectID   string        `json:"project_id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Date        time.Time     `json:"date"`
	Finished    bool          `json:"finished"`
	Assignees   []UserRefView `json:"assignees"`
	Tag         *TagView      `json:"tag"`
}

type ProjectView struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Finished    bool          `json:"finished"`
	Priority    string        `json:"priority"`
	DateStart   time.Time     `json:"date_start"`
	DateEnd     *time.Time    `json:"date_end"`
	Tasks       []TaskView    `json:"tasks"`
	Owner       *UserRefView  `json:"owner"`
	Assignees   []UserRefView `json:"assignees"`
	Tags        []TagView     `json:"tags"`
}

type UserView struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	AuthType      string     `json:"auth_type"`
	Gender        string     `json:"gender"`
	DateOfBirth   *time.Time `json:"DOB"`
	Picture       string     `json:"picture"`
	Projects      []string   `json:"projects"`
	AssignedTasks []string   `json:"assigned_tasks"`
}

// TokenView is the signup/login response.
type TokenView struct {
	AuthToken  string `json:"auth_token"`
	TokenType  string `json:"token_type"`
	StatusCode int    `json:"status_code"`
}

// MessageView is the body of delete responses.
type MessageView struct {
	Message string `json:"message"`
}
