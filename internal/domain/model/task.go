package model

import "time"

// Task represents a row in tasks. Assignees are stored in task_assignees.
type Task struct {
	ID          string    `gorm:"primaryKey;type:uuid" json:"id"`
	ProjectID   string    `gorm:"column:project_id;type:uuid;not null;index" json:"project_id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`
	Finished    bool      `gorm:"not null;default:false" json:"finished"`
	Date        time.Time `gorm:"not null;index" json:"date"`
	TagID       *string   `gorm:"column:tag_id;type:uuid;index" json:"tag_id,omitempty"`
	CreatedAt   time.Time `gorm:"default:now()" json:"created_at"`
	UpdatedAt   time.Time `gorm:"default:now()" json:"updated_at"`

	// Relations
	Tag       *Tag   `gorm:"foreignKey:TagID" json:"tag,omitempty"`
	Assignees []User `gorm:"many2many:task_assignees;joinForeignKey:TaskID;joinReferences:UserID" json:"assignees,omitempty"`
}

// TableName specifies the table name for GORM
func (Task) TableName() string {
	return "tasks"
}

// TaskAssignee is the task_assignees join row.
type TaskAssignee struct {
	TaskID string `gorm:"primaryKey;type:uuid"`
	UserID string `gorm:"primaryKey;type:uuid;index"`
}

// TableName specifies the table name for GORM
func (TaskAssignee) TableName() string {
	return "task_assignees"
}
