package model

import "time"

// Project represents a row in projects. Assignees are stored in
// project_assignees.
type Project struct {
	ID          string     `gorm:"primaryKey;type:uuid" json:"id"`
	Name        string     `gorm:"size:255;not null" json:"name"`
	Description string     `gorm:"type:text" json:"description"`
	Finished    bool       `gorm:"not null;default:false" json:"finished"`
	Priority    string     `gorm:"size:50" json:"priority"`
	DateStart   time.Time  `gorm:"column:date_start;not null" json:"date_start"`
	DateEnd     *time.Time `gorm:"column:date_end" json:"date_end,omitempty"`
	OwnerID     string     `gorm:"column:owner_id;type:uuid;not null;index" json:"owner_id"`
	CreatedAt   time.Time  `gorm:"default:now();index" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"default:now()" json:"updated_at"`

	// Relations
	Owner     *User  `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Assignees []User `gorm:"many2many:project_assignees;joinForeignKey:ProjectID;joinReferences:UserID" json:"assignees,omitempty"`
	Tasks     []Task `gorm:"foreignKey:ProjectID" json:"tasks,omitempty"`
	Tags      []Tag  `gorm:"foreignKey:ProjectID" json:"tags,omitempty"`
}

// TableName specifies the table name for GORM
func (Project) TableName() string {
	return "projects"
}

// ProjectAssignee is the project_assignees join row.
type ProjectAssignee struct {
	ProjectID string `gorm:"primaryKey;type:uuid"`
	UserID    string `gorm:"primaryKey;type:uuid;index"`
}

// TableName specifies the table name for GORM
func (ProjectAssignee) TableName() string {
	return "project_assignees"
}
